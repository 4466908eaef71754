package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

const defaultCommentLimit = 10

var errEmptyComment = errors.New("comment is required")

// Comment serves the comment routes of one parent collection, actions or
// communities
type Comment struct {
	DB           databases.CommentDatabase
	UDB          databases.UserDatabase
	LDB          databases.LogDatabase
	Achievements achievements.Updater
	// Category is the activity log category, "action" or "community"
	Category string
	// ParentVar is the mux variable holding the parent id
	ParentVar string
	// ParentVisible returns a not found error when the parent is missing and
	// errForbidden when userID may not see it
	ParentVisible func(ctx context.Context, id primitive.ObjectID, userID string) error
}

// CommentsHandler returns a page of the parent's comments, newest first
func (c Comment) CommentsHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, c.ParentVar)
	if !ok {
		return
	}
	limit := getLimit(r, defaultCommentLimit)
	skip := getInt64(r, "skip", 0)
	userID := api.UserID(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.ParentVisible(ctx, pID, userID); err != nil {
		config.ErrorStatus("failed to get comments", errorCode(err), w, err)
		return
	}
	comments, err := c.DB.FindByParent(ctx, pID.Hex(), limit, skip)
	if err != nil {
		config.ErrorStatus("failed to get comments", http.StatusInternalServerError, w, err)
		return
	}
	total, err := c.DB.CountDocuments(ctx, bson.M{"parentId": pID.Hex()})
	if err != nil {
		config.ErrorStatus("failed to count comments", http.StatusInternalServerError, w, err)
		return
	}

	page := models.CommentPage{
		Comments: make([]models.CommentResponse, 0, len(comments)),
		Total:    total,
		Limit:    limit,
		Skip:     skip,
	}
	for _, cm := range comments {
		page.Comments = append(page.Comments, models.ReduceComment(cm, userID))
	}
	writeJSON(w, http.StatusOK, page)
}

// CreateCommentHandler posts a comment on an existing parent
func (c Comment) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, c.ParentVar)
	if !ok {
		return
	}
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		Comment string `json:"comment"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	body.Comment = strings.TrimSpace(body.Comment)
	if body.Comment == "" {
		config.ErrorStatus("failed to create comment", http.StatusBadRequest, w, errEmptyComment)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.ParentVisible(ctx, pID, uID.Hex()); err != nil {
		config.ErrorStatus("failed to create comment", errorCode(err), w, err)
		return
	}
	author, err := c.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get author", errorCode(err), w, err)
		return
	}

	comment := models.Comment{
		ID:       primitive.NewObjectID(),
		ParentID: pID.Hex(),
		AuthorID: uID.Hex(),
		Name:     author.Name,
		Comment:  body.Comment,
		Date:     primitive.NewDateTimeFromTime(time.Now()),
		Ratings:  map[string]int{},
	}
	if _, err := c.DB.InsertOne(ctx, comment); err != nil {
		config.ErrorStatus("failed to create comment", http.StatusInternalServerError, w, err)
		return
	}

	if _, _, err := c.Achievements.Update(ctx, uID, models.AchievementCommentsPosted, achievements.Increment()); err != nil {
		zap.S().Errorw("failed to update achievement", "error", err, "name", models.AchievementCommentsPosted)
	}

	logActivity(ctx, c.LDB, uID.Hex(), c.Category, "comment", bson.M{"parentId": pID.Hex(), "commentId": comment.ID.Hex()})
	writeJSON(w, http.StatusCreated, models.ReduceComment(comment, uID.Hex()))
}

// DeleteCommentHandler lets the author delete their comment
func (c Comment) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, c.ParentVar)
	if !ok {
		return
	}
	cID, ok := objectIDVar(w, r, "comment_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.ParentVisible(ctx, pID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to delete comment", errorCode(err), w, err)
		return
	}
	comment, err := c.DB.FindOne(ctx, bson.M{"_id": cID, "parentId": pID.Hex()})
	if err != nil {
		config.ErrorStatus("failed to get comment", errorCode(err), w, err)
		return
	}
	if comment.AuthorID != api.UserID(r) {
		config.ErrorStatus("failed to delete comment", http.StatusForbidden, w, errForbidden)
		return
	}
	if _, err := c.DB.DeleteOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete comment", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), c.Category, "deleteComment", bson.M{"parentId": pID.Hex(), "commentId": cID.Hex()})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}

// RateCommentHandler stores the caller's like value on a comment
func (c Comment) RateCommentHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, c.ParentVar)
	if !ok {
		return
	}
	cID, ok := objectIDVar(w, r, "comment_id")
	if !ok {
		return
	}

	var like models.LikeRequest
	if !decodeBody(w, r, &like) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	userID := api.UserID(r)
	if err := c.ParentVisible(ctx, pID, userID); err != nil {
		config.ErrorStatus("failed to rate comment", errorCode(err), w, err)
		return
	}
	filter := bson.M{"_id": cID, "parentId": pID.Hex()}
	if _, err := c.DB.FindOne(ctx, filter); err != nil {
		config.ErrorStatus("failed to get comment", errorCode(err), w, err)
		return
	}
	if err := c.DB.Rate(ctx, cID, userID, like.Rating); err != nil {
		config.ErrorStatus("failed to rate comment", errorCode(err), w, err)
		return
	}
	comment, err := c.DB.FindOne(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get comment", errorCode(err), w, err)
		return
	}

	logActivity(ctx, c.LDB, userID, c.Category, "rateComment", bson.M{"commentId": cID.Hex(), "rating": like.Rating})
	writeJSON(w, http.StatusOK, models.ReduceComment(*comment, userID))
}
