package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

const defaultScore = 3

// Action exported for testing purposes
type Action struct {
	DB           databases.ActionDatabase
	CDB          databases.CommentDatabase
	UDB          databases.UserDatabase
	ComDB        databases.CommunityDatabase
	LDB          databases.LogDatabase
	Achievements achievements.Updater
}

// CreateActionHandler creates an action authored by the caller
func (a Action) CreateActionHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var action models.Action
	if !decodeBody(w, r, &action) {
		return
	}
	action.Name = strings.TrimSpace(action.Name)
	if action.Name == "" {
		config.ErrorStatus("failed to create action", http.StatusBadRequest, w, errNameRequired)
		return
	}
	if action.Impact == 0 {
		action.Impact = defaultScore
	}
	if action.Effort == 0 {
		action.Effort = defaultScore
	}
	if !models.ValidScore(action.Impact) || !models.ValidScore(action.Effort) {
		config.ErrorStatus("invalid impact or effort", http.StatusBadRequest, w, models.ErrScoreOutOfRange)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	author, err := a.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get author", errorCode(err), w, err)
		return
	}

	action.ID = primitive.NewObjectID()
	action.AuthorID = uID.Hex()
	action.AuthorName = author.Name
	action.Ratings = map[string]models.Rating{}
	action.Date = primitive.NewDateTimeFromTime(time.Now())
	if action.Season == nil {
		action.Season = []string{}
	}

	_, err = a.DB.InsertOne(ctx, action)
	if err != nil {
		config.ErrorStatus("failed to create action", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, a.LDB, uID.Hex(), "action", "create", bson.M{"actionId": action.ID.Hex()})
	writeJSON(w, http.StatusCreated, models.ReduceAction(action, uID.Hex()))
}

// ActionsHandler returns a page of actions, newest first
func (a Action) ActionsHandler(w http.ResponseWriter, r *http.Request) {
	limit, skip, ok := getPaging(w, r, defaultPageLimit)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.M{"date": -1})

	dbResp, err := a.DB.Find(ctx, bson.D{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get actions", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reduceActions(dbResp, api.UserID(r)))
}

// SearchActionsHandler matches actions by name in any language
func (a Action) SearchActionsHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusOK, []models.ActionResponse{})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"name": nameRegex(q)},
		{"name_IT": nameRegex(q)},
		{"name_SE": nameRegex(q)},
	}}
	dbResp, err := a.DB.Find(ctx, filter, options.Find().SetLimit(maxSearchResults))
	if err != nil {
		config.ErrorStatus("failed to search actions", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reduceActions(dbResp, api.UserID(r)))
}

// SuggestedActionsHandler returns a random sample of actions the caller has
// not taken any stance on yet
func (a Action) SuggestedActionsHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}

	dbResp, err := a.DB.Suggested(ctx, user.Actions.IDs(), user.Language)
	if err != nil {
		config.ErrorStatus("failed to get suggested actions", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reduceActions(dbResp, uID.Hex()))
}

// ActionByIDHandler returns an action with its derived counts
func (a Action) ActionByIDHandler(w http.ResponseWriter, r *http.Request) {
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
		return
	}

	resp := models.ReduceAction(*dbResp, api.UserID(r))
	resp.NumComments, err = a.CDB.CountDocuments(ctx, bson.M{"parentId": aID.Hex()})
	if err != nil {
		config.ErrorStatus("failed to count comments", http.StatusInternalServerError, w, err)
		return
	}
	resp.NumUsers, err = a.UDB.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"actions.inProgress._id": aID},
		{"actions.done._id": aID},
	}})
	if err != nil {
		config.ErrorStatus("failed to count users", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateActionHandler lets the author change the descriptive fields
func (a Action) UpdateActionHandler(w http.ResponseWriter, r *http.Request) {
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}

	var update models.ActionUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if emptyUpdate(update) {
		config.ErrorStatus("failed to update action", http.StatusBadRequest, w, errNoFields)
		return
	}
	if (update.Impact != nil && !models.ValidScore(*update.Impact)) || (update.Effort != nil && !models.ValidScore(*update.Effort)) {
		config.ErrorStatus("invalid impact or effort", http.StatusBadRequest, w, models.ErrScoreOutOfRange)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	action, err := a.authored(ctx, aID, api.UserID(r))
	if err != nil {
		config.ErrorStatus("failed to update action", errorCode(err), w, err)
		return
	}

	_, err = a.DB.UpdateOne(ctx, bson.M{"_id": aID}, bson.M{"$set": update})
	if err != nil {
		config.ErrorStatus("failed to update action", http.StatusInternalServerError, w, err)
		return
	}

	updated, err := a.DB.FindOne(ctx, bson.M{"_id": action.ID})
	if err != nil {
		config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
		return
	}

	logActivity(ctx, a.LDB, api.UserID(r), "action", "update", bson.M{"actionId": aID.Hex()})
	writeJSON(w, http.StatusOK, models.ReduceAction(*updated, api.UserID(r)))
}

// DeleteActionHandler lets the author delete an action. Its comments go with
// it and references from user buckets, community actions and challenges are
// removed.
func (a Action) DeleteActionHandler(w http.ResponseWriter, r *http.Request) {
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := a.authored(ctx, aID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to delete action", errorCode(err), w, err)
		return
	}

	if _, err := a.DB.DeleteOne(ctx, bson.M{"_id": aID}); err != nil {
		config.ErrorStatus("failed to delete action", http.StatusInternalServerError, w, err)
		return
	}
	removed, err := a.CDB.DeleteMany(ctx, bson.M{"parentId": aID.Hex()})
	if err != nil {
		zap.S().Errorw("failed to delete action comments", "error", err, "actionId", aID.Hex())
	}
	users, err := a.UDB.ForgetAction(ctx, aID)
	if err != nil {
		zap.S().Errorw("failed to remove action from users", "error", err, "actionId", aID.Hex())
	}
	communities, err := a.ComDB.UnlinkAction(ctx, aID.Hex())
	if err != nil {
		zap.S().Errorw("failed to remove action from communities", "error", err, "actionId", aID.Hex())
	}

	logActivity(ctx, a.LDB, api.UserID(r), "action", "delete", bson.M{
		"actionId":    aID.Hex(),
		"comments":    removed,
		"users":       users,
		"communities": communities,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Action deleted"})
}

// RateActionHandler stores the caller's like and effort estimate
func (a Action) RateActionHandler(w http.ResponseWriter, r *http.Request) {
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var rating models.Rating
	if !decodeBody(w, r, &rating) {
		return
	}
	rating.Date = primitive.NewDateTimeFromTime(time.Now())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := a.DB.Rate(ctx, aID, uID.Hex(), rating)
	if err != nil {
		config.ErrorStatus("failed to rate action", errorCode(err), w, err)
		return
	}

	rated, err := a.DB.CountDocuments(ctx, bson.M{"ratings." + uID.Hex(): bson.M{"$exists": true}})
	if err != nil {
		zap.S().Errorw("failed to count rated actions", "error", err, "userId", uID.Hex())
	} else if _, _, err := a.Achievements.Update(ctx, uID, models.AchievementActionsRated, achievements.Set(int(rated))); err != nil {
		zap.S().Errorw("failed to update achievement", "error", err, "name", models.AchievementActionsRated)
	}

	action, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
		return
	}

	logActivity(ctx, a.LDB, uID.Hex(), "action", "rate", bson.M{"actionId": aID.Hex(), "rating": rating.Rating, "effort": rating.Effort})
	writeJSON(w, http.StatusOK, models.ReduceAction(*action, uID.Hex()))
}

// authored returns the action when userID is its author
func (a Action) authored(ctx context.Context, id primitive.ObjectID, userID string) (*models.Action, error) {
	action, err := a.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if action.AuthorID != userID {
		return nil, errForbidden
	}
	return action, nil
}

func reduceActions(actions []models.Action, userID string) []models.ActionResponse {
	resp := make([]models.ActionResponse, 0, len(actions))
	for _, a := range actions {
		resp = append(resp, models.ReduceAction(a, userID))
	}
	return resp
}
