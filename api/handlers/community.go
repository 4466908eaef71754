package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

var (
	errOwnerCannotLeave = errors.New("owner cannot leave")
	errPrivateJoin      = errors.New("private communities are joined through their owner")
)

// Community exported for testing purposes
type Community struct {
	DB  databases.CommunityDatabase
	CDB databases.CommentDatabase
	ADB databases.ActionDatabase
	UDB databases.UserDatabase
	LDB databases.LogDatabase
}

// CreateCommunityHandler creates a community owned by the caller
func (c Community) CreateCommunityHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var community models.Community
	if !decodeBody(w, r, &community) {
		return
	}
	community.Name = strings.TrimSpace(community.Name)
	if community.Name == "" {
		config.ErrorStatus("failed to create community", http.StatusBadRequest, w, errNameRequired)
		return
	}

	community.ID = primitive.NewObjectID()
	community.OwnerID = uID.Hex()
	community.Members = []string{uID.Hex()}
	community.Actions = []string{}
	community.Challenges = []models.Challenge{}
	community.Ratings = map[string]int{}
	community.Date = primitive.NewDateTimeFromTime(time.Now())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.DB.InsertOne(ctx, community); err != nil {
		config.ErrorStatus("failed to create community", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := c.UDB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{"$addToSet": bson.M{"communities": community.ID.Hex()}}); err != nil {
		zap.S().Errorw("failed to add community to owner", "error", err, "communityId", community.ID.Hex())
	}

	logActivity(ctx, c.LDB, uID.Hex(), "community", "create", bson.M{"communityId": community.ID.Hex()})
	writeJSON(w, http.StatusCreated, models.ReduceCommunity(community, uID.Hex()))
}

// CommunitiesHandler returns a page of the communities visible to the caller,
// optionally matching ?q
func (c Community) CommunitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit, skip, ok := getPaging(w, r, defaultPageLimit)
	if !ok {
		return
	}

	userID := api.UserID(r)
	filter := bson.M{"$or": []bson.M{
		{"private": false},
		{"members": userID},
	}}
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		filter["name"] = nameRegex(q)
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.M{"date": -1})

	dbResp, err := c.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get communities", http.StatusInternalServerError, w, err)
		return
	}

	resp := make([]models.CommunityResponse, 0, len(dbResp))
	for _, cm := range dbResp {
		resp = append(resp, models.ReduceCommunity(cm, userID))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CommunityHandler returns a community. Private communities are only shown
// to their members.
func (c Community) CommunityHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "community_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	community, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get community by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if !canView(community, userID) {
		config.ErrorStatus("failed to get community by ID", http.StatusForbidden, w, errForbidden)
		return
	}
	writeJSON(w, http.StatusOK, models.ReduceCommunity(*community, userID))
}

// DeleteCommunityHandler lets the owner delete a community and its comments
func (c Community) DeleteCommunityHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "community_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	community, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get community by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if community.OwnerID != userID {
		config.ErrorStatus("failed to delete community", http.StatusForbidden, w, errForbidden)
		return
	}

	if _, err := c.DB.DeleteOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete community", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := c.CDB.DeleteMany(ctx, bson.M{"parentId": cID.Hex()}); err != nil {
		zap.S().Errorw("failed to delete community comments", "error", err, "communityId", cID.Hex())
	}
	if _, err := c.UDB.UpdateMany(ctx, bson.M{"communities": cID.Hex()}, bson.M{"$pull": bson.M{"communities": cID.Hex()}}); err != nil {
		zap.S().Errorw("failed to remove community from members", "error", err, "communityId", cID.Hex())
	}

	logActivity(ctx, c.LDB, userID, "community", "delete", bson.M{"communityId": cID.Hex()})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Community deleted"})
}

// RateCommunityHandler stores the caller's like value on a community
func (c Community) RateCommunityHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "community_id")
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
	if err := c.Visible(ctx, cID, userID); err != nil {
		config.ErrorStatus("failed to rate community", errorCode(err), w, err)
		return
	}
	if err := c.DB.Rate(ctx, cID, userID, like.Rating); err != nil {
		config.ErrorStatus("failed to rate community", errorCode(err), w, err)
		return
	}
	community, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get community by ID", errorCode(err), w, err)
		return
	}

	logActivity(ctx, c.LDB, userID, "community", "rate", bson.M{"communityId": cID.Hex(), "rating": like.Rating})
	writeJSON(w, http.StatusOK, models.ReduceCommunity(*community, userID))
}

// AddMemberHandler adds a user to a community. The owner may add anyone,
// other users only themselves and only to public communities.
func (c Community) AddMemberHandler(w http.ResponseWriter, r *http.Request) {
	c.changeMembership(w, r, true)
}

// RemoveMemberHandler removes a user from a community. The owner may remove
// anyone but themselves, other users only themselves.
func (c Community) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	c.changeMembership(w, r, false)
}

func (c Community) changeMembership(w http.ResponseWriter, r *http.Request, add bool) {
	cID, ok := objectIDVar(w, r, "community_id")
	if !ok {
		return
	}
	mID, ok := objectIDVar(w, r, "user_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	community, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get community by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if community.OwnerID != userID && mID.Hex() != userID {
		config.ErrorStatus("failed to change membership", http.StatusForbidden, w, errForbidden)
		return
	}
	if add && community.Private && community.OwnerID != userID {
		config.ErrorStatus("failed to change membership", http.StatusForbidden, w, errPrivateJoin)
		return
	}
	if !add && mID.Hex() == community.OwnerID {
		config.ErrorStatus("failed to change membership", http.StatusBadRequest, w, errOwnerCannotLeave)
		return
	}
	if _, err := c.UDB.FindOne(ctx, bson.M{"_id": mID}); err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}

	op, kind := "$addToSet", "join"
	if !add {
		op, kind = "$pull", "leave"
	}
	if _, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{op: bson.M{"members": mID.Hex()}}); err != nil {
		config.ErrorStatus("failed to change membership", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := c.UDB.UpdateOne(ctx, bson.M{"_id": mID}, bson.M{op: bson.M{"communities": cID.Hex()}}); err != nil {
		config.ErrorStatus("failed to change membership", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, userID, "community", kind, bson.M{"communityId": cID.Hex(), "userId": mID.Hex()})
	c.writeCommunity(ctx, w, cID, userID)
}

// AddActionHandler links an existing action to a community
func (c Community) AddActionHandler(w http.ResponseWriter, r *http.Request) {
	c.changeAction(w, r, true)
}

// RemoveActionHandler unlinks an action from a community
func (c Community) RemoveActionHandler(w http.ResponseWriter, r *http.Request) {
	c.changeAction(w, r, false)
}

func (c Community) changeAction(w http.ResponseWriter, r *http.Request, add bool) {
	cID, ok := objectIDVar(w, r, "community_id")
	if !ok {
		return
	}
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.member(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to change community actions", errorCode(err), w, err)
		return
	}

	op, kind := "$addToSet", "addAction"
	if add {
		if _, err := c.ADB.FindOne(ctx, bson.M{"_id": aID}); err != nil {
			config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
			return
		}
	} else {
		op, kind = "$pull", "removeAction"
	}
	if _, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{op: bson.M{"actions": aID.Hex()}}); err != nil {
		config.ErrorStatus("failed to change community actions", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "community", kind, bson.M{"communityId": cID.Hex(), "actionId": aID.Hex()})
	c.writeCommunity(ctx, w, cID, api.UserID(r))
}

// CreateChallengeHandler lets a member challenge the community to take an action
func (c Community) CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "community_id")
	if !ok {
		return
	}

	var body struct {
		ActionID string `json:"actionId"`
		Name     string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	aID, err := primitive.ObjectIDFromHex(body.ActionID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.member(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to create challenge", errorCode(err), w, err)
		return
	}
	action, err := c.ADB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
		return
	}

	challenge := models.Challenge{
		ID:       primitive.NewObjectID(),
		ActionID: aID.Hex(),
		Name:     strings.TrimSpace(body.Name),
		Date:     primitive.NewDateTimeFromTime(time.Now()),
	}
	if challenge.Name == "" {
		challenge.Name = action.Name
	}
	if _, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$push": bson.M{"challenges": challenge}}); err != nil {
		config.ErrorStatus("failed to create challenge", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "community", "challenge", bson.M{"communityId": cID.Hex(), "actionId": aID.Hex()})
	writeJSON(w, http.StatusCreated, challenge)
}

// Visible returns errForbidden when the community is private and userID is
// not one of its members
func (c Community) Visible(ctx context.Context, id primitive.ObjectID, userID string) error {
	community, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !canView(community, userID) {
		return errForbidden
	}
	return nil
}

func canView(community *models.Community, userID string) bool {
	return !community.Private || contains(community.Members, userID)
}

// member returns the community when userID belongs to it
func (c Community) member(ctx context.Context, id primitive.ObjectID, userID string) (*models.Community, error) {
	community, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if !contains(community.Members, userID) {
		return nil, errForbidden
	}
	return community, nil
}

func (c Community) writeCommunity(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, userID string) {
	community, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get community by ID", errorCode(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ReduceCommunity(*community, userID))
}
