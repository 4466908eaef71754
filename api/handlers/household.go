package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/mailer"
	"github.com/youpower/youpower-api/models"
	templates "github.com/youpower/youpower-api/templates/html"
)

var (
	errAlreadyInHousehold = errors.New("user already belongs to a household")
	errInviteNotPending   = errors.New("invitation is no longer pending")
	errInviteNotForYou    = errors.New("invitation is addressed to another user")
)

// Household exported for testing purposes
type Household struct {
	DB       databases.HouseholdDatabase
	UDB      databases.UserDatabase
	LDB      databases.LogDatabase
	Mailer   mailer.Mailer
	Notifier achievements.Notifier
	// Secret signs invitation tokens
	Secret  []byte
	BaseURL string
}

// CreateHouseholdHandler creates a household owned by the caller
func (h Household) CreateHouseholdHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var household models.Household
	if !decodeBody(w, r, &household) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := h.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}
	if user.HouseholdID != "" {
		config.ErrorStatus("failed to create household", http.StatusConflict, w, errAlreadyInHousehold)
		return
	}

	household.ID = primitive.NewObjectID()
	household.OwnerID = uID.Hex()
	household.Members = []string{uID.Hex()}
	household.PendingInvites = []string{}
	if household.Appliances == nil {
		household.Appliances = []string{}
	}
	household.Date = primitive.NewDateTimeFromTime(time.Now())

	if _, err := h.DB.InsertOne(ctx, household); err != nil {
		config.ErrorStatus("failed to create household", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := h.UDB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{"$set": bson.M{"householdId": household.ID.Hex()}}); err != nil {
		config.ErrorStatus("failed to set household on user", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, h.LDB, uID.Hex(), "household", "create", bson.M{"householdId": household.ID.Hex()})
	writeJSON(w, http.StatusCreated, household)
}

// HouseholdHandler returns a household to its members and invitees
func (h Household) HouseholdHandler(w http.ResponseWriter, r *http.Request) {
	hID, ok := objectIDVar(w, r, "household_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	household, err := h.DB.FindOne(ctx, bson.M{"_id": hID})
	if err != nil {
		config.ErrorStatus("failed to get household by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if !contains(household.Members, userID) && !contains(household.PendingInvites, userID) {
		config.ErrorStatus("failed to get household by ID", http.StatusForbidden, w, errForbidden)
		return
	}
	writeJSON(w, http.StatusOK, household)
}

// UpdateHouseholdHandler lets a member edit the household details
func (h Household) UpdateHouseholdHandler(w http.ResponseWriter, r *http.Request) {
	hID, ok := objectIDVar(w, r, "household_id")
	if !ok {
		return
	}

	var update models.HouseholdUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if emptyUpdate(update) {
		config.ErrorStatus("failed to update household", http.StatusBadRequest, w, errNoFields)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.member(ctx, hID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to update household", errorCode(err), w, err)
		return
	}
	if _, err := h.DB.UpdateOne(ctx, bson.M{"_id": hID}, bson.M{"$set": update}); err != nil {
		config.ErrorStatus("failed to update household", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, h.LDB, api.UserID(r), "household", "update", bson.M{"householdId": hID.Hex()})
	h.writeHousehold(ctx, w, hID)
}

// DeleteHouseholdHandler lets the owner delete the household
func (h Household) DeleteHouseholdHandler(w http.ResponseWriter, r *http.Request) {
	hID, ok := objectIDVar(w, r, "household_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	household, err := h.DB.FindOne(ctx, bson.M{"_id": hID})
	if err != nil {
		config.ErrorStatus("failed to get household by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if household.OwnerID != userID {
		config.ErrorStatus("failed to delete household", http.StatusForbidden, w, errForbidden)
		return
	}

	if _, err := h.DB.DeleteOne(ctx, bson.M{"_id": hID}); err != nil {
		config.ErrorStatus("failed to delete household", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := h.UDB.UpdateMany(ctx, bson.M{"householdId": hID.Hex()}, bson.M{"$set": bson.M{"householdId": ""}}); err != nil {
		zap.S().Errorw("failed to clear household from members", "error", err, "householdId", hID.Hex())
	}

	logActivity(ctx, h.LDB, userID, "household", "delete", bson.M{"householdId": hID.Hex()})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Household deleted"})
}

// InviteHandler invites a user to the household by e-mail and notification
func (h Household) InviteHandler(w http.ResponseWriter, r *http.Request) {
	hID, ok := objectIDVar(w, r, "household_id")
	if !ok {
		return
	}
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body models.InviteRequest
	if !decodeBody(w, r, &body) {
		return
	}
	inviteeID, err := primitive.ObjectIDFromHex(body.UserID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	household, err := h.member(ctx, hID, uID.Hex())
	if err != nil {
		config.ErrorStatus("failed to invite to household", errorCode(err), w, err)
		return
	}
	if contains(household.Members, inviteeID.Hex()) {
		config.ErrorStatus("failed to invite to household", http.StatusConflict, w, errAlreadyInHousehold)
		return
	}
	inviter, err := h.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}
	invitee, err := h.UDB.FindOne(ctx, bson.M{"_id": inviteeID})
	if err != nil {
		config.ErrorStatus("failed to get invited user", errorCode(err), w, err)
		return
	}

	token, err := SignInvite(h.Secret, hID.Hex(), inviteeID.Hex(), time.Now())
	if err != nil {
		config.ErrorStatus("failed to sign invitation", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := h.DB.UpdateOne(ctx, bson.M{"_id": hID}, bson.M{"$addToSet": bson.M{"pendingInvites": inviteeID.Hex()}}); err != nil {
		config.ErrorStatus("failed to invite to household", http.StatusInternalServerError, w, err)
		return
	}

	link := fmt.Sprintf("%s/household/invite?token=%s", strings.TrimSuffix(h.BaseURL, "/"), url.QueryEscape(token))
	text, html := templates.RenderHouseholdInvite(inviter.Name, household.Address, link)
	if h.Mailer != nil {
		if err := h.Mailer.Send(ctx, invitee.Name, invitee.Email, templates.HouseholdInviteSubject, text, html); err != nil {
			zap.S().Warnw("failed to send invitation email", "error", err, "householdId", hID.Hex(), "userId", inviteeID.Hex())
		}
	}
	if h.Notifier != nil {
		h.Notifier.Notify(inviteeID.Hex(), models.Notification{
			Type: "invite",
			Data: map[string]string{
				"householdId": hID.Hex(),
				"from":        inviter.Name,
				"token":       token,
			},
		})
	}

	logActivity(ctx, h.LDB, uID.Hex(), "household", "invite", bson.M{"householdId": hID.Hex(), "userId": inviteeID.Hex()})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invitation sent"})
}

// RespondInviteHandler accepts or declines an invitation addressed to the caller
func (h Household) RespondInviteHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body models.InviteResponse
	if !decodeBody(w, r, &body) {
		return
	}
	claims, err := ParseInvite(h.Secret, body.Token)
	if err != nil {
		config.ErrorStatus("invalid invitation token", http.StatusBadRequest, w, err)
		return
	}
	if claims.Subject != uID.Hex() {
		config.ErrorStatus("invalid invitation token", http.StatusForbidden, w, errInviteNotForYou)
		return
	}
	hID, err := primitive.ObjectIDFromHex(claims.HouseholdID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	household, err := h.DB.FindOne(ctx, bson.M{"_id": hID})
	if err != nil {
		config.ErrorStatus("failed to get household by ID", errorCode(err), w, err)
		return
	}
	if !contains(household.PendingInvites, uID.Hex()) {
		config.ErrorStatus("failed to respond to invitation", http.StatusGone, w, errInviteNotPending)
		return
	}

	update := bson.M{"$pull": bson.M{"pendingInvites": uID.Hex()}}
	kind := "decline"
	if body.Accept {
		user, err := h.UDB.FindOne(ctx, bson.M{"_id": uID})
		if err != nil {
			config.ErrorStatus("failed to get user", errorCode(err), w, err)
			return
		}
		if user.HouseholdID != "" && user.HouseholdID != hID.Hex() {
			config.ErrorStatus("failed to respond to invitation", http.StatusConflict, w, errAlreadyInHousehold)
			return
		}
		update["$addToSet"] = bson.M{"members": uID.Hex()}
		kind = "accept"
	}
	if _, err := h.DB.UpdateOne(ctx, bson.M{"_id": hID}, update); err != nil {
		config.ErrorStatus("failed to respond to invitation", http.StatusInternalServerError, w, err)
		return
	}
	if body.Accept {
		if _, err := h.UDB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{"$set": bson.M{"householdId": hID.Hex()}}); err != nil {
			config.ErrorStatus("failed to set household on user", http.StatusInternalServerError, w, err)
			return
		}
	}

	logActivity(ctx, h.LDB, uID.Hex(), "household", kind, bson.M{"householdId": hID.Hex()})
	h.writeHousehold(ctx, w, hID)
}

// RemoveMemberHandler removes a member. The owner may remove anyone but
// themselves, other members only themselves.
func (h Household) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	hID, ok := objectIDVar(w, r, "household_id")
	if !ok {
		return
	}
	mID, ok := objectIDVar(w, r, "user_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	household, err := h.DB.FindOne(ctx, bson.M{"_id": hID})
	if err != nil {
		config.ErrorStatus("failed to get household by ID", errorCode(err), w, err)
		return
	}
	userID := api.UserID(r)
	if household.OwnerID != userID && mID.Hex() != userID {
		config.ErrorStatus("failed to remove member", http.StatusForbidden, w, errForbidden)
		return
	}
	if mID.Hex() == household.OwnerID {
		config.ErrorStatus("failed to remove member", http.StatusBadRequest, w, errOwnerCannotLeave)
		return
	}
	if !contains(household.Members, mID.Hex()) {
		config.ErrorStatus("failed to remove member", http.StatusNotFound, w, databases.ErrUserNotFound)
		return
	}

	if _, err := h.DB.UpdateOne(ctx, bson.M{"_id": hID}, bson.M{"$pull": bson.M{"members": mID.Hex()}}); err != nil {
		config.ErrorStatus("failed to remove member", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := h.UDB.UpdateOne(ctx, bson.M{"_id": mID}, bson.M{"$set": bson.M{"householdId": ""}}); err != nil {
		zap.S().Errorw("failed to clear household from user", "error", err, "userId", mID.Hex())
	}

	logActivity(ctx, h.LDB, userID, "household", "removeMember", bson.M{"householdId": hID.Hex(), "userId": mID.Hex()})
	h.writeHousehold(ctx, w, hID)
}

// member returns the household when userID belongs to it
func (h Household) member(ctx context.Context, id primitive.ObjectID, userID string) (*models.Household, error) {
	household, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if !contains(household.Members, userID) {
		return nil, errForbidden
	}
	return household, nil
}

func (h Household) writeHousehold(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID) {
	household, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get household by ID", errorCode(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, household)
}
