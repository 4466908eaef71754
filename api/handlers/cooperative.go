package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

// Cooperative exported for testing purposes
type Cooperative struct {
	DB  databases.CooperativeDatabase
	LDB databases.LogDatabase
}

// CreateCooperativeHandler creates a cooperative with the caller as its first editor
func (c Cooperative) CreateCooperativeHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var coop models.Cooperative
	if !decodeBody(w, r, &coop) {
		return
	}
	coop.Name = strings.TrimSpace(coop.Name)
	if coop.Name == "" {
		config.ErrorStatus("failed to create cooperative", http.StatusBadRequest, w, errNameRequired)
		return
	}

	coop.ID = primitive.NewObjectID()
	coop.Editors = []string{uID.Hex()}
	coop.Actions = []models.CooperativeAction{}
	if coop.Meters == nil {
		coop.Meters = []models.Meter{}
	}
	coop.Date = primitive.NewDateTimeFromTime(time.Now())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.DB.InsertOne(ctx, coop); err != nil {
		config.ErrorStatus("failed to create cooperative", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, uID.Hex(), "cooperative", "create", bson.M{"cooperativeId": coop.ID.Hex()})
	writeJSON(w, http.StatusCreated, coop)
}

// CooperativesHandler returns a page of cooperatives sorted by name
func (c Cooperative) CooperativesHandler(w http.ResponseWriter, r *http.Request) {
	limit, skip, ok := getPaging(w, r, defaultPageLimit)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.M{"name": 1})

	dbResp, err := c.DB.Find(ctx, bson.D{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get cooperatives", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Cooperative{}
	}
	writeJSON(w, http.StatusOK, dbResp)
}

// CooperativeHandler returns a cooperative by ID
func (c Cooperative) CooperativeHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "cooperative_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	c.writeCooperative(ctx, w, cID, http.StatusOK)
}

// UpdateCooperativeHandler lets an editor change the building details
func (c Cooperative) UpdateCooperativeHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "cooperative_id")
	if !ok {
		return
	}

	var update models.CooperativeUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if emptyUpdate(update) {
		config.ErrorStatus("failed to update cooperative", http.StatusBadRequest, w, errNoFields)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.editor(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to update cooperative", errorCode(err), w, err)
		return
	}
	if _, err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": update}); err != nil {
		config.ErrorStatus("failed to update cooperative", http.StatusInternalServerError, w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "cooperative", "update", bson.M{"cooperativeId": cID.Hex()})
	c.writeCooperative(ctx, w, cID, http.StatusOK)
}

// AddActionHandler records an energy action the cooperative has undertaken
func (c Cooperative) AddActionHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "cooperative_id")
	if !ok {
		return
	}

	var action models.CooperativeAction
	if !decodeBody(w, r, &action) {
		return
	}
	action.Name = strings.TrimSpace(action.Name)
	if action.Name == "" {
		config.ErrorStatus("failed to add cooperative action", http.StatusBadRequest, w, errNameRequired)
		return
	}
	action.ID = primitive.NewObjectID()
	if action.Date == 0 {
		action.Date = primitive.NewDateTimeFromTime(time.Now())
	}
	if action.Types == nil {
		action.Types = []string{}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.editor(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to add cooperative action", errorCode(err), w, err)
		return
	}
	if err := c.DB.AddAction(ctx, cID, action); err != nil {
		config.ErrorStatus("failed to add cooperative action", errorCode(err), w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "cooperative", "addAction", bson.M{"cooperativeId": cID.Hex(), "actionId": action.ID.Hex()})
	c.writeCooperative(ctx, w, cID, http.StatusCreated)
}

// UpdateActionHandler changes the fields sent for an embedded cooperative action
func (c Cooperative) UpdateActionHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "cooperative_id")
	if !ok {
		return
	}
	subID, ok := objectIDVar(w, r, "sub_id")
	if !ok {
		return
	}

	var update models.CooperativeActionUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			config.ErrorStatus("failed to update cooperative action", http.StatusBadRequest, w, errNameRequired)
			return
		}
		update.Name = &name
	}
	if emptyUpdate(update) {
		config.ErrorStatus("failed to update cooperative action", http.StatusBadRequest, w, errNoFields)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.editor(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to update cooperative action", errorCode(err), w, err)
		return
	}
	if err := c.DB.UpdateAction(ctx, cID, subID, update); err != nil {
		config.ErrorStatus("failed to update cooperative action", errorCode(err), w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "cooperative", "updateAction", bson.M{"cooperativeId": cID.Hex(), "actionId": subID.Hex()})
	c.writeCooperative(ctx, w, cID, http.StatusOK)
}

// DeleteActionHandler removes an embedded cooperative action
func (c Cooperative) DeleteActionHandler(w http.ResponseWriter, r *http.Request) {
	cID, ok := objectIDVar(w, r, "cooperative_id")
	if !ok {
		return
	}
	subID, ok := objectIDVar(w, r, "sub_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.editor(ctx, cID, api.UserID(r)); err != nil {
		config.ErrorStatus("failed to delete cooperative action", errorCode(err), w, err)
		return
	}
	if err := c.DB.DeleteAction(ctx, cID, subID); err != nil {
		config.ErrorStatus("failed to delete cooperative action", errorCode(err), w, err)
		return
	}

	logActivity(ctx, c.LDB, api.UserID(r), "cooperative", "deleteAction", bson.M{"cooperativeId": cID.Hex(), "actionId": subID.Hex()})
	c.writeCooperative(ctx, w, cID, http.StatusOK)
}

// editor returns errForbidden unless userID edits the cooperative
func (c Cooperative) editor(ctx context.Context, id primitive.ObjectID, userID string) error {
	coop, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !contains(coop.Editors, userID) {
		return errForbidden
	}
	return nil
}

func (c Cooperative) writeCooperative(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, status int) {
	coop, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get cooperative by ID", errorCode(err), w, err)
		return
	}
	writeJSON(w, status, coop)
}
