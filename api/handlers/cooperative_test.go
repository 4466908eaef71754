package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/youpower/youpower-api/api/handlers"
	"github.com/youpower/youpower-api/api/testhelpers"
	"github.com/youpower/youpower-api/databases"
	mocksdb "github.com/youpower/youpower-api/databases/mocks"
	"github.com/youpower/youpower-api/models"
)

func TestCooperative_CreateCooperativeHandler(t *testing.T) {
	caller := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CooperativeDatabase{}
	cdb.On("InsertOne", mock.Anything, mock.MatchedBy(func(c models.Cooperative) bool {
		return c.Name == "BRF Solen" && len(c.Editors) == 1 && c.Editors[0] == caller && len(c.Meters) == 1
	})).Return(&mocksdb.InsertOneResultHelper{}, nil)

	c := handlers.Cooperative{DB: cdb, LDB: silentLogs()}
	body := map[string]interface{}{
		"name":   "BRF Solen",
		"meters": []map[string]interface{}{{"mType": "heating", "meterId": "m-1", "useInCalc": true}},
	}
	req := testhelpers.NewRequest("POST", "/api/v1/cooperative", body, nil, caller)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCooperativeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	cdb.AssertExpectations(t)
}

func TestCooperative_UpdateCooperativeHandlerNotEditor(t *testing.T) {
	cID := primitive.NewObjectID()
	cdb := &mocksdb.CooperativeDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Cooperative{ID: cID, Editors: []string{"someone"}}, nil)

	c := handlers.Cooperative{DB: cdb}
	req := testhelpers.NewRequest("PUT", "/", map[string]int{"area": 1200}, map[string]string{"cooperative_id": cID.Hex()}, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.UpdateCooperativeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	cdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCooperative_AddActionHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	editor := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CooperativeDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Cooperative{ID: cID, Editors: []string{editor}}, nil)
	cdb.On("AddAction", mock.Anything, cID, mock.MatchedBy(func(a models.CooperativeAction) bool {
		return a.Name == "New windows" && a.Cost == 50000 && !a.ID.IsZero()
	})).Return(nil)

	c := handlers.Cooperative{DB: cdb, LDB: silentLogs()}
	req := testhelpers.NewRequest("POST", "/", map[string]interface{}{"name": "New windows", "cost": 50000, "types": []string{"windows"}}, map[string]string{"cooperative_id": cID.Hex()}, editor)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.AddActionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	cdb.AssertExpectations(t)
}

func TestCooperative_UpdateActionHandlerUnknownSubID(t *testing.T) {
	cID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	editor := primitive.NewObjectID().Hex()

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	sr := &mocksdb.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Cooperative)
		(*arg).ID = cID
		(*arg).Editors = []string{editor}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 0}, nil)
	db.On("Collection", "cooperatives").Return(conn)

	c := handlers.Cooperative{DB: databases.NewCooperativeDatabase(db)}
	req := testhelpers.NewRequest("PUT", "/", map[string]string{"name": "Heat pump"}, map[string]string{"cooperative_id": cID.Hex(), "sub_id": subID.Hex()}, editor)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.UpdateActionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"response": "failed to update cooperative action, Sub-document not found"}`, rr.Body.String())
}

func TestCooperative_UpdateActionHandlerPartial(t *testing.T) {
	cID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	editor := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantSet    bson.M
	}{
		{name: "cost only", body: map[string]int{"cost": 500}, wantStatus: http.StatusOK, wantSet: bson.M{"actions.$.cost": 500}},
		{name: "name and types", body: map[string]interface{}{"name": " Heat pump ", "types": []string{"heating"}}, wantStatus: http.StatusOK, wantSet: bson.M{"actions.$.name": "Heat pump", "actions.$.types": []string{"heating"}}},
		{name: "blank name", body: map[string]string{"name": " "}, wantStatus: http.StatusBadRequest},
		{name: "no fields", body: map[string]string{}, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &mocksdb.DatabaseHelper{}
			conn := &mocksdb.CollectionHelper{}
			sr := &mocksdb.SingleResultHelper{}
			sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
				arg := args.Get(0).(**models.Cooperative)
				(*arg).ID = cID
				(*arg).Editors = []string{editor}
			})
			conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)
			conn.On("UpdateOne", mock.Anything, bson.M{"_id": cID, "actions._id": subID}, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
			db.On("Collection", "cooperatives").Return(conn)

			c := handlers.Cooperative{DB: databases.NewCooperativeDatabase(db), LDB: silentLogs()}
			req := testhelpers.NewRequest("PUT", "/", tt.body, map[string]string{"cooperative_id": cID.Hex(), "sub_id": subID.Hex()}, editor)
			rr := httptest.NewRecorder()
			http.HandlerFunc(c.UpdateActionHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantSet == nil {
				conn.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			var update bson.M
			for _, call := range conn.Calls {
				if call.Method == "UpdateOne" {
					update = call.Arguments.Get(2).(bson.M)
				}
			}
			assert.Equal(t, bson.M{"$set": tt.wantSet}, update)
		})
	}
}

func TestCooperative_DeleteActionHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	editor := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CooperativeDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Cooperative{ID: cID, Editors: []string{editor}, Actions: []models.CooperativeAction{}}, nil)
	cdb.On("DeleteAction", mock.Anything, cID, subID).Return(nil)

	c := handlers.Cooperative{DB: cdb, LDB: silentLogs()}
	req := testhelpers.NewRequest("DELETE", "/", nil, map[string]string{"cooperative_id": cID.Hex(), "sub_id": subID.Hex()}, editor)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.DeleteActionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Cooperative
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, cID, got.ID)
	cdb.AssertExpectations(t)
}
