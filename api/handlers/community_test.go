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

func TestCommunity_CreateCommunityHandler(t *testing.T) {
	caller := primitive.NewObjectID()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("InsertOne", mock.Anything, mock.MatchedBy(func(c models.Community) bool {
		return c.Name == "Green street" && c.OwnerID == caller.Hex() && len(c.Members) == 1 && c.Members[0] == caller.Hex()
	})).Return(&mocksdb.InsertOneResultHelper{}, nil)
	udb := &mocksdb.UserDatabase{}
	udb.On("UpdateOne", mock.Anything, bson.M{"_id": caller}, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	c := handlers.Community{DB: cdb, UDB: udb, LDB: silentLogs()}
	req := testhelpers.NewRequest("POST", "/api/v1/community", map[string]interface{}{"name": "Green street", "private": true}, nil, caller.Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCommunityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got models.CommunityResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Private)
	assert.Equal(t, caller.Hex(), got.OwnerID)
	cdb.AssertExpectations(t)
	udb.AssertExpectations(t)
}

func TestCommunity_CommunityHandlerPrivate(t *testing.T) {
	cID := primitive.NewObjectID()
	member := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		caller     string
		wantStatus int
	}{
		{name: "outsider", caller: primitive.NewObjectID().Hex(), wantStatus: http.StatusForbidden},
		{name: "member", caller: member, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cdb := &mocksdb.CommunityDatabase{}
			cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{
				ID:      cID,
				Private: true,
				Members: []string{member},
				Ratings: map[string]int{member: 1},
			}, nil)

			c := handlers.Community{DB: cdb}
			req := testhelpers.NewRequest("GET", "/", nil, map[string]string{"community_id": cID.Hex()}, tt.caller)
			rr := httptest.NewRecorder()
			http.HandlerFunc(c.CommunityHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCommunity_CommunityHandlerNotFound(t *testing.T) {
	cID := primitive.NewObjectID()

	db := &mocksdb.DatabaseHelper{}
	conn := &mocksdb.CollectionHelper{}
	sr := &mocksdb.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)
	db.On("Collection", "communities").Return(conn)

	c := handlers.Community{DB: databases.NewCommunityDatabase(db)}
	req := testhelpers.NewRequest("GET", "/", nil, map[string]string{"community_id": cID.Hex()}, "")
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CommunityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"response": "failed to get community by ID, Community not found"}`, rr.Body.String())
}

func TestCommunity_DeleteCommunityHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	owner := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, OwnerID: owner}, nil)
	cdb.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)
	ccdb := &mocksdb.CommentDatabase{}
	ccdb.On("DeleteMany", mock.Anything, bson.M{"parentId": cID.Hex()}).Return(int64(2), nil)
	udb := &mocksdb.UserDatabase{}
	udb.On("UpdateMany", mock.Anything, bson.M{"communities": cID.Hex()}, mock.Anything).Return(&mongo.UpdateResult{}, nil)

	c := handlers.Community{DB: cdb, CDB: ccdb, UDB: udb, LDB: silentLogs()}

	req := testhelpers.NewRequest("DELETE", "/", nil, map[string]string{"community_id": cID.Hex()}, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.DeleteCommunityHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = testhelpers.NewRequest("DELETE", "/", nil, map[string]string{"community_id": cID.Hex()}, owner)
	rr = httptest.NewRecorder()
	http.HandlerFunc(c.DeleteCommunityHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	ccdb.AssertExpectations(t)
	udb.AssertExpectations(t)
}

func TestCommunity_AddMemberHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	owner := primitive.NewObjectID().Hex()
	newMember := primitive.NewObjectID()

	tests := []struct {
		name       string
		caller     string
		private    bool
		wantStatus int
	}{
		{name: "stranger adding someone else", caller: primitive.NewObjectID().Hex(), wantStatus: http.StatusForbidden},
		{name: "owner adds", caller: owner, wantStatus: http.StatusOK},
		{name: "user joins", caller: newMember.Hex(), wantStatus: http.StatusOK},
		{name: "stranger self-joins private", caller: newMember.Hex(), private: true, wantStatus: http.StatusForbidden},
		{name: "owner adds to private", caller: owner, private: true, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cdb := &mocksdb.CommunityDatabase{}
			cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, OwnerID: owner, Private: tt.private, Members: []string{owner}}, nil)
			cdb.On("UpdateOne", mock.Anything, bson.M{"_id": cID}, bson.M{"$addToSet": bson.M{"members": newMember.Hex()}}).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
			udb := &mocksdb.UserDatabase{}
			udb.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{ID: newMember}, nil)
			udb.On("UpdateOne", mock.Anything, bson.M{"_id": newMember}, bson.M{"$addToSet": bson.M{"communities": cID.Hex()}}).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

			c := handlers.Community{DB: cdb, UDB: udb, LDB: silentLogs()}
			req := testhelpers.NewRequest("PUT", "/", nil, map[string]string{"community_id": cID.Hex(), "user_id": newMember.Hex()}, tt.caller)
			rr := httptest.NewRecorder()
			http.HandlerFunc(c.AddMemberHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				cdb.AssertExpectations(t)
				udb.AssertExpectations(t)
			} else {
				cdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCommunity_RateCommunityHandlerPrivateOutsider(t *testing.T) {
	cID := primitive.NewObjectID()
	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, Private: true, Members: []string{"member"}}, nil)

	c := handlers.Community{DB: cdb, LDB: silentLogs()}
	req := testhelpers.NewRequest("PUT", "/", map[string]int{"rating": 1}, map[string]string{"community_id": cID.Hex()}, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.RateCommunityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	cdb.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommunity_RemoveMemberHandlerOwner(t *testing.T) {
	cID := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, OwnerID: owner.Hex(), Members: []string{owner.Hex()}}, nil)

	c := handlers.Community{DB: cdb, UDB: &mocksdb.UserDatabase{}}
	req := testhelpers.NewRequest("DELETE", "/", nil, map[string]string{"community_id": cID.Hex(), "user_id": owner.Hex()}, owner.Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.RemoveMemberHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	cdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommunity_AddActionHandlerUnknownAction(t *testing.T) {
	cID := primitive.NewObjectID()
	aID := primitive.NewObjectID()
	member := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, Members: []string{member}}, nil)
	adb := &mocksdb.ActionDatabase{}
	adb.On("FindOne", mock.Anything, mock.Anything).Return(nil, databases.ErrActionNotFound)

	c := handlers.Community{DB: cdb, ADB: adb}
	req := testhelpers.NewRequest("PUT", "/", nil, map[string]string{"community_id": cID.Hex(), "action_id": aID.Hex()}, member)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.AddActionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"response": "failed to get action by ID, Action not found"}`, rr.Body.String())
}

func TestCommunity_CreateChallengeHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	aID := primitive.NewObjectID()
	member := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, Members: []string{member}}, nil)
	cdb.On("UpdateOne", mock.Anything, bson.M{"_id": cID}, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	adb := &mocksdb.ActionDatabase{}
	adb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Action{ID: aID, Name: "Cold wash"}, nil)

	c := handlers.Community{DB: cdb, ADB: adb, LDB: silentLogs()}
	req := testhelpers.NewRequest("POST", "/", map[string]string{"actionId": aID.Hex()}, map[string]string{"community_id": cID.Hex()}, member)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateChallengeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got models.Challenge
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Cold wash", got.Name)
	assert.Equal(t, aID.Hex(), got.ActionID)
	cdb.AssertExpectations(t)
}

func TestCommunity_RateCommunityHandler(t *testing.T) {
	cID := primitive.NewObjectID()
	caller := primitive.NewObjectID().Hex()

	cdb := &mocksdb.CommunityDatabase{}
	cdb.On("Rate", mock.Anything, cID, caller, 1).Return(nil)
	cdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Community{ID: cID, Ratings: map[string]int{caller: 1, "x": 1}}, nil)

	c := handlers.Community{DB: cdb, LDB: silentLogs()}
	req := testhelpers.NewRequest("PUT", "/", map[string]int{"rating": 1}, map[string]string{"community_id": cID.Hex()}, caller)
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.RateCommunityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.CommunityResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, got.NumLikes)
	assert.Equal(t, 1, got.UserRating)
}
