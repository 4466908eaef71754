package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api/handlers"
	"github.com/youpower/youpower-api/api/testhelpers"
	"github.com/youpower/youpower-api/databases"
	mocksdb "github.com/youpower/youpower-api/databases/mocks"
	"github.com/youpower/youpower-api/models"
)

func TestUser_RegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		existing   int64
		insertErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "short password", body: map[string]string{"email": "a@example.com", "password": "12345"}, wantStatus: http.StatusBadRequest, wantBody: `{"response": "failed to register user, password must be at least 6 characters"}`},
		{name: "bad email", body: map[string]string{"email": "nope", "password": "123456"}, wantStatus: http.StatusBadRequest},
		{name: "bad language", body: map[string]string{"email": "a@example.com", "password": "123456", "language": "de"}, wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: map[string]string{"email": "A@Example.com", "password": "123456"}, existing: 1, wantStatus: http.StatusConflict},
		{name: "concurrent duplicate", body: map[string]string{"email": "a@example.com", "password": "123456"}, insertErr: databases.ErrEmailTaken, wantStatus: http.StatusConflict, wantBody: `{"response": "failed to register user, email already registered"}`},
		{name: "created", body: map[string]string{"email": " A@Example.com ", "password": "123456", "name": "Anna"}, wantStatus: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			udb := &mocksdb.UserDatabase{}
			udb.On("CountDocuments", mock.Anything, bson.M{"email": "a@example.com"}).Return(tt.existing, nil)
			udb.On("InsertOne", mock.Anything, mock.MatchedBy(func(u models.User) bool {
				return u.Email == "a@example.com" && u.Language == "en" &&
					bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")) == nil
			})).Return(&mocksdb.InsertOneResultHelper{}, tt.insertErr)

			u := handlers.User{DB: udb, LDB: silentLogs()}
			req := testhelpers.NewRequest("POST", "/api/v1/user/register", tt.body, nil, "")
			rr := httptest.NewRecorder()
			http.HandlerFunc(u.RegisterHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				udb.AssertExpectations(t)
				assert.NotContains(t, rr.Body.String(), "password")
				assert.Contains(t, rr.Body.String(), `"name":"Anna"`)
			}
		})
	}
}

func TestUser_UserByIDHandlerPublicFields(t *testing.T) {
	uID := primitive.NewObjectID()
	udb := &mocksdb.UserDatabase{}
	udb.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{ID: uID, Name: "Bo", Email: "bo@example.com", Password: "hash"}, nil)

	u := handlers.User{DB: udb}
	req := testhelpers.NewRequest("GET", "/", nil, map[string]string{"user_id": uID.Hex()}, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Bo"`)
	assert.NotContains(t, rr.Body.String(), "bo@example.com")
}

func TestUser_UpdateProfileHandlerBadLanguage(t *testing.T) {
	u := handlers.User{DB: &mocksdb.UserDatabase{}}
	req := testhelpers.NewRequest("PUT", "/", map[string]string{"language": "fr"}, nil, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUser_SearchUsersHandler(t *testing.T) {
	udb := &mocksdb.UserDatabase{}
	udb.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.User{{Name: "Anna", Email: "anna@example.com"}}, nil)

	u := handlers.User{DB: udb}
	req := testhelpers.NewRequest("GET", "/api/v1/user/search?q=ann", nil, nil, primitive.NewObjectID().Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SearchUsersHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.PublicUser
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.NotContains(t, rr.Body.String(), "anna@example.com")
}

func TestUser_SetActionStateHandler(t *testing.T) {
	aID := primitive.NewObjectID()
	caller := primitive.NewObjectID()
	future := primitive.NewDateTimeFromTime(time.Now().Add(48 * time.Hour))
	past := primitive.NewDateTimeFromTime(time.Now().Add(-time.Hour))

	tests := []struct {
		name        string
		body        interface{}
		actionErr   error
		wantStatus  int
		achievement string
		wantValue   int
		bucket      models.UserActions
	}{
		{name: "unknown state", body: map[string]string{"state": "someday"}, wantStatus: http.StatusBadRequest},
		{name: "pending without date", body: map[string]string{"state": "pending"}, wantStatus: http.StatusBadRequest},
		{name: "pending in the past", body: models.ActionStateRequest{State: "pending", PostponedDate: &past}, wantStatus: http.StatusBadRequest},
		{name: "unknown action", body: map[string]string{"state": "done"}, actionErr: databases.ErrActionNotFound, wantStatus: http.StatusNotFound},
		{name: "pending in the future", body: models.ActionStateRequest{State: "pending", PostponedDate: &future}, wantStatus: http.StatusOK},
		{
			name:        "done raises actionsDone",
			body:        map[string]string{"state": "done"},
			wantStatus:  http.StatusOK,
			achievement: models.AchievementActionsDone,
			wantValue:   2,
			bucket:      models.UserActions{Done: []models.UserAction{{ID: primitive.NewObjectID()}, {ID: aID}}},
		},
		{
			name:        "inProgress raises actionsInProgress",
			body:        map[string]string{"state": "inProgress"},
			wantStatus:  http.StatusOK,
			achievement: models.AchievementActionsInProgress,
			wantValue:   1,
			bucket:      models.UserActions{InProgress: []models.UserAction{{ID: aID}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adb := &mocksdb.ActionDatabase{}
			if tt.actionErr != nil {
				adb.On("FindOne", mock.Anything, mock.Anything).Return(nil, tt.actionErr)
			} else {
				adb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Action{ID: aID, Name: "Cold wash"}, nil)
			}
			udb := &mocksdb.UserDatabase{}
			udb.On("SetActionState", mock.Anything, caller, mock.Anything, mock.MatchedBy(func(ua models.UserAction) bool {
				return ua.ID == aID && ua.Name == "Cold wash"
			})).Return(nil)
			udb.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{ID: caller, Actions: tt.bucket, Achievements: map[string]int{}}, nil)
			if tt.achievement != "" {
				udb.On("RaiseAchievement", mock.Anything, caller, tt.achievement, tt.wantValue).Return(nil)
			}

			u := handlers.User{DB: udb, ADB: adb, LDB: silentLogs(), Achievements: achievements.Updater{DB: udb}}
			req := testhelpers.NewRequest("PUT", "/", tt.body, map[string]string{"action_id": aID.Hex()}, caller.Hex())
			rr := httptest.NewRecorder()
			http.HandlerFunc(u.SetActionStateHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				udb.AssertCalled(t, "SetActionState", mock.Anything, caller, mock.Anything, mock.Anything)
			} else {
				udb.AssertNotCalled(t, "SetActionState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			if tt.achievement != "" {
				udb.AssertExpectations(t)
			} else {
				udb.AssertNotCalled(t, "RaiseAchievement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUser_AchievementsHandler(t *testing.T) {
	caller := primitive.NewObjectID()
	udb := &mocksdb.UserDatabase{}
	udb.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{ID: caller}, nil)

	u := handlers.User{DB: udb}
	req := testhelpers.NewRequest("GET", "/", nil, nil, caller.Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AchievementsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "{}", rr.Body.String())
}

func TestUser_ProfileHandlerUnauthenticated(t *testing.T) {
	u := handlers.User{DB: &mocksdb.UserDatabase{}}
	req := testhelpers.NewRequest("GET", "/", nil, nil, "")
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.ProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
