package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/youpower/youpower-api/achievements"
	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

const minPasswordLength = 6

var (
	errInvalidEmail     = errors.New("a valid email is required")
	errShortPassword    = errors.New("password must be at least 6 characters")
	errBadLanguage      = errors.New("language must be one of en, it, se")
	errPostponeRequired = errors.New("pending actions need a future postponedDate")
)

var languages = map[string]bool{"en": true, "it": true, "se": true}

// User exported for testing purposes
type User struct {
	DB           databases.UserDatabase
	ADB          databases.ActionDatabase
	LDB          databases.LogDatabase
	Achievements achievements.Updater
}

// RegisterHandler creates an account
func (u User) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Language == "" {
		req.Language = "en"
	}
	switch {
	case !strings.Contains(req.Email, "@"):
		config.ErrorStatus("failed to register user", http.StatusBadRequest, w, errInvalidEmail)
		return
	case len(req.Password) < minPasswordLength:
		config.ErrorStatus("failed to register user", http.StatusBadRequest, w, errShortPassword)
		return
	case !languages[req.Language]:
		config.ErrorStatus("failed to register user", http.StatusBadRequest, w, errBadLanguage)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	count, err := u.DB.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		config.ErrorStatus("failed to register user", http.StatusInternalServerError, w, err)
		return
	}
	if count > 0 {
		config.ErrorStatus("failed to register user", http.StatusConflict, w, databases.ErrEmailTaken)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.Split(req.Email, "@")[0]
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    req.Email,
		Password: string(hash),
		Name:     name,
		Language: req.Language,
		Actions: models.UserActions{
			Pending:    []models.UserAction{},
			InProgress: []models.UserAction{},
			Done:       []models.UserAction{},
			Declined:   []models.UserAction{},
			NA:         []models.UserAction{},
		},
		Communities:  []string{},
		Achievements: map[string]int{},
		Date:         primitive.NewDateTimeFromTime(time.Now()),
	}
	if _, err := u.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to register user", errorCode(err), w, err)
		return
	}

	logActivity(ctx, u.LDB, user.ID.Hex(), "user", "register", nil)
	writeJSON(w, http.StatusCreated, user)
}

// ProfileHandler returns the caller's own user document
func (u User) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler changes the caller's name, language or profile
func (u User) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if update.Language != nil && !languages[*update.Language] {
		config.ErrorStatus("failed to update profile", http.StatusBadRequest, w, errBadLanguage)
		return
	}
	if emptyUpdate(update) {
		config.ErrorStatus("failed to update profile", http.StatusBadRequest, w, errNoFields)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := u.DB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{"$set": update}); err != nil {
		config.ErrorStatus("failed to update profile", http.StatusInternalServerError, w, err)
		return
	}
	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}

	logActivity(ctx, u.LDB, uID.Hex(), "user", "updateProfile", nil)
	writeJSON(w, http.StatusOK, user)
}

// SearchUsersHandler matches users by name or email
func (u User) SearchUsersHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusOK, []models.PublicUser{})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"name": nameRegex(q)},
		{"email": nameRegex(q)},
	}}
	dbResp, err := u.DB.Find(ctx, filter, options.Find().SetLimit(maxSearchResults))
	if err != nil {
		config.ErrorStatus("failed to search users", http.StatusInternalServerError, w, err)
		return
	}

	resp := make([]models.PublicUser, 0, len(dbResp))
	for _, user := range dbResp {
		resp = append(resp, user.Public())
	}
	writeJSON(w, http.StatusOK, resp)
}

// UserByIDHandler returns another user's public profile
func (u User) UserByIDHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := objectIDVar(w, r, "user_id")
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", errorCode(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// UserActionsHandler returns the caller's action buckets
func (u User) UserActionsHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Actions)
}

// AchievementsHandler returns the caller's achievement counters
func (u User) AchievementsHandler(w http.ResponseWriter, r *http.Request) {
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}
	if user.Achievements == nil {
		user.Achievements = map[string]int{}
	}
	writeJSON(w, http.StatusOK, user.Achievements)
}

// SetActionStateHandler moves an action into one of the caller's buckets
func (u User) SetActionStateHandler(w http.ResponseWriter, r *http.Request) {
	aID, ok := objectIDVar(w, r, "action_id")
	if !ok {
		return
	}
	uID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.ActionStateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !models.ValidState(req.State) {
		config.ErrorStatus("failed to set action state", http.StatusBadRequest, w, databases.ErrInvalidState)
		return
	}

	now := time.Now()
	dt := primitive.NewDateTimeFromTime(now)
	if req.State == models.StatePending && (req.PostponedDate == nil || !req.PostponedDate.Time().After(now)) {
		config.ErrorStatus("failed to set action state", http.StatusBadRequest, w, errPostponeRequired)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	action, err := u.ADB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get action by ID", errorCode(err), w, err)
		return
	}

	entry := models.UserAction{ID: aID, Name: action.Name, Date: dt}
	switch req.State {
	case models.StateInProgress:
		entry.StartedDate = &dt
	case models.StateDone:
		entry.DoneDate = &dt
	case models.StatePending:
		entry.PostponedDate = req.PostponedDate
	}

	if err := u.DB.SetActionState(ctx, uID, req.State, entry); err != nil {
		config.ErrorStatus("failed to set action state", errorCode(err), w, err)
		return
	}

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user", errorCode(err), w, err)
		return
	}

	var name string
	switch req.State {
	case models.StateDone:
		name = models.AchievementActionsDone
	case models.StateInProgress:
		name = models.AchievementActionsInProgress
	}
	if name != "" {
		size := len(user.Actions.Bucket(req.State))
		if _, _, err := u.Achievements.Update(ctx, uID, name, achievements.Set(size)); err != nil {
			zap.S().Errorw("failed to update achievement", "error", err, "name", name)
		}
	}

	logActivity(ctx, u.LDB, uID.Hex(), "action", req.State, bson.M{"actionId": aID.Hex()})
	writeJSON(w, http.StatusOK, user.Actions)
}
