package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/api"
	"github.com/youpower/youpower-api/config"
	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	maxSearchResults = 10
)

var (
	errForbidden    = errors.New("forbidden")
	errNameRequired = errors.New("name is required")
	errNoFields     = errors.New("no fields to update")
	errPageRange    = errors.New("page out of range")
)

// getPage returns the zero based page query parameter
func getPage(r *http.Request) int {
	page := 0
	if r.URL.Query().Get("page") == "" {
		return page
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		return 0
	}
	if page < 0 {
		zap.S().Warnf(fmt.Sprintf("cannot process page number less than 0. Got: %v", page))
		return 0
	}
	return page
}

// getPaging reads ?limit and ?page. limit falls back to def and is capped at
// maxPageLimit. A page whose offset overflows is answered with a 400.
func getPaging(w http.ResponseWriter, r *http.Request, def int64) (limit, skip int64, ok bool) {
	limit = getLimit(r, def)
	page := int64(getPage(r))
	if page > math.MaxInt64/limit {
		config.ErrorStatus("failed to read paging", http.StatusBadRequest, w, errPageRange)
		return 0, 0, false
	}
	return limit, page * limit, true
}

// getLimit reads ?limit, falling back to def for a missing or zero value
func getLimit(r *http.Request, def int64) int64 {
	limit := getInt64(r, "limit", def)
	if limit == 0 {
		limit = def
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit
}

// getInt64 reads a non-negative integer query parameter, falling back to def
func getInt64(r *http.Request, key string, def int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		zap.S().Warnf("%s not valid, using default of %v", key, def)
		return def
	}
	return v
}

// objectIDVar parses the mux route variable key as an ObjectID, writing a 400
// when it is malformed
func objectIDVar(w http.ResponseWriter, r *http.Request, key string) (primitive.ObjectID, bool) {
	raw := mux.Vars(r)[key]
	zap.S().Debugf("%s: %v", key, raw)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// callerID returns the authenticated user's id
func callerID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(api.UserID(r))
	if err != nil {
		config.ErrorStatus("failed to get user from context", http.StatusUnauthorized, w, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// errorCode maps domain and driver errors onto an HTTP status
func errorCode(err error) int {
	switch {
	case errors.Is(err, databases.ErrInvalidRating),
		errors.Is(err, databases.ErrInvalidState),
		errors.Is(err, models.ErrScoreOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, databases.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, databases.ErrActionNotFound),
		errors.Is(err, databases.ErrCommentNotFound),
		errors.Is(err, databases.ErrCommunityNotFound),
		errors.Is(err, databases.ErrCooperativeNotFound),
		errors.Is(err, databases.ErrSubDocumentNotFound),
		errors.Is(err, databases.ErrHouseholdNotFound),
		errors.Is(err, databases.ErrUserNotFound),
		errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeJSON marshals v and writes it with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// decodeBody decodes the JSON request body into v, writing a 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return false
	}
	return true
}

// nameRegex builds a case-insensitive substring match on q
func nameRegex(q string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
}

// emptyUpdate reports whether the update document marshals to no fields
func emptyUpdate(update interface{}) bool {
	raw, err := bson.Marshal(update)
	return err != nil || len(bson.Raw(raw)) <= 5
}

// contains reports whether ids holds id
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// logActivity records a user action in the logs collection. Failures are
// logged and never fail the request.
func logActivity(ctx context.Context, db databases.LogDatabase, userID, category, kind string, data interface{}) {
	if db == nil {
		return
	}
	err := db.InsertOne(ctx, models.ActivityLog{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		Category: category,
		Type:     kind,
		Data:     data,
		Date:     primitive.NewDateTimeFromTime(time.Now()),
	})
	if err != nil {
		zap.S().Warnw("failed to write activity log", "error", err, "userId", userID, "category", category, "type", kind)
	}
}
