package achievements

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/youpower/youpower-api/databases/mocks"
	"github.com/youpower/youpower-api/models"
)

type recordingNotifier struct {
	sent []models.Notification
	to   []string
}

func (r *recordingNotifier) Notify(userID string, n models.Notification) {
	r.to = append(r.to, userID)
	r.sent = append(r.sent, n)
}

func TestUpdateRaisesCounter(t *testing.T) {
	userID := primitive.NewObjectID()
	db := mocks.NewUserDatabase(t)
	notifier := &recordingNotifier{}

	db.On("FindOne", context.Background(), bson.M{"_id": userID}).
		Return(&models.User{ID: userID, Achievements: map[string]int{models.AchievementActionsDone: 2}}, nil)
	db.On("RaiseAchievement", context.Background(), userID, models.AchievementActionsDone, 3).Return(nil)

	u := Updater{DB: db, Notifier: notifier}
	v, grew, err := u.Update(context.Background(), userID, models.AchievementActionsDone, Increment())

	assert.NoError(t, err)
	assert.True(t, grew)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{userID.Hex()}, notifier.to)
	assert.Equal(t, "achievement", notifier.sent[0].Type)
	assert.Equal(t, Progress{Name: models.AchievementActionsDone, Value: 3}, notifier.sent[0].Data)
}

func TestUpdateNeverLowersCounter(t *testing.T) {
	userID := primitive.NewObjectID()
	db := mocks.NewUserDatabase(t)
	notifier := &recordingNotifier{}

	db.On("FindOne", context.Background(), bson.M{"_id": userID}).
		Return(&models.User{ID: userID, Achievements: map[string]int{models.AchievementActionsDone: 5}}, nil)

	u := Updater{DB: db, Notifier: notifier}
	v, grew, err := u.Update(context.Background(), userID, models.AchievementActionsDone, Set(1))

	assert.NoError(t, err)
	assert.False(t, grew)
	assert.Equal(t, 5, v)
	assert.Empty(t, notifier.sent)
	db.AssertNotCalled(t, "RaiseAchievement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateMissingCounterStartsAtZero(t *testing.T) {
	userID := primitive.NewObjectID()
	db := mocks.NewUserDatabase(t)

	db.On("FindOne", context.Background(), bson.M{"_id": userID}).Return(&models.User{ID: userID}, nil)
	db.On("RaiseAchievement", context.Background(), userID, models.AchievementCommentsPosted, 1).Return(nil)

	u := Updater{DB: db}
	v, grew, err := u.Update(context.Background(), userID, models.AchievementCommentsPosted, Increment())

	assert.NoError(t, err)
	assert.True(t, grew)
	assert.Equal(t, 1, v)
}

func TestUpdateUserLookupFails(t *testing.T) {
	userID := primitive.NewObjectID()
	db := mocks.NewUserDatabase(t)

	db.On("FindOne", context.Background(), bson.M{"_id": userID}).Return(nil, errors.New("mocked-error"))

	_, grew, err := Updater{DB: db}.Update(context.Background(), userID, models.AchievementActionsRated, Increment())

	assert.EqualError(t, err, "mocked-error")
	assert.False(t, grew)
}

func TestUpdateRaiseFails(t *testing.T) {
	userID := primitive.NewObjectID()
	db := mocks.NewUserDatabase(t)
	notifier := &recordingNotifier{}

	db.On("FindOne", context.Background(), bson.M{"_id": userID}).Return(&models.User{ID: userID}, nil)
	db.On("RaiseAchievement", context.Background(), userID, models.AchievementActionsRated, 1).Return(errors.New("mocked-error"))

	_, grew, err := Updater{DB: db, Notifier: notifier}.Update(context.Background(), userID, models.AchievementActionsRated, Increment())

	assert.EqualError(t, err, "mocked-error")
	assert.False(t, grew)
	assert.Empty(t, notifier.sent)
}
