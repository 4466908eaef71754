// Package achievements keeps the monotonic progress counters on user profiles.
package achievements

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/models"
)

// Notifier delivers an event to a connected user
type Notifier interface {
	Notify(userID string, n models.Notification)
}

// Progress is the payload of an achievement notification
type Progress struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Updater raises achievement counters and announces increases
type Updater struct {
	DB       databases.UserDatabase
	Notifier Notifier
}

// Update computes the candidate value from the stored one and keeps whichever
// is larger. It returns the resulting value and whether it grew.
func (u Updater) Update(ctx context.Context, userID primitive.ObjectID, name string, fn func(old int) int) (int, bool, error) {
	user, err := u.DB.FindOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return 0, false, err
	}
	old := user.Achievements[name]
	candidate := fn(old)
	if candidate <= old {
		return old, false, nil
	}

	// $max keeps the counter monotonic even if another request raced us here
	err = u.DB.RaiseAchievement(ctx, userID, name, candidate)
	if err != nil {
		return old, false, err
	}

	zap.S().Debugw("achievement raised", "userId", userID.Hex(), "name", name, "old", old, "new", candidate)
	if u.Notifier != nil {
		u.Notifier.Notify(userID.Hex(), models.Notification{
			Type: "achievement",
			Data: Progress{Name: name, Value: candidate},
		})
	}
	return candidate, true, nil
}

// Set returns an update function that proposes a fixed value
func Set(v int) func(int) int {
	return func(int) int { return v }
}

// Increment returns an update function that proposes old+1
func Increment() func(int) int {
	return func(old int) int { return old + 1 }
}
