package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Action states a user can put an action in
const (
	StatePending    = "pending"
	StateInProgress = "inProgress"
	StateDone       = "done"
	StateDeclined   = "declined"
	StateNA         = "na"
)

// ActionStates lists every bucket of UserActions
var ActionStates = []string{StatePending, StateInProgress, StateDone, StateDeclined, StateNA}

// Achievement names
const (
	AchievementActionsDone       = "actionsDone"
	AchievementActionsInProgress = "actionsInProgress"
	AchievementActionsRated      = "actionsRated"
	AchievementCommentsPosted    = "commentsPosted"
)

// User holds the structure for the user collection in mongo
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"`
	Name         string             `json:"name" bson:"name"`
	Language     string             `json:"language" bson:"language"`
	Profile      Profile            `json:"profile" bson:"profile"`
	Actions      UserActions        `json:"actions" bson:"actions"`
	HouseholdID  string             `json:"householdId" bson:"householdId"`
	Communities  []string           `json:"communities" bson:"communities"`
	Achievements map[string]int     `json:"achievements" bson:"achievements"`
	Date         primitive.DateTime `json:"date" bson:"date"`
}

// Profile holds the optional personal details of a user
type Profile struct {
	Dob    string `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`
	Photo  string `json:"photo,omitempty" bson:"photo,omitempty"`
}

// UserActions holds a user's actions bucketed by state
type UserActions struct {
	Pending    []UserAction `json:"pending" bson:"pending"`
	InProgress []UserAction `json:"inProgress" bson:"inProgress"`
	Done       []UserAction `json:"done" bson:"done"`
	Declined   []UserAction `json:"declined" bson:"declined"`
	NA         []UserAction `json:"na" bson:"na"`
}

// UserAction is an action in one of the user's buckets
type UserAction struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id"`
	Name          string              `json:"name" bson:"name"`
	StartedDate   *primitive.DateTime `json:"startedDate,omitempty" bson:"startedDate,omitempty"`
	PostponedDate *primitive.DateTime `json:"postponedDate,omitempty" bson:"postponedDate,omitempty"`
	DoneDate      *primitive.DateTime `json:"doneDate,omitempty" bson:"doneDate,omitempty"`
	Date          primitive.DateTime  `json:"date" bson:"date"`
}

// Bucket returns the bucket for a state, or nil for an unknown state
func (ua UserActions) Bucket(state string) []UserAction {
	switch state {
	case StatePending:
		return ua.Pending
	case StateInProgress:
		return ua.InProgress
	case StateDone:
		return ua.Done
	case StateDeclined:
		return ua.Declined
	case StateNA:
		return ua.NA
	}
	return nil
}

// IDs returns every action id present in any bucket
func (ua UserActions) IDs() []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, state := range ActionStates {
		for _, a := range ua.Bucket(state) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// ValidState reports whether s names an action bucket
func ValidState(s string) bool {
	for _, state := range ActionStates {
		if s == state {
			return true
		}
	}
	return false
}

// PublicUser is the subset of a user shown to other users
type PublicUser struct {
	ID           primitive.ObjectID `json:"_id"`
	Name         string             `json:"name"`
	Profile      Profile            `json:"profile"`
	Achievements map[string]int     `json:"achievements"`
}

// Public strips private fields from a user
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Profile: u.Profile, Achievements: u.Achievements}
}

// RegisterRequest is the body of a registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// ProfileUpdate holds the fields a user may change on their own profile
type ProfileUpdate struct {
	Name     *string  `json:"name,omitempty" bson:"name,omitempty"`
	Language *string  `json:"language,omitempty" bson:"language,omitempty"`
	Profile  *Profile `json:"profile,omitempty" bson:"profile,omitempty"`
}

// ActionStateRequest is the body used to move an action between buckets
type ActionStateRequest struct {
	State         string              `json:"state"`
	PostponedDate *primitive.DateTime `json:"postponedDate,omitempty"`
}
