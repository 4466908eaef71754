package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Community holds the structure for the community collection in mongo
type Community struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	OwnerID     string             `json:"ownerId" bson:"ownerId"`
	Private     bool               `json:"private" bson:"private"`
	Members     []string           `json:"members" bson:"members"`
	Actions     []string           `json:"actions" bson:"actions"`
	Challenges  []Challenge        `json:"challenges" bson:"challenges"`
	Ratings     map[string]int     `json:"ratings,omitempty" bson:"ratings"`
	Date        primitive.DateTime `json:"date" bson:"date"`
}

// Challenge is an action the community challenges its members to take
type Challenge struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	ActionID string             `json:"actionId" bson:"actionId"`
	Name     string             `json:"name" bson:"name"`
	Date     primitive.DateTime `json:"date" bson:"date"`
}

// CommunityResponse is the read shape of a community
type CommunityResponse struct {
	Community
	NumLikes   int `json:"numLikes"`
	UserRating int `json:"userRating"`
}
