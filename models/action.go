package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action holds the structure for the action collection in mongo
type Action struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	NameIT        string             `json:"name_IT,omitempty" bson:"name_IT,omitempty"`
	DescriptionIT string             `json:"description_IT,omitempty" bson:"description_IT,omitempty"`
	NameSE        string             `json:"name_SE,omitempty" bson:"name_SE,omitempty"`
	DescriptionSE string             `json:"description_SE,omitempty" bson:"description_SE,omitempty"`
	Category      string             `json:"category" bson:"category"`
	Type          string             `json:"type" bson:"type"`
	Season        []string           `json:"season" bson:"season"`
	Impact        int                `json:"impact" bson:"impact"`
	Effort        int                `json:"effort" bson:"effort"`
	Ratings       map[string]Rating  `json:"ratings,omitempty" bson:"ratings"`
	AuthorID      string             `json:"authorId" bson:"authorId"`
	AuthorName    string             `json:"authorName" bson:"authorName"`
	Date          primitive.DateTime `json:"date" bson:"date"`
}

// Rating is a single user's like/dislike and effort estimate for an action
type Rating struct {
	Rating  int                `json:"rating" bson:"rating"`
	Effort  int                `json:"effort" bson:"effort"`
	Comment string             `json:"comment,omitempty" bson:"comment,omitempty"`
	Date    primitive.DateTime `json:"date" bson:"date"`
}

// ActionResponse is the read shape of an action. The raw ratings map is
// replaced by the derived fields.
type ActionResponse struct {
	Action
	NumLikes    int   `json:"numLikes"`
	UserRating  int   `json:"userRating"`
	UserEffort  int   `json:"userEffort"`
	Effort      int   `json:"effort"`
	NumComments int64 `json:"numComments"`
	NumUsers    int64 `json:"numUsers"`
}

// ActionUpdate holds the fields an author may change on an action
type ActionUpdate struct {
	Name          *string  `json:"name,omitempty" bson:"name,omitempty"`
	Description   *string  `json:"description,omitempty" bson:"description,omitempty"`
	NameIT        *string  `json:"name_IT,omitempty" bson:"name_IT,omitempty"`
	DescriptionIT *string  `json:"description_IT,omitempty" bson:"description_IT,omitempty"`
	NameSE        *string  `json:"name_SE,omitempty" bson:"name_SE,omitempty"`
	DescriptionSE *string  `json:"description_SE,omitempty" bson:"description_SE,omitempty"`
	Category      *string  `json:"category,omitempty" bson:"category,omitempty"`
	Type          *string  `json:"type,omitempty" bson:"type,omitempty"`
	Season        []string `json:"season,omitempty" bson:"season,omitempty"`
	Impact        *int     `json:"impact,omitempty" bson:"impact,omitempty"`
	Effort        *int     `json:"effort,omitempty" bson:"effort,omitempty"`
}
