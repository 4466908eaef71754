package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment holds the structure shared by the actioncomments and
// communitycomments collections in mongo. ParentID is the action or
// community the comment belongs to.
type Comment struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	ParentID string             `json:"parentId" bson:"parentId"`
	AuthorID string             `json:"postedBy" bson:"postedBy"`
	Name     string             `json:"name" bson:"name"`
	Comment  string             `json:"comment" bson:"comment"`
	Date     primitive.DateTime `json:"date" bson:"date"`
	Ratings  map[string]int     `json:"ratings,omitempty" bson:"ratings"`
}

// CommentResponse is the read shape of a comment
type CommentResponse struct {
	Comment
	NumLikes   int `json:"numLikes"`
	UserRating int `json:"userRating"`
}

// CommentPage is a page of comments for a parent document
type CommentPage struct {
	Comments []CommentResponse `json:"comments"`
	Total    int64             `json:"total"`
	Limit    int64             `json:"limit"`
	Skip     int64             `json:"skip"`
}

// LikeRequest is the body used to like or dislike a comment or community
type LikeRequest struct {
	Rating int `json:"rating"`
}
