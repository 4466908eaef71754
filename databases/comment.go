package databases

// go generate: mockery --name CommentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/youpower/youpower-api/models"
)

const (
	actionCommentName    = "actioncomments"
	communityCommentName = "communitycomments"
)

// CommentDatabase contains the methods to use with a comment database. Action
// and community comments share it, each in their own collection.
type CommentDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Comment, error)
	FindByParent(ctx context.Context, parentID string, limit, skip int64) ([]models.Comment, error)
	InsertOne(ctx context.Context, comment models.Comment) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Rate(ctx context.Context, commentID primitive.ObjectID, userID string, rating int) error
}

type commentDatabase struct {
	db         DatabaseHelper
	collection string
}

// NewActionCommentDatabase initializes a comment database over the action comments
func NewActionCommentDatabase(db DatabaseHelper) CommentDatabase {
	return &commentDatabase{
		db:         db,
		collection: actionCommentName,
	}
}

// NewCommunityCommentDatabase initializes a comment database over the community comments
func NewCommunityCommentDatabase(db DatabaseHelper) CommentDatabase {
	return &commentDatabase{
		db:         db,
		collection: communityCommentName,
	}
}

func (c *commentDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Comment, error) {
	comment := &models.Comment{}
	err := c.db.Collection(c.collection).FindOne(ctx, filter).Decode(&comment)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	return comment, nil
}

func (c *commentDatabase) FindByParent(ctx context.Context, parentID string, limit, skip int64) ([]models.Comment, error) {
	var comments []models.Comment
	cursor, err := c.db.Collection(c.collection).Find(ctx, bson.M{"parentId": parentID}, newMongoPaginate(limit, skip).getPaginatedOpts())
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *commentDatabase) InsertOne(ctx context.Context, comment models.Comment) (InsertOneResultHelper, error) {
	return c.db.Collection(c.collection).InsertOne(ctx, comment)
}

func (c *commentDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := c.db.Collection(c.collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *commentDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := c.db.Collection(c.collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *commentDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(c.collection).CountDocuments(ctx, filter)
}

// Rate stores the user's like value on the comment, replacing any earlier one
func (c *commentDatabase) Rate(ctx context.Context, commentID primitive.ObjectID, userID string, rating int) error {
	if !models.ValidLike(rating) {
		return ErrInvalidRating
	}
	res, err := c.db.Collection(c.collection).UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{"$set": bson.M{"ratings." + userID: rating}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCommentNotFound
	}
	return nil
}
