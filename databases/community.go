package databases

// go generate: mockery --name CommunityDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/youpower/youpower-api/models"
)

const collectionName = "communities"

// CommunityDatabase contains the methods to use with the community database
type CommunityDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Community, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Community, error)
	InsertOne(ctx context.Context, community models.Community) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Rate(ctx context.Context, communityID primitive.ObjectID, userID string, rating int) error
	UnlinkAction(ctx context.Context, actionID string) (int64, error)
}

type communityDatabase struct {
	db DatabaseHelper
}

// NewCommunityDatabase initializes a new instance of community database with the provided db connection
func NewCommunityDatabase(db DatabaseHelper) CommunityDatabase {
	return &communityDatabase{
		db: db,
	}
}

func (c *communityDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Community, error) {
	community := &models.Community{}
	err := c.db.Collection(collectionName).FindOne(ctx, filter).Decode(&community)
	if err != nil {
		return nil, notFound(err, ErrCommunityNotFound)
	}
	return community, nil
}

func (c *communityDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Community, error) {
	var communities []models.Community
	cursor, err := c.db.Collection(collectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&communities)
	if err != nil {
		return nil, err
	}
	return communities, nil
}

func (c *communityDatabase) InsertOne(ctx context.Context, community models.Community) (InsertOneResultHelper, error) {
	return c.db.Collection(collectionName).InsertOne(ctx, community)
}

func (c *communityDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return c.db.Collection(collectionName).UpdateOne(ctx, filter, update)
}

func (c *communityDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := c.db.Collection(collectionName).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// UnlinkAction removes a deleted action from every community's actions and
// challenges
func (c *communityDatabase) UnlinkAction(ctx context.Context, actionID string) (int64, error) {
	res, err := c.db.Collection(collectionName).UpdateMany(ctx,
		bson.M{"$or": bson.A{bson.M{"actions": actionID}, bson.M{"challenges.actionId": actionID}}},
		bson.M{"$pull": bson.M{"actions": actionID, "challenges": bson.M{"actionId": actionID}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (c *communityDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(collectionName).CountDocuments(ctx, filter)
}

// Rate stores the user's like value on the community, replacing any earlier one
func (c *communityDatabase) Rate(ctx context.Context, communityID primitive.ObjectID, userID string, rating int) error {
	if !models.ValidLike(rating) {
		return ErrInvalidRating
	}
	res, err := c.db.Collection(collectionName).UpdateOne(ctx,
		bson.M{"_id": communityID},
		bson.M{"$set": bson.M{"ratings." + userID: rating}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCommunityNotFound
	}
	return nil
}
