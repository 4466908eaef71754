package databases

// go generate: mockery --name CooperativeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/youpower/youpower-api/models"
)

const cooperativeName = "cooperatives"

// CooperativeDatabase contains the methods to use with the cooperative database
type CooperativeDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Cooperative, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Cooperative, error)
	InsertOne(ctx context.Context, cooperative models.Cooperative) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	AddAction(ctx context.Context, cooperativeID primitive.ObjectID, action models.CooperativeAction) error
	UpdateAction(ctx context.Context, cooperativeID, actionID primitive.ObjectID, update models.CooperativeActionUpdate) error
	DeleteAction(ctx context.Context, cooperativeID, actionID primitive.ObjectID) error
}

type cooperativeDatabase struct {
	db DatabaseHelper
}

// NewCooperativeDatabase initializes a new instance of cooperative database with the provided db connection
func NewCooperativeDatabase(db DatabaseHelper) CooperativeDatabase {
	return &cooperativeDatabase{
		db: db,
	}
}

func (c *cooperativeDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Cooperative, error) {
	cooperative := &models.Cooperative{}
	err := c.db.Collection(cooperativeName).FindOne(ctx, filter).Decode(&cooperative)
	if err != nil {
		return nil, notFound(err, ErrCooperativeNotFound)
	}
	return cooperative, nil
}

func (c *cooperativeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Cooperative, error) {
	var cooperatives []models.Cooperative
	cursor, err := c.db.Collection(cooperativeName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&cooperatives)
	if err != nil {
		return nil, err
	}
	return cooperatives, nil
}

func (c *cooperativeDatabase) InsertOne(ctx context.Context, cooperative models.Cooperative) (InsertOneResultHelper, error) {
	return c.db.Collection(cooperativeName).InsertOne(ctx, cooperative)
}

func (c *cooperativeDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return c.db.Collection(cooperativeName).UpdateOne(ctx, filter, update)
}

// AddAction appends an undertaken action to the cooperative
func (c *cooperativeDatabase) AddAction(ctx context.Context, cooperativeID primitive.ObjectID, action models.CooperativeAction) error {
	res, err := c.db.Collection(cooperativeName).UpdateOne(ctx,
		bson.M{"_id": cooperativeID},
		bson.M{"$push": bson.M{"actions": action}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCooperativeNotFound
	}
	return nil
}

// UpdateAction sets the present fields of the embedded action with the given
// sub-id
func (c *cooperativeDatabase) UpdateAction(ctx context.Context, cooperativeID, actionID primitive.ObjectID, update models.CooperativeActionUpdate) error {
	res, err := c.db.Collection(cooperativeName).UpdateOne(ctx,
		bson.M{"_id": cooperativeID, "actions._id": actionID},
		bson.M{"$set": cooperativeActionSet(update)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSubDocumentNotFound
	}
	return nil
}

func cooperativeActionSet(update models.CooperativeActionUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["actions.$.name"] = *update.Name
	}
	if update.Description != nil {
		set["actions.$.description"] = *update.Description
	}
	if update.Date != nil {
		set["actions.$.date"] = *update.Date
	}
	if update.Cost != nil {
		set["actions.$.cost"] = *update.Cost
	}
	if update.Types != nil {
		set["actions.$.types"] = update.Types
	}
	return set
}

// DeleteAction removes the embedded action with the given sub-id
func (c *cooperativeDatabase) DeleteAction(ctx context.Context, cooperativeID, actionID primitive.ObjectID) error {
	res, err := c.db.Collection(cooperativeName).UpdateOne(ctx,
		bson.M{"_id": cooperativeID, "actions._id": actionID},
		bson.M{"$pull": bson.M{"actions": bson.M{"_id": actionID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSubDocumentNotFound
	}
	return nil
}
