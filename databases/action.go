package databases

// go generate: mockery --name ActionDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/youpower/youpower-api/models"
)

const (
	actionName = "actions"

	// maxSuggestions caps the suggested-actions sample
	maxSuggestions = 5
)

// localizedName maps a user language onto the action field holding its translation
var localizedName = map[string]string{
	"it": "name_IT",
	"se": "name_SE",
}

// ActionDatabase contains the methods to use with the action database
type ActionDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Action, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Action, error)
	InsertOne(ctx context.Context, action models.Action) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Rate(ctx context.Context, actionID primitive.ObjectID, userID string, rating models.Rating) error
	Suggested(ctx context.Context, exclude []primitive.ObjectID, language string) ([]models.Action, error)
}

type actionDatabase struct {
	db DatabaseHelper
}

// NewActionDatabase initializes a new instance of action database with the provided db connection
func NewActionDatabase(db DatabaseHelper) ActionDatabase {
	return &actionDatabase{
		db: db,
	}
}

func (a *actionDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Action, error) {
	action := &models.Action{}
	err := a.db.Collection(actionName).FindOne(ctx, filter, opts...).Decode(&action)
	if err != nil {
		return nil, notFound(err, ErrActionNotFound)
	}
	return action, nil
}

func (a *actionDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Action, error) {
	var actions []models.Action
	cursor, err := a.db.Collection(actionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&actions)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

func (a *actionDatabase) InsertOne(ctx context.Context, action models.Action) (InsertOneResultHelper, error) {
	return a.db.Collection(actionName).InsertOne(ctx, action)
}

func (a *actionDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return a.db.Collection(actionName).UpdateOne(ctx, filter, update, opts...)
}

func (a *actionDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := a.db.Collection(actionName).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (a *actionDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return a.db.Collection(actionName).CountDocuments(ctx, filter)
}

// Rate stores the user's rating, replacing any earlier one
func (a *actionDatabase) Rate(ctx context.Context, actionID primitive.ObjectID, userID string, rating models.Rating) error {
	if !rating.Valid() {
		return ErrInvalidRating
	}
	res, err := a.db.Collection(actionName).UpdateOne(ctx,
		bson.M{"_id": actionID},
		bson.M{"$set": bson.M{"ratings." + userID: rating}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrActionNotFound
	}
	return nil
}

// Suggested returns a random sample of actions the user has not acted on yet
func (a *actionDatabase) Suggested(ctx context.Context, exclude []primitive.ObjectID, language string) ([]models.Action, error) {
	var actions []models.Action
	cursor, err := a.db.Collection(actionName).Aggregate(ctx, SuggestedPipeline(exclude, language))
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&actions)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// SuggestedPipeline builds the aggregation used by Suggested
func SuggestedPipeline(exclude []primitive.ObjectID, language string) mongo.Pipeline {
	if exclude == nil {
		exclude = []primitive.ObjectID{}
	}
	match := bson.D{{Key: "_id", Value: bson.M{"$nin": exclude}}}
	if field, ok := localizedName[language]; ok {
		match = append(match, bson.E{Key: field, Value: bson.M{"$exists": true, "$ne": ""}})
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.M{"size": maxSuggestions}}},
	}
}
