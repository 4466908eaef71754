package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/youpower/youpower-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.User, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.User, error)
	InsertOne(ctx context.Context, user models.User) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	SetActionState(ctx context.Context, userID primitive.ObjectID, state string, action models.UserAction) error
	ReleaseDuePending(ctx context.Context, now time.Time) (int64, error)
	RaiseAchievement(ctx context.Context, userID primitive.ObjectID, name string, value int) error
	EnsureIndexes(ctx context.Context) error
	ForgetAction(ctx context.Context, actionID primitive.ObjectID) (int64, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userName).FindOne(ctx, filter, opts...).Decode(&user)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (u *userDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.User, error) {
	var users []models.User
	cursor, err := u.db.Collection(userName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// InsertOne stores a new user. A second account for the same email is
// rejected by the unique index with ErrEmailTaken.
func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (InsertOneResultHelper, error) {
	res, err := u.db.Collection(userName).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrEmailTaken
	}
	return res, err
}

// EnsureIndexes creates the unique email index registration relies on
func (u *userDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := u.db.Collection(userName).CreateIndex(ctx, EmailIndex())
	return err
}

// EmailIndex is the unique index on users.email
func EmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}
}

func (u *userDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return u.db.Collection(userName).UpdateOne(ctx, filter, update)
}

func (u *userDatabase) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return u.db.Collection(userName).UpdateMany(ctx, filter, update)
}

func (u *userDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return u.db.Collection(userName).CountDocuments(ctx, filter)
}

// SetActionState moves the action into the bucket named by state, removing it
// from every other bucket in the same update
func (u *userDatabase) SetActionState(ctx context.Context, userID primitive.ObjectID, state string, action models.UserAction) error {
	if !models.ValidState(state) {
		return ErrInvalidState
	}

	res, err := u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": userID}, SetActionStateUpdate(state, action))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetActionStateUpdate builds the update pipeline that filters the action out
// of every bucket and appends it to the target one
func SetActionStateUpdate(state string, action models.UserAction) mongo.Pipeline {
	set := bson.D{}
	for _, s := range models.ActionStates {
		bucket := "actions." + s
		without := bson.M{"$filter": bson.M{
			"input": bson.M{"$ifNull": bson.A{"$" + bucket, bson.A{}}},
			"cond":  bson.M{"$ne": bson.A{"$$this._id", action.ID}},
		}}
		if s == state {
			set = append(set, bson.E{Key: bucket, Value: bson.M{"$concatArrays": bson.A{without, bson.A{bson.M{"$literal": action}}}}})
			continue
		}
		set = append(set, bson.E{Key: bucket, Value: without})
	}
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

// ForgetAction removes a deleted action from the buckets of every user
func (u *userDatabase) ForgetAction(ctx context.Context, actionID primitive.ObjectID) (int64, error) {
	inAny := bson.A{}
	for _, state := range models.ActionStates {
		inAny = append(inAny, bson.M{"actions." + state + "._id": actionID})
	}
	res, err := u.db.Collection(userName).UpdateMany(ctx, bson.M{"$or": inAny}, PullActionUpdate(actionID))
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// PullActionUpdate builds the update removing an action id from every bucket
func PullActionUpdate(actionID primitive.ObjectID) bson.M {
	pull := bson.M{}
	for _, state := range models.ActionStates {
		pull["actions."+state] = bson.M{"_id": actionID}
	}
	return bson.M{"$pull": pull}
}

// ReleaseDuePending drops pending actions whose postpone date has passed, so
// they become eligible for suggestions again
func (u *userDatabase) ReleaseDuePending(ctx context.Context, now time.Time) (int64, error) {
	due := bson.M{"$lte": primitive.NewDateTimeFromTime(now)}
	res, err := u.db.Collection(userName).UpdateMany(ctx,
		bson.M{"actions.pending.postponedDate": due},
		bson.M{"$pull": bson.M{"actions.pending": bson.M{"postponedDate": due}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// RaiseAchievement sets the counter to value unless it is already higher
func (u *userDatabase) RaiseAchievement(ctx context.Context, userID primitive.ObjectID, name string, value int) error {
	res, err := u.db.Collection(userName).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$max": bson.M{"achievements." + name: value}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
