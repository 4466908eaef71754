package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/databases/mocks"
	"github.com/youpower/youpower-api/models"
)

func TestCooperativeDatabase_AddAction(t *testing.T) {
	coopID := primitive.NewObjectID()
	action := models.CooperativeAction{ID: primitive.NewObjectID(), Name: "New windows", Cost: 120000}

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": coopID}, bson.M{"$push": bson.M{"actions": action}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Once()
	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": coopID}, bson.M{"$push": bson.M{"actions": action}}).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()
	dbHelper.On("Collection", "cooperatives").Return(collectionHelper)

	coopDba := databases.NewCooperativeDatabase(dbHelper)

	assert.NoError(t, coopDba.AddAction(context.Background(), coopID, action))
	assert.ErrorIs(t, coopDba.AddAction(context.Background(), coopID, action), databases.ErrCooperativeNotFound)
}

func TestCooperativeDatabase_UpdateAction(t *testing.T) {
	coopID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	name, cost := "Heat pump", 500000
	action := models.CooperativeActionUpdate{Name: &name, Cost: &cost}

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": coopID, "actions._id": subID}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Once()
	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": coopID, "actions._id": subID}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()
	dbHelper.On("Collection", "cooperatives").Return(collectionHelper)

	coopDba := databases.NewCooperativeDatabase(dbHelper)

	assert.NoError(t, coopDba.UpdateAction(context.Background(), coopID, subID, action))
	assert.ErrorIs(t, coopDba.UpdateAction(context.Background(), coopID, subID, action), databases.ErrSubDocumentNotFound)

	update := collectionHelper.Calls[0].Arguments.Get(2).(bson.M)
	set := update["$set"].(bson.M)
	assert.Equal(t, "Heat pump", set["actions.$.name"])
	assert.Equal(t, 500000, set["actions.$.cost"])
	assert.Len(t, set, 2)
	assert.NotContains(t, set, "actions.$.date")
	assert.NotContains(t, set, "actions.$.description")
	assert.NotContains(t, set, "actions.$.types")
}

func TestCooperativeDatabase_DeleteAction(t *testing.T) {
	coopID := primitive.NewObjectID()
	subID := primitive.NewObjectID()

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", context.Background(),
		bson.M{"_id": coopID, "actions._id": subID},
		bson.M{"$pull": bson.M{"actions": bson.M{"_id": subID}}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	dbHelper.On("Collection", "cooperatives").Return(collectionHelper)

	assert.NoError(t, databases.NewCooperativeDatabase(dbHelper).DeleteAction(context.Background(), coopID, subID))
}
