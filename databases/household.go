package databases

// go generate: mockery --name HouseholdDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/youpower/youpower-api/models"
)

const householdName = "households"

// HouseholdDatabase contains the methods to use with the household database
type HouseholdDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Household, error)
	InsertOne(ctx context.Context, household models.Household) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
}

type householdDatabase struct {
	db DatabaseHelper
}

// NewHouseholdDatabase initializes a new instance of household database with the provided db connection
func NewHouseholdDatabase(db DatabaseHelper) HouseholdDatabase {
	return &householdDatabase{
		db: db,
	}
}

func (h *householdDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Household, error) {
	household := &models.Household{}
	err := h.db.Collection(householdName).FindOne(ctx, filter).Decode(&household)
	if err != nil {
		return nil, notFound(err, ErrHouseholdNotFound)
	}
	return household, nil
}

func (h *householdDatabase) InsertOne(ctx context.Context, household models.Household) (InsertOneResultHelper, error) {
	return h.db.Collection(householdName).InsertOne(ctx, household)
}

func (h *householdDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return h.db.Collection(householdName).UpdateOne(ctx, filter, update)
}

func (h *householdDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := h.db.Collection(householdName).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
