package databases

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	skip  int64
}

func newMongoPaginate(limit, skip int64) *mongoPaginate {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return &mongoPaginate{
		limit: limit,
		skip:  skip,
	}
}

// getPaginatedOpts returns find options for the page, newest documents first
func (mp *mongoPaginate) getPaginatedOpts() *options.FindOptions {
	l := mp.limit
	s := mp.skip
	return &options.FindOptions{Limit: &l, Skip: &s, Sort: bson.D{{Key: "date", Value: -1}}}
}

// notFound maps mongo.ErrNoDocuments onto the given domain error
func notFound(err, domainErr error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainErr
	}
	return err
}
