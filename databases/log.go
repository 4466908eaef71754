package databases

// go generate: mockery --name LogDatabase

import (
	"context"

	"github.com/youpower/youpower-api/models"
)

const logName = "logs"

// LogDatabase contains the methods to use with the activity log database
type LogDatabase interface {
	InsertOne(ctx context.Context, entry models.ActivityLog) error
}

type logDatabase struct {
	db DatabaseHelper
}

// NewLogDatabase initializes a new instance of log database with the provided db connection
func NewLogDatabase(db DatabaseHelper) LogDatabase {
	return &logDatabase{
		db: db,
	}
}

func (l *logDatabase) InsertOne(ctx context.Context, entry models.ActivityLog) error {
	_, err := l.db.Collection(logName).InsertOne(ctx, entry)
	return err
}
