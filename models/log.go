package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ActivityLog records a user's activity in the logs collection in mongo
type ActivityLog struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	UserID   string             `json:"userId" bson:"userId"`
	Category string             `json:"category" bson:"category"`
	Type     string             `json:"type" bson:"type"`
	Data     interface{}        `json:"data,omitempty" bson:"data,omitempty"`
	Date     primitive.DateTime `json:"date" bson:"date"`
}

// Notification is an event pushed to a connected user
type Notification struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
