package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Household holds the structure for the household collection in mongo
type Household struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	ApartmentID    string             `json:"apartmentId" bson:"apartmentId"`
	Address        string             `json:"address" bson:"address"`
	OwnerID        string             `json:"ownerId" bson:"ownerId"`
	Members        []string           `json:"members" bson:"members"`
	PendingInvites []string           `json:"pendingInvites" bson:"pendingInvites"`
	Appliances     []string           `json:"appliances" bson:"appliances"`
	HouseholdSize  int                `json:"householdSize" bson:"householdSize"`
	Date           primitive.DateTime `json:"date" bson:"date"`
}

// HouseholdUpdate holds the household fields members may edit
type HouseholdUpdate struct {
	ApartmentID   *string  `json:"apartmentId,omitempty" bson:"apartmentId,omitempty"`
	Address       *string  `json:"address,omitempty" bson:"address,omitempty"`
	Appliances    []string `json:"appliances,omitempty" bson:"appliances,omitempty"`
	HouseholdSize *int     `json:"householdSize,omitempty" bson:"householdSize,omitempty"`
}

// InviteRequest is the body of a household invitation
type InviteRequest struct {
	UserID string `json:"userId"`
}

// InviteResponse is the body used to accept or decline an invitation
type InviteResponse struct {
	Token  string `json:"token"`
	Accept bool   `json:"accept"`
}
