package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cooperative holds the structure for the cooperative collection in mongo
type Cooperative struct {
	ID              primitive.ObjectID  `json:"_id" bson:"_id"`
	Name            string              `json:"name" bson:"name"`
	YearOfConst     int                 `json:"yearOfConst" bson:"yearOfConst"`
	Area            int                 `json:"area" bson:"area"`
	NumOfApartments int                 `json:"numOfApartments" bson:"numOfApartments"`
	VentilationType string              `json:"ventilationType" bson:"ventilationType"`
	Meters          []Meter             `json:"meters" bson:"meters"`
	Actions         []CooperativeAction `json:"actions" bson:"actions"`
	Editors         []string            `json:"editors" bson:"editors"`
	Date            primitive.DateTime  `json:"date" bson:"date"`
}

// Meter is an energy meter installed in the cooperative's building
type Meter struct {
	MType     string `json:"mType" bson:"mType"`
	MeterID   string `json:"meterId" bson:"meterId"`
	UseInCalc bool   `json:"useInCalc" bson:"useInCalc"`
}

// CooperativeAction is an energy action the cooperative has undertaken
type CooperativeAction struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Date        primitive.DateTime `json:"date" bson:"date"`
	Cost        int                `json:"cost" bson:"cost"`
	Types       []string           `json:"types" bson:"types"`
}

// CooperativeUpdate holds the building fields that may be edited
type CooperativeUpdate struct {
	Name            *string `json:"name,omitempty" bson:"name,omitempty"`
	YearOfConst     *int    `json:"yearOfConst,omitempty" bson:"yearOfConst,omitempty"`
	Area            *int    `json:"area,omitempty" bson:"area,omitempty"`
	NumOfApartments *int    `json:"numOfApartments,omitempty" bson:"numOfApartments,omitempty"`
	VentilationType *string `json:"ventilationType,omitempty" bson:"ventilationType,omitempty"`
	Meters          []Meter `json:"meters,omitempty" bson:"meters,omitempty"`
}

// CooperativeActionUpdate holds the fields of an undertaken action that may be
// edited. Absent fields are left unchanged.
type CooperativeActionUpdate struct {
	Name        *string             `json:"name,omitempty" bson:"name,omitempty"`
	Description *string             `json:"description,omitempty" bson:"description,omitempty"`
	Date        *primitive.DateTime `json:"date,omitempty" bson:"date,omitempty"`
	Cost        *int                `json:"cost,omitempty" bson:"cost,omitempty"`
	Types       []string            `json:"types,omitempty" bson:"types,omitempty"`
}
