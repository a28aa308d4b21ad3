package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Search methods supported by the SAPS enquiry page. Each method requires
// exactly two fields to be populated; the remaining fields must stay empty.
const (
	SearchByReference = "reference" // reference number + ID/institution number
	SearchBySerial    = "serial"    // serial number + reference number
	SearchByID        = "id"        // ID number + serial number
)

// Application holds the structure for the application collection in mongo
type Application struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details ApplicationDetails `json:"application" bson:"application"`
	Version int32              `json:"__v" bson:"__v"`
}

// ApplicationDetails holds the structure for the inner application structure
// as defined in the application collection in mongo
type ApplicationDetails struct {
	Title           string             `json:"title,omitempty" bson:"title,omitempty"`
	SearchMethod    string             `json:"searchMethod" bson:"searchMethod"`
	ReferenceNumber string             `json:"referenceNumber,omitempty" bson:"referenceNumber,omitempty"`
	IDNumber        string             `json:"idNumber,omitempty" bson:"idNumber,omitempty"`
	SerialNumber    string             `json:"serialNumber,omitempty" bson:"serialNumber,omitempty"`
	DateApplied     primitive.DateTime `json:"dateApplied" bson:"dateApplied"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt       primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// Validate checks that exactly the fields required by the selected search
// method are populated and that the application date is not in the future.
func (d *ApplicationDetails) Validate() error {
	switch d.SearchMethod {
	case SearchByReference:
		if d.ReferenceNumber == "" || d.IDNumber == "" {
			return &ValidationError{Field: "searchMethod", Reason: "reference search requires a reference number and an ID/institution number"}
		}
		if d.SerialNumber != "" {
			return &ValidationError{Field: "serialNumber", Reason: "reference search must not carry a serial number"}
		}
	case SearchBySerial:
		if d.SerialNumber == "" || d.ReferenceNumber == "" {
			return &ValidationError{Field: "searchMethod", Reason: "serial search requires a serial number and a reference number"}
		}
		if d.IDNumber != "" {
			return &ValidationError{Field: "idNumber", Reason: "serial search must not carry an ID number"}
		}
	case SearchByID:
		if d.IDNumber == "" || d.SerialNumber == "" {
			return &ValidationError{Field: "searchMethod", Reason: "id search requires an ID number and a serial number"}
		}
		if d.ReferenceNumber != "" {
			return &ValidationError{Field: "referenceNumber", Reason: "id search must not carry a reference number"}
		}
	default:
		return &ValidationError{Field: "searchMethod", Reason: "unknown search method"}
	}
	// the zero DateTime is the Unix epoch, so compare the raw value
	if d.DateApplied == 0 {
		return &ValidationError{Field: "dateApplied", Reason: "application date is required"}
	}
	if d.DateApplied.Time().After(time.Now()) {
		return &ValidationError{Field: "dateApplied", Reason: "application date cannot be in the future"}
	}
	return nil
}
