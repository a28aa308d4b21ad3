package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Firearm holds the structure for the firearm collection in mongo
type Firearm struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details FirearmDetails     `json:"firearm" bson:"firearm"`
	Version int32              `json:"__v" bson:"__v"`
}

// FirearmDetails holds the structure for the inner firearm structure as
// defined in the firearm collection in mongo. ExpiryDate is always derived
// from IssueDate plus the licence section's validity period and is recomputed
// on every create and update; it is never accepted from a client.
type FirearmDetails struct {
	Title        string             `json:"title" bson:"title"`
	Section      string             `json:"section" bson:"section"`
	IssueDate    primitive.DateTime `json:"issueDate" bson:"issueDate"`
	ExpiryDate   primitive.DateTime `json:"expiryDate" bson:"expiryDate"`
	Make         string             `json:"make,omitempty" bson:"make,omitempty"`
	SerialNumber string             `json:"serialNumber,omitempty" bson:"serialNumber,omitempty"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt    primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// ComputeExpiry derives the expiry date from the issue date and the licence
// section's validity period and stores it on the record.
func (d *FirearmDetails) ComputeExpiry() error {
	section, ok := SectionByCode(d.Section)
	if !ok {
		return &ValidationError{Field: "section", Reason: "unknown licence section code"}
	}
	issued := d.IssueDate.Time()
	d.ExpiryDate = primitive.NewDateTimeFromTime(issued.AddDate(section.ValidityYears, 0, 0))
	return nil
}

// Validate checks the form-level invariants for a firearm record
func (d *FirearmDetails) Validate() error {
	if d.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if _, ok := SectionByCode(d.Section); !ok {
		return &ValidationError{Field: "section", Reason: "unknown licence section code"}
	}
	// the zero DateTime is the Unix epoch, so compare the raw value
	if d.IssueDate == 0 {
		return &ValidationError{Field: "issueDate", Reason: "issue date is required"}
	}
	if d.IssueDate.Time().After(time.Now()) {
		return &ValidationError{Field: "issueDate", Reason: "issue date cannot be in the future"}
	}
	return nil
}
