package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validApplicationDetails() ApplicationDetails {
	return ApplicationDetails{
		SearchMethod:    SearchByReference,
		ReferenceNumber: "41/5/2-123456",
		IDNumber:        "8001015009087",
		DateApplied:     primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30)),
	}
}

func TestApplicationDetailsValidate(t *testing.T) {
	d := validApplicationDetails()
	assert.NoError(t, d.Validate())
}

func TestApplicationDetailsValidateUnknownSearchMethod(t *testing.T) {
	d := validApplicationDetails()
	d.SearchMethod = "carrier-pigeon"
	assert.Error(t, d.Validate())
}

func TestApplicationDetailsValidateMissingSchemeField(t *testing.T) {
	d := validApplicationDetails()
	d.IDNumber = ""
	assert.Error(t, d.Validate())
}

func TestApplicationDetailsValidateForeignSchemeField(t *testing.T) {
	// each search method carries exactly its own two fields, nothing else
	cases := []ApplicationDetails{
		{
			SearchMethod:    SearchByReference,
			ReferenceNumber: "41/5/2-123456",
			IDNumber:        "8001015009087",
			SerialNumber:    "XY9988",
		},
		{
			SearchMethod:    SearchBySerial,
			SerialNumber:    "XY9988",
			ReferenceNumber: "41/5/2-123456",
			IDNumber:        "8001015009087",
		},
		{
			SearchMethod:    SearchByID,
			IDNumber:        "8001015009087",
			SerialNumber:    "XY9988",
			ReferenceNumber: "41/5/2-123456",
		},
	}
	for _, d := range cases {
		d.DateApplied = primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30))
		assert.Error(t, d.Validate(), "method %s must reject the foreign field", d.SearchMethod)
	}
}

func TestApplicationDetailsValidateMissingDateApplied(t *testing.T) {
	// the zero DateTime decodes to the Unix epoch, it must still be rejected
	// or an empty submission would count as pending since 1970
	d := validApplicationDetails()
	d.DateApplied = 0
	err := d.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dateApplied")
}

func TestApplicationDetailsValidateFutureDateApplied(t *testing.T) {
	d := validApplicationDetails()
	d.DateApplied = primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, 7))
	assert.Error(t, d.Validate())
}
