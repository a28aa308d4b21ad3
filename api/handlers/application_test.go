package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/firearm-tracker-api/api/handlers"
	mocksdb "github.com/linesmerrill/firearm-tracker-api/databases/mocks"
	"github.com/linesmerrill/firearm-tracker-api/models"
)

func TestApplication_ApplicationCreateHandler(t *testing.T) {
	db := &mocksdb.ApplicationDatabase{}
	db.On("InsertOne", mock.Anything, mock.Anything).Return("inserted-id", nil)

	body, _ := json.Marshal(models.ApplicationDetails{
		Title:           "new licence application",
		SearchMethod:    models.SearchByReference,
		ReferenceNumber: "41/5/2-123456",
		IDNumber:        "8001015009087",
		DateApplied:     primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30)),
	})

	req, err := http.NewRequest("POST", "/api/v1/application", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	a := handlers.Application{DB: db, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	db.AssertCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestApplication_ApplicationCreateHandlerMissingSchemeField(t *testing.T) {
	// a reference search without an ID number must be refused
	body, _ := json.Marshal(models.ApplicationDetails{
		SearchMethod:    models.SearchByReference,
		ReferenceNumber: "41/5/2-123456",
		DateApplied:     primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30)),
	})

	req, err := http.NewRequest("POST", "/api/v1/application", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocksdb.ApplicationDatabase{}
	a := handlers.Application{DB: db, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestApplication_ApplicationCreateHandlerUnknownSearchMethod(t *testing.T) {
	body, _ := json.Marshal(models.ApplicationDetails{
		SearchMethod: "carrier-pigeon",
		DateApplied:  primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30)),
	})

	req, err := http.NewRequest("POST", "/api/v1/application", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	a := handlers.Application{DB: &mocksdb.ApplicationDatabase{}, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestApplication_ApplicationListHandlerEmpty(t *testing.T) {
	db := &mocksdb.ApplicationDatabase{}
	db.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	req, err := http.NewRequest("GET", "/api/v1/application", nil)
	if err != nil {
		t.Fatal(err)
	}

	a := handlers.Application{DB: db}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestApplication_ApplicationDeleteHandler(t *testing.T) {
	id := primitive.NewObjectID()

	db := &mocksdb.ApplicationDatabase{}
	db.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	req, err := http.NewRequest("DELETE", "/api/v1/application/"+id.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"application_id": id.Hex()})

	a := handlers.Application{DB: db, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationDeleteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestApplication_ApplicationUpdateHandler(t *testing.T) {
	id := primitive.NewObjectID()
	existing := &models.Application{
		ID: id,
		Details: models.ApplicationDetails{
			SearchMethod:    models.SearchByReference,
			ReferenceNumber: "41/5/2-123456",
			IDNumber:        "8001015009087",
			DateApplied:     primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -30)),
		},
	}

	db := &mocksdb.ApplicationDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(existing, nil)
	db.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(models.ApplicationDetails{
		Title:           "renamed application",
		SearchMethod:    models.SearchBySerial,
		SerialNumber:    "XY9988",
		ReferenceNumber: "41/5/2-123456",
		DateApplied:     primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -45)),
	})

	req, err := http.NewRequest("PUT", "/api/v1/application/"+id.Hex(), bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"application_id": id.Hex()})

	a := handlers.Application{DB: db, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(a.ApplicationUpdateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "renamed application")
	db.AssertCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}
