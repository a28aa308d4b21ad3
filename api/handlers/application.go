package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/api"
	"github.com/linesmerrill/firearm-tracker-api/api/scheduler"
	"github.com/linesmerrill/firearm-tracker-api/config"
	"github.com/linesmerrill/firearm-tracker-api/databases"
	"github.com/linesmerrill/firearm-tracker-api/models"
)

// Application exported for testing purposes
type Application struct {
	DB        databases.ApplicationDatabase
	Scheduler *scheduler.Scheduler
}

// ApplicationListHandler returns all tracked applications
func (a Application) ApplicationListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get applications", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Application{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplicationByIDHandler returns an application by ID
func (a Application) ApplicationByIDHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	zap.S().Debugf("application_id: %v", applicationID)

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get application by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplicationCreateHandler creates an application record and refreshes its
// SLA reminder
func (a Application) ApplicationCreateHandler(w http.ResponseWriter, r *http.Request) {
	var details models.ApplicationDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := details.Validate(); err != nil {
		config.ErrorStatus("invalid application record", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	now := primitive.NewDateTimeFromTime(time.Now())
	details.CreatedAt = now
	details.UpdatedAt = now
	application := models.Application{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := a.DB.InsertOne(ctx, application); err != nil {
		config.ErrorStatus("failed to insert application", http.StatusInternalServerError, w, err)
		return
	}

	if err := a.Scheduler.ScheduleApplication(ctx, application); err != nil {
		zap.S().Warnw("failed to schedule reminder after create",
			"applicationID", application.ID.Hex(), "error", err)
	}

	b, err := json.Marshal(application)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ApplicationUpdateHandler replaces an application's details and refreshes
// its SLA reminder
func (a Application) ApplicationUpdateHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.ApplicationDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := details.Validate(); err != nil {
		config.ErrorStatus("invalid application record", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get application by ID", http.StatusNotFound, w, err)
		return
	}

	details.CreatedAt = existing.Details.CreatedAt
	details.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	err = a.DB.UpdateOne(ctx, bson.M{"_id": aID}, bson.M{
		"$set": bson.M{"application": details},
		"$inc": bson.M{"__v": 1},
	})
	if err != nil {
		config.ErrorStatus("failed to update application", http.StatusInternalServerError, w, err)
		return
	}

	updated := models.Application{ID: aID, Details: details, Version: existing.Version + 1}
	if err := a.Scheduler.ScheduleApplication(ctx, updated); err != nil {
		zap.S().Warnw("failed to reschedule reminder after update",
			"applicationID", applicationID, "error", err)
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplicationDeleteHandler deletes an application and cancels its reminder
func (a Application) ApplicationDeleteHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.DB.DeleteOne(ctx, bson.M{"_id": aID}); err != nil {
		config.ErrorStatus("failed to delete application", http.StatusInternalServerError, w, err)
		return
	}

	if err := a.Scheduler.CancelApplication(ctx, applicationID); err != nil {
		zap.S().Warnw("failed to cancel reminder after delete",
			"applicationID", applicationID, "error", err)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"deleted": true}`))
}
