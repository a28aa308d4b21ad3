package handlers

import (
	"context"
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

// Firearm exported for testing purposes
type Firearm struct {
	DB         databases.FirearmDatabase
	SettingsDB databases.SettingsDatabase
	Scheduler  *scheduler.Scheduler
}

// FirearmListHandler returns all firearm records
func (f Firearm) FirearmListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := f.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get firearms", http.StatusNotFound, w, err)
		return
	}

	// the frontend expects an array even when the collection is empty
	if len(dbResp) == 0 {
		dbResp = []models.Firearm{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// FirearmByIDHandler returns a firearm by ID
func (f Firearm) FirearmByIDHandler(w http.ResponseWriter, r *http.Request) {
	firearmID := mux.Vars(r)["firearm_id"]

	zap.S().Debugf("firearm_id: %v", firearmID)

	fID, err := primitive.ObjectIDFromHex(firearmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := f.DB.FindOne(ctx, bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to get firearm by ID", http.StatusNotFound, w, err)
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

// FirearmCreateHandler creates a firearm record, derives its expiry date
// from the licence section and schedules its renewal reminders
func (f Firearm) FirearmCreateHandler(w http.ResponseWriter, r *http.Request) {
	var details models.FirearmDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := details.Validate(); err != nil {
		config.ErrorStatus("invalid firearm record", http.StatusBadRequest, w, err)
		return
	}
	if err := details.ComputeExpiry(); err != nil {
		config.ErrorStatus("invalid firearm record", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := f.rejectDuplicate(ctx, details, primitive.NilObjectID); err != nil {
		config.ErrorStatus("duplicate firearm record", http.StatusConflict, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	details.CreatedAt = now
	details.UpdatedAt = now
	firearm := models.Firearm{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := f.DB.InsertOne(ctx, firearm); err != nil {
		config.ErrorStatus("failed to insert firearm", http.StatusInternalServerError, w, err)
		return
	}

	// reminders are rebuilt daily, a failure here only delays them
	if err := f.Scheduler.ScheduleForFirearm(ctx, firearm); err != nil {
		zap.S().Warnw("failed to schedule reminders after create",
			"firearmID", firearm.ID.Hex(), "error", err)
	}

	b, err := json.Marshal(firearm)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// FirearmUpdateHandler replaces a firearm's details, recomputes its expiry
// date and replaces its reminder schedule
func (f Firearm) FirearmUpdateHandler(w http.ResponseWriter, r *http.Request) {
	firearmID := mux.Vars(r)["firearm_id"]

	fID, err := primitive.ObjectIDFromHex(firearmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.FirearmDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := details.Validate(); err != nil {
		config.ErrorStatus("invalid firearm record", http.StatusBadRequest, w, err)
		return
	}
	if err := details.ComputeExpiry(); err != nil {
		config.ErrorStatus("invalid firearm record", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := f.DB.FindOne(ctx, bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to get firearm by ID", http.StatusNotFound, w, err)
		return
	}

	if err := f.rejectDuplicate(ctx, details, fID); err != nil {
		config.ErrorStatus("duplicate firearm record", http.StatusConflict, w, err)
		return
	}

	details.CreatedAt = existing.Details.CreatedAt
	details.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	err = f.DB.UpdateOne(ctx, bson.M{"_id": fID}, bson.M{
		"$set": bson.M{"firearm": details},
		"$inc": bson.M{"__v": 1},
	})
	if err != nil {
		config.ErrorStatus("failed to update firearm", http.StatusInternalServerError, w, err)
		return
	}

	updated := models.Firearm{ID: fID, Details: details, Version: existing.Version + 1}
	if err := f.Scheduler.ScheduleForFirearm(ctx, updated); err != nil {
		zap.S().Warnw("failed to reschedule reminders after update",
			"firearmID", firearmID, "error", err)
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// FirearmDeleteHandler deletes a firearm and cancels its reminders. Other
// records keep their schedules untouched.
func (f Firearm) FirearmDeleteHandler(w http.ResponseWriter, r *http.Request) {
	firearmID := mux.Vars(r)["firearm_id"]

	fID, err := primitive.ObjectIDFromHex(firearmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := f.DB.DeleteOne(ctx, bson.M{"_id": fID}); err != nil {
		config.ErrorStatus("failed to delete firearm", http.StatusInternalServerError, w, err)
		return
	}

	if err := f.Scheduler.CancelForFirearm(ctx, firearmID); err != nil {
		zap.S().Warnw("failed to cancel reminders after delete",
			"firearmID", firearmID, "error", err)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"deleted": true}`))
}

// NotificationToggleHandler enables or disables reminders for one firearm.
// Disabling cancels its pending reminders, enabling rebuilds them.
func (f Firearm) NotificationToggleHandler(w http.ResponseWriter, r *http.Request) {
	firearmID := mux.Vars(r)["firearm_id"]

	fID, err := primitive.ObjectIDFromHex(firearmID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	firearm, err := f.DB.FindOne(ctx, bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to get firearm by ID", http.StatusNotFound, w, err)
		return
	}

	if err := f.SettingsDB.SetEnabled(ctx, firearmID, body.Enabled); err != nil {
		config.ErrorStatus("failed to update notification setting", http.StatusInternalServerError, w, err)
		return
	}

	if body.Enabled {
		err = f.Scheduler.ScheduleForFirearm(ctx, *firearm)
	} else {
		err = f.Scheduler.CancelForFirearm(ctx, firearmID)
	}
	if err != nil {
		config.ErrorStatus("failed to apply notification setting", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(models.NotificationSetting{RecordID: firearmID, Enabled: body.Enabled})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// rejectDuplicate refuses a second record with the same title and serial
// number. The exclude id lets updates match against themselves.
func (f Firearm) rejectDuplicate(ctx context.Context, details models.FirearmDetails, exclude primitive.ObjectID) error {
	filter := bson.M{
		"firearm.title":        details.Title,
		"firearm.serialNumber": details.SerialNumber,
	}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := f.DB.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return &models.DuplicateRecordError{Title: details.Title, SerialNumber: details.SerialNumber}
	}
	return nil
}
