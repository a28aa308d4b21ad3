package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/firearm-tracker-api/api"
	"github.com/linesmerrill/firearm-tracker-api/config"
	"github.com/linesmerrill/firearm-tracker-api/databases"
	"github.com/linesmerrill/firearm-tracker-api/saps"
)

// Status exported for testing purposes
type Status struct {
	DB      databases.ApplicationDatabase
	Fetcher *saps.Fetcher
}

// StatusHandler looks up the live SAPS processing status for a tracked
// application. The result is never stored; every call queries SAPS afresh.
func (s Status) StatusHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	application, err := s.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get application by ID", http.StatusNotFound, w, err)
		return
	}

	status, err := s.Fetcher.Lookup(r.Context(), application.Details)
	if err != nil {
		var schemaErr *saps.SchemaMismatchError
		var fetchErr *saps.FetchError
		switch {
		case errors.Is(err, saps.ErrNoMatch):
			config.ErrorStatus("no application matched the stored numbers", http.StatusNotFound, w, err)
		case errors.Is(err, saps.ErrPlannedDowntime):
			config.ErrorStatus("SAPS enquiry service is in its maintenance window", http.StatusServiceUnavailable, w, err)
		case errors.As(err, &schemaErr):
			config.ErrorStatus("SAPS result page changed shape", http.StatusBadGateway, w, err)
		case errors.As(err, &fetchErr):
			config.ErrorStatus("SAPS enquiry service unreachable", http.StatusServiceUnavailable, w, err)
		default:
			config.ErrorStatus("status lookup failed", http.StatusInternalServerError, w, err)
		}
		return
	}

	b, err := json.Marshal(status)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
