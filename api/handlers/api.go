// Package handlers holds the HTTP surface of the firearm tracker: record
// CRUD, SAPS status lookups, the reachability stream and health checks.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/api"
	"github.com/linesmerrill/firearm-tracker-api/api/scheduler"
	"github.com/linesmerrill/firearm-tracker-api/config"
	"github.com/linesmerrill/firearm-tracker-api/databases"
	"github.com/linesmerrill/firearm-tracker-api/models"
	"github.com/linesmerrill/firearm-tracker-api/notify"
	"github.com/linesmerrill/firearm-tracker-api/saps"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)

	f := Firearm{
		DB:         databases.NewFirearmDatabase(a.dbHelper),
		SettingsDB: databases.NewSettingsDatabase(a.dbHelper),
		Scheduler:  a.Scheduler,
	}
	ap := Application{
		DB:        databases.NewApplicationDatabase(a.dbHelper),
		Scheduler: a.Scheduler,
	}
	st := Status{
		DB:      databases.NewApplicationDatabase(a.dbHelper),
		Fetcher: saps.NewFetcher(),
	}
	reach := Reachability{Prober: saps.NewProber()}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/firearm", http.HandlerFunc(f.FirearmListHandler)).Methods("GET")
	apiCreate.Handle("/firearm", http.HandlerFunc(f.FirearmCreateHandler)).Methods("POST")
	apiCreate.Handle("/firearm/{firearm_id}", http.HandlerFunc(f.FirearmByIDHandler)).Methods("GET")
	apiCreate.Handle("/firearm/{firearm_id}", http.HandlerFunc(f.FirearmUpdateHandler)).Methods("PUT")
	apiCreate.Handle("/firearm/{firearm_id}", http.HandlerFunc(f.FirearmDeleteHandler)).Methods("DELETE")
	apiCreate.Handle("/firearm/{firearm_id}/notifications", http.HandlerFunc(f.NotificationToggleHandler)).Methods("PUT")

	apiCreate.Handle("/application", http.HandlerFunc(ap.ApplicationListHandler)).Methods("GET")
	apiCreate.Handle("/application", http.HandlerFunc(ap.ApplicationCreateHandler)).Methods("POST")
	apiCreate.Handle("/application/{application_id}", http.HandlerFunc(ap.ApplicationByIDHandler)).Methods("GET")
	apiCreate.Handle("/application/{application_id}", http.HandlerFunc(ap.ApplicationUpdateHandler)).Methods("PUT")
	apiCreate.Handle("/application/{application_id}", http.HandlerFunc(ap.ApplicationDeleteHandler)).Methods("DELETE")
	apiCreate.Handle("/application/{application_id}/status", http.HandlerFunc(st.StatusHandler)).Methods("GET")

	apiCreate.Handle("/saps/reachability", http.HandlerFunc(reach.StreamHandler)).Methods("GET")

	apiCreate.Handle("/sections", http.HandlerFunc(sectionCatalogHandler)).Methods("GET")

	return r
}

// Initialize connects to the database and wires the reminder scheduler
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("firearm-tracker-api has connected to the database")

	notifier := notify.NewLocal(notify.NewExpoSender(expoTokensFromEnv))

	a.Scheduler = scheduler.NewScheduler(
		databases.NewFirearmDatabase(a.dbHelper),
		databases.NewApplicationDatabase(a.dbHelper),
		databases.NewScheduleDatabase(a.dbHelper, databases.FirearmScheduleName),
		databases.NewScheduleDatabase(a.dbHelper, databases.ApplicationScheduleName),
		databases.NewCounterDatabase(a.dbHelper),
		databases.NewSettingsDatabase(a.dbHelper),
		notifier,
		scheduler.NewMailer(a.Config.OwnerEmail),
	)

	a.Router = a.New()
	return nil
}

// expoTokensFromEnv reads the push token list fresh on every send so a
// restart is not needed after registering a new device.
func expoTokensFromEnv() []string {
	raw := os.Getenv("EXPO_PUSH_TOKENS")
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// sectionCatalogHandler returns the Firearms Control Act licence sections
// with their validity periods
func sectionCatalogHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(models.LicenceSections)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
