package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/firearm-tracker-api/api/handlers"
)

func TestHealthCheckHandler(t *testing.T) {
	a := handlers.App{Scheduler: newIdleScheduler()}
	router := a.New()

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive": true}`, rr.Body.String())
}

func TestSectionCatalogHandler(t *testing.T) {
	a := handlers.App{Scheduler: newIdleScheduler()}
	router := a.New()

	req, err := http.NewRequest("GET", "/api/v1/sections", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// dedicated firearm licences run five years, section 16 runs ten
	assert.Contains(t, rr.Body.String(), "section13")
	assert.Contains(t, rr.Body.String(), "section16")
	assert.Contains(t, rr.Body.String(), "section21")
}

func TestRouterRegistersRecordRoutes(t *testing.T) {
	a := handlers.App{Scheduler: newIdleScheduler()}
	router := a.New()

	// unknown routes 404, registered routes reach their handler
	req, _ := http.NewRequest("GET", "/api/v1/nonexistent", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req, _ = http.NewRequest("POST", "/api/v1/firearm", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
