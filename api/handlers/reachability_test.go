package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/firearm-tracker-api/api/handlers"
	"github.com/linesmerrill/firearm-tracker-api/saps"
)

func TestReachability_StreamHandlerPushesFirstProbe(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	h := handlers.Reachability{Prober: saps.NewProberForEndpoint(nil, upstream.URL)}
	server := httptest.NewServer(http.HandlerFunc(h.StreamHandler))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	var probe saps.Reachability
	assert.NoError(t, conn.ReadJSON(&probe))
	assert.True(t, probe.Reachable)
	assert.False(t, probe.CheckedAt.IsZero())
}

func TestReachability_StreamHandlerReportsDownUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	h := handlers.Reachability{Prober: saps.NewProberForEndpoint(nil, upstream.URL)}
	server := httptest.NewServer(http.HandlerFunc(h.StreamHandler))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	var probe saps.Reachability
	assert.NoError(t, conn.ReadJSON(&probe))
	assert.False(t, probe.Reachable)
}
