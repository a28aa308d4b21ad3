package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/saps"
)

// probeInterval is how often a connected reachability stream re-checks SAPS
const probeInterval = 30 * time.Second

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Reachability exported for testing purposes
type Reachability struct {
	Prober *saps.Prober
}

// StreamHandler upgrades the connection to a WebSocket and pushes a SAPS
// reachability probe result immediately and then on a fixed interval until
// the client disconnects.
func (h Reachability) StreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// drain reads so we notice the client going away
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(h.Prober.Check(r.Context())); err != nil {
		return
	}

	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteJSON(h.Prober.Check(r.Context())); err != nil {
				return
			}
		}
	}
}
