package saps

import (
	"context"
	"net/http"
	"time"
)

// Reachability is one sample of the enquiry endpoint's availability
type Reachability struct {
	Reachable bool      `json:"reachable"`
	LatencyMS int64     `json:"latencyMs"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Prober performs the lightweight periodic availability check for the
// enquiry endpoint. It is independent of the lookup pipeline and much
// simpler: one direct request, no proxies, no parsing.
type Prober struct {
	client   *http.Client
	endpoint string
}

// NewProber returns a prober against the enquiry endpoint
func NewProber() *Prober {
	return &Prober{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: enquiryEndpoint,
	}
}

// NewProberForEndpoint returns a prober against a custom endpoint, for tests
func NewProberForEndpoint(client *http.Client, endpoint string) *Prober {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Prober{client: client, endpoint: endpoint}
}

// Check performs a single reachability probe
func (p *Prober) Check(ctx context.Context) Reachability {
	started := time.Now()
	result := Reachability{CheckedAt: started}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.endpoint, nil)
	if err != nil {
		return result
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return result
	}
	defer resp.Body.Close()

	result.Reachable = resp.StatusCode < 500
	result.LatencyMS = time.Since(started).Milliseconds()
	return result
}
