// Package saps fetches and parses firearm application status from the SAPS
// enquiry page, reached through an ordered list of CORS proxy transports.
package saps

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/calendar"
	"github.com/linesmerrill/firearm-tracker-api/models"
)

// OverdueThreshold is the SAPS service-level target in working days. An
// application pending longer than this is flagged overdue.
const OverdueThreshold = 90

// attemptTimeout bounds each individual proxy attempt so one hung proxy
// cannot block the user-visible action.
const attemptTimeout = 8 * time.Second

// sast is South Africa Standard Time, UTC+2, no daylight saving
var sast = time.FixedZone("SAST", 2*60*60)

// Fetcher runs enquiry lookups through the proxy fallback chain
type Fetcher struct {
	client  *http.Client
	proxies []Proxy
	now     func() time.Time
}

// NewFetcher returns a fetcher over the default proxy list
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: attemptTimeout},
		proxies: DefaultProxies(),
		now:     time.Now,
	}
}

// NewFetcherWithProxies returns a fetcher over a custom proxy list and clock,
// used by tests and by deployments that pin their own proxy set.
func NewFetcherWithProxies(client *http.Client, proxies []Proxy, now func() time.Time) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: attemptTimeout}
	}
	if now == nil {
		now = time.Now
	}
	return &Fetcher{client: client, proxies: proxies, now: now}
}

// Lookup fetches the current status for an application. The result is
// ephemeral: callers display it and throw it away, nothing is persisted.
// Lookups inside the SAPS nightly maintenance window (00:00-00:30 SAST)
// short-circuit with ErrPlannedDowntime before any network traffic.
func (f *Fetcher) Lookup(ctx context.Context, details models.ApplicationDetails) (*models.Status, error) {
	if inMaintenanceWindow(f.now()) {
		return nil, ErrPlannedDowntime
	}

	target, err := BuildQuery(details)
	if err != nil {
		return nil, err
	}

	html, err := f.fetchWithFallback(ctx, target)
	if err != nil {
		return nil, err
	}

	row, err := parseResultRow(html)
	if err != nil {
		return nil, err
	}

	pending := calendar.WorkingDaysBetween(details.DateApplied.Time(), f.now())

	return &models.Status{
		ApplicationType:    row.ApplicationType,
		ApplicationNumber:  row.ApplicationNumber,
		Calibre:            row.Calibre,
		Make:               row.Make,
		StatusDescription:  row.Status,
		Description:        row.Description,
		NextStep:           row.NextStep,
		WorkingDaysPending: pending,
		IsOverdue:          pending > OverdueThreshold,
	}, nil
}

// fetchWithFallback tries each proxy strictly in order, to completion or
// failure, before moving to the next. Exhausting the list yields a single
// aggregated FetchError carrying the last underlying cause.
func (f *Fetcher) fetchWithFallback(ctx context.Context, target string) (string, error) {
	var lastErr error
	for _, proxy := range f.proxies {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		html, err := proxy.Fetch(attemptCtx, f.client, target)
		cancel()
		if err == nil {
			zap.S().Debugw("enquiry page fetched", "proxy", proxy.Name)
			return html, nil
		}
		zap.S().Warnw("proxy attempt failed, trying next",
			"proxy", proxy.Name,
			"error", err,
		)
		lastErr = err
	}
	return "", &FetchError{Attempts: len(f.proxies), LastErr: lastErr}
}

// inMaintenanceWindow reports whether t falls inside the SAPS site's planned
// nightly downtime, 00:00-00:30 South Africa Standard Time.
func inMaintenanceWindow(t time.Time) bool {
	local := t.In(sast)
	return local.Hour() == 0 && local.Minute() < 30
}
