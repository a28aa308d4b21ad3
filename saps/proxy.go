package saps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Proxy describes one CORS proxy transport the enquiry page can be reached
// through. Proxies differ in how the target URL is embedded and in their
// response envelope: allorigins wraps the page in a JSON document, the rest
// relay the raw HTML body.
type Proxy struct {
	Name         string
	Wrap         func(target string) string
	JSONEnvelope bool
}

// allOriginsEnvelope is the JSON wrapper allorigins puts around the page
type allOriginsEnvelope struct {
	Status struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
	Contents string `json:"contents"`
}

// DefaultProxies returns the ordered proxy list. Order matters: the fetch
// pipeline tries each sequentially and stops at the first success.
func DefaultProxies() []Proxy {
	return []Proxy{
		{
			Name:         "allorigins",
			Wrap:         func(t string) string { return "https://api.allorigins.win/get?url=" + url.QueryEscape(t) },
			JSONEnvelope: true,
		},
		{
			Name: "corsproxy.io",
			Wrap: func(t string) string { return "https://corsproxy.io/?url=" + url.QueryEscape(t) },
		},
		{
			Name: "cors-anywhere",
			Wrap: func(t string) string { return "https://cors-anywhere.herokuapp.com/" + t },
		},
		{
			Name: "codetabs",
			Wrap: func(t string) string { return "https://api.codetabs.com/v1/proxy?quest=" + url.QueryEscape(t) },
		},
	}
}

// Fetch retrieves the target page through this proxy and normalizes the
// response to a raw HTML string. Timeouts, non-2xx responses and empty bodies
// are all failures; the caller advances to the next proxy.
func (p Proxy) Fetch(ctx context.Context, client *http.Client, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Wrap(target), nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to build request: %w", p.Name, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: unexpected status %d", p.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: failed to read body: %w", p.Name, err)
	}

	html := string(body)
	if p.JSONEnvelope {
		var envelope allOriginsEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return "", fmt.Errorf("%s: failed to decode envelope: %w", p.Name, err)
		}
		if envelope.Status.HTTPCode != 0 && (envelope.Status.HTTPCode < 200 || envelope.Status.HTTPCode > 299) {
			return "", fmt.Errorf("%s: upstream status %d", p.Name, envelope.Status.HTTPCode)
		}
		html = envelope.Contents
	}

	if html == "" {
		return "", fmt.Errorf("%s: empty response body", p.Name)
	}
	return html, nil
}
