package models

import "fmt"

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// ValidationError reports bad form input. It is surfaced to the caller at the
// handler boundary and never propagates further up.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateRecordError reports a violation of the soft-unique (title, serial)
// constraint on firearm records. Both fields must be non-empty for the
// constraint to apply.
type DuplicateRecordError struct {
	Title        string
	SerialNumber string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("a firearm titled %q with serial number %q already exists", e.Title, e.SerialNumber)
}
