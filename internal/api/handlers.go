// Package api implements the HTTP handlers for the ask service.
package api

import "time"

// BodyLimit is the outer request-body cap, a safety net above the per-file
// transport limits enforced in ingest.
const BodyLimit = "260M"

// Handler handles API requests. The server holds no state across requests;
// the clock is a field only so tests can pin the acceptance timestamp.
type Handler struct {
	now func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler() *Handler {
	return &Handler{now: time.Now}
}
