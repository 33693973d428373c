package rest

import "net/http"

// ActivePath is polled by clients and usually exempt from rate limiting.
const ActivePath = "/api/time_tracking/active"

// Register mounts the time tracking routes on mux.
func (h *TimeTrackHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+ActivePath, h.Active)
	mux.HandleFunc("POST /api/time_tracking/start", h.Start)
	mux.HandleFunc("POST /api/time_tracking/stop", h.Stop)
	mux.HandleFunc("POST /api/time_tracking/cancel", h.Cancel)

	mux.HandleFunc("GET /api/time_tracking/entries", h.Entries)
	mux.HandleFunc("GET /api/time_tracking/entry/{id}", h.GetEntry)
	mux.HandleFunc("PUT /api/time_tracking/entry/{id}", h.Edit)
	mux.HandleFunc("DELETE /api/time_tracking/entry/{id}", h.Delete)
	mux.HandleFunc("POST /api/time_tracking/manual", h.Manual)
	mux.HandleFunc("POST /api/time_tracking/adjust/{id}", h.Adjust)

	mux.HandleFunc("GET /api/time_tracking/report", h.Report)
	mux.HandleFunc("GET /api/time_tracking/report/export", h.Export)
	mux.HandleFunc("GET /api/time_tracking/clients/{id}/summary", h.ClientSummary)
}

// Register mounts the probe routes on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}
