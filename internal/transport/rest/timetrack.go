package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/service/timetrack"
	"github.com/heartmarshall/timetrack-backend/pkg/clock"
	"github.com/heartmarshall/timetrack-backend/pkg/elapsed"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// timetrackService defines the minimal interface needed by TimeTrackHandler.
type timetrackService interface {
	Start(ctx context.Context, input timetrack.StartInput) (*domain.TimeEntry, error)
	GetActive(ctx context.Context) (*domain.TimeEntry, error)
	Stop(ctx context.Context, input timetrack.StopInput) (*domain.TimeEntry, error)
	Cancel(ctx context.Context) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, input timetrack.ListInput) ([]domain.TimeEntry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	Edit(ctx context.Context, input timetrack.EditInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, entryID uuid.UUID) error
	Adjust(ctx context.Context, input timetrack.AdjustInput) (*domain.TimeEntry, error)
	CreateManual(ctx context.Context, input timetrack.ManualInput) (*domain.TimeEntry, error)
	Report(ctx context.Context, input timetrack.ReportInput) (*domain.Report, error)
	ExportReport(ctx context.Context, input timetrack.ReportInput, w io.Writer) (domain.Month, error)
	ClientSummary(ctx context.Context, clientID uuid.UUID) (*domain.ClientSummary, error)
	Location() *time.Location
}

// TimeTrackHandler serves the /api/time_tracking endpoints.
type TimeTrackHandler struct {
	svc   timetrackService
	clock clock.Clock
	log   *slog.Logger
}

// NewTimeTrackHandler creates a TimeTrackHandler.
func NewTimeTrackHandler(svc timetrackService, clk clock.Clock, logger *slog.Logger) *TimeTrackHandler {
	if clk == nil {
		clk = clock.Real{}
	}
	return &TimeTrackHandler{svc: svc, clock: clk, log: logger.With("handler", "timetrack")}
}

// ---------------------------------------------------------------------------
// Request / response types
// ---------------------------------------------------------------------------

type startRequest struct {
	ClientID  uuid.UUID `json:"client_id"`
	ProjectID uuid.UUID `json:"project_id"`
	TaskID    uuid.UUID `json:"task_id"`
}

type stopRequest struct {
	Note string `json:"note"`
}

type editRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Note      *string    `json:"note"`
}

type manualRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	ClientID      uuid.UUID  `json:"client_id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	TaskID        uuid.UUID  `json:"task_id"`
	Date          string     `json:"date"`
	DurationHours float64    `json:"duration_hours"`
	Note          string     `json:"note"`
}

type adjustRequest struct {
	AdjustmentHours *float64 `json:"adjustment_hours"`
}

// hours marshals with exactly two decimals.
type hours float64

func (h hours) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(h), 'f', 2, 64)), nil
}

type entryResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	ClientID      string  `json:"client_id"`
	ProjectID     string  `json:"project_id"`
	TaskID        string  `json:"task_id"`
	StartTime     string  `json:"start_time"`
	EndTime       *string `json:"end_time"`
	DurationHours *hours  `json:"duration_hours"`
	Note          string  `json:"note"`
	Date          string  `json:"date"`
	Source        string  `json:"source"`
	IsActive      bool    `json:"is_active"`
}

type namedEntryResponse struct {
	entryResponse
	UserName    string `json:"user_name"`
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
	TaskTitle   string `json:"task_title"`
}

type groupResponse struct {
	Name    string `json:"name"`
	Hours   hours  `json:"hours"`
	Entries int    `json:"entries"`
}

type activeResponse struct {
	Success        bool           `json:"success"`
	ActiveSession  *entryResponse `json:"active_session"`
	ElapsedSeconds *int64         `json:"elapsed_seconds,omitempty"`
}

type sessionResponse struct {
	Success bool          `json:"success"`
	Session entryResponse `json:"session"`
}

type entryEnvelope struct {
	Success bool          `json:"success"`
	Entry   entryResponse `json:"entry"`
	Message string        `json:"message,omitempty"`
}

type entriesResponse struct {
	Success bool            `json:"success"`
	Entries []entryResponse `json:"entries"`
}

type reportResponse struct {
	Success      bool                     `json:"success"`
	Month        string                   `json:"month"`
	TotalHours   hours                    `json:"total_hours"`
	TotalEntries int                      `json:"total_entries"`
	ByClient     map[string]groupResponse `json:"by_client"`
	ByUser       map[string]groupResponse `json:"by_user"`
	Entries      []namedEntryResponse     `json:"entries"`
}

type summaryResponse struct {
	Success        bool   `json:"success"`
	ClientID       string `json:"client_id"`
	TotalHours     hours  `json:"total_hours"`
	ThisMonthHours hours  `json:"this_month_hours"`
	TotalEntries   int    `json:"total_entries"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ---------------------------------------------------------------------------
// Session endpoints
// ---------------------------------------------------------------------------

// Active handles GET /api/time_tracking/active. A missing session is an
// explicit null, never an error.
func (h *TimeTrackHandler) Active(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetActive(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := activeResponse{Success: true}
	if entry != nil {
		e := h.toEntry(entry)
		secs := int64(elapsed.Since(entry.StartTime, h.clock.Now()) / time.Second)
		resp.ActiveSession = &e
		resp.ElapsedSeconds = &secs
	}
	writeJSON(w, http.StatusOK, resp)
}

// Start handles POST /api/time_tracking/start.
func (h *TimeTrackHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	entry, err := h.svc.Start(r.Context(), timetrack.StartInput{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Success: true, Session: h.toEntry(entry)})
}

// Stop handles POST /api/time_tracking/stop. The body is optional.
func (h *TimeTrackHandler) Stop(w http.ResponseWriter, r *http.Request) {
	var req stopRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	entry, err := h.svc.Stop(r.Context(), timetrack.StopInput{Note: req.Note})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryEnvelope{Success: true, Entry: h.toEntry(entry)})
}

// Cancel handles POST /api/time_tracking/cancel.
func (h *TimeTrackHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Cancel(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "session cancelled"})
}

// ---------------------------------------------------------------------------
// Entry endpoints
// ---------------------------------------------------------------------------

// Entries handles GET /api/time_tracking/entries.
func (h *TimeTrackHandler) Entries(w http.ResponseWriter, r *http.Request) {
	q := queryParser{values: r.URL.Query()}
	input := timetrack.ListInput{
		UserID:   q.uuid("user_id"),
		ClientID: q.uuid("client_id"),
		From:     q.date("from"),
		To:       q.date("to"),
		Limit:    q.int("limit"),
		Offset:   q.int("offset"),
	}
	if q.failed() {
		h.handleError(w, r, q.err())
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := entriesResponse{Success: true, Entries: make([]entryResponse, 0, len(entries))}
	for i := range entries {
		resp.Entries = append(resp.Entries, h.toEntry(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetEntry handles GET /api/time_tracking/entry/{id}.
func (h *TimeTrackHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryEnvelope{Success: true, Entry: h.toEntry(entry)})
}

// Edit handles PUT /api/time_tracking/entry/{id}.
func (h *TimeTrackHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req editRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	entry, err := h.svc.Edit(r.Context(), timetrack.EditInput{
		EntryID:   id,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryEnvelope{Success: true, Entry: h.toEntry(entry)})
}

// Delete handles DELETE /api/time_tracking/entry/{id}.
func (h *TimeTrackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Manual handles POST /api/time_tracking/manual.
func (h *TimeTrackHandler) Manual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	var date time.Time
	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		date = d
	}

	entry, err := h.svc.CreateManual(r.Context(), timetrack.ManualInput{
		UserID:        req.UserID,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		TaskID:        req.TaskID,
		Date:          date,
		DurationHours: req.DurationHours,
		Note:          req.Note,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryEnvelope{Success: true, Entry: h.toEntry(entry)})
}

// Adjust handles POST /api/time_tracking/adjust/{id}.
func (h *TimeTrackHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req adjustRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	if req.AdjustmentHours == nil {
		h.handleError(w, r, domain.NewValidationError("adjustment_hours", "required"))
		return
	}

	entry, err := h.svc.Adjust(r.Context(), timetrack.AdjustInput{EntryID: id, DeltaHours: *req.AdjustmentHours})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryEnvelope{
		Success: true,
		Entry:   h.toEntry(entry),
		Message: fmt.Sprintf("duration adjusted by %+.2f hours", *req.AdjustmentHours),
	})
}

// ---------------------------------------------------------------------------
// Reporting endpoints
// ---------------------------------------------------------------------------

// Report handles GET /api/time_tracking/report.
func (h *TimeTrackHandler) Report(w http.ResponseWriter, r *http.Request) {
	input, ok := h.reportInput(w, r)
	if !ok {
		return
	}

	report, err := h.svc.Report(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := reportResponse{
		Success:      true,
		Month:        report.Month.String(),
		TotalHours:   hours(report.TotalHours),
		TotalEntries: report.TotalEntries,
		ByClient:     toGroups(report.ByClient),
		ByUser:       toGroups(report.ByUser),
		Entries:      make([]namedEntryResponse, 0, len(report.Entries)),
	}
	for i := range report.Entries {
		e := &report.Entries[i]
		resp.Entries = append(resp.Entries, namedEntryResponse{
			entryResponse: h.toEntry(&e.TimeEntry),
			UserName:      e.UserName,
			ClientName:    e.ClientName,
			ProjectName:   e.ProjectName,
			TaskTitle:     e.TaskTitle,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/time_tracking/report/export. The CSV is rendered
// in full before any byte is sent, so failures still get a JSON error.
func (h *TimeTrackHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, ok := h.reportInput(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	month, err := h.svc.ExportReport(r.Context(), input, &buf)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="time_report_%s.csv"`, month))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WarnContext(r.Context(), "write csv export", slog.String("error", err.Error()))
	}
}

// ClientSummary handles GET /api/time_tracking/clients/{id}/summary.
func (h *TimeTrackHandler) ClientSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.ClientSummary(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		Success:        true,
		ClientID:       s.ClientID.String(),
		TotalHours:     hours(s.TotalHours),
		ThisMonthHours: hours(s.ThisMonthHours),
		TotalEntries:   s.TotalEntries,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *TimeTrackHandler) reportInput(w http.ResponseWriter, r *http.Request) (timetrack.ReportInput, bool) {
	q := queryParser{values: r.URL.Query()}
	input := timetrack.ReportInput{
		Month:    q.month("month"),
		UserID:   q.uuid("user_id"),
		ClientID: q.uuid("client_id"),
	}
	if q.failed() {
		h.handleError(w, r, q.err())
		return input, false
	}
	return input, true
}

// decode reads a JSON body into v. With optional set an empty body is accepted.
func (h *TimeTrackHandler) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		h.handleError(w, r, domain.NewValidationError("body", "invalid request body: "+err.Error()))
		return false
	}
	return true
}

func (h *TimeTrackHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *TimeTrackHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := errorStatus(err, h.toEntry)
	h.log.Log(r.Context(), logLevelFor(status), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("code", resp.Code),
		slog.String("error", err.Error()),
	)
	writeJSON(w, status, resp)
}

func (h *TimeTrackHandler) toEntry(e *domain.TimeEntry) entryResponse {
	loc := h.svc.Location()
	resp := entryResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID.String(),
		ClientID:  e.ClientID.String(),
		ProjectID: e.ProjectID.String(),
		TaskID:    e.TaskID.String(),
		StartTime: e.StartTime.In(loc).Format(time.RFC3339),
		Note:      e.Note,
		Date:      e.Date.Format(time.DateOnly),
		Source:    e.Source.String(),
		IsActive:  e.IsOpen(),
	}
	if e.EndTime != nil {
		end := e.EndTime.In(loc).Format(time.RFC3339)
		resp.EndTime = &end
	}
	if e.DurationHours != nil {
		d := hours(*e.DurationHours)
		resp.DurationHours = &d
	}
	return resp
}

// toGroups keys each group by its id.
func toGroups(m map[uuid.UUID]*domain.ReportGroup) map[string]groupResponse {
	out := make(map[string]groupResponse, len(m))
	for id, g := range m {
		out[id.String()] = groupResponse{Name: g.Name, Hours: hours(g.Hours), Entries: g.Entries}
	}
	return out
}
