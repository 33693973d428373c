// Package ttclient is an HTTP client for the time tracking API, plus a
// polling watcher that keeps the believed session across transient failures.
package ttclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiPrefix = "/api/time_tracking"

// State is the outcome of polling for the active session.
type State int

const (
	// StateUnknown means the poll failed; nothing is known about the session.
	StateUnknown State = iota
	// StateNone means the server confirmed that no session is open.
	StateNone
	// StateActive means the server returned an open session.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Entry is a time entry as returned by the API. EndTime and DurationHours
// are nil for a running session.
type Entry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ClientID      uuid.UUID  `json:"client_id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	TaskID        uuid.UUID  `json:"task_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	DurationHours *float64   `json:"duration_hours"`
	Note          string     `json:"note"`
	Date          string     `json:"date"`
	Source        string     `json:"source"`
	IsActive      bool       `json:"is_active"`
}

// Poll is the result of Client.Active.
type Poll struct {
	State   State
	Session *Entry
	Err     error
}

// Group is one report breakdown bucket.
type Group struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Entries int     `json:"entries"`
}

// ReportEntry is a report detail row with display names.
type ReportEntry struct {
	Entry
	UserName    string `json:"user_name"`
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
	TaskTitle   string `json:"task_title"`
}

// Report is a monthly report.
type Report struct {
	Month        string           `json:"month"`
	TotalHours   float64          `json:"total_hours"`
	TotalEntries int              `json:"total_entries"`
	ByClient     map[string]Group `json:"by_client"`
	ByUser       map[string]Group `json:"by_user"`
	Entries      []ReportEntry    `json:"entries"`
}

// ReportQuery selects a report. Zero values mean the server default.
type ReportQuery struct {
	Month    string
	UserID   uuid.UUID
	ClientID uuid.UUID
}

func (q ReportQuery) values() url.Values {
	v := url.Values{}
	if q.Month != "" {
		v.Set("month", q.Month)
	}
	if q.UserID != uuid.Nil {
		v.Set("user_id", q.UserID.String())
	}
	if q.ClientID != uuid.Nil {
		v.Set("client_id", q.ClientID.String())
	}
	return v
}

// APIError is a structured failure returned by the server.
type APIError struct {
	Status    int
	Code      string
	Message   string
	Retryable bool
	// ActiveSession is set on an active_session_conflict.
	ActiveSession *Entry
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client talks to the time tracking API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the server at baseURL authenticating with token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Active polls for the open session. It never returns StateNone unless the
// server explicitly said so.
func (c *Client) Active(ctx context.Context) Poll {
	var resp struct {
		Success       bool            `json:"success"`
		ActiveSession json.RawMessage `json:"active_session"`
	}
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/active", nil, &resp); err != nil {
		return Poll{State: StateUnknown, Err: err}
	}
	if !resp.Success {
		return Poll{State: StateUnknown, Err: errors.New("active: success=false")}
	}
	// A missing field is not a confirmation.
	if len(resp.ActiveSession) == 0 {
		return Poll{State: StateUnknown, Err: errors.New("active: response has no active_session field")}
	}
	if string(resp.ActiveSession) == "null" {
		return Poll{State: StateNone}
	}

	var e Entry
	if err := json.Unmarshal(resp.ActiveSession, &e); err != nil {
		return Poll{State: StateUnknown, Err: fmt.Errorf("decode active session: %w", err)}
	}
	return Poll{State: StateActive, Session: &e}
}

// Start opens a session on the given task.
func (c *Client) Start(ctx context.Context, clientID, projectID, taskID uuid.UUID) (*Entry, error) {
	body := map[string]uuid.UUID{"client_id": clientID, "project_id": projectID, "task_id": taskID}
	var resp struct {
		Session Entry `json:"session"`
	}
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/start", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// Stop closes the open session with an optional note.
func (c *Client) Stop(ctx context.Context, note string) (*Entry, error) {
	var body any
	if note != "" {
		body = map[string]string{"note": note}
	}
	var resp struct {
		Entry Entry `json:"entry"`
	}
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/stop", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Entry, nil
}

// Cancel discards the open session.
func (c *Client) Cancel(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, apiPrefix+"/cancel", nil, nil)
}

// Report fetches a monthly report.
func (c *Client) Report(ctx context.Context, q ReportQuery) (*Report, error) {
	var r Report
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/report?"+q.values().Encode(), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ReportCSV streams the CSV export of a report into w.
func (c *Client) ReportCSV(ctx context.Context, q ReportQuery, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, apiPrefix+"/report/export?"+q.values().Encode(), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error         string `json:"error"`
		Code          string `json:"code"`
		Retryable     bool   `json:"retryable"`
		ActiveSession *Entry `json:"active_session"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		return &APIError{Status: resp.StatusCode, Code: "http_error", Message: strings.TrimSpace(string(raw))}
	}
	return &APIError{
		Status:        resp.StatusCode,
		Code:          body.Code,
		Message:       body.Error,
		Retryable:     body.Retryable,
		ActiveSession: body.ActiveSession,
	}
}
