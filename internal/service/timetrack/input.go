package timetrack

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

const (
	maxNoteLength    = 2000
	maxAdjustHours   = 1000
	maxListPageLimit = 10000
)

func validateRef(errs []domain.FieldError, clientID, projectID, taskID uuid.UUID) []domain.FieldError {
	if clientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if projectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if taskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	return errs
}

func validateNote(errs []domain.FieldError, note string) []domain.FieldError {
	if utf8.RuneCountInString(note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 2000 characters"})
	}
	return errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// StartInput holds the parameters for starting a session.
type StartInput struct {
	ClientID  uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	errs := validateRef(nil, i.ClientID, i.ProjectID, i.TaskID)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *StartInput) ref() domain.TaskRef {
	return domain.TaskRef{ClientID: i.ClientID, ProjectID: i.ProjectID, TaskID: i.TaskID}
}

// StopInput holds the parameters for stopping the active session.
type StopInput struct {
	Note string
}

// Validate checks all fields and collects all errors.
func (i *StopInput) Validate() error {
	if errs := validateNote(nil, i.Note); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditInput holds the parameters for editing an entry. Nil fields are left
// unchanged.
type EditInput struct {
	EntryID   uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Note      *string
}

// Validate checks all fields and collects all errors.
func (i *EditInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.StartTime == nil && i.EndTime == nil && i.Note == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one of start_time, end_time, note is required"})
	}
	if i.StartTime != nil && i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "invalid"})
	}
	if i.EndTime != nil && i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "invalid"})
	}
	if i.Note != nil {
		errs = validateNote(errs, *i.Note)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *EditInput) changesTimes() bool {
	return i.StartTime != nil || i.EndTime != nil
}

// AdjustInput holds the parameters for a signed duration correction.
type AdjustInput struct {
	EntryID    uuid.UUID
	DeltaHours float64
}

// Validate checks all fields and collects all errors.
func (i *AdjustInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !finite(i.DeltaHours) || math.Abs(i.DeltaHours) > maxAdjustHours {
		errs = append(errs, domain.FieldError{Field: "adjustment_hours", Message: "must be a number between -1000 and 1000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManualInput holds the parameters for a manual back-fill entry.
type ManualInput struct {
	// UserID is the owner; nil means the caller.
	UserID        *uuid.UUID
	ClientID      uuid.UUID
	ProjectID     uuid.UUID
	TaskID        uuid.UUID
	Date          time.Time
	DurationHours float64
	Note          string
}

// Validate checks all fields against the configured manual entry limit.
func (i *ManualInput) Validate(maxHours float64) error {
	errs := validateRef(nil, i.ClientID, i.ProjectID, i.TaskID)

	if i.UserID != nil && *i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "invalid"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	switch {
	case !finite(i.DurationHours) || domain.RoundHours(i.DurationHours) <= 0:
		errs = append(errs, domain.FieldError{Field: "duration_hours", Message: "must be positive"})
	case i.DurationHours > maxHours:
		errs = append(errs, domain.FieldError{Field: "duration_hours", Message: "exceeds the maximum for a single day"})
	}
	errs = validateNote(errs, i.Note)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *ManualInput) ref() domain.TaskRef {
	return domain.TaskRef{ClientID: i.ClientID, ProjectID: i.ProjectID, TaskID: i.TaskID}
}

// ListInput holds the parameters for listing entries.
type ListInput struct {
	UserID   *uuid.UUID
	ClientID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 10000"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReportInput holds the parameters for a monthly report. A nil Month means
// the current month.
type ReportInput struct {
	Month    *domain.Month
	UserID   *uuid.UUID
	ClientID *uuid.UUID
}
