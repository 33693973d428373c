package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// EntrySource records how a time entry was created.
type EntrySource string

const (
	EntrySourceTimer  EntrySource = "timer"
	EntrySourceManual EntrySource = "manual"
)

func (s EntrySource) String() string { return string(s) }

// TaskRef identifies a catalog task together with its project and client.
type TaskRef struct {
	ClientID  uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
}

// TimeEntry is a tracked interval. An entry without EndTime is the user's
// open session; DurationHours is set exactly when EndTime is set.
type TimeEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ClientID      uuid.UUID
	ProjectID     uuid.UUID
	TaskID        uuid.UUID
	StartTime     time.Time
	EndTime       *time.Time
	DurationHours *float64
	Note          string
	// Date is the civil day the entry is attributed to, stored as midnight UTC.
	Date      time.Time
	Source    EntrySource
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the entry is a running session.
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// Hours returns the recorded duration, or 0 for an open entry.
func (e *TimeEntry) Hours() float64 {
	if e.DurationHours == nil {
		return 0
	}
	return *e.DurationHours
}

// Ref returns the catalog reference of the entry.
func (e *TimeEntry) Ref() TaskRef {
	return TaskRef{ClientID: e.ClientID, ProjectID: e.ProjectID, TaskID: e.TaskID}
}

// RoundHours rounds to two decimal places.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// HoursBetween returns end-start in hours rounded to two decimals. It works
// on microsecond timestamps since time.Duration saturates near 292 years.
func HoursBetween(start, end time.Time) float64 {
	return RoundHours(float64(end.UnixMicro()-start.UnixMicro()) / microsPerHour)
}

const microsPerHour = 3.6e9

// CivilDate returns the calendar day of t in loc as midnight UTC.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DayStart returns 00:00 of the civil date in loc.
func DayStart(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

// TimeEntryFilter selects entries for listing. Nil pointers mean "any".
type TimeEntryFilter struct {
	UserID   *uuid.UUID
	ClientID *uuid.UUID
	// From and To are inclusive civil dates.
	From *time.Time
	To   *time.Time
	// ClosedOnly excludes running sessions.
	ClosedOnly bool
	Limit      int
	Offset     int
}
