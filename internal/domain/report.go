package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Month is a calendar month used as a report period.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	local := t.In(loc)
	return Month{Year: local.Year(), Month: local.Month()}
}

// First returns the first civil day of the month (midnight UTC).
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last civil day of the month (midnight UTC).
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ReportFilter selects closed entries for a report.
type ReportFilter struct {
	Month    Month
	UserID   *uuid.UUID
	ClientID *uuid.UUID
}

// EntryNames are catalog display names for an entry. Empty strings mean the
// reference could not be resolved.
type EntryNames struct {
	UserName    string
	ClientName  string
	ProjectName string
	TaskTitle   string
}

// NamedTimeEntry is a time entry with its resolved display names.
type NamedTimeEntry struct {
	TimeEntry
	EntryNames
}

// ReportGroup is the per-key aggregate of a report.
type ReportGroup struct {
	ID      uuid.UUID
	Name    string
	Hours   float64
	Entries int
}

// Report is the aggregated view of a month of tracked time.
type Report struct {
	Month        Month
	TotalHours   float64
	TotalEntries int
	ByClient     map[uuid.UUID]*ReportGroup
	ByUser       map[uuid.UUID]*ReportGroup
	Entries      []NamedTimeEntry
}

// ClientSummary is the tracked time of a single client.
type ClientSummary struct {
	ClientID       uuid.UUID
	TotalHours     float64
	ThisMonthHours float64
	TotalEntries   int
}
