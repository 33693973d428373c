package timetrack

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// utf8BOM makes spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// ExportReport writes the report for input as CSV to w and returns the
// report's month.
func (s *Service) ExportReport(ctx context.Context, input ReportInput, w io.Writer) (domain.Month, error) {
	report, err := s.Report(ctx, input)
	if err != nil {
		return domain.Month{}, err
	}
	if err := WriteReportCSV(w, report, s.cfg.Location); err != nil {
		return domain.Month{}, fmt.Errorf("write report csv: %w", err)
	}
	return report.Month, nil
}

// WriteReportCSV renders a report as a summary block, per-client and per-user
// blocks, and one detail row per entry. Times are shown in loc.
func WriteReportCSV(w io.Writer, r *domain.Report, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	write := func(rec ...string) {
		// Errors are sticky in csv.Writer and reported by Error below.
		_ = cw.Write(rec)
	}

	write("Time tracking report", r.Month.String())
	write("Total hours", formatHours(r.TotalHours))
	write("Total entries", strconv.Itoa(r.TotalEntries))
	write()

	write("By client")
	write("Client", "Hours", "Entries")
	for _, g := range sortedGroups(r.ByClient) {
		write(g.Name, formatHours(g.Hours), strconv.Itoa(g.Entries))
	}
	write()

	write("By user")
	write("User", "Hours", "Entries")
	for _, g := range sortedGroups(r.ByUser) {
		write(g.Name, formatHours(g.Hours), strconv.Itoa(g.Entries))
	}
	write()

	write("Entries")
	write("Date", "User", "Client", "Project", "Task", "Start", "End", "Hours", "Note")
	for i := range r.Entries {
		e := &r.Entries[i]
		end := ""
		if e.EndTime != nil {
			end = e.EndTime.In(loc).Format("15:04")
		}
		write(
			e.Date.Format(time.DateOnly),
			orID(e.UserName, e.UserID.String()),
			orID(e.ClientName, e.ClientID.String()),
			orID(e.ProjectName, e.ProjectID.String()),
			orID(e.TaskTitle, e.TaskID.String()),
			e.StartTime.In(loc).Format("15:04"),
			end,
			formatHours(e.Hours()),
			e.Note,
		)
	}

	cw.Flush()
	return cw.Error()
}

func sortedGroups(m map[uuid.UUID]*domain.ReportGroup) []*domain.ReportGroup {
	out := make([]*domain.ReportGroup, 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func orID(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
