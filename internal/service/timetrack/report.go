package timetrack

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Report aggregates the closed entries dated in a month. It reads the store
// on every call. Workers only get their own time.
func (s *Service) Report(ctx context.Context, input ReportInput) (*domain.Report, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	scoped, err := scopeUser(userID, role, input.UserID)
	if err != nil {
		return nil, err
	}

	month := domain.MonthOf(s.clock.Now(), s.cfg.Location)
	if input.Month != nil {
		month = *input.Month
	}

	entries, err := s.entries.ListNamed(ctx, domain.ReportFilter{
		Month:    month,
		UserID:   scoped,
		ClientID: input.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("list report entries: %w", err)
	}

	return aggregate(month, entries), nil
}

// ClientSummary returns the tracked time of a client. Managers and admins only.
func (s *Service) ClientSummary(ctx context.Context, clientID uuid.UUID) (*domain.ClientSummary, error) {
	_, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !role.CanManage() {
		return nil, domain.ErrForbidden
	}
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "required")
	}

	summary, err := s.entries.ClientSummary(ctx, clientID, domain.MonthOf(s.clock.Now(), s.cfg.Location))
	if err != nil {
		return nil, fmt.Errorf("client summary: %w", err)
	}
	return summary, nil
}

// aggregate builds the report in integer hundredths of an hour, so the total
// equals the sum of every grouping exactly.
func aggregate(month domain.Month, entries []domain.NamedTimeEntry) *domain.Report {
	var total int64
	byClient := make(map[uuid.UUID]*group)
	byUser := make(map[uuid.UUID]*group)

	for i := range entries {
		e := &entries[i]
		c := hundredths(e.Hours())
		total += c

		add(byClient, e.ClientID, e.ClientName, c)
		add(byUser, e.UserID, e.UserName, c)
	}

	if entries == nil {
		entries = []domain.NamedTimeEntry{}
	}

	return &domain.Report{
		Month:        month,
		TotalHours:   fromHundredths(total),
		TotalEntries: len(entries),
		ByClient:     groups(byClient),
		ByUser:       groups(byUser),
		Entries:      entries,
	}
}

type group struct {
	name    string
	cents   int64
	entries int
}

func add(m map[uuid.UUID]*group, id uuid.UUID, name string, c int64) {
	g, ok := m[id]
	if !ok {
		if name == "" {
			name = id.String()
		}
		g = &group{name: name}
		m[id] = g
	}
	g.cents += c
	g.entries++
}

func groups(m map[uuid.UUID]*group) map[uuid.UUID]*domain.ReportGroup {
	out := make(map[uuid.UUID]*domain.ReportGroup, len(m))
	for id, g := range m {
		out[id] = &domain.ReportGroup{
			ID:      id,
			Name:    g.name,
			Hours:   fromHundredths(g.cents),
			Entries: g.entries,
		}
	}
	return out
}

func hundredths(h float64) int64 {
	return int64(math.Round(h * 100))
}

func fromHundredths(c int64) float64 {
	return float64(c) / 100
}
