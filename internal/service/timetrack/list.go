package timetrack

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ListEntries returns entries visible to the caller, newest first. Workers
// only see their own entries.
func (s *Service) ListEntries(ctx context.Context, input ListInput) ([]domain.TimeEntry, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	scoped, err := scopeUser(userID, role, input.UserID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	entries, err := s.entries.List(ctx, domain.TimeEntryFilter{
		UserID:   scoped,
		ClientID: input.ClientID,
		From:     input.From,
		To:       input.To,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
