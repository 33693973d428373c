package timetrack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// CreateManual records an already-closed entry for a past day. The entry
// starts at 00:00 of the date in the tracking timezone and lasts
// duration_hours. It never touches the owner's open session.
// Managers and admins may create entries for other users.
func (s *Service) CreateManual(ctx context.Context, input ManualInput) (*domain.TimeEntry, error) {
	callerID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxManualHours); err != nil {
		return nil, err
	}

	owner := callerID
	if input.UserID != nil && *input.UserID != callerID {
		if !role.CanManage() {
			return nil, domain.ErrForbidden
		}
		owner = *input.UserID
		ok, err := s.catalog.UserExists(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("check user reference: %w", err)
		}
		if !ok {
			return nil, domain.NewValidationError("user_id", "does not reference an existing user")
		}
	}

	if err := s.checkTask(ctx, input.ref()); err != nil {
		return nil, err
	}

	hours := domain.RoundHours(input.DurationHours)
	date := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, time.UTC)
	start := domain.DayStart(date, s.cfg.Location)
	end := start.Add(time.Duration(hours * float64(time.Hour)))

	entry := &domain.TimeEntry{
		ID:            uuid.New(),
		UserID:        owner,
		ClientID:      input.ClientID,
		ProjectID:     input.ProjectID,
		TaskID:        input.TaskID,
		StartTime:     start,
		EndTime:       &end,
		DurationHours: &hours,
		Note:          input.Note,
		Date:          date,
		Source:        domain.EntrySourceManual,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create manual entry: %w", err)
	}

	s.log.InfoContext(ctx, "manual entry created",
		slog.String("user_id", callerID.String()),
		slog.String("owner_id", owner.String()),
		slog.String("entry_id", created.ID.String()),
		slog.Float64("duration_hours", hours),
	)

	return created, nil
}
