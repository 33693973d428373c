package timetrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// GetEntry returns an entry visible to the caller.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if !canAccess(userID, role, entry) {
		return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	return entry, nil
}

// Edit changes the interval and/or note of an entry. Time changes require a
// closed entry and recompute duration_hours and date; an end not after the
// start fails with domain.ErrInvalidRange and leaves the entry unchanged.
// A note-only edit is allowed on an open entry.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.TimeEntry, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lockEntry(txCtx, userID, role, input.EntryID)
		if err != nil {
			return err
		}

		if input.changesTimes() {
			if entry.IsOpen() {
				return domain.ErrEntryRunning
			}
			start, end := entry.StartTime, *entry.EndTime
			if input.StartTime != nil {
				start = *input.StartTime
			}
			if input.EndTime != nil {
				end = *input.EndTime
			}
			if !end.After(start) {
				return domain.ErrInvalidRange
			}
			hours := domain.HoursBetween(start, end)
			entry.StartTime = start
			entry.EndTime = &end
			entry.DurationHours = &hours
			entry.Date = domain.CivilDate(start, s.cfg.Location)
		}
		if input.Note != nil {
			entry.Note = *input.Note
		}

		updated, err = s.entries.Update(txCtx, entry)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry edited",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", updated.ID.String()),
		slog.Float64("duration_hours", updated.Hours()),
	)

	return updated, nil
}

// Delete removes a closed entry. Open entries must be stopped or cancelled first.
func (s *Service) Delete(ctx context.Context, entryID uuid.UUID) error {
	userID, role, err := caller(ctx)
	if err != nil {
		return err
	}

	if entryID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lockEntry(txCtx, userID, role, entryID)
		if err != nil {
			return err
		}
		if entry.IsOpen() {
			return domain.ErrEntryRunning
		}
		if err := s.entries.Delete(txCtx, entryID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}

// Adjust applies a signed correction to duration_hours without touching the
// timestamps. The result is rounded to two decimals and clamped at zero.
// A zero delta returns the entry unchanged. Only managers and admins may adjust.
func (s *Service) Adjust(ctx context.Context, input AdjustInput) (*domain.TimeEntry, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !role.CanManage() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		adjusted *domain.TimeEntry
		before   float64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lockEntry(txCtx, userID, role, input.EntryID)
		if err != nil {
			return err
		}
		if entry.IsOpen() {
			return domain.ErrEntryRunning
		}

		before = entry.Hours()
		if input.DeltaHours == 0 {
			adjusted = entry
			return nil
		}

		hours := adjustHours(before, input.DeltaHours)
		entry.DurationHours = &hours

		adjusted, err = s.entries.Update(txCtx, entry)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry adjusted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", adjusted.ID.String()),
		slog.Float64("delta_hours", input.DeltaHours),
		slog.Float64("before_hours", before),
		slog.Float64("after_hours", adjusted.Hours()),
	)

	return adjusted, nil
}

// adjustHours returns max(0, round(current+delta, 2)).
func adjustHours(current, delta float64) float64 {
	return math.Max(0, domain.RoundHours(current+delta))
}

// lockEntry loads an entry FOR UPDATE and checks the caller may touch it.
// Entries of other users are reported as not found to workers.
func (s *Service) lockEntry(ctx context.Context, userID uuid.UUID, role domain.UserRole, entryID uuid.UUID) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByIDForUpdate(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("lock entry: %w", err)
	}
	if !canAccess(userID, role, entry) {
		return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	return entry, nil
}
