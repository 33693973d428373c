package timetrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

const maxStartAttempts = 2

// Start opens a session for the caller. If the caller already has an open
// entry it fails with *domain.ActiveSessionConflictError carrying that entry.
// Concurrent starts are serialized by the store's one-open-entry index; the
// loser gets the same conflict error carrying the winner. If the winner is
// closed before the loser can read it, the insert is retried once; when that
// also loses, the conflict carries no entry.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.TimeEntry, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkTask(ctx, input.ref()); err != nil {
		return nil, err
	}

	existing, err := s.entries.GetActive(ctx, userID)
	if err == nil {
		return nil, &domain.ActiveSessionConflictError{Existing: existing}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check active session: %w", err)
	}

	var created *domain.TimeEntry
	for attempt := 1; ; attempt++ {
		now := s.clock.Now()
		entry := &domain.TimeEntry{
			ID:        uuid.New(),
			UserID:    userID,
			ClientID:  input.ClientID,
			ProjectID: input.ProjectID,
			TaskID:    input.TaskID,
			StartTime: now,
			Date:      domain.CivilDate(now, s.cfg.Location),
			Source:    domain.EntrySourceTimer,
		}

		created, err = s.entries.Create(ctx, entry)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create entry: %w", err)
		}

		// Another request opened a session between the check and the insert.
		winner, getErr := s.entries.GetActive(ctx, userID)
		if getErr == nil {
			s.log.InfoContext(ctx, "concurrent start rejected",
				slog.String("user_id", userID.String()),
				slog.String("winner_id", winner.ID.String()),
			)
			return nil, &domain.ActiveSessionConflictError{Existing: winner}
		}
		if !errors.Is(getErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("get active after race: %w", getErr)
		}
		// The winner was already closed, so the slot is free again.
		if attempt >= maxStartAttempts {
			s.log.WarnContext(ctx, "concurrent start rejected, winner already closed",
				slog.String("user_id", userID.String()),
				slog.Int("attempts", attempt),
			)
			return nil, &domain.ActiveSessionConflictError{}
		}
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("task_id", created.TaskID.String()),
	)

	return created, nil
}

// GetActive returns the caller's open entry, or nil if none.
func (s *Service) GetActive(ctx context.Context) (*domain.TimeEntry, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return entry, nil
}

// Stop closes the caller's open entry at the current time and attaches the note.
// Returns domain.ErrNoActiveSession if nothing is open.
func (s *Service) Stop(ctx context.Context, input StopInput) (*domain.TimeEntry, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var closed *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		open, err := s.entries.GetActiveForUpdate(txCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("get active session: %w", err)
		}

		end := stopTime(open.StartTime, s.clock.Now())
		closed, err = s.entries.Close(txCtx, open.ID, end, domain.HoursBetween(open.StartTime, end), input.Note)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNoActiveSession
			}
			return fmt.Errorf("close entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session stopped",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", closed.ID.String()),
		slog.Float64("duration_hours", closed.Hours()),
	)

	return closed, nil
}

// Cancel discards the caller's open entry without recording it.
// Returns domain.ErrNoActiveSession if nothing is open.
func (s *Service) Cancel(ctx context.Context) (*domain.TimeEntry, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	discarded, err := s.entries.DeleteActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("cancel session: %w", err)
	}

	s.log.InfoContext(ctx, "session cancelled",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", discarded.ID.String()),
	)

	return discarded, nil
}

// stopTime returns now, or the smallest instant after start when the clock
// has not moved past it. The store requires end_time > start_time.
func stopTime(start, now time.Time) time.Time {
	if now.After(start) {
		return now
	}
	return start.Add(time.Microsecond)
}

// checkTask verifies the reference against the catalog.
func (s *Service) checkTask(ctx context.Context, ref domain.TaskRef) error {
	ok, err := s.catalog.TaskExists(ctx, ref)
	if err != nil {
		return fmt.Errorf("check task reference: %w", err)
	}
	if !ok {
		return domain.NewValidationError("task_id", "does not reference an existing task")
	}
	return nil
}
