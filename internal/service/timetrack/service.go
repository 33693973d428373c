// Package timetrack implements the time tracking session engine: the
// start/stop state machine, entry editing, manual back-fill and reporting.
package timetrack

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/clock"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	GetActiveForUpdate(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	Close(ctx context.Context, id uuid.UUID, end time.Time, hours float64, note string) (*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, f domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	ListNamed(ctx context.Context, f domain.ReportFilter) ([]domain.NamedTimeEntry, error)
	ClientSummary(ctx context.Context, clientID uuid.UUID, month domain.Month) (*domain.ClientSummary, error)
}

type catalog interface {
	TaskExists(ctx context.Context, ref domain.TaskRef) (bool, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tracking rules the service enforces.
type Config struct {
	// Location is the timezone civil dates are derived in.
	Location       *time.Location
	MaxManualHours float64
	DefaultLimit   int
	MaxLimit       int
}

// Service implements the time tracking business logic.
type Service struct {
	entries entryRepo
	catalog catalog
	tx      txManager
	clock   clock.Clock
	log     *slog.Logger
	cfg     Config
}

// NewService creates a new time tracking service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	catalog catalog,
	tx txManager,
	clk clock.Clock,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{
		entries: entries,
		catalog: catalog,
		tx:      tx,
		clock:   clk,
		log:     log.With("service", "timetrack"),
		cfg:     cfg,
	}
}

// Location returns the timezone civil dates are derived in.
func (s *Service) Location() *time.Location {
	return s.cfg.Location
}

// caller returns the authenticated user and role.
func caller(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, ctxutil.UserRoleFromCtx(ctx), nil
}

// canAccess reports whether the caller may read or mutate the entry.
func canAccess(userID uuid.UUID, role domain.UserRole, e *domain.TimeEntry) bool {
	return e.UserID == userID || role.CanManage()
}

// scopeUser resolves the user filter of a listing: workers are pinned to
// themselves, managers may pick anyone or nobody.
func scopeUser(userID uuid.UUID, role domain.UserRole, requested *uuid.UUID) (*uuid.UUID, error) {
	if role.CanManage() {
		return requested, nil
	}
	if requested != nil && *requested != userID {
		return nil, domain.ErrForbidden
	}
	return &userID, nil
}
