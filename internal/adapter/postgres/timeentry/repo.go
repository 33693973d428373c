// Package timeentry implements the time entry store on PostgreSQL.
// Fixed-shape statements are SQL constants; filtered listings are built
// with squirrel. Rows are scanned with scany.
package timeentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

const entity = "time_entry"

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, user_id, client_id, project_id, task_id, start_time, end_time,
duration_hours, note, date, source, created_at, updated_at`

const createSQL = `
INSERT INTO time_entries (id, user_id, client_id, project_id, task_id, start_time, end_time,
    duration_hours, note, date, source, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1`

const getActiveSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE user_id = $1 AND end_time IS NULL`

const closeSQL = `
UPDATE time_entries
SET end_time = $2, duration_hours = $3, note = $4, updated_at = now()
WHERE id = $1 AND end_time IS NULL
RETURNING ` + entryColumns

const updateSQL = `
UPDATE time_entries
SET start_time = $2, end_time = $3, duration_hours = $4, note = $5, date = $6, updated_at = now()
WHERE id = $1
RETURNING ` + entryColumns

const deleteSQL = `
DELETE FROM time_entries WHERE id = $1`

const deleteActiveSQL = `
DELETE FROM time_entries
WHERE user_id = $1 AND end_time IS NULL
RETURNING ` + entryColumns

const clientSummarySQL = `
SELECT
    COALESCE(SUM(duration_hours), 0)::float8 AS total_hours,
    COALESCE(SUM(duration_hours) FILTER (WHERE date BETWEEN $2 AND $3), 0)::float8 AS month_hours,
    count(*) AS total_entries
FROM time_entries
WHERE client_id = $1 AND end_time IS NOT NULL`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	return r.getOne(ctx, id, getByIDSQL, id)
}

// GetByIDForUpdate is GetByID with a row lock; call it inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	return r.getOne(ctx, id, getByIDSQL+" FOR UPDATE", id)
}

// GetActive returns the open entry of a user.
// Returns domain.ErrNotFound if the user has no open entry.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	return r.getOne(ctx, "active of "+userID.String(), getActiveSQL, userID)
}

// GetActiveForUpdate is GetActive with a row lock; call it inside a transaction.
func (r *Repo) GetActiveForUpdate(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	return r.getOne(ctx, "active of "+userID.String(), getActiveSQL+" FOR UPDATE", userID)
}

func (r *Repo) getOne(ctx context.Context, id any, query string, args ...any) (*domain.TimeEntry, error) {
	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// List returns entries matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	q := builder().
		Select(entryColumns).
		From("time_entries").
		OrderBy("start_time DESC", "id")

	q = applyFilter(q, f)
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list "+entity, nil)
	}

	entries := make([]domain.TimeEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].toDomain()
	}
	return entries, nil
}

func applyFilter(q sq.SelectBuilder, f domain.TimeEntryFilter) sq.SelectBuilder {
	if f.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.ClientID != nil {
		q = q.Where(sq.Eq{"client_id": *f.ClientID})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"date": *f.To})
	}
	if f.ClosedOnly {
		q = q.Where(sq.NotEq{"end_time": nil})
	}
	return q
}

// ListNamed returns the closed entries of a report period together with
// catalog display names. Unresolvable references yield empty names.
func (r *Repo) ListNamed(ctx context.Context, f domain.ReportFilter) ([]domain.NamedTimeEntry, error) {
	q := builder().
		Select(
			"e.id", "e.user_id", "e.client_id", "e.project_id", "e.task_id",
			"e.start_time", "e.end_time", "e.duration_hours", "e.note", "e.date",
			"e.source", "e.created_at", "e.updated_at",
			"COALESCE(u.name, '') AS user_name",
			"COALESCE(c.name, '') AS client_name",
			"COALESCE(p.name, '') AS project_name",
			"COALESCE(t.title, '') AS task_title",
		).
		From("time_entries e").
		LeftJoin("users u ON u.id = e.user_id").
		LeftJoin("clients c ON c.id = e.client_id").
		LeftJoin("projects p ON p.id = e.project_id").
		LeftJoin("tasks t ON t.id = e.task_id").
		Where(sq.NotEq{"e.end_time": nil}).
		Where(sq.GtOrEq{"e.date": f.Month.First()}).
		Where(sq.LtOrEq{"e.date": f.Month.Last()}).
		OrderBy("e.date", "e.start_time", "e.id")

	if f.UserID != nil {
		q = q.Where(sq.Eq{"e.user_id": *f.UserID})
	}
	if f.ClientID != nil {
		q = q.Where(sq.Eq{"e.client_id": *f.ClientID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report query: %w", err)
	}

	var rows []namedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "report "+entity, f.Month)
	}

	entries := make([]domain.NamedTimeEntry, len(rows))
	for i := range rows {
		entries[i] = domain.NamedTimeEntry{
			TimeEntry: *rows[i].entryRow.toDomain(),
			EntryNames: domain.EntryNames{
				UserName:    rows[i].UserName,
				ClientName:  rows[i].ClientName,
				ProjectName: rows[i].ProjectName,
				TaskTitle:   rows[i].TaskTitle,
			},
		}
	}
	return entries, nil
}

// ClientSummary returns all-time and per-month tracked hours of a client.
func (r *Repo) ClientSummary(ctx context.Context, clientID uuid.UUID, month domain.Month) (*domain.ClientSummary, error) {
	var row struct {
		TotalHours   float64 `db:"total_hours"`
		MonthHours   float64 `db:"month_hours"`
		TotalEntries int     `db:"total_entries"`
	}
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, clientSummarySQL,
		clientID, month.First(), month.Last())
	if err != nil {
		return nil, postgres.MapError(err, "client summary", clientID)
	}
	return &domain.ClientSummary{
		ClientID:       clientID,
		TotalHours:     domain.RoundHours(row.TotalHours),
		ThisMonthHours: domain.RoundHours(row.MonthHours),
		TotalEntries:   row.TotalEntries,
	}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry and returns the persisted row.
// The partial unique index on open entries turns a second open entry for the
// same user into domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		e.ID,
		e.UserID,
		e.ClientID,
		e.ProjectID,
		e.TaskID,
		truncate(e.StartTime),
		truncatePtr(e.EndTime),
		e.DurationHours,
		e.Note,
		e.Date,
		string(e.Source),
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}
	return row.toDomain(), nil
}

// Close sets end_time, duration and note on an open entry.
// Returns domain.ErrNotFound if the entry is absent or already closed.
func (r *Repo) Close(ctx context.Context, id uuid.UUID, end time.Time, hours float64, note string) (*domain.TimeEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, closeSQL,
		id, truncate(end), hours, note)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// Update overwrites the mutable fields of an entry.
func (r *Repo) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL,
		e.ID,
		truncate(e.StartTime),
		truncatePtr(e.EndTime),
		e.DurationHours,
		e.Note,
		e.Date,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}
	return row.toDomain(), nil
}

// Delete removes an entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteActive removes the open entry of a user and returns it.
// Returns domain.ErrNotFound if the user has no open entry.
func (r *Repo) DeleteActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	return r.getOne(ctx, "active of "+userID.String(), deleteActiveSQL, userID)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type entryRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	ClientID      uuid.UUID  `db:"client_id"`
	ProjectID     uuid.UUID  `db:"project_id"`
	TaskID        uuid.UUID  `db:"task_id"`
	StartTime     time.Time  `db:"start_time"`
	EndTime       *time.Time `db:"end_time"`
	DurationHours *float64   `db:"duration_hours"`
	Note          string     `db:"note"`
	Date          time.Time  `db:"date"`
	Source        string     `db:"source"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type namedRow struct {
	entryRow
	UserName    string `db:"user_name"`
	ClientName  string `db:"client_name"`
	ProjectName string `db:"project_name"`
	TaskTitle   string `db:"task_title"`
}

func (r *entryRow) toDomain() *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		ClientID:  r.ClientID,
		ProjectID: r.ProjectID,
		TaskID:    r.TaskID,
		StartTime: r.StartTime.UTC(),
		Note:      r.Note,
		Date:      time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC),
		Source:    domain.EntrySource(r.Source),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.EndTime != nil {
		end := r.EndTime.UTC()
		e.EndTime = &end
	}
	if r.DurationHours != nil {
		h := domain.RoundHours(*r.DurationHours)
		e.DurationHours = &h
	}
	return e
}

func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func truncatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := truncate(*t)
	return &v
}
