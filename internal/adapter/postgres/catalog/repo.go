// Package catalog reads the client/project/task and user reference tables
// owned by other services.
package catalog

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

const taskExistsSQL = `
SELECT EXISTS (
    SELECT 1
    FROM tasks t
    JOIN projects p ON p.id = t.project_id
    WHERE t.id = $1 AND p.id = $2 AND p.client_id = $3
)`

const userExistsSQL = `
SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

// Repo answers reference checks against the catalog tables.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// TaskExists reports whether the task exists under the given project and
// the project belongs to the given client.
func (r *Repo) TaskExists(ctx context.Context, ref domain.TaskRef) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, taskExistsSQL, ref.TaskID, ref.ProjectID, ref.ClientID).
		Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "task", ref.TaskID)
	}
	return ok, nil
}

// UserExists reports whether the user is known.
func (r *Repo) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, userExistsSQL, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return ok, nil
}
