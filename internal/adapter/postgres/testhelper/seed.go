package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeededUser is a row inserted into the users reference table.
type SeededUser struct {
	ID   uuid.UUID
	Name string
	Role domain.UserRole
}

// SeededTask is a client/project/task chain with its display names.
type SeededTask struct {
	Ref         domain.TaskRef
	ClientName  string
	ProjectName string
	TaskTitle   string
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) SeededUser {
	t.Helper()

	suffix := uniqueSuffix()
	user := SeededUser{ID: uuid.New(), Name: "Test User " + suffix, Role: role}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, "testuser-"+suffix+"@example.com", string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedTask inserts a client, a project under it and a task under the project.
func SeedTask(t *testing.T, pool *pgxpool.Pool) SeededTask {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	task := SeededTask{
		Ref: domain.TaskRef{
			ClientID:  uuid.New(),
			ProjectID: uuid.New(),
			TaskID:    uuid.New(),
		},
		ClientName:  "Client " + suffix,
		ProjectName: "Project " + suffix,
		TaskTitle:   "Task " + suffix,
	}

	if _, err := pool.Exec(ctx, `INSERT INTO clients (id, name) VALUES ($1, $2)`,
		task.Ref.ClientID, task.ClientName); err != nil {
		t.Fatalf("testhelper: SeedTask client: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO projects (id, client_id, name) VALUES ($1, $2, $3)`,
		task.Ref.ProjectID, task.Ref.ClientID, task.ProjectName); err != nil {
		t.Fatalf("testhelper: SeedTask project: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO tasks (id, project_id, title) VALUES ($1, $2, $3)`,
		task.Ref.TaskID, task.Ref.ProjectID, task.TaskTitle); err != nil {
		t.Fatalf("testhelper: SeedTask task: %v", err)
	}
	return task
}

// CountOpen returns the number of open entries of a user.
func CountOpen(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM time_entries WHERE user_id = $1 AND end_time IS NULL`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountOpen: %v", err)
	}
	return n
}
