package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/timetrack-backend/migrations"
)

// schemaStatus reports whether the database has every embedded migration.
type schemaStatus struct {
	pool *pgxpool.Pool
}

func (s schemaStatus) CheckSchema(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return migrations.CheckStatus(ctx, db)
}
