package postgres_test

import "github.com/jackc/pgx/v5/pgconn"

type connError struct{}

func (*connError) Error() string     { return "dial tcp: connection refused" }
func (*connError) SafeToRetry() bool { return true }

func serializationFailure() error {
	return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
}
