package rest

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// queryParser reads optional typed query parameters and collects field
// errors instead of failing on the first one.
type queryParser struct {
	values url.Values
	errs   []domain.FieldError
}

func (q *queryParser) fail(field, msg string) {
	q.errs = append(q.errs, domain.FieldError{Field: field, Message: msg})
}

func (q *queryParser) uuid(name string) *uuid.UUID {
	v := q.values.Get(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.fail(name, "must be a UUID")
		return nil
	}
	return &id
}

func (q *queryParser) date(name string) *time.Time {
	v := q.values.Get(name)
	if v == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		q.fail(name, "must be YYYY-MM-DD")
		return nil
	}
	return &d
}

func (q *queryParser) month(name string) *domain.Month {
	v := q.values.Get(name)
	if v == "" {
		return nil
	}
	m, err := domain.ParseMonth(v)
	if err != nil {
		q.fail(name, "must be YYYY-MM")
		return nil
	}
	return &m
}

func (q *queryParser) int(name string) int {
	v := q.values.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(name, "must be an integer")
		return 0
	}
	return n
}

func (q *queryParser) failed() bool {
	return len(q.errs) > 0
}

func (q *queryParser) err() error {
	return domain.NewValidationErrors(q.errs)
}
