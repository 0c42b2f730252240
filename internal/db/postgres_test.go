package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUndefinedTable(t *testing.T) {
	missing := &pgconn.PgError{Code: "42P01", Message: `relation "transactions" does not exist`}
	assert.True(t, IsUndefinedTable(missing))
	assert.True(t, IsUndefinedTable(fmt.Errorf("list transactions: %w", missing)))

	assert.False(t, IsUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUndefinedTable(errors.New("connection refused")))
	assert.False(t, IsUndefinedTable(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
