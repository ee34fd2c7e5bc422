package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, message, constraint string) error {
	return &pgconn.PgError{Code: code, Message: message, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505", "duplicate key", "uq_application_student_opportunity")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", pgError("23505", "duplicate key", ""))))
	assert.False(t, IsUniqueViolation(pgError("23503", "fk violation", "")))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := pgError("23505", "duplicate key", "refresh_tokens_pkey")
	assert.True(t, IsDuplicateConstraintError(err, "refresh_tokens_pkey"))
	assert.False(t, IsDuplicateConstraintError(err, "some_other_constraint"))
	assert.False(t, IsDuplicateConstraintError(pgError("23503", "fk", "refresh_tokens_pkey"), "refresh_tokens_pkey"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(pgError("23503", "fk violation", "")))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("delete failed: %w", pgError("23503", "fk violation", ""))))
	assert.False(t, IsForeignKeyViolation(pgError("23505", "duplicate", "")))
}

func TestIsCheckViolation(t *testing.T) {
	err := pgError("23514", `new row violates check constraint "opportunity_vacancy_check"`, "opportunity_vacancy_check")
	assert.True(t, IsCheckViolation(err))
	assert.True(t, IsCheckViolation(fmt.Errorf("insert failed: %w", err)))
	assert.False(t, IsCheckViolation(pgError("23505", "duplicate", "")))
	assert.False(t, IsCheckViolation(errors.New("not a pg error")))
}

func TestRaisedMessage(t *testing.T) {
	msg, ok := RaisedMessage(pgError("P0001", "deadline has passed for posting 7", ""))
	assert.True(t, ok)
	assert.Equal(t, "deadline has passed for posting 7", msg)

	msg, ok = RaisedMessage(fmt.Errorf("call failed: %w", pgError("P0001", "already applied to posting 3", "")))
	assert.True(t, ok)
	assert.Equal(t, "already applied to posting 3", msg)

	_, ok = RaisedMessage(pgError("23514", "check violation", ""))
	assert.False(t, ok)
	_, ok = RaisedMessage(errors.New("plain error"))
	assert.False(t, ok)
}
