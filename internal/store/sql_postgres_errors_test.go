package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func constraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want pgErrorClass
	}{
		{"nil", nil, pgClassNone},
		{"plain error", errors.New("boom"), pgClassNone},
		{"unique violation", pgError(pgerrcode.UniqueViolation), pgClassConflict},
		{"foreign key violation", pgError(pgerrcode.ForeignKeyViolation), pgClassMissingReference},
		{"value too long", pgError(pgerrcode.StringDataRightTruncationDataException), pgClassInvalidData},
		{"check violation", pgError(pgerrcode.CheckViolation), pgClassInvalidData},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), pgClassUnavailable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), pgClassUnavailable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), pgClassUnavailable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), pgClassOther},
		{"wrapped", fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.UniqueViolation)), pgClassConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyPgError(tt.err))
		})
	}
}

func TestTranslatePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"email taken", constraintError(pgerrcode.UniqueViolation, usersEmailKey), ErrEmailAlreadyExists},
		{"username taken", constraintError(pgerrcode.UniqueViolation, usersUsernameKey), ErrUsernameAlreadyExists},
		{"owner removed", constraintError(pgerrcode.ForeignKeyViolation, contactsUserFKey), ErrUserNotFound},
		{"wrapped", fmt.Errorf("insert: %w", constraintError(pgerrcode.UniqueViolation, usersEmailKey)), ErrEmailAlreadyExists},
		{"unknown constraint", constraintError(pgerrcode.UniqueViolation, "other_key"), nil},
		{"other code", constraintError(pgerrcode.CheckViolation, "users_role_check"), nil},
		{"not a postgres error", errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translatePgError(tt.err))
		})
	}
}
