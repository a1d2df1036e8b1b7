package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// contactsUserFKey is the default name Postgres gives the contacts.user_id
// foreign key.
const contactsUserFKey = "contacts_user_id_fkey"

// pgErrorClass groups driver errors for log fields.
type pgErrorClass string

const (
	pgClassNone             pgErrorClass = ""
	pgClassConflict         pgErrorClass = "conflict"
	pgClassMissingReference pgErrorClass = "missing_reference"
	pgClassInvalidData      pgErrorClass = "invalid_data"
	pgClassUnavailable      pgErrorClass = "unavailable"
	pgClassOther            pgErrorClass = "other"
)

// asPgError unwraps err to the driver error, if there is one.
func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// classifyPgError reports the class of err. Errors that did not come from
// the server at all yield pgClassNone.
func classifyPgError(err error) pgErrorClass {
	pgErr, ok := asPgError(err)
	if !ok {
		return pgClassNone
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return pgClassConflict
	case pgErr.Code == pgerrcode.ForeignKeyViolation:
		return pgClassMissingReference
	case pgerrcode.IsDataException(pgErr.Code),
		pgErr.Code == pgerrcode.CheckViolation,
		pgErr.Code == pgerrcode.NotNullViolation:
		return pgClassInvalidData
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code):
		return pgClassUnavailable
	default:
		return pgClassOther
	}
}

// translatePgError maps constraint violations with a domain meaning to the
// package sentinels. It returns nil for every other error.
func translatePgError(err error) error {
	pgErr, ok := asPgError(err)
	if !ok {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case usersEmailKey:
			return ErrEmailAlreadyExists
		case usersUsernameKey:
			return ErrUsernameAlreadyExists
		}
	case pgerrcode.ForeignKeyViolation:
		if pgErr.ConstraintName == contactsUserFKey {
			return ErrUserNotFound
		}
	}

	return nil
}
