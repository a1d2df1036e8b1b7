package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactSelect = `SELECT id, user_id, first_name, last_name, email, phone, birthday, additional_info, created_at, updated_at FROM contacts`

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &contactRepository{DB: &DB{DB: db, logger: l}, logger: l}, mock, db
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows(contactColumns)
}

func johnRow(rows *sqlmock.Rows, id int64, birthday any, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, int64(7), "John", "Doe", "john@example.com", "+380501234567", birthday, nil, now, nil)
}

// ── ListContacts ──────────────────────────────────────────────────────────────

func TestListContacts_FiltersAndPagination(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM contacts WHERE user_id = \$1 AND first_name ILIKE \$2 AND email ILIKE \$3 ORDER BY id LIMIT 10 OFFSET 20`).
		WithArgs(int64(7), "%jo%", "%example%").
		WillReturnRows(johnRow(contactRows(), 1, nil, now))

	contacts, err := repo.ListContacts(context.Background(), models.ContactFilter{
		UserID:    7,
		FirstName: "jo",
		Email:     "example",
		Skip:      20,
		Limit:     ptr(uint64(10)),
	})

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John", contacts[0].FirstName)
	assert.Equal(t, int64(7), contacts[0].UserID)
	assert.Nil(t, contacts[0].Birthday)
	assert.Nil(t, contacts[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListContacts_DefaultLimit(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY id LIMIT 100 OFFSET 0`).
		WithArgs(int64(7)).
		WillReturnRows(contactRows())

	contacts, err := repo.ListContacts(context.Background(), models.ContactFilter{UserID: 7})

	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestListContacts_ExplicitZeroLimit(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY id LIMIT 0 OFFSET 0`).
		WithArgs(int64(7)).
		WillReturnRows(contactRows())

	contacts, err := repo.ListContacts(context.Background(), models.ContactFilter{UserID: 7, Limit: ptr(uint64(0))})

	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListContacts_EscapesLikeMetacharacters(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "percent", value: "50%", want: `%50\%%`},
		{name: "underscore", value: "a_b", want: `%a\_b%`},
		{name: "backslash", value: `c:\x`, want: `%c:\\x%`},
		{name: "plain", value: "jo", want: "%jo%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestContactRepo(t)
			defer db.Close()

			mock.ExpectQuery(`WHERE user_id = \$1 AND last_name ILIKE \$2`).
				WithArgs(int64(7), tt.want).
				WillReturnRows(contactRows())

			_, err := repo.ListContacts(context.Background(), models.ContactFilter{UserID: 7, LastName: tt.value})

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestListContacts_DBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err := repo.ListContacts(context.Background(), models.ContactFilter{UserID: 7})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Single-row operations ─────────────────────────────────────────────────────

func TestGetContact(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, db := newTestContactRepo(t)
		defer db.Close()

		birthday := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`FROM contacts WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(1), int64(7)).
			WillReturnRows(johnRow(contactRows(), 1, birthday, time.Now()))

		contact, err := repo.GetContact(context.Background(), 7, 1)
		require.NoError(t, err)
		require.NotNil(t, contact.Birthday)
		assert.Equal(t, "1990-03-15", contact.Birthday.String())
	})

	t.Run("owned by another user", func(t *testing.T) {
		repo, mock, db := newTestContactRepo(t)
		defer db.Close()

		mock.ExpectQuery(`FROM contacts WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(1), int64(8)).
			WillReturnRows(contactRows())

		_, err := repo.GetContact(context.Background(), 8, 1)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newTestContactRepo(t)
		defer db.Close()

		mock.ExpectQuery(`FROM contacts`).WillReturnError(errors.New("boom"))

		_, err := repo.GetContact(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestCreateContact(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	birthday := models.NewDate(1990, time.March, 15)
	mock.ExpectQuery(`INSERT INTO contacts \(user_id,first_name,last_name,email,phone,birthday,additional_info\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING id`).
		WithArgs(int64(7), "John", "Doe", "john@example.com", "+380501234567", "1990-03-15", nil).
		WillReturnRows(johnRow(contactRows(), 42, birthday.Time, now))

	created, err := repo.CreateContact(context.Background(), models.Contact{
		UserID:    7,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "+380501234567",
		Birthday:  &birthday,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_OwnerRemoved(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO contacts`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: contactsUserFKey})

	_, err := repo.CreateContact(context.Background(), models.Contact{UserID: 7, FirstName: "John", LastName: "Doe", Email: "j@example.com", Phone: "1"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateContact_OnlyProvidedFields(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	phone := "+100"
	updatedAt := time.Now()
	rows := contactRows().
		AddRow(int64(1), int64(7), "John", "Doe", "john@example.com", phone, nil, nil, time.Now(), updatedAt)

	mock.ExpectQuery(`UPDATE contacts SET phone = \$1, updated_at = NOW\(\) WHERE id = \$2 AND user_id = \$3 RETURNING`).
		WithArgs(phone, int64(1), int64(7)).
		WillReturnRows(rows)

	contact, err := repo.UpdateContact(context.Background(), models.ContactUpdate{ID: 1, UserID: 7, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, contact.Phone)
	require.NotNil(t, contact.UpdatedAt)
	assert.Equal(t, updatedAt, *contact.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContact_NotOwned(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	email := "new@example.com"
	mock.ExpectQuery(`UPDATE contacts SET email = \$1`).
		WithArgs(email, int64(1), int64(8)).
		WillReturnRows(contactRows())

	_, err := repo.UpdateContact(context.Background(), models.ContactUpdate{ID: 1, UserID: 8, Email: &email})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteContact(t *testing.T) {
	t.Run("returns the removed row", func(t *testing.T) {
		repo, mock, db := newTestContactRepo(t)
		defer db.Close()

		mock.ExpectQuery(`DELETE FROM contacts WHERE id = \$1 AND user_id = \$2 RETURNING`).
			WithArgs(int64(1), int64(7)).
			WillReturnRows(johnRow(contactRows(), 1, nil, time.Now()))

		deleted, err := repo.DeleteContact(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted.ID)
		assert.Equal(t, "Doe", deleted.LastName)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, db := newTestContactRepo(t)
		defer db.Close()

		mock.ExpectQuery(`DELETE FROM contacts`).
			WillReturnRows(contactRows())

		_, err := repo.DeleteContact(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

// ── UpcomingBirthdays ─────────────────────────────────────────────────────────

func TestUpcomingBirthdays_QueriesWindowAndSortsNearestFirst(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	today := time.Date(2024, time.December, 28, 15, 0, 0, 0, time.UTC)

	now := time.Now()
	rows := contactRows()
	johnRow(rows, 1, time.Date(1985, time.January, 3, 0, 0, 0, 0, time.UTC), now)
	johnRow(rows, 2, time.Date(1990, time.December, 30, 0, 0, 0, 0, time.UTC), now)

	mock.ExpectQuery(`WHERE user_id = \$1 AND birthday IS NOT NULL AND \(EXTRACT\(MONTH FROM birthday\) \* 100 \+ EXTRACT\(DAY FROM birthday\)\)::int IN \(\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
		WithArgs(int64(7), 1228, 1229, 1230, 1231, 101, 102, 103, 104).
		WillReturnRows(rows)

	contacts, err := repo.UpcomingBirthdays(context.Background(), 7, today, 7)

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, int64(2), contacts[0].ID, "Dec 30 comes before Jan 3")
	assert.Equal(t, int64(1), contacts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
