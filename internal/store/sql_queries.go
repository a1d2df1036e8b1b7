package store

import (
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// Unique constraints of the "users" table.
const (
	usersUsernameKey = "users_username_key"
	usersEmailKey    = "users_email_key"
)

const (
	userColumns = `id, username, email, hashed_password, COALESCE(avatar, '') AS avatar, confirmed, role, created_at`

	createUser = `INSERT INTO users (username, email, hashed_password, avatar, confirmed, role)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	confirmEmail = `UPDATE users
    SET confirmed = TRUE
    WHERE email = $1;`

	updateAvatar = `UPDATE users
    SET avatar = $2
    WHERE email = $1
    RETURNING ` + userColumns + `;`

	updatePassword = `UPDATE users
    SET hashed_password = $2
    WHERE email = $1;`
)

const (
	contactsTable = "contacts"

	// birthdayMonthDay renders a date as month*100 + day, e.g. 1231 for Dec 31.
	birthdayMonthDay = "(EXTRACT(MONTH FROM birthday) * 100 + EXTRACT(DAY FROM birthday))::int"
)

var contactColumns = []string{
	"id",
	"user_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"birthday",
	"additional_info",
	"created_at",
	"updated_at",
}

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningContact() string {
	return "RETURNING " + strings.Join(contactColumns, ", ")
}

func ownedBy(userID, contactID int64) sq.Eq {
	return sq.Eq{"id": contactID, "user_id": userID}
}

// likeEscaper makes LIKE metacharacters match literally under the default
// backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListContactsQuery selects the user's contacts, narrowed by the
// case-insensitive substring filters that are set.
func buildListContactsQuery(filter models.ContactFilter) (string, []any, error) {
	query := psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"user_id": filter.UserID})

	filters := []struct{ column, value string }{
		{"first_name", filter.FirstName},
		{"last_name", filter.LastName},
		{"email", filter.Email},
	}
	for _, f := range filters {
		if f.value != "" {
			query = query.Where(sq.ILike{f.column: "%" + likeEscaper.Replace(f.value) + "%"})
		}
	}

	limit := models.DefaultContactsLimit
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	return query.
		OrderBy("id").
		Offset(filter.Skip).
		Limit(limit).
		ToSql()
}

func buildGetContactQuery(userID, contactID int64) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(ownedBy(userID, contactID)).
		ToSql()
}

func buildCreateContactQuery(contact models.Contact) (string, []any, error) {
	return psql.
		Insert(contactsTable).
		Columns("user_id", "first_name", "last_name", "email", "phone", "birthday", "additional_info").
		Values(contact.UserID, contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Birthday, contact.AdditionalInfo).
		Suffix(returningContact()).
		ToSql()
}

// buildUpdateContactQuery sets only the non-nil fields of update and always
// refreshes updated_at.
func buildUpdateContactQuery(update models.ContactUpdate) (string, []any, error) {
	query := psql.Update(contactsTable)

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
	}
	if update.Birthday != nil {
		query = query.Set("birthday", *update.Birthday)
	}
	if update.AdditionalInfo != nil {
		query = query.Set("additional_info", *update.AdditionalInfo)
	}

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(ownedBy(update.UserID, update.ID)).
		Suffix(returningContact()).
		ToSql()
}

func buildDeleteContactQuery(userID, contactID int64) (string, []any, error) {
	return psql.
		Delete(contactsTable).
		Where(ownedBy(userID, contactID)).
		Suffix(returningContact()).
		ToSql()
}

// buildUpcomingBirthdaysQuery selects the user's contacts whose birthday
// month-day is one of monthDays.
func buildUpcomingBirthdaysQuery(userID int64, monthDays []int) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"birthday": nil}).
		Where(sq.Eq{birthdayMonthDay: monthDays}).
		ToSql()
}
