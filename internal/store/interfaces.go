package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated id and
	// creation timestamp. Duplicates map to [ErrUsernameAlreadyExists] or
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ConfirmEmail marks the account with the given email as confirmed.
	ConfirmEmail(ctx context.Context, email string) error
	// UpdateAvatar stores avatarURL for the account with the given email and
	// returns the updated user.
	UpdateAvatar(ctx context.Context, email, avatarURL string) (models.User, error)
	UpdatePassword(ctx context.Context, email, hashedPassword string) error
}

// ContactRepository persists contacts in the "contacts" table. Every method
// is scoped by the owning user id.
type ContactRepository interface {
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	// UpcomingBirthdays returns contacts whose birthday month-day falls in
	// [from, from + days].
	UpcomingBirthdays(ctx context.Context, userID int64, from time.Time, days int) ([]models.Contact, error)
}
