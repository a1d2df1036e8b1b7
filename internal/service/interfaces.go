package service

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

// AuthService implements registration, login, the email-confirmation state
// machine and the password-reset flow.
//
// baseURL arguments are the externally visible server root ending with a
// slash; they prefix the links sent by mail unless a base URL is configured.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest, baseURL string) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ConfirmEmail reports alreadyConfirmed=true without changes when the
	// account was confirmed before.
	ConfirmEmail(ctx context.Context, token string) (alreadyConfirmed bool, err error)
	RequestConfirmation(ctx context.Context, req models.EmailRequest, baseURL string) (alreadyConfirmed bool, err error)

	RequestPasswordReset(ctx context.Context, req models.EmailRequest, baseURL string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordConfirmRequest) error

	// Authenticate resolves the owner of a bearer access token.
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
}

// UserService manages the profile of an authenticated user.
type UserService interface {
	UpdateAvatar(ctx context.Context, user models.User, filename string, content []byte) (models.User, error)

	// AuthorizeAdmin returns [ErrNotEnoughRights] unless user is an admin.
	AuthorizeAdmin(ctx context.Context, user models.User) error
}

// ContactService exposes the address book of a single owner. Every method
// is scoped by the owner's user id.
type ContactService interface {
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	UpdatePhone(ctx context.Context, userID, contactID int64, phone string) (models.Contact, error)
	UpdateEmail(ctx context.Context, userID, contactID int64, email string) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error)

	// UpcomingBirthdays lists contacts whose birthday falls within the next
	// seven days, today included.
	UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
