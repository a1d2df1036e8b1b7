package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every statement it issues carries a
// "user_id = $N" predicate, so a contact owned by another user behaves
// exactly like a missing one.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// ListContacts returns the user's contacts matching filter, ordered by id.
// Returns an empty slice when nothing matches.
func (c *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.ListContacts").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.selectContacts(ctx, "*contactRepository.ListContacts", filter.UserID, query, args)
}

// GetContact returns a single contact of the user.
// Returns [ErrContactNotFound] if it does not exist or is owned by someone else.
func (c *contactRepository) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	query, args, err := buildGetContactQuery(userID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.getContact(ctx, "*contactRepository.GetContact", userID, query, args)
}

// CreateContact inserts contact for contact.UserID and returns the stored
// record with its generated id and created_at.
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query, args, err := buildCreateContactQuery(contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.getContact(ctx, "*contactRepository.CreateContact", contact.UserID, query, args)
}

// UpdateContact applies the non-nil fields of update and refreshes
// updated_at. Returns [ErrContactNotFound] if no owned row matched.
func (c *contactRepository) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	query, args, err := buildUpdateContactQuery(update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.getContact(ctx, "*contactRepository.UpdateContact", update.UserID, query, args)
}

// DeleteContact removes the contact and returns the deleted row.
// Returns [ErrContactNotFound] if no owned row matched.
func (c *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	query, args, err := buildDeleteContactQuery(userID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.getContact(ctx, "*contactRepository.DeleteContact", userID, query, args)
}

// UpcomingBirthdays returns the user's contacts whose birthday falls within
// days after from, ignoring the year, nearest first.
func (c *contactRepository) UpcomingBirthdays(ctx context.Context, userID int64, from time.Time, days int) ([]models.Contact, error) {
	query, args, err := buildUpcomingBirthdaysQuery(userID, birthdayWindow(from, days))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contacts, err := c.selectContacts(ctx, "*contactRepository.UpcomingBirthdays", userID, query, args)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(contacts, func(a, b models.Contact) int {
		return daysUntilBirthday(from, a.Birthday.Time) - daysUntilBirthday(from, b.Birthday.Time)
	})

	return contacts, nil
}

func (c *contactRepository) selectContacts(ctx context.Context, fn string, userID int64, query string, args []any) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	contacts := make([]models.Contact, 0)
	if err := sqlscan.Select(ctx, c.DB.DB, &contacts, query, args...); err != nil {
		c.logError(log, err, fn).
			Int64("user_id", userID).
			Msg("failed to select contacts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (c *contactRepository) getContact(ctx context.Context, fn string, userID int64, query string, args []any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var contact models.Contact
	err := sqlscan.Get(ctx, c.DB.DB, &contact, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		c.logError(log, err, fn).
			Int64("user_id", userID).
			Msg("failed to execute contact query")
		if domainErr := translatePgError(err); domainErr != nil {
			return models.Contact{}, domainErr
		}
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}
