// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// birthdayWindowDays is the length of the upcoming-birthdays window
// following today.
const birthdayWindowDays = 7

type contactService struct {
	contactRepository store.ContactRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// ListContacts applies [models.DefaultContactsLimit] when filter has no limit.
func (c *contactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	if filter.Limit == nil {
		limit := models.DefaultContactsLimit
		filter.Limit = &limit
	}
	return c.contactRepository.ListContacts(ctx, filter)
}

func (c *contactService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return c.contactRepository.GetContact(ctx, userID, contactID)
}

// CreateContact always assigns the contact to userID, whatever the
// contact carried before.
func (c *contactService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact.ID = 0
	contact.UserID = userID

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.CreateContact").Int64("user_id", userID).Msg("contact creation failed")
		return models.Contact{}, err
	}
	return created, nil
}

func (c *contactService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	return c.contactRepository.UpdateContact(ctx, update)
}

func (c *contactService) UpdatePhone(ctx context.Context, userID, contactID int64, phone string) (models.Contact, error) {
	return c.contactRepository.UpdateContact(ctx, models.ContactUpdate{ID: contactID, UserID: userID, Phone: &phone})
}

func (c *contactService) UpdateEmail(ctx context.Context, userID, contactID int64, email string) (models.Contact, error) {
	return c.contactRepository.UpdateContact(ctx, models.ContactUpdate{ID: contactID, UserID: userID, Email: &email})
}

func (c *contactService) DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return c.contactRepository.DeleteContact(ctx, userID, contactID)
}

func (c *contactService) UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error) {
	return c.contactRepository.UpcomingBirthdays(ctx, userID, c.now(), birthdayWindowDays)
}
