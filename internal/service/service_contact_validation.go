package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// ContactValidationService validates request models before handing them to
// the wrapped ContactService. Reads and deletes pass straight through.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{
		validator: validator,
	}
}

func (v *ContactValidationService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return v.inner.ListContacts(ctx, filter)
}

func (v *ContactValidationService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return v.inner.GetContact(ctx, userID, contactID)
}

func (v *ContactValidationService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before saving: %w", err)
	}
	return v.inner.CreateContact(ctx, userID, contact)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before updating: %w", err)
	}
	return v.inner.UpdateContact(ctx, update)
}

func (v *ContactValidationService) UpdatePhone(ctx context.Context, userID, contactID int64, phone string) (models.Contact, error) {
	if err := v.validator.Validate(ctx, models.ContactPhoneUpdate{Phone: phone}); err != nil {
		return models.Contact{}, fmt.Errorf("error during phone validation: %w", err)
	}
	return v.inner.UpdatePhone(ctx, userID, contactID, phone)
}

func (v *ContactValidationService) UpdateEmail(ctx context.Context, userID, contactID int64, email string) (models.Contact, error) {
	if err := v.validator.Validate(ctx, models.ContactEmailUpdate{Email: email}); err != nil {
		return models.Contact{}, fmt.Errorf("error during email validation: %w", err)
	}
	return v.inner.UpdateEmail(ctx, userID, contactID, email)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return v.inner.DeleteContact(ctx, userID, contactID)
}

func (v *ContactValidationService) UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error) {
	return v.inner.UpcomingBirthdays(ctx, userID)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
