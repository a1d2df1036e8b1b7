package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/mock"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newContactFixture(t *testing.T) (*mock.MockContactRepository, ContactService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)

	svc := NewContactValidationService(validators.NewModelValidator()).
		Wrap(NewContactService(repo, logger.Nop()))

	return repo, svc
}

func johnDoe() models.Contact {
	return models.Contact{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "+380501234567",
	}
}

func TestContactService_ListContacts_AppliesDefaultLimit(t *testing.T) {
	repo, svc := newContactFixture(t)

	repo.EXPECT().ListContacts(gomock.Any(), models.ContactFilter{UserID: 1, FirstName: "jo", Limit: ptr(models.DefaultContactsLimit)}).
		Return([]models.Contact{johnDoe()}, nil)

	contacts, err := svc.ListContacts(context.Background(), models.ContactFilter{UserID: 1, FirstName: "jo"})

	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactService_ListContacts_KeepsExplicitPaging(t *testing.T) {
	repo, svc := newContactFixture(t)

	for _, limit := range []uint64{0, 10} {
		repo.EXPECT().ListContacts(gomock.Any(), models.ContactFilter{UserID: 1, Skip: 20, Limit: ptr(limit)}).Return(nil, nil)

		_, err := svc.ListContacts(context.Background(), models.ContactFilter{UserID: 1, Skip: 20, Limit: ptr(limit)})
		require.NoError(t, err)
	}
}

func ptr[T any](v T) *T { return &v }

func TestContactService_CreateContact_AssignsOwner(t *testing.T) {
	repo, svc := newContactFixture(t)

	body := johnDoe()
	body.ID = 99
	body.UserID = 7

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Contact) (models.Contact, error) {
			assert.Equal(t, int64(1), c.UserID)
			assert.Zero(t, c.ID)
			c.ID = 10
			c.CreatedAt = time.Now()
			return c, nil
		})

	created, err := svc.CreateContact(context.Background(), 1, body)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, body.FirstName, created.FirstName)
	assert.Equal(t, body.Phone, created.Phone)
}

func TestContactService_CreateContact_Invalid(t *testing.T) {
	tooLong := make([]byte, 129)
	for i := range tooLong {
		tooLong[i] = 'a'
	}

	tests := []struct {
		name   string
		mutate func(*models.Contact)
	}{
		{"missing first name", func(c *models.Contact) { c.FirstName = "" }},
		{"missing phone", func(c *models.Contact) { c.Phone = "" }},
		{"long last name", func(c *models.Contact) { c.LastName = string(tooLong) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newContactFixture(t)
			contact := johnDoe()
			tt.mutate(&contact)

			_, err := svc.CreateContact(context.Background(), 1, contact)

			assert.ErrorIs(t, err, validators.ErrInvalidInput)
		})
	}
}

func TestContactService_GetContact_NotOwned(t *testing.T) {
	repo, svc := newContactFixture(t)

	repo.EXPECT().GetContact(gomock.Any(), int64(2), int64(10)).Return(models.Contact{}, store.ErrContactNotFound)

	_, err := svc.GetContact(context.Background(), 2, 10)

	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_UpdateContact(t *testing.T) {
	repo, svc := newContactFixture(t)
	name := "Johnny"
	update := models.ContactUpdate{ID: 10, UserID: 1, FirstName: &name}

	repo.EXPECT().UpdateContact(gomock.Any(), update).Return(models.Contact{ID: 10, FirstName: name}, nil)

	updated, err := svc.UpdateContact(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)
}

func TestContactService_UpdateContact_InvalidEmail(t *testing.T) {
	_, svc := newContactFixture(t)
	email := "nope"

	_, err := svc.UpdateContact(context.Background(), models.ContactUpdate{ID: 10, UserID: 1, Email: &email})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestContactService_UpdatePhone_TouchesOnlyPhone(t *testing.T) {
	repo, svc := newContactFixture(t)

	repo.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.ContactUpdate) (models.Contact, error) {
			require.NotNil(t, u.Phone)
			assert.Equal(t, "+1000", *u.Phone)
			assert.Equal(t, int64(10), u.ID)
			assert.Equal(t, int64(1), u.UserID)
			assert.Nil(t, u.FirstName)
			assert.Nil(t, u.LastName)
			assert.Nil(t, u.Email)
			assert.Nil(t, u.Birthday)
			assert.Nil(t, u.AdditionalInfo)
			return models.Contact{ID: 10, Phone: "+1000"}, nil
		})

	updated, err := svc.UpdatePhone(context.Background(), 1, 10, "+1000")

	require.NoError(t, err)
	assert.Equal(t, "+1000", updated.Phone)
}

func TestContactService_UpdatePhone_Empty(t *testing.T) {
	_, svc := newContactFixture(t)

	_, err := svc.UpdatePhone(context.Background(), 1, 10, "")

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestContactService_UpdateEmail(t *testing.T) {
	repo, svc := newContactFixture(t)

	repo.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.ContactUpdate) (models.Contact, error) {
			require.NotNil(t, u.Email)
			assert.Nil(t, u.Phone)
			return models.Contact{ID: 10, Email: *u.Email}, nil
		})

	updated, err := svc.UpdateEmail(context.Background(), 1, 10, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	_, err = svc.UpdateEmail(context.Background(), 1, 10, "bad")
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestContactService_DeleteContact_EchoesRemoved(t *testing.T) {
	repo, svc := newContactFixture(t)
	removed := johnDoe()
	removed.ID = 10

	repo.EXPECT().DeleteContact(gomock.Any(), int64(1), int64(10)).Return(removed, nil)

	got, err := svc.DeleteContact(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, removed, got)
}

func TestContactService_UpcomingBirthdays_UsesSevenDayWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)

	today := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc := &contactService{contactRepository: repo, now: func() time.Time { return today }, logger: logger.Nop()}

	repo.EXPECT().UpcomingBirthdays(gomock.Any(), int64(1), today, 7).Return([]models.Contact{johnDoe()}, nil)

	contacts, err := svc.UpcomingBirthdays(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}
