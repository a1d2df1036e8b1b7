package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/mock"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_UpdateAvatar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	avatars := mock.NewMockAvatarStorage(ctrl)
	svc := NewUserService(users, avatars, logger.Nop())

	ctx := context.Background()
	user := models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}
	content := []byte("\x89PNG fake image")
	url := "https://res.cloudinary.com/demo/image/upload/v1/RestApp/alice"

	gomock.InOrder(
		avatars.EXPECT().Upload(ctx, "alice", "me.png", content).Return(url, nil),
		users.EXPECT().UpdateAvatar(ctx, "alice@example.com", url).Return(models.User{UserID: 1, Avatar: url}, nil),
	)

	updated, err := svc.UpdateAvatar(ctx, user, "me.png", content)

	require.NoError(t, err)
	assert.Equal(t, url, updated.Avatar)
}

func TestUserService_UpdateAvatar_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewUserService(mock.NewMockUserRepository(ctrl), mock.NewMockAvatarStorage(ctrl), logger.Nop())

	_, err := svc.UpdateAvatar(context.Background(), models.User{Username: "alice"}, "empty.png", nil)

	assert.ErrorIs(t, err, ErrEmptyAvatar)
}

func TestUserService_UpdateAvatar_ProviderFailureIsNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	avatars := mock.NewMockAvatarStorage(ctrl)
	svc := NewUserService(users, avatars, logger.Nop())

	providerErr := errors.Join(adapter.ErrAvatarUpload, adapter.ErrBadGateway)
	avatars.EXPECT().Upload(gomock.Any(), "alice", "me.png", gomock.Any()).Return("", providerErr).Times(1)

	_, err := svc.UpdateAvatar(context.Background(), models.User{Username: "alice", Email: "alice@example.com"}, "me.png", []byte("img"))

	assert.ErrorIs(t, err, adapter.ErrAvatarUpload)
}

func TestUserService_AuthorizeAdmin(t *testing.T) {
	svc := NewUserService(nil, nil, logger.Nop())

	assert.NoError(t, svc.AuthorizeAdmin(context.Background(), models.User{Role: models.RoleAdmin}))
	assert.ErrorIs(t, svc.AuthorizeAdmin(context.Background(), models.User{Role: models.RoleUser}), ErrNotEnoughRights)
	assert.ErrorIs(t, svc.AuthorizeAdmin(context.Background(), models.User{}), ErrNotEnoughRights)
}
