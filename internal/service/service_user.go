package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	avatarStorage  adapter.AvatarStorage

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, avatarStorage adapter.AvatarStorage, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		logger:         logger,
	}
}

// UpdateAvatar uploads content keyed by the username and stores the
// returned public URL on the account. Provider failures are not retried.
func (u *userService) UpdateAvatar(ctx context.Context, user models.User, filename string, content []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(content) == 0 {
		return models.User{}, ErrEmptyAvatar
	}

	url, err := u.avatarStorage.Upload(ctx, user.Username, filename, content)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateAvatar").Int64("id", user.UserID).Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("avatar upload failed: %w", err)
	}

	updated, err := u.userRepository.UpdateAvatar(ctx, user.Email, url)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateAvatar").Int64("id", user.UserID).Msg("saving avatar url failed")
		return models.User{}, fmt.Errorf("saving avatar url failed: %w", err)
	}

	return updated, nil
}

func (u *userService) AuthorizeAdmin(ctx context.Context, user models.User) error {
	if !user.IsAdmin() {
		logger.FromContext(ctx).Warn().
			Str("func", "userService.AuthorizeAdmin").
			Int64("id", user.UserID).
			Str("role", string(user.Role)).
			Msg("admin route requested without admin role")
		return ErrNotEnoughRights
	}
	return nil
}
