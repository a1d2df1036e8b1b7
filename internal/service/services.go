package service

import (
	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/internal/workers"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires every service over the given storages, adapters and
// mail queue. m may be nil.
func NewServices(
	storages *store.Storages,
	adapters *adapter.Adapters,
	mailQueue workers.MailQueue,
	m *metrics.Metrics,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	validator := validators.NewModelValidator()

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	contactService := NewContactValidationService(validator).
		Wrap(NewContactService(storages.ContactRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, mailQueue, validator, m, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, adapters.AvatarStorage, logger),
		ContactService: contactService,
		AppInfoService: appInfoService,
	}, nil
}
