package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn             func(ctx context.Context, req models.RegisterRequest, baseURL string) (models.User, error)
	loginFn                func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	confirmEmailFn         func(ctx context.Context, token string) (bool, error)
	requestConfirmationFn  func(ctx context.Context, req models.EmailRequest, baseURL string) (bool, error)
	requestPasswordResetFn func(ctx context.Context, req models.EmailRequest, baseURL string) error
	resetPasswordFn        func(ctx context.Context, req models.ResetPasswordConfirmRequest) error
	authenticateFn         func(ctx context.Context, accessToken string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest, baseURL string) (models.User, error) {
	return m.registerFn(ctx, req, baseURL)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	return m.confirmEmailFn(ctx, token)
}

func (m *mockAuthService) RequestConfirmation(ctx context.Context, req models.EmailRequest, baseURL string) (bool, error) {
	return m.requestConfirmationFn(ctx, req, baseURL)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.EmailRequest, baseURL string) error {
	return m.requestPasswordResetFn(ctx, req, baseURL)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordConfirmRequest) error {
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	return m.authenticateFn(ctx, accessToken)
}

type mockUserService struct {
	updateAvatarFn   func(ctx context.Context, user models.User, filename string, content []byte) (models.User, error)
	authorizeAdminFn func(ctx context.Context, user models.User) error
}

func (m *mockUserService) UpdateAvatar(ctx context.Context, user models.User, filename string, content []byte) (models.User, error) {
	return m.updateAvatarFn(ctx, user, filename, content)
}

func (m *mockUserService) AuthorizeAdmin(ctx context.Context, user models.User) error {
	if m.authorizeAdminFn == nil {
		if user.IsAdmin() {
			return nil
		}
		return service.ErrNotEnoughRights
	}
	return m.authorizeAdminFn(ctx, user)
}

type mockContactService struct {
	listFn      func(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	getFn       func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	createFn    func(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error)
	updateFn    func(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	phoneFn     func(ctx context.Context, userID, contactID int64, phone string) (models.Contact, error)
	emailFn     func(ctx context.Context, userID, contactID int64, email string) (models.Contact, error)
	deleteFn    func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	birthdaysFn func(ctx context.Context, userID int64) ([]models.Contact, error)
}

func (m *mockContactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return m.listFn(ctx, filter)
}

func (m *mockContactService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return m.getFn(ctx, userID, contactID)
}

func (m *mockContactService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	return m.createFn(ctx, userID, contact)
}

func (m *mockContactService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	return m.updateFn(ctx, update)
}

func (m *mockContactService) UpdatePhone(ctx context.Context, userID, contactID int64, phone string) (models.Contact, error) {
	return m.phoneFn(ctx, userID, contactID, phone)
}

func (m *mockContactService) UpdateEmail(ctx context.Context, userID, contactID int64, email string) (models.Contact, error) {
	return m.emailFn(ctx, userID, contactID, email)
}

func (m *mockContactService) DeleteContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return m.deleteFn(ctx, userID, contactID)
}

func (m *mockContactService) UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error) {
	return m.birthdaysFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// Fixtures shared by the handler tests.
const testAccessToken = "valid.access.token"

var (
	alice = models.User{UserID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	root  = models.User{UserID: 2, Username: "root", Email: "root@example.com", Role: models.RoleAdmin}
)

// tokenAuth authenticates testAccessToken as alice and "admin.token" as
// root; every other token is invalid.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			switch token {
			case testAccessToken:
				return alice, nil
			case "admin.token":
				return root, nil
			default:
				return models.User{}, service.ErrInvalidToken
			}
		},
	}
}

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: ":0", MeRateLimit: 10}
}

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.ContactService == nil {
		svcs.ContactService = &mockContactService{}
	}
	return NewHandler(svcs, metrics.New(), testServerConfig(), logger.Nop())
}
