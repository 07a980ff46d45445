package auth

import (
	"context"
	"testing"
	"time"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) RecordFailedLogin(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error {
	args := m.Called(ctx, id, attempts, lockedUntil)
	return args.Error(0)
}

func (m *MockUserRepository) ClearLoginLock(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) DB() *gorm.DB { return nil }

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func newTestService(users UserRepositoryInterface) *Service {
	return NewService(users, stubJWT{}, NewDevConsoleMailer(false), "pepper", 15*time.Minute, time.Minute)
}

func hashedUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           1,
		Email:        "op@oficina.com.br",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		Name:         "Operator",
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "op@oficina.com.br").Return(hashedUser("secret123"), nil)

	svc := newTestService(users)
	result, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPasswordCountsAttempt(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(hashedUser("secret123"), nil)
	users.On("RecordFailedLogin", mock.Anything, int64(1), 1, (*time.Time)(nil)).Return(nil)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertExpectations(t)
}

func TestLogin_FifthFailureLocksAccount(t *testing.T) {
	u := hashedUser("secret123")
	u.FailedLoginAttempts = 4

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(u, nil)
	users.On("RecordFailedLogin", mock.Anything, int64(1), 5, mock.AnythingOfType("*time.Time")).Return(nil)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "nope"})

	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_LockedAccountRejected(t *testing.T) {
	u := hashedUser("secret123")
	until := time.Now().Add(10 * time.Minute)
	u.LockedUntil = &until

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(u, nil)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "secret123"})

	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_DisabledAccountRejected(t *testing.T) {
	u := hashedUser("secret123")
	u.Active = false

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(u, nil)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "secret123"})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@oficina.com.br", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SuccessfulLoginClearsLock(t *testing.T) {
	u := hashedUser("secret123")
	u.FailedLoginAttempts = 3

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(u, nil)
	users.On("ClearLoginLock", mock.Anything, int64(1)).Return(nil)

	svc := newTestService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "op@oficina.com.br", Password: "secret123"})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(1)).Return(hashedUser("secret123"), nil)

	svc := newTestService(users)
	err := svc.ChangePassword(context.Background(), 1, ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret123",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePassword_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(1)).Return(hashedUser("secret123"), nil)
	users.On("UpdatePasswordHash", mock.Anything, int64(1), mock.AnythingOfType("string")).Return(nil)

	svc := newTestService(users)
	err := svc.ChangePassword(context.Background(), 1, ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret123",
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}
