package auth

import (
	"context"
	"testing"
	"time"

	"oficina/internal/database"
	"oficina/internal/domain"
	"oficina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type captureMailer struct {
	lastEmail string
	lastCode  string
}

func (m *captureMailer) SendPasswordResetCode(_ context.Context, email, code string) error {
	m.lastEmail = email
	m.lastCode = code
	return nil
}

func setupResetTest(t *testing.T) (*Service, *captureMailer) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	require.NoError(t, Migrate(db))

	users := repository.NewUserRepository(db)
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		Email:        "op@oficina.com.br",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		Name:         "Operator",
		Active:       true,
	}))

	mailer := &captureMailer{}
	svc := NewService(users, stubJWT{}, mailer, "pepper", 15*time.Minute, time.Minute)
	return svc, mailer
}

func TestPasswordReset_FullFlow(t *testing.T) {
	svc, mailer := setupResetTest(t)
	ctx := context.Background()

	result, err := svc.RequestPasswordReset(ctx, "op@oficina.com.br")
	require.NoError(t, err)
	assert.Equal(t, "accepted", result.Status)
	require.Regexp(t, `^\d{6}$`, mailer.lastCode)

	err = svc.ConfirmPasswordReset(ctx, "op@oficina.com.br", mailer.lastCode, "new-password-123")
	require.NoError(t, err)

	// New password works, old one does not.
	_, err = svc.Login(ctx, LoginRequest{Email: "op@oficina.com.br", Password: "new-password-123"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, LoginRequest{Email: "op@oficina.com.br", Password: "old-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The code is burned.
	err = svc.ConfirmPasswordReset(ctx, "op@oficina.com.br", mailer.lastCode, "another-password")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestPasswordReset_UnknownEmailStillAccepted(t *testing.T) {
	svc, mailer := setupResetTest(t)

	result, err := svc.RequestPasswordReset(context.Background(), "nobody@oficina.com.br")

	require.NoError(t, err)
	assert.Equal(t, "accepted", result.Status)
	assert.Empty(t, mailer.lastCode)
}

func TestPasswordReset_ResendCooldown(t *testing.T) {
	svc, _ := setupResetTest(t)
	ctx := context.Background()

	_, err := svc.RequestPasswordReset(ctx, "op@oficina.com.br")
	require.NoError(t, err)

	_, err = svc.RequestPasswordReset(ctx, "op@oficina.com.br")
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
}

func TestPasswordReset_WrongCodeAttemptsCapped(t *testing.T) {
	svc, mailer := setupResetTest(t)
	ctx := context.Background()

	_, err := svc.RequestPasswordReset(ctx, "op@oficina.com.br")
	require.NoError(t, err)

	wrong := "000000"
	if mailer.lastCode == wrong {
		wrong = "000001"
	}

	for i := 0; i < maxResetAttempts; i++ {
		err = svc.ConfirmPasswordReset(ctx, "op@oficina.com.br", wrong, "new-password-123")
		assert.ErrorIs(t, err, ErrInvalidResetCode)
	}

	// Even the right code is refused once the attempt cap is hit.
	err = svc.ConfirmPasswordReset(ctx, "op@oficina.com.br", mailer.lastCode, "new-password-123")
	assert.ErrorIs(t, err, ErrTooManyResetAttempts)
}

func TestPasswordReset_MalformedCodeRejectedEarly(t *testing.T) {
	svc, _ := setupResetTest(t)

	err := svc.ConfirmPasswordReset(context.Background(), "op@oficina.com.br", "12345", "new-password-123")

	assert.ErrorIs(t, err, ErrInvalidResetCodeFormat)
}
