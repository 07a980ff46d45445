package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

const maxResetAttempts = 5

// DevConsoleMailer logs reset codes instead of sending mail. Good enough
// for local development; never enable in production.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendPasswordResetCode(_ context.Context, email, code string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] password reset code email=%s code=%s", email, code)
	}
	return nil
}

type resetCodeRow struct {
	UserID      int64      `gorm:"column:user_id;primaryKey"`
	CodeHash    string     `gorm:"column:code_hash"`
	Attempts    int        `gorm:"column:attempts"`
	ResendCount int        `gorm:"column:resend_count"`
	LastSentAt  time.Time  `gorm:"column:last_sent_at"`
	ExpiresAt   time.Time  `gorm:"column:expires_at"`
	UsedAt      *time.Time `gorm:"column:used_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (resetCodeRow) TableName() string { return "password_reset_codes" }

// Migrate creates the reset-code table; the row type is private to this
// package, so the binaries cannot AutoMigrate it themselves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&resetCodeRow{})
}

type ResetRequestResult struct {
	Status string
}

// RequestPasswordReset issues a fresh 6-digit code. The response is
// always "accepted" so the endpoint does not leak which emails exist.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (*ResetRequestResult, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("reset/request: email not found (masked)")
			return &ResetRequestResult{Status: "accepted"}, nil
		}
		return nil, err
	}

	now := time.Now()
	var current resetCodeRow
	err = s.users.DB().WithContext(ctx).Where("user_id = ?", user.ID).First(&current).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err == nil {
		cooldownUntil := current.LastSentAt.Add(s.resendCooldown)
		if cooldownUntil.After(now) {
			return nil, ErrRateLimitExceeded
		}
	}

	code, genErr := generateResetCode()
	if genErr != nil {
		return nil, genErr
	}
	codeHash := hashResetCode(code, s.resetCodePepper)
	expiresAt := now.Add(s.resetCodeTTL)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := resetCodeRow{
			UserID:      user.ID,
			CodeHash:    codeHash,
			ResendCount: 1,
			LastSentAt:  now,
			ExpiresAt:   expiresAt,
		}
		if createErr := s.users.DB().WithContext(ctx).Create(&row).Error; createErr != nil {
			return nil, createErr
		}
	} else {
		if updateErr := s.users.DB().WithContext(ctx).
			Model(&resetCodeRow{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"code_hash":    codeHash,
				"attempts":     0,
				"last_sent_at": now,
				"expires_at":   expiresAt,
				"resend_count": gorm.Expr("resend_count + 1"),
				"used_at":      nil,
			}).Error; updateErr != nil {
			return nil, updateErr
		}
	}

	if mailErr := s.mailer.SendPasswordResetCode(ctx, user.Email, code); mailErr != nil {
		return nil, mailErr
	}

	return &ResetRequestResult{Status: "accepted"}, nil
}

// ConfirmPasswordReset checks the code and, when valid, sets the new
// password and burns the code.
func (s *Service) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	if !codeRegex.MatchString(code) {
		return ErrInvalidResetCodeFormat
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetCode
		}
		return err
	}

	now := time.Now()
	var row resetCodeRow
	if err := s.users.DB().WithContext(ctx).Where("user_id = ?", user.ID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetCode
		}
		return err
	}

	if row.UsedAt != nil || !row.ExpiresAt.After(now) {
		return ErrInvalidResetCode
	}
	if row.Attempts >= maxResetAttempts {
		return ErrTooManyResetAttempts
	}

	if hashResetCode(code, s.resetCodePepper) != row.CodeHash {
		if err := s.users.DB().WithContext(ctx).
			Model(&resetCodeRow{}).
			Where("user_id = ?", user.ID).
			Update("attempts", gorm.Expr("attempts + 1")).Error; err != nil {
			return err
		}
		return ErrInvalidResetCode
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}
	if err := s.users.ClearLoginLock(ctx, user.ID); err != nil {
		return err
	}

	return s.users.DB().WithContext(ctx).
		Model(&resetCodeRow{}).
		Where("user_id = ?", user.ID).
		Update("used_at", now).Error
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashResetCode(code, pepper string) string {
	sum := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(sum[:])
}
