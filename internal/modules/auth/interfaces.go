package auth

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	RecordFailedLogin(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error
	ClearLoginLock(ctx context.Context, id int64) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	DB() *gorm.DB // reset-code rows live outside the repo layer
}

// Mailer delivers password reset codes. Production wires a real sender;
// development logs to the console.
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
}
