package admin

import (
	"context"

	"oficina/internal/domain"
)

// UserRepository — the slice of the user store the admin service needs
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
