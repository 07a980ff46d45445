package clients

import (
	"context"

	"oficina/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.Client, int64, error)
	Update(ctx context.Context, c *domain.Client) error
	SoftDelete(ctx context.Context, id int64) error
}
