package materials

import (
	"context"

	"oficina/internal/domain"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
	List(ctx context.Context, limit, offset int) ([]domain.Material, int64, error)
	Update(ctx context.Context, m *domain.Material) error
	SoftDelete(ctx context.Context, id int64) error
}
