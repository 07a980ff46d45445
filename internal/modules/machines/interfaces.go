package machines

import (
	"context"

	"oficina/internal/domain"
)

type MachineRepository interface {
	Create(ctx context.Context, m *domain.Machine) error
	GetByID(ctx context.Context, id int64) (*domain.Machine, error)
	List(ctx context.Context, limit, offset int) ([]domain.Machine, int64, error)
	Update(ctx context.Context, m *domain.Machine) error
	SoftDelete(ctx context.Context, id int64) error
}

// SettingsReader supplies the shop-wide configuration the hourly cost
// formula depends on. A nil result means the shop is not configured yet.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
}
