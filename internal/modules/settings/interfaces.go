package settings

import (
	"context"

	"oficina/internal/domain"
)

// SettingsRepository stores the single shop-wide configuration row. Get
// returns (nil, nil) while the shop is still unconfigured.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Save(ctx context.Context, s *domain.ShopSettings) error
}
