package settings

import (
	"context"

	"oficina/internal/domain"
)

type Service struct {
	settings SettingsRepository
}

func NewService(settings SettingsRepository) *Service {
	return &Service{settings: settings}
}

// Get returns the current settings, or nil when the shop has never been
// configured. The handler translates nil into an explicit "unconfigured"
// payload instead of a 404.
func (s *Service) Get(ctx context.Context) (*domain.ShopSettings, error) {
	return s.settings.Get(ctx)
}

func (s *Service) Save(ctx context.Context, req SaveSettingsRequest) (*domain.ShopSettings, error) {
	cfg := &domain.ShopSettings{
		RentPerSquareMeter:    req.RentPerSquareMeter,
		ElectricityCostPerKwh: req.ElectricityCostPerKwh,
		OperatorHourlyCost:    req.OperatorHourlyCost,
		WorkingHoursPerYear:   req.WorkingHoursPerYear,
		DefaultProfitMargin:   req.DefaultProfitMargin,
		DefaultTaxRate:        req.DefaultTaxRate,
	}
	if err := s.settings.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
