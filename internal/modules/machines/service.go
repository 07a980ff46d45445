package machines

import (
	"context"

	"oficina/internal/domain"
	"oficina/internal/pricing"
)

type Service struct {
	machines MachineRepository
	settings SettingsReader
}

func NewService(machines MachineRepository, settings SettingsReader) *Service {
	return &Service{machines: machines, settings: settings}
}

func (s *Service) Create(ctx context.Context, req CreateMachineRequest) (*domain.Machine, error) {
	if req.ResidualValue > req.PurchaseValue {
		return nil, ErrValidation
	}
	if req.ManualHourlyCost != nil && *req.ManualHourlyCost < 0 {
		return nil, ErrValidation
	}

	m := &domain.Machine{
		Name:                   req.Name,
		PurchaseValue:          req.PurchaseValue,
		ResidualValue:          req.ResidualValue,
		UsefulLifeHours:        req.UsefulLifeHours,
		OccupiedArea:           req.OccupiedArea,
		PowerKw:                req.PowerKw,
		MaintenanceCostPerYear: req.MaintenanceCostPerYear,
		ConsumablesCostPerYear: req.ConsumablesCostPerYear,
		ManualHourlyCost:       req.ManualHourlyCost,
		Notes:                  req.Notes,
	}
	if err := s.machines.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Machine, error) {
	return s.machines.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Machine, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	machines, total, err := s.machines.List(ctx, limit, (page-1)*limit)
	return machines, int(total), err
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMachineRequest) (*domain.Machine, error) {
	m, err := s.machines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.PurchaseValue != nil {
		m.PurchaseValue = *req.PurchaseValue
	}
	if req.ResidualValue != nil {
		m.ResidualValue = *req.ResidualValue
	}
	if req.UsefulLifeHours != nil {
		m.UsefulLifeHours = *req.UsefulLifeHours
	}
	if req.OccupiedArea != nil {
		m.OccupiedArea = *req.OccupiedArea
	}
	if req.PowerKw != nil {
		m.PowerKw = *req.PowerKw
	}
	if req.MaintenanceCostPerYear != nil {
		m.MaintenanceCostPerYear = *req.MaintenanceCostPerYear
	}
	if req.ConsumablesCostPerYear != nil {
		m.ConsumablesCostPerYear = *req.ConsumablesCostPerYear
	}
	if req.ClearManualHourlyCost {
		m.ManualHourlyCost = nil
	} else if req.ManualHourlyCost != nil {
		m.ManualHourlyCost = req.ManualHourlyCost
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}

	if m.ResidualValue > m.PurchaseValue || m.UsefulLifeHours <= 0 {
		return nil, ErrValidation
	}
	if m.ManualHourlyCost != nil && *m.ManualHourlyCost < 0 {
		return nil, ErrValidation
	}

	if err := s.machines.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.machines.GetByID(ctx, id); err != nil {
		return err
	}
	return s.machines.SoftDelete(ctx, id)
}

// HourlyCost recomputes the machine's cost per hour from the current
// settings on every call; nothing is cached.
func (s *Service) HourlyCost(ctx context.Context, id int64) (*pricing.HourlyCostBreakdown, error) {
	m, err := s.machines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.MachineHourlyCostBreakdown(m, settings)
}
