package materials

import (
	"context"

	"oficina/internal/domain"
)

type Service struct {
	materials MaterialRepository
}

func NewService(materials MaterialRepository) *Service {
	return &Service{materials: materials}
}

func (s *Service) Create(ctx context.Context, req CreateMaterialRequest) (*domain.Material, error) {
	m := &domain.Material{
		Name:          req.Name,
		WidthMm:       req.WidthMm,
		LengthMm:      req.LengthMm,
		PurchasePrice: req.PurchasePrice,
		Supplier:      req.Supplier,
	}
	if err := s.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Material, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	materials, total, err := s.materials.List(ctx, limit, (page-1)*limit)
	return materials, int(total), err
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMaterialRequest) (*domain.Material, error) {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.WidthMm != nil {
		m.WidthMm = *req.WidthMm
	}
	if req.LengthMm != nil {
		m.LengthMm = *req.LengthMm
	}
	if req.PurchasePrice != nil {
		m.PurchasePrice = *req.PurchasePrice
	}
	if req.Supplier != nil {
		m.Supplier = *req.Supplier
	}

	if err := s.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.materials.GetByID(ctx, id); err != nil {
		return err
	}
	return s.materials.SoftDelete(ctx, id)
}
