package team

import (
	"context"

	"oficina/internal/domain"
)

type Service struct {
	members TeamMemberRepository
}

func NewService(members TeamMemberRepository) *Service {
	return &Service{members: members}
}

func (s *Service) Create(ctx context.Context, req CreateMemberRequest) (*domain.TeamMember, error) {
	m := &domain.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		Phone:    req.Phone,
		Active:   true,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool, page, limit int) ([]domain.TeamMember, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	members, total, err := s.members.List(ctx, activeOnly, limit, (page-1)*limit)
	return members, int(total), err
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMemberRequest) (*domain.TeamMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Position != nil {
		m.Position = *req.Position
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	if err := s.members.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.members.GetByID(ctx, id); err != nil {
		return err
	}
	return s.members.SoftDelete(ctx, id)
}
