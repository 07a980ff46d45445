package team

import (
	"context"

	"oficina/internal/domain"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TeamMember, int64, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	SoftDelete(ctx context.Context, id int64) error
}
