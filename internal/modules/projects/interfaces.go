package projects

import (
	"context"

	"oficina/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, clientID int64, status string, limit, offset int) ([]domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project) error
}

// ClientReader checks that the referenced client exists before a project
// is attached to it.
type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}
