package projects

import (
	"context"
	"errors"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

// statusTransitions encodes the allowed moves: a finished project can be
// reopened, an archived one cannot.
var statusTransitions = map[domain.ProjectStatus][]domain.ProjectStatus{
	domain.ProjectActive:   {domain.ProjectDone, domain.ProjectArchived},
	domain.ProjectDone:     {domain.ProjectActive, domain.ProjectArchived},
	domain.ProjectArchived: {},
}

type Service struct {
	projects ProjectRepository
	clients  ClientReader
}

func NewService(projects ProjectRepository, clients ClientReader) *Service {
	return &Service{projects: projects, clients: clients}
}

func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	p := &domain.Project{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ProjectActive,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, p.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, clientID int64, status string, page, limit int) ([]domain.Project, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	projects, total, err := s.projects.List(ctx, clientID, status, limit, (page-1)*limit)
	return projects, int(total), err
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status == status {
		return p, nil
	}
	if !transitionAllowed(p.Status, status) {
		return nil, ErrInvalidStatusChange
	}

	p.Status = status
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func transitionAllowed(from, to domain.ProjectStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
