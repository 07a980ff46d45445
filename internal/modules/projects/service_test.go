package projects

import (
	"context"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, clientID int64, status string, limit, offset int) ([]domain.Project, int64, error) {
	args := m.Called(ctx, clientID, status, limit, offset)
	return args.Get(0).([]domain.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type stubClients struct {
	missing bool
}

func (s stubClients) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if s.missing {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Client{ID: id, Name: "Marcos Lima"}, nil
}

func TestCreate_StartsActive(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewService(repo, stubClients{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Project).ID = 1
		}).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Project{ID: 1, ClientID: 3, Name: "Bancada", Status: domain.ProjectActive}, nil)

	project, err := svc.Create(context.Background(), CreateProjectRequest{
		ClientID: 3,
		Name:     "Bancada",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectActive, project.Status)
}

func TestCreate_MissingClientRejected(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewService(repo, stubClients{missing: true})

	_, err := svc.Create(context.Background(), CreateProjectRequest{ClientID: 9, Name: "Bancada"})

	assert.ErrorIs(t, err, ErrClientNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name string
		from domain.ProjectStatus
		to   domain.ProjectStatus
		ok   bool
	}{
		{"active to done", domain.ProjectActive, domain.ProjectDone, true},
		{"active to archived", domain.ProjectActive, domain.ProjectArchived, true},
		{"done reopened", domain.ProjectDone, domain.ProjectActive, true},
		{"done to archived", domain.ProjectDone, domain.ProjectArchived, true},
		{"archived stays archived", domain.ProjectArchived, domain.ProjectActive, false},
		{"archived not done", domain.ProjectArchived, domain.ProjectDone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockProjectRepository)
			svc := NewService(repo, stubClients{})

			repo.On("GetByID", mock.Anything, int64(1)).
				Return(&domain.Project{ID: 1, Status: tc.from}, nil)
			if tc.ok {
				repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)
			}

			project, err := svc.UpdateStatus(context.Background(), 1, tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, project.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusChange)
			}
		})
	}
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewService(repo, stubClients{})

	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Project{ID: 1, Status: domain.ProjectArchived}, nil)

	project, err := svc.UpdateStatus(context.Background(), 1, domain.ProjectArchived)

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectArchived, project.Status)
	repo.AssertNotCalled(t, "Update")
}
