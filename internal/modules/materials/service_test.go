package materials

import (
	"context"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Create(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) List(ctx context.Context, limit, offset int) ([]domain.Material, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Material), args.Get(1).(int64), args.Error(2)
}

func (m *MockMaterialRepository) Update(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mdfSheet() *domain.Material {
	return &domain.Material{
		ID:            1,
		Name:          "MDF 6mm",
		WidthMm:       1000,
		LengthMm:      500,
		PurchasePrice: 10000,
		Supplier:      "Madeireira Central",
	}
}

func TestCreate_ReturnsMaterial(t *testing.T) {
	repo := new(MockMaterialRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Material")).Return(nil)

	material, err := svc.Create(context.Background(), CreateMaterialRequest{
		Name:          "MDF 6mm",
		WidthMm:       1000,
		LengthMm:      500,
		PurchasePrice: 10000,
	})

	require.NoError(t, err)
	assert.Equal(t, "MDF 6mm", material.Name)
	repo.AssertExpectations(t)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(MockMaterialRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(mdfSheet(), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Material")).Return(nil)

	newPrice := int64(12000)
	material, err := svc.Update(context.Background(), 1, UpdateMaterialRequest{
		PurchasePrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, newPrice, material.PurchasePrice)
	assert.Equal(t, "MDF 6mm", material.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockMaterialRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 7, UpdateMaterialRequest{})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCostPerMm2_InResponse(t *testing.T) {
	// 10000 cents over 1000x500 mm = 0.02 cents per mm².
	resp := toResponse(mdfSheet())
	assert.InDelta(t, 0.02, resp.CostPerMm2, 1e-9)
}

func TestDelete_ChecksExistenceFirst(t *testing.T) {
	repo := new(MockMaterialRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 2)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	repo.AssertNotCalled(t, "SoftDelete")
}
