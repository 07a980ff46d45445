package machines

import (
	"context"
	"testing"

	"oficina/internal/domain"
	"oficina/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMachineRepository struct {
	mock.Mock
}

func (m *MockMachineRepository) Create(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) GetByID(ctx context.Context, id int64) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MockMachineRepository) List(ctx context.Context, limit, offset int) ([]domain.Machine, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Machine), args.Get(1).(int64), args.Error(2)
}

func (m *MockMachineRepository) Update(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubSettings struct {
	settings *domain.ShopSettings
}

func (s stubSettings) Get(ctx context.Context) (*domain.ShopSettings, error) {
	return s.settings, nil
}

func configuredSettings() *domain.ShopSettings {
	return &domain.ShopSettings{
		ID:                    1,
		RentPerSquareMeter:    5000,
		ElectricityCostPerKwh: 75,
		OperatorHourlyCost:    2500,
		WorkingHoursPerYear:   2080,
		DefaultProfitMargin:   20,
		DefaultTaxRate:        10,
	}
}

func laserCutter() *domain.Machine {
	return &domain.Machine{
		ID:                     1,
		Name:                   "Laser cutter",
		PurchaseValue:          20000000,
		ResidualValue:          2000000,
		UsefulLifeHours:        10000,
		OccupiedArea:           125000,
		PowerKw:                15500,
		MaintenanceCostPerYear: 500000,
		ConsumablesCostPerYear: 300000,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Machine")).Return(nil)

	machine, err := svc.Create(context.Background(), CreateMachineRequest{
		Name:            "Laser cutter",
		PurchaseValue:   12000000,
		ResidualValue:   1200000,
		UsefulLifeHours: 6000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Laser cutter", machine.Name)
	repo.AssertExpectations(t)
}

func TestCreate_ResidualAbovePurchase(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{})

	_, err := svc.Create(context.Background(), CreateMachineRequest{
		Name:            "Broken config",
		PurchaseValue:   1000,
		ResidualValue:   2000,
		UsefulLifeHours: 100,
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdate_ClearManualOverride(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{})

	pinned := int64(5000)
	machine := laserCutter()
	machine.ManualHourlyCost = &pinned

	repo.On("GetByID", mock.Anything, int64(1)).Return(machine, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Machine")).Return(nil)

	updated, err := svc.Update(context.Background(), 1, UpdateMachineRequest{
		ClearManualHourlyCost: true,
	})

	require.NoError(t, err)
	assert.Nil(t, updated.ManualHourlyCost)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{})

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 99, UpdateMachineRequest{})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHourlyCost_Derived(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{settings: configuredSettings()})

	repo.On("GetByID", mock.Anything, int64(1)).Return(laserCutter(), nil)

	breakdown, err := svc.HourlyCost(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, breakdown.Manual)
	assert.Equal(t, int64(2226), breakdown.Total)
}

func TestHourlyCost_ManualOverrideWins(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{settings: configuredSettings()})

	pinned := int64(9900)
	machine := laserCutter()
	machine.ManualHourlyCost = &pinned

	repo.On("GetByID", mock.Anything, int64(1)).Return(machine, nil)

	breakdown, err := svc.HourlyCost(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, breakdown.Manual)
	assert.Equal(t, pinned, breakdown.Total)
}

func TestHourlyCost_UnconfiguredShopIsZero(t *testing.T) {
	repo := new(MockMachineRepository)
	svc := NewService(repo, stubSettings{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(laserCutter(), nil)

	breakdown, err := svc.HourlyCost(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(0), breakdown.Total)
}

func TestHourlyCost_ZeroWorkingHours(t *testing.T) {
	repo := new(MockMachineRepository)
	settings := configuredSettings()
	settings.WorkingHoursPerYear = 0
	svc := NewService(repo, stubSettings{settings: settings})

	repo.On("GetByID", mock.Anything, int64(1)).Return(laserCutter(), nil)

	_, err := svc.HourlyCost(context.Background(), 1)

	assert.ErrorIs(t, err, pricing.ErrZeroDivisorConfig)
}
