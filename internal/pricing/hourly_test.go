package pricing

import (
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *domain.ShopSettings {
	return &domain.ShopSettings{
		RentPerSquareMeter:    5000,
		ElectricityCostPerKwh: 75,
		OperatorHourlyCost:    2500,
		WorkingHoursPerYear:   2080,
		DefaultProfitMargin:   20,
		DefaultTaxRate:        10,
	}
}

func testMachine() *domain.Machine {
	return &domain.Machine{
		ID:                     1,
		Name:                   "CNC Router",
		PurchaseValue:          20000000,
		ResidualValue:          2000000,
		UsefulLifeHours:        10000,
		OccupiedArea:           125000, // 12.5 m²
		PowerKw:                15500,  // 15.5 kW
		MaintenanceCostPerYear: 500000,
		ConsumablesCostPerYear: 300000,
	}
}

func TestMachineHourlyCost_TermByTerm(t *testing.T) {
	b, err := MachineHourlyCostBreakdown(testMachine(), testSettings())
	require.NoError(t, err)

	// depreciation = (20000000-2000000)/10000
	assert.Equal(t, int64(1800), b.Depreciation)
	// rent = 5000 * 12.5 / 2080 = 30.048...
	assert.Equal(t, int64(30), b.Rent)
	// electricity = 15.5 * 0.75 = 11.625
	assert.Equal(t, int64(12), b.Electricity)
	// maintenance = 500000 / 2080 = 240.38...
	assert.Equal(t, int64(240), b.Maintenance)
	// consumables = 300000 / 2080 = 144.23...
	assert.Equal(t, int64(144), b.Consumables)
	// total rounds the exact sum, not the rounded terms
	assert.Equal(t, int64(2226), b.Total)
	assert.False(t, b.Manual)

	total, err := MachineHourlyCost(testMachine(), testSettings())
	require.NoError(t, err)
	assert.Equal(t, b.Total, total)
}

func TestMachineHourlyCost_ManualOverrideWinsUnconditionally(t *testing.T) {
	manual := int64(12345)
	m := &domain.Machine{
		ManualHourlyCost: &manual,
		// Garbage everywhere else, including a zero divisor: none of it
		// may be read once the override is set.
		PurchaseValue:   -1,
		UsefulLifeHours: 0,
	}

	got, err := MachineHourlyCost(m, testSettings())
	require.NoError(t, err)
	assert.Equal(t, manual, got)

	// Settings absent changes nothing either.
	got, err = MachineHourlyCost(m, nil)
	require.NoError(t, err)
	assert.Equal(t, manual, got)

	b, err := MachineHourlyCostBreakdown(m, testSettings())
	require.NoError(t, err)
	assert.True(t, b.Manual)
	assert.Equal(t, manual, b.Total)
	assert.Zero(t, b.Depreciation)
}

func TestMachineHourlyCost_ZeroDivisorsFailLoudly(t *testing.T) {
	m := testMachine()
	m.UsefulLifeHours = 0
	_, err := MachineHourlyCost(m, testSettings())
	assert.ErrorIs(t, err, ErrZeroDivisorConfig)

	s := testSettings()
	s.WorkingHoursPerYear = 0
	_, err = MachineHourlyCost(testMachine(), s)
	assert.ErrorIs(t, err, ErrZeroDivisorConfig)

	s.WorkingHoursPerYear = -10
	_, err = MachineHourlyCost(testMachine(), s)
	assert.ErrorIs(t, err, ErrZeroDivisorConfig)
}

func TestMachineHourlyCost_NilSettingsMeansUnconfigured(t *testing.T) {
	got, err := MachineHourlyCost(testMachine(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestMachineHourlyCost_TermsAreLinearInTheirInputs(t *testing.T) {
	base, err := MachineHourlyCostBreakdown(testMachine(), testSettings())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*domain.Machine)
		term   func(*HourlyCostBreakdown) int64
	}{
		{"occupied_area scales rent", func(m *domain.Machine) { m.OccupiedArea *= 4 }, func(b *HourlyCostBreakdown) int64 { return b.Rent }},
		{"power scales electricity", func(m *domain.Machine) { m.PowerKw *= 4 }, func(b *HourlyCostBreakdown) int64 { return b.Electricity }},
		{"maintenance scales its term", func(m *domain.Machine) { m.MaintenanceCostPerYear *= 4 }, func(b *HourlyCostBreakdown) int64 { return b.Maintenance }},
		{"consumables scales its term", func(m *domain.Machine) { m.ConsumablesCostPerYear *= 4 }, func(b *HourlyCostBreakdown) int64 { return b.Consumables }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := testMachine()
			tc.mutate(m)
			scaled, err := MachineHourlyCostBreakdown(m, testSettings())
			require.NoError(t, err)
			assert.InDelta(t, 4*tc.term(base), tc.term(scaled), 2,
				"scaling the input by 4 must scale the term by 4")
			assert.Equal(t, base.Depreciation, scaled.Depreciation,
				"unrelated terms must not move")
		})
	}
}
