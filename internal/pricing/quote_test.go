package pricing

import (
	"math/big"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualMachine(id, hourly int64) *domain.Machine {
	return &domain.Machine{ID: id, ManualHourlyCost: &hourly}
}

func TestComputeQuote_WorkedExample(t *testing.T) {
	// One item, qty 2, 1h machine + 0.5h setup, tooling 1000, machine at
	// 15000/h manual, operator at 2500/h.
	machines := map[int64]*domain.Machine{7: manualMachine(7, 15000)}
	items := []domain.QuoteItem{{
		Quantity:         2,
		MachineID:        7,
		MachineTimeHours: 1,
		SetupTimeHours:   0.5,
		ToolingCost:      1000,
	}}

	got, err := ComputeQuote(items, machines, nil, testSettings(), 20, 10)
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(15000), got.Items[0].MachineCost)
	assert.Equal(t, int64(3750), got.Items[0].LaborCost) // 2500 * 1.5
	assert.Equal(t, int64(0), got.Items[0].MaterialCost)
	assert.Equal(t, int64(39500), got.Items[0].ItemSubtotal) // (15000+3750+1000)*2

	assert.Equal(t, int64(39500), got.Subtotal)
	assert.Equal(t, int64(7900), got.ProfitAmount)              // 20%
	assert.Equal(t, int64(4740), got.TaxAmount)                 // 10% of 47400
	assert.Equal(t, int64(52140), got.FinalPrice)
}

func TestComputeQuote_SubtotalIsSumOfItems(t *testing.T) {
	machines := map[int64]*domain.Machine{
		1: manualMachine(1, 10000),
		2: manualMachine(2, 4000),
	}
	items := []domain.QuoteItem{
		{Quantity: 3, MachineID: 1, MachineTimeHours: 2, ToolingCost: 500},
		{Quantity: 1, MachineID: 2, MachineTimeHours: 1, SetupTimeHours: 1},
		{Quantity: 5, MachineID: 2, ThirdPartyCost: 250},
	}

	got, err := ComputeQuote(items, machines, nil, testSettings(), 0, 0)
	require.NoError(t, err)

	var sum int64
	for i, it := range got.Items {
		single, err := ComputeQuote(items[i:i+1], machines, nil, testSettings(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, single.Subtotal, it.ItemSubtotal, "item %d priced alone must match", i)
		sum += it.ItemSubtotal
	}
	assert.Equal(t, sum, got.Subtotal, "no cross-item interaction")
}

func TestComputeQuote_Idempotent(t *testing.T) {
	machines := map[int64]*domain.Machine{1: testMachine()}
	materials := map[int64]*domain.Material{
		3: {ID: 3, WidthMm: 1000, LengthMm: 2000, PurchasePrice: 48000},
	}
	matID := int64(3)
	items := []domain.QuoteItem{{
		Quantity:         4,
		MachineID:        1,
		MaterialID:       &matID,
		PartWidthMm:      150,
		PartLengthMm:     230,
		MachineTimeHours: 1.75,
		SetupTimeHours:   0.25,
		ToolingCost:      1200,
	}}

	first, err := ComputeQuote(items, machines, materials, testSettings(), 25, 18)
	require.NoError(t, err)
	second, err := ComputeQuote(items, machines, materials, testSettings(), 25, 18)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeQuote_RoundsOnceAtTheBoundary(t *testing.T) {
	// Material cost per mm² is a tiny repeating fraction: 1000 cents over
	// a 333x333 sheet. Three items each carry a fractional cost; the
	// subtotal must stay within one minor unit of the exact rational sum
	// instead of drifting one unit per item.
	machines := map[int64]*domain.Machine{1: manualMachine(1, 0)}
	materials := map[int64]*domain.Material{
		9: {ID: 9, WidthMm: 333, LengthMm: 333, PurchasePrice: 1000},
	}
	matID := int64(9)
	item := domain.QuoteItem{
		Quantity:     1,
		MachineID:    1,
		MaterialID:   &matID,
		PartWidthMm:  100,
		PartLengthMm: 100,
	}
	items := []domain.QuoteItem{item, item, item}

	got, err := ComputeQuote(items, machines, materials, testSettings(), 0, 0)
	require.NoError(t, err)

	// exact = 3 * 1000 * 100*100 / (333*333)
	exact := new(big.Rat).SetInt64(3 * 1000 * 100 * 100)
	exact.Quo(exact, new(big.Rat).SetInt64(333*333))
	exactF, _ := exact.Float64()

	assert.InDelta(t, exactF, float64(got.Subtotal), 1.0,
		"rounding error must be bounded by one minor unit, not grow per item")
	// Summing the already-rounded per-item values would lose more.
	assert.NotEqual(t, 3*got.Items[0].ItemSubtotal, got.Subtotal)
}

func TestComputeQuote_ValidationBeforeArithmetic(t *testing.T) {
	machines := map[int64]*domain.Machine{1: manualMachine(1, 1000)}
	base := domain.QuoteItem{Quantity: 1, MachineID: 1, MachineTimeHours: 1}

	tests := []struct {
		name   string
		mutate func(*domain.QuoteItem)
		field  string
	}{
		{"zero quantity", func(it *domain.QuoteItem) { it.Quantity = 0 }, "quantity"},
		{"negative quantity", func(it *domain.QuoteItem) { it.Quantity = -2 }, "quantity"},
		{"negative machine time", func(it *domain.QuoteItem) { it.MachineTimeHours = -1 }, "machine_time_hours"},
		{"negative setup time", func(it *domain.QuoteItem) { it.SetupTimeHours = -0.5 }, "setup_time_hours"},
		{"negative tooling", func(it *domain.QuoteItem) { it.ToolingCost = -100 }, "tooling_cost"},
		{"dangling machine", func(it *domain.QuoteItem) { it.MachineID = 42 }, "machine_id"},
		{"dangling material", func(it *domain.QuoteItem) { id := int64(42); it.MaterialID = &id }, "material_id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := base
			tc.mutate(&it)
			_, err := ComputeQuote([]domain.QuoteItem{it}, machines, nil, testSettings(), 10, 10)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestComputeQuote_MissingMachineIsNeverFree(t *testing.T) {
	// An empty machine map must reject, not price machine time at zero.
	items := []domain.QuoteItem{{Quantity: 1, MachineID: 1, MachineTimeHours: 2}}
	_, err := ComputeQuote(items, map[int64]*domain.Machine{}, nil, testSettings(), 0, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "machine_id", verr.Field)
}

func TestComputeQuote_ZeroDivisorPropagates(t *testing.T) {
	m := testMachine()
	m.UsefulLifeHours = 0
	items := []domain.QuoteItem{{Quantity: 1, MachineID: m.ID, MachineTimeHours: 1}}
	_, err := ComputeQuote(items, map[int64]*domain.Machine{m.ID: m}, nil, testSettings(), 0, 0)
	assert.ErrorIs(t, err, ErrZeroDivisorConfig)
}

func TestComputeQuote_NegativeMarginOrTaxRejected(t *testing.T) {
	machines := map[int64]*domain.Machine{1: manualMachine(1, 1000)}
	items := []domain.QuoteItem{{Quantity: 1, MachineID: 1}}

	_, err := ComputeQuote(items, machines, nil, testSettings(), -1, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "profit_margin", verr.Field)

	_, err = ComputeQuote(items, machines, nil, testSettings(), 0, -1)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tax_rate", verr.Field)
}
