package pricing

import "oficina/internal/domain"

// ItemTotals is the computed cost breakdown of one quote line, rounded to
// minor units for display. The engine aggregates from the unrounded
// values, not from these.
type ItemTotals struct {
	MaterialCost int64 `json:"material_cost"`
	MachineCost  int64 `json:"machine_cost"`
	LaborCost    int64 `json:"labor_cost"`
	ItemSubtotal int64 `json:"item_subtotal"`
}

// QuoteTotals is the full price derivation of a quote: item subtotals,
// their sum, then profit and tax layered on top. Tax applies to cost plus
// profit, not to the subtotal alone.
type QuoteTotals struct {
	Items        []ItemTotals `json:"items"`
	Subtotal     int64        `json:"subtotal"`
	ProfitAmount int64        `json:"profit_amount"`
	TaxAmount    int64        `json:"tax_amount"`
	FinalPrice   int64        `json:"final_price"`
}

// ComputeQuote prices a whole quote. It is a pure function of its inputs:
// no caching, no mutation, identical inputs give identical outputs.
//
// All inputs are validated before any arithmetic runs. A dangling machine
// or material reference is a data error, never a free line; zero-cost
// machines only arise from the unconfigured-shop policy documented on
// MachineHourlyCost.
//
// Full float precision is carried through the whole formula chain and
// each output field is rounded exactly once, so the rounding error of the
// totals is bounded by one minor unit regardless of item count.
func ComputeQuote(
	items []domain.QuoteItem,
	machines map[int64]*domain.Machine,
	materials map[int64]*domain.Material,
	settings *domain.ShopSettings,
	profitMargin, taxRate int64,
) (*QuoteTotals, error) {
	if profitMargin < 0 {
		return nil, invalid("profit_margin", "must not be negative")
	}
	if taxRate < 0 {
		return nil, invalid("tax_rate", "must not be negative")
	}
	for i := range items {
		if err := validateItem(&items[i], machines, materials); err != nil {
			return nil, err
		}
	}

	var operatorRate float64
	if settings != nil {
		operatorRate = float64(settings.OperatorHourlyCost)
	}

	totals := &QuoteTotals{Items: make([]ItemTotals, 0, len(items))}
	var subtotal float64

	for i := range items {
		it := &items[i]

		var materialCost float64
		if it.MaterialID != nil {
			mat := materials[*it.MaterialID]
			materialCost = mat.CostPerMm2() * float64(it.PartWidthMm) * float64(it.PartLengthMm)
		}

		hourly, err := machineHourlyCostExact(machines[it.MachineID], settings)
		if err != nil {
			return nil, err
		}
		machineCost := hourly * it.MachineTimeHours
		laborCost := operatorRate * (it.MachineTimeHours + it.SetupTimeHours)

		unitCost := materialCost + machineCost + laborCost +
			float64(it.ToolingCost) + float64(it.ThirdPartyCost)
		itemSubtotal := unitCost * float64(it.Quantity)

		totals.Items = append(totals.Items, ItemTotals{
			MaterialCost: roundMoney(materialCost),
			MachineCost:  roundMoney(machineCost),
			LaborCost:    roundMoney(laborCost),
			ItemSubtotal: roundMoney(itemSubtotal),
		})
		subtotal += itemSubtotal
	}

	profit := subtotal * float64(profitMargin) / 100
	tax := (subtotal + profit) * float64(taxRate) / 100

	totals.Subtotal = roundMoney(subtotal)
	totals.ProfitAmount = roundMoney(profit)
	totals.TaxAmount = roundMoney(tax)
	totals.FinalPrice = roundMoney(subtotal + profit + tax)
	return totals, nil
}

func validateItem(
	it *domain.QuoteItem,
	machines map[int64]*domain.Machine,
	materials map[int64]*domain.Material,
) error {
	if it.Quantity <= 0 {
		return invalid("quantity", "must be positive")
	}
	if it.MachineTimeHours < 0 {
		return invalid("machine_time_hours", "must not be negative")
	}
	if it.SetupTimeHours < 0 {
		return invalid("setup_time_hours", "must not be negative")
	}
	if it.ToolingCost < 0 {
		return invalid("tooling_cost", "must not be negative")
	}
	if it.ThirdPartyCost < 0 {
		return invalid("third_party_cost", "must not be negative")
	}
	if it.PartWidthMm < 0 || it.PartLengthMm < 0 {
		return invalid("part_dimensions", "must not be negative")
	}
	if machines[it.MachineID] == nil {
		return invalid("machine_id", "machine not found")
	}
	if it.MaterialID != nil && materials[*it.MaterialID] == nil {
		return invalid("material_id", "material not found")
	}
	return nil
}
