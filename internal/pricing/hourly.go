package pricing

import (
	"fmt"
	"math"

	"oficina/internal/domain"
)

// Unit scales shared by the calculators. Money is integer minor units
// (cents), area is m² scaled by AreaScale, power is kW scaled by
// PowerScale.
const (
	MoneyScale = 100
	AreaScale  = 10000
	PowerScale = 1000
)

// HourlyCostBreakdown itemizes a machine's cost per operating hour, every
// term in minor units. When Manual is set the derived terms are zero and
// Total carries the pinned value verbatim.
type HourlyCostBreakdown struct {
	Manual       bool  `json:"manual"`
	Depreciation int64 `json:"depreciation"`
	Rent         int64 `json:"rent"`
	Electricity  int64 `json:"electricity"`
	Maintenance  int64 `json:"maintenance"`
	Consumables  int64 `json:"consumables"`
	Total        int64 `json:"total"`
}

// MachineHourlyCost returns the machine's effective cost per operating
// hour in minor units, rounded once.
//
// A nil settings record yields zero: the shop is unconfigured, and by
// shop convention an unconfigured shop prices machine time at zero.
// Callers must treat a zero result as "not configured yet", never as a
// genuinely free machine.
func MachineHourlyCost(m *domain.Machine, s *domain.ShopSettings) (int64, error) {
	v, err := machineHourlyCostExact(m, s)
	if err != nil {
		return 0, err
	}
	return roundMoney(v), nil
}

// MachineHourlyCostBreakdown computes the same figure term by term for
// display. Each term is rounded independently; Total is the exact sum
// rounded once, so it can differ from the sum of the rounded terms by at
// most one minor unit.
func MachineHourlyCostBreakdown(m *domain.Machine, s *domain.ShopSettings) (*HourlyCostBreakdown, error) {
	if m.ManualHourlyCost != nil {
		return &HourlyCostBreakdown{Manual: true, Total: *m.ManualHourlyCost}, nil
	}
	if s == nil {
		return &HourlyCostBreakdown{}, nil
	}
	if err := checkDivisors(m, s); err != nil {
		return nil, err
	}

	depreciation, rent, electricity, maintenance, consumables := hourlyTerms(m, s)
	return &HourlyCostBreakdown{
		Depreciation: roundMoney(depreciation),
		Rent:         roundMoney(rent),
		Electricity:  roundMoney(electricity),
		Maintenance:  roundMoney(maintenance),
		Consumables:  roundMoney(consumables),
		Total:        roundMoney(depreciation + rent + electricity + maintenance + consumables),
	}, nil
}

// machineHourlyCostExact keeps full float precision so the quote engine
// can multiply by fractional hours without compounding rounding error.
func machineHourlyCostExact(m *domain.Machine, s *domain.ShopSettings) (float64, error) {
	// The manual override takes absolute precedence; no other field is
	// read or validated.
	if m.ManualHourlyCost != nil {
		return float64(*m.ManualHourlyCost), nil
	}
	if s == nil {
		return 0, nil
	}
	if err := checkDivisors(m, s); err != nil {
		return 0, err
	}

	depreciation, rent, electricity, maintenance, consumables := hourlyTerms(m, s)
	return depreciation + rent + electricity + maintenance + consumables, nil
}

// hourlyTerms amortizes each yearly or one-time cost into an hourly rate.
// Summing them assumes the cost components are additive and the machine
// runs exactly WorkingHoursPerYear hours a year; that is a deliberate
// simplification, not a guarantee of accuracy.
func hourlyTerms(m *domain.Machine, s *domain.ShopSettings) (depreciation, rent, electricity, maintenance, consumables float64) {
	workingHours := float64(s.WorkingHoursPerYear)

	depreciation = float64(m.PurchaseValue-m.ResidualValue) / float64(m.UsefulLifeHours)

	areaM2 := float64(m.OccupiedArea) / AreaScale
	rent = float64(s.RentPerSquareMeter) * areaM2 / workingHours

	electricity = float64(m.PowerKw) / PowerScale * float64(s.ElectricityCostPerKwh) / MoneyScale

	maintenance = float64(m.MaintenanceCostPerYear) / workingHours
	consumables = float64(m.ConsumablesCostPerYear) / workingHours
	return
}

func checkDivisors(m *domain.Machine, s *domain.ShopSettings) error {
	if m.UsefulLifeHours <= 0 {
		return fmt.Errorf("machine %d useful_life_hours=%d: %w", m.ID, m.UsefulLifeHours, ErrZeroDivisorConfig)
	}
	if s.WorkingHoursPerYear <= 0 {
		return fmt.Errorf("settings working_hours_per_year=%d: %w", s.WorkingHoursPerYear, ErrZeroDivisorConfig)
	}
	return nil
}

func roundMoney(v float64) int64 {
	return int64(math.Round(v))
}
