package domain

import "time"

// ShopSettings is the single shop-wide configuration row. It is passed
// explicitly to every calculation; the pricing package never reads it from
// ambient state.
type ShopSettings struct {
	ID                    int64     `json:"id" gorm:"primaryKey"`
	RentPerSquareMeter    int64     `json:"rent_per_square_meter"`
	ElectricityCostPerKwh int64     `json:"electricity_cost_per_kwh"`
	OperatorHourlyCost    int64     `json:"operator_hourly_cost"`
	WorkingHoursPerYear   int64     `json:"working_hours_per_year" validate:"gt=0"`
	DefaultProfitMargin   int64     `json:"default_profit_margin"`
	DefaultTaxRate        int64     `json:"default_tax_rate"`
	UpdatedAt             time.Time `json:"updated_at"`
}
