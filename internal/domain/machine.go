package domain

import "time"

// Machine is a shop machine whose operating cost is derived per hour.
//
// Monetary fields are integer minor currency units (cents). OccupiedArea is
// m² scaled by 10000, PowerKw is watts (kW scaled by 1000). The hourly cost
// is never stored; it is recomputed from these fields on every read, unless
// ManualHourlyCost pins it.
type Machine struct {
	ID                     int64      `json:"id" gorm:"primaryKey"`
	Name                   string     `json:"name" validate:"required"`
	PurchaseValue          int64      `json:"purchase_value"`
	ResidualValue          int64      `json:"residual_value"`
	UsefulLifeHours        int64      `json:"useful_life_hours" validate:"gt=0"`
	OccupiedArea           int64      `json:"occupied_area"`
	PowerKw                int64      `json:"power_kw"`
	MaintenanceCostPerYear int64      `json:"maintenance_cost_per_year"`
	ConsumablesCostPerYear int64      `json:"consumables_cost_per_year"`
	ManualHourlyCost       *int64     `json:"manual_hourly_cost,omitempty"`
	Notes                  string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	DeletedAt              *time.Time `json:"-" gorm:"index"`
}
