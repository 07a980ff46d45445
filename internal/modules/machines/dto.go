package machines

// Monetary fields are minor units, occupied_area is m²x10000, power_kw
// is watts; the frontend owns the display-unit conversion.
type CreateMachineRequest struct {
	Name                   string `json:"name" binding:"required,min=2"`
	PurchaseValue          int64  `json:"purchase_value" binding:"gte=0"`
	ResidualValue          int64  `json:"residual_value" binding:"gte=0"`
	UsefulLifeHours        int64  `json:"useful_life_hours" binding:"required,gt=0"`
	OccupiedArea           int64  `json:"occupied_area" binding:"gte=0"`
	PowerKw                int64  `json:"power_kw" binding:"gte=0"`
	MaintenanceCostPerYear int64  `json:"maintenance_cost_per_year" binding:"gte=0"`
	ConsumablesCostPerYear int64  `json:"consumables_cost_per_year" binding:"gte=0"`
	ManualHourlyCost       *int64 `json:"manual_hourly_cost,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

type UpdateMachineRequest struct {
	Name                   *string `json:"name,omitempty" binding:"omitempty,min=2"`
	PurchaseValue          *int64  `json:"purchase_value,omitempty"`
	ResidualValue          *int64  `json:"residual_value,omitempty"`
	UsefulLifeHours        *int64  `json:"useful_life_hours,omitempty" binding:"omitempty,gt=0"`
	OccupiedArea           *int64  `json:"occupied_area,omitempty"`
	PowerKw                *int64  `json:"power_kw,omitempty"`
	MaintenanceCostPerYear *int64  `json:"maintenance_cost_per_year,omitempty"`
	ConsumablesCostPerYear *int64  `json:"consumables_cost_per_year,omitempty"`
	ManualHourlyCost       *int64  `json:"manual_hourly_cost,omitempty"`
	ClearManualHourlyCost  bool    `json:"clear_manual_hourly_cost,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
}
