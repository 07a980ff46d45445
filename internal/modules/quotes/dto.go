package quotes

type CreateQuoteRequest struct {
	ClientID  int64  `json:"client_id" binding:"required,gt=0"`
	ProjectID *int64 `json:"project_id,omitempty" binding:"omitempty,gt=0"`
	// Omitted margins fall back to the shop defaults at creation time and
	// are frozen on the quote from then on.
	ProfitMargin *int64 `json:"profit_margin,omitempty" binding:"omitempty,gte=0"`
	TaxRate      *int64 `json:"tax_rate,omitempty" binding:"omitempty,gte=0"`
	Notes        string `json:"notes,omitempty"`
}

type AddItemRequest struct {
	Description      string  `json:"description" binding:"required"`
	Quantity         int64   `json:"quantity" binding:"required,gt=0"`
	MachineID        int64   `json:"machine_id" binding:"required,gt=0"`
	MaterialID       *int64  `json:"material_id,omitempty" binding:"omitempty,gt=0"`
	PartWidthMm      int64   `json:"part_width_mm" binding:"gte=0"`
	PartLengthMm     int64   `json:"part_length_mm" binding:"gte=0"`
	MachineTimeHours float64 `json:"machine_time_hours" binding:"gte=0"`
	SetupTimeHours   float64 `json:"setup_time_hours" binding:"gte=0"`
	ToolingCost      int64   `json:"tooling_cost" binding:"gte=0"`
	ThirdPartyCost   int64   `json:"third_party_cost" binding:"gte=0"`
}

type UpdateItemRequest struct {
	Description      *string  `json:"description,omitempty"`
	Quantity         *int64   `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	MachineID        *int64   `json:"machine_id,omitempty" binding:"omitempty,gt=0"`
	MaterialID       *int64   `json:"material_id,omitempty" binding:"omitempty,gt=0"`
	ClearMaterial    bool     `json:"clear_material,omitempty"`
	PartWidthMm      *int64   `json:"part_width_mm,omitempty" binding:"omitempty,gte=0"`
	PartLengthMm     *int64   `json:"part_length_mm,omitempty" binding:"omitempty,gte=0"`
	MachineTimeHours *float64 `json:"machine_time_hours,omitempty" binding:"omitempty,gte=0"`
	SetupTimeHours   *float64 `json:"setup_time_hours,omitempty" binding:"omitempty,gte=0"`
	ToolingCost      *int64   `json:"tooling_cost,omitempty" binding:"omitempty,gte=0"`
	ThirdPartyCost   *int64   `json:"third_party_cost,omitempty" binding:"omitempty,gte=0"`
}
