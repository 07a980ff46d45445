package domain

import "time"

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pendente"
	QuoteApproved QuoteStatus = "aprovado"
	QuoteRejected QuoteStatus = "rejeitado"
)

// Quote is a multi-item price quote. ProfitMargin and TaxRate are captured
// when the quote is created (defaulted from ShopSettings) and never follow
// later settings changes: a quote is a point-in-time snapshot. Totals are
// recomputed while the quote is pendente and frozen on approval; aprovado
// and rejeitado are terminal.
type Quote struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	Number       string      `json:"number" gorm:"uniqueIndex"`
	ClientID     int64       `json:"client_id" validate:"required"`
	ProjectID    *int64      `json:"project_id,omitempty"`
	Status       QuoteStatus `json:"status"`
	ProfitMargin int64       `json:"profit_margin"`
	TaxRate      int64       `json:"tax_rate"`
	Subtotal     int64       `json:"subtotal"`
	ProfitAmount int64       `json:"profit_amount"`
	TaxAmount    int64       `json:"tax_amount"`
	FinalPrice   int64       `json:"final_price"`
	Notes        string      `json:"notes,omitempty" gorm:"type:text"`
	ApprovedAt   *time.Time  `json:"approved_at,omitempty"`
	RejectedAt   *time.Time  `json:"rejected_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Items  []QuoteItem `json:"items,omitempty" gorm:"foreignKey:QuoteID"`
	Client *Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// QuoteItem is one line of a quote. Monetary fields are minor units; time
// fields are fractional hours. The cost columns are the last computed
// snapshot for listing; while the quote is pendente they are refreshed on
// every item mutation.
type QuoteItem struct {
	ID               int64   `json:"id" gorm:"primaryKey"`
	QuoteID          int64   `json:"quote_id" gorm:"index"`
	Position         int     `json:"position"`
	Description      string  `json:"description"`
	Quantity         int64   `json:"quantity" validate:"gt=0"`
	MachineID        int64   `json:"machine_id" validate:"required"`
	MaterialID       *int64  `json:"material_id,omitempty"`
	PartWidthMm      int64   `json:"part_width_mm"`
	PartLengthMm     int64   `json:"part_length_mm"`
	MachineTimeHours float64 `json:"machine_time_hours" validate:"gte=0"`
	SetupTimeHours   float64 `json:"setup_time_hours" validate:"gte=0"`
	ToolingCost      int64   `json:"tooling_cost"`
	ThirdPartyCost   int64   `json:"third_party_cost"`
	MaterialCost     int64   `json:"material_cost"`
	MachineCost      int64   `json:"machine_cost"`
	LaborCost        int64   `json:"labor_cost"`
	ItemSubtotal     int64   `json:"item_subtotal"`
}
