package domain

import "time"

// Material is raw stock bought as sheets of WidthMm x LengthMm.
type Material struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" validate:"required"`
	WidthMm       int64      `json:"width_mm" validate:"gt=0"`
	LengthMm      int64      `json:"length_mm" validate:"gt=0"`
	PurchasePrice int64      `json:"purchase_price"`
	Supplier      string     `json:"supplier,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"-" gorm:"index"`
}

// CostPerMm2 returns the sheet price spread over its area, in minor units
// per mm². Kept at float precision: per-mm² costs are far below one cent.
func (m *Material) CostPerMm2() float64 {
	area := m.WidthMm * m.LengthMm
	if area <= 0 {
		return 0
	}
	return float64(m.PurchasePrice) / float64(area)
}
