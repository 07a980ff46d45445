package materials

import "oficina/internal/domain"

type CreateMaterialRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	WidthMm       int64  `json:"width_mm" binding:"required,gt=0"`
	LengthMm      int64  `json:"length_mm" binding:"required,gt=0"`
	PurchasePrice int64  `json:"purchase_price" binding:"gte=0"`
	Supplier      string `json:"supplier,omitempty"`
}

type UpdateMaterialRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=2"`
	WidthMm       *int64  `json:"width_mm,omitempty" binding:"omitempty,gt=0"`
	LengthMm      *int64  `json:"length_mm,omitempty" binding:"omitempty,gt=0"`
	PurchasePrice *int64  `json:"purchase_price,omitempty" binding:"omitempty,gte=0"`
	Supplier      *string `json:"supplier,omitempty"`
}

// MaterialResponse embeds the derived per-mm² cost so list views do not
// need to redo the division client side.
type MaterialResponse struct {
	domain.Material
	CostPerMm2 float64 `json:"cost_per_mm2"`
}

func toResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{Material: *m, CostPerMm2: m.CostPerMm2()}
}

func toResponses(ms []domain.Material) []MaterialResponse {
	out := make([]MaterialResponse, len(ms))
	for i := range ms {
		out[i] = toResponse(&ms[i])
	}
	return out
}
