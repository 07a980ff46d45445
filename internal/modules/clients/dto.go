package clients

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Company *string `json:"company,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}
