package team

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Position *string `json:"position,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}
