package projects

type CreateProjectRequest struct {
	ClientID    int64  `json:"client_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ativo concluido arquivado"`
}
