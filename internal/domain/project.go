package domain

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ativo"
	ProjectDone     ProjectStatus = "concluido"
	ProjectArchived ProjectStatus = "arquivado"
)

type Project struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	ClientID    int64         `json:"client_id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
