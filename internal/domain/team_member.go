package domain

import "time"

// TeamMember is a shop employee shown on quotes and projects. Not a login
// account; accounts live in User.
type TeamMember struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" validate:"required"`
	Position  string     `json:"position,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Active    bool       `json:"active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}
