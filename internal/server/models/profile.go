package models

import (
	"strings"
	"time"
)

type Profile struct {
	UserID     string    `json:"user_id"`
	FirstName  string    `json:"first_name" validate:"max=100"`
	LastName   string    `json:"last_name" validate:"max=100"`
	Phone      string    `json:"phone" validate:"omitempty,e164"`
	AvatarPath string    `json:"avatar_path"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *Profile) Normalize() {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Phone = strings.TrimSpace(p.Phone)
}

func (p *Profile) Validate() error {
	return validateStruct(p)
}
