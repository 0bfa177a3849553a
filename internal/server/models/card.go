package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/common"
)

const MaxDisplayNameLength = 100

// Card is a shortcut tile. Exactly one of IconName and ImagePath is set;
// an empty string stands for NULL in the database.
type Card struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id" validate:"required"`
	DisplayName string    `json:"display_name" validate:"required,max=100"`
	IconName    string    `json:"icon_name" validate:"omitempty,alphanum,max=64"`
	ImagePath   string    `json:"image_path" validate:"omitempty,max=512"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"`
	Link        string    `json:"link" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// IsOwner is computed per viewer and never stored.
	IsOwner bool `json:"is_owner"`
}

// Normalize trims user-entered text fields in place.
func (c *Card) Normalize() {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	c.IconName = strings.TrimSpace(c.IconName)
	c.Color = strings.TrimSpace(c.Color)
	c.Link = strings.TrimSpace(c.Link)
}

// Validate checks field rules and the icon/image exclusivity.
func (c *Card) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if (c.IconName == "") == (c.ImagePath == "") {
		return fmt.Errorf("%w: exactly one of icon_name and image_path must be set", common.ErrorValidation)
	}
	return nil
}

// HasImage reports whether the card displays an uploaded image.
func (c *Card) HasImage() bool {
	return c.ImagePath != ""
}
