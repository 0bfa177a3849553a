package models

import "time"

// Share grants SharedWithID read access to CardID. SharedByID is always the
// card owner at the time of the grant.
type Share struct {
	ID           string
	CardID       string
	SharedWithID string
	SharedByID   string
	CreatedAt    time.Time

	// SharedWithEmail is filled by listing queries only.
	SharedWithEmail string
}
