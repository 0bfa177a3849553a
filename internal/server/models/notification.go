package models

import "time"

// NotificationPayload is the JSONB body of a card_shared notification. It
// is a snapshot: the card may be renamed or deleted afterwards.
type NotificationPayload struct {
	CardID   string `json:"card_id"`
	CardName string `json:"card_name"`
	SharerID string `json:"sharer_id"`
}

type Notification struct {
	ID          string
	RecipientID string
	Kind        string
	Payload     NotificationPayload
	Read        bool
	CreatedAt   time.Time

	// Sharer name from the sharer's profile, when one exists.
	SharerFirstName string
	SharerLastName  string
}
