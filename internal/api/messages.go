package api

import "time"

type Empty struct{}

type Image struct {
	Ext         string `json:"ext"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"`
}

type Card struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	DisplayName string    `json:"display_name"`
	IconName    string    `json:"icon_name,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Color       string    `json:"color,omitempty"`
	Link        string    `json:"link,omitempty"`
	IsOwner     bool      `json:"is_owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Share struct {
	ID              string    `json:"id"`
	CardID          string    `json:"card_id"`
	SharedWithID    string    `json:"shared_with_id"`
	SharedWithEmail string    `json:"shared_with_email,omitempty"`
	SharedByID      string    `json:"shared_by_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type Notification struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	CardID          string    `json:"card_id"`
	CardName        string    `json:"card_name"`
	SharerID        string    `json:"sharer_id"`
	SharerFirstName string    `json:"sharer_first_name,omitempty"`
	SharerLastName  string    `json:"sharer_last_name,omitempty"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"created_at"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// identity

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type PingResponse struct {
	Status string `json:"status"`
}

type LookupUserIDRequest struct {
	Email string `json:"email"`
}

type LookupUserIDResponse struct {
	UserID string `json:"user_id"`
}

type LookupUserEmailRequest struct {
	UserID string `json:"user_id"`
}

type LookupUserEmailResponse struct {
	Email string `json:"email"`
}

// cards

type CreateCardRequest struct {
	DisplayName string `json:"display_name"`
	IconName    string `json:"icon_name,omitempty"`
	Color       string `json:"color,omitempty"`
	Link        string `json:"link,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

type UpdateCardRequest struct {
	CardID      string `json:"card_id"`
	DisplayName string `json:"display_name"`
	IconName    string `json:"icon_name,omitempty"`
	Color       string `json:"color,omitempty"`
	Link        string `json:"link,omitempty"`
}

type CardRequest struct {
	CardID string `json:"card_id"`
}

type CardResponse struct {
	Card Card `json:"card"`
}

type ListCardsResponse struct {
	Cards []Card `json:"cards"`
}

type SetCardImageRequest struct {
	CardID string `json:"card_id"`
	Image  *Image `json:"image"`
}

type RemoveCardImageRequest struct {
	CardID   string `json:"card_id"`
	IconName string `json:"icon_name"`
}

// shares

type ShareCardRequest struct {
	CardID         string `json:"card_id"`
	RecipientEmail string `json:"recipient_email"`
}

type ShareCardResponse struct {
	Share   Share  `json:"share"`
	Warning string `json:"warning,omitempty"`
}

type RemoveAccessResponse struct {
	CardDeleted bool `json:"card_deleted"`
}

type RevokeShareRequest struct {
	CardID      string `json:"card_id"`
	RecipientID string `json:"recipient_id"`
}

type ListSharesResponse struct {
	Shares []Share `json:"shares"`
}

// notifications

type NotificationRequest struct {
	NotificationID string `json:"notification_id"`
}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type MarkAllNotificationsReadResponse struct {
	Updated int64 `json:"updated"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// profiles

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type UploadAvatarRequest struct {
	Image *Image `json:"image"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}
