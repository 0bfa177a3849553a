package grpc

import (
	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

func (s *GRPCServer) cardToAPI(c *models.Card) api.Card {
	return api.Card{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		DisplayName: c.DisplayName,
		IconName:    c.IconName,
		ImagePath:   c.ImagePath,
		ImageURL:    s.cards.ImageURL(c),
		Color:       c.Color,
		Link:        c.Link,
		IsOwner:     c.IsOwner,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func shareToAPI(sh *models.Share) api.Share {
	return api.Share{
		ID:              sh.ID,
		CardID:          sh.CardID,
		SharedWithID:    sh.SharedWithID,
		SharedWithEmail: sh.SharedWithEmail,
		SharedByID:      sh.SharedByID,
		CreatedAt:       sh.CreatedAt,
	}
}

func notificationToAPI(n *models.Notification) api.Notification {
	return api.Notification{
		ID:              n.ID,
		Kind:            n.Kind,
		CardID:          n.Payload.CardID,
		CardName:        n.Payload.CardName,
		SharerID:        n.Payload.SharerID,
		SharerFirstName: n.SharerFirstName,
		SharerLastName:  n.SharerLastName,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
	}
}

func (s *GRPCServer) profileToAPI(p *models.Profile) api.Profile {
	return api.Profile{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		AvatarURL: s.profiles.AvatarURL(p),
		UpdatedAt: p.UpdatedAt,
	}
}

func imageFromAPI(img *api.Image) *models.Image {
	if img == nil {
		return nil
	}
	return &models.Image{Ext: img.Ext, ContentType: img.ContentType, Data: img.Data}
}
