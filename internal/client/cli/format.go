package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

const timeLayout = "2006-01-02 15:04"

func formatCardLine(c api.Card) string {
	owner := "shared"
	if c.IsOwner {
		owner = "mine"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s] %s", c.ID, owner, c.DisplayName)
	if c.IconName != "" {
		fmt.Fprintf(&b, "  icon:%s", c.IconName)
	} else {
		b.WriteString("  image")
	}
	if c.Link != "" {
		fmt.Fprintf(&b, "  %s", c.Link)
	}
	return b.String()
}

func printCard(w io.Writer, c *api.Card) {
	fmt.Fprintf(w, "ID:       %s\n", c.ID)
	fmt.Fprintf(w, "Name:     %s\n", c.DisplayName)
	if c.IconName != "" {
		fmt.Fprintf(w, "Icon:     %s\n", c.IconName)
	}
	if c.ImageURL != "" {
		fmt.Fprintf(w, "Image:    %s\n", c.ImageURL)
	}
	if c.Color != "" {
		fmt.Fprintf(w, "Colour:   %s\n", c.Color)
	}
	if c.Link != "" {
		fmt.Fprintf(w, "Link:     %s\n", c.Link)
	}
	if c.IsOwner {
		fmt.Fprintln(w, "Owner:    you")
	} else {
		fmt.Fprintf(w, "Owner:    %s\n", c.OwnerID)
	}
	fmt.Fprintf(w, "Updated:  %s\n", c.UpdatedAt.Local().Format(timeLayout))
}

func formatShareLine(s api.Share) string {
	who := s.SharedWithEmail
	if who == "" {
		who = s.SharedWithID
	}
	return fmt.Sprintf("%s  since %s", who, s.CreatedAt.Local().Format(timeLayout))
}

func formatNotificationLine(n api.Notification) string {
	mark := " "
	if !n.Read {
		mark = "*"
	}
	sharer := strings.TrimSpace(n.SharerFirstName + " " + n.SharerLastName)
	if sharer == "" {
		sharer = "Someone"
	}
	return fmt.Sprintf("%s %s  %s  %s shared %q with you", mark, n.ID, n.CreatedAt.Local().Format(timeLayout), sharer, n.CardName)
}

func printProfile(w io.Writer, email string, p *api.Profile) {
	fmt.Fprintf(w, "Email:    %s\n", email)
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		fmt.Fprintf(w, "Name:     %s\n", name)
	}
	if p.Phone != "" {
		fmt.Fprintf(w, "Phone:    %s\n", p.Phone)
	}
	if p.AvatarURL != "" {
		fmt.Fprintf(w, "Avatar:   %s\n", p.AvatarURL)
	}
}
