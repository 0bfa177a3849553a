package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/filex"
)

// maxUpload mirrors the server's image size cap so oversized files fail
// before they are sent.
const maxUpload = 5 << 20

// readImage is a test seam for filex.ReadLimited.
var readImage = func(path string) (*api.Image, error) {
	ext, data, err := filex.ReadLimited(path, maxUpload)
	if err != nil {
		return nil, err
	}
	return &api.Image{Ext: ext, Data: data}, nil
}

func (a *App) ListCards(ctx context.Context, _ []string) error {
	cards, offline, err := a.board.Cards(ctx)
	if err != nil {
		return err
	}
	if offline {
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, showing the last cached board.")
	}
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No cards yet. Type 'create' to add one.")
		return nil
	}
	for _, c := range cards {
		fmt.Fprintln(a.out, formatCardLine(c))
	}
	return nil
}

func (a *App) ShowCard(ctx context.Context, args []string) error {
	c, err := a.backend.GetCard(ctx, args[0])
	if err != nil {
		return err
	}
	printCard(a.out, c)
	return nil
}

func (a *App) CreateCard(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Link (optional)", a.out)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Colour, e.g. #3b82f6 (optional)", a.out)
	if err != nil {
		return err
	}
	icon, err := getSimpleText(a.reader, "Icon name (leave empty to upload an image)", a.out)
	if err != nil {
		return err
	}

	req := &api.CreateCardRequest{DisplayName: name, Link: link, Color: color, IconName: icon}
	if icon == "" {
		path, err := getSimpleText(a.reader, "Image file", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New("a card needs either an icon or an image")
		}
		if req.Image, err = readImage(path); err != nil {
			return err
		}
	}

	c, err := a.backend.CreateCard(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created card %s\n", c.ID)
	return nil
}

// EditCard prompts for each editable field with the current value as
// default.
func (a *App) EditCard(ctx context.Context, args []string) error {
	c, err := a.backend.GetCard(ctx, args[0])
	if err != nil {
		return err
	}
	if !c.IsOwner {
		return errors.New("only the owner can edit this card")
	}

	req := &api.UpdateCardRequest{CardID: c.ID}
	if req.DisplayName, err = GetTextDefault(a.reader, "Display name", c.DisplayName, a.out); err != nil {
		return err
	}
	if req.Link, err = GetTextDefault(a.reader, "Link ('-' to clear)", c.Link, a.out); err != nil {
		return err
	}
	if req.Color, err = GetTextDefault(a.reader, "Colour ('-' to clear)", c.Color, a.out); err != nil {
		return err
	}
	if req.IconName, err = GetTextDefault(a.reader, "Icon name", c.IconName, a.out); err != nil {
		return err
	}

	updated, err := a.backend.UpdateCard(ctx, req)
	if err != nil {
		return err
	}
	printCard(a.out, updated)
	return nil
}

func (a *App) SetCardImage(ctx context.Context, args []string) error {
	img, err := readImage(args[1])
	if err != nil {
		return err
	}
	c, err := a.backend.SetCardImage(ctx, args[0], img)
	if err != nil {
		return err
	}
	printCard(a.out, c)
	return nil
}

func (a *App) SetCardIcon(ctx context.Context, args []string) error {
	c, err := a.backend.RemoveCardImage(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printCard(a.out, c)
	return nil
}

// RemoveCard deletes an owned card or drops a shared one from the board.
func (a *App) RemoveCard(ctx context.Context, args []string) error {
	deleted, err := a.backend.RemoveAccess(ctx, args[0])
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(a.out, "Card deleted.")
	} else {
		fmt.Fprintln(a.out, "Card removed from your board.")
	}
	return nil
}
