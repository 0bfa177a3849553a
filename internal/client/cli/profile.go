package cli

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (a *App) ShowProfile(ctx context.Context, _ []string) error {
	p, err := a.backend.GetProfile(ctx)
	if err != nil {
		return err
	}
	printProfile(a.out, a.backend.Session().Email, p)
	return nil
}

func (a *App) EditProfile(ctx context.Context, _ []string) error {
	p, err := a.backend.GetProfile(ctx)
	if err != nil {
		return err
	}

	req := &api.UpdateProfileRequest{}
	if req.FirstName, err = GetTextDefault(a.reader, "First name ('-' to clear)", p.FirstName, a.out); err != nil {
		return err
	}
	if req.LastName, err = GetTextDefault(a.reader, "Last name ('-' to clear)", p.LastName, a.out); err != nil {
		return err
	}
	if req.Phone, err = GetTextDefault(a.reader, "Phone, e.g. +15551234567 ('-' to clear)", p.Phone, a.out); err != nil {
		return err
	}

	updated, err := a.backend.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	printProfile(a.out, a.backend.Session().Email, updated)
	return nil
}

func (a *App) UploadAvatar(ctx context.Context, args []string) error {
	img, err := readImage(args[0])
	if err != nil {
		return err
	}
	p, err := a.backend.UploadAvatar(ctx, img)
	if err != nil {
		return err
	}
	printProfile(a.out, a.backend.Session().Email, p)
	return nil
}
