package cli

import (
	"context"
	"fmt"
)

func (a *App) ShareCard(ctx context.Context, args []string) error {
	share, warning, err := a.backend.ShareCard(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Shared with %s\n", args[1])
	if warning != "" {
		fmt.Fprintf(a.out, "Warning: %s\n", warning)
	}
	a.logger.Debug(ctx, "card shared", "card_id", share.CardID, "recipient", share.SharedWithID)
	return nil
}

func (a *App) ListShares(ctx context.Context, args []string) error {
	shares, err := a.backend.ListShares(ctx, args[0])
	if err != nil {
		return err
	}
	if len(shares) == 0 {
		fmt.Fprintln(a.out, "Not shared with anyone.")
		return nil
	}
	for _, s := range shares {
		fmt.Fprintln(a.out, formatShareLine(s))
	}
	return nil
}

func (a *App) RevokeShare(ctx context.Context, args []string) error {
	userID, err := a.resolveUser(ctx, args[1])
	if err != nil {
		return err
	}
	if err := a.backend.RevokeShare(ctx, args[0], userID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access revoked.")
	return nil
}
