package cli

import (
	"context"
	"fmt"
)

func (a *App) ListNotifications(ctx context.Context, _ []string) error {
	list, err := a.backend.ListNotifications(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range list {
		fmt.Fprintln(a.out, formatNotificationLine(n))
	}
	return nil
}

// MarkRead marks one notification, or all of them with "all", as read.
func (a *App) MarkRead(ctx context.Context, args []string) error {
	if args[0] == "all" {
		n, err := a.backend.MarkAllNotificationsRead(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Marked %d notification(s) as read.\n", n)
	} else {
		if err := a.backend.MarkNotificationRead(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Marked as read.")
	}
	a.unread.Check(ctx)
	return nil
}

func (a *App) DismissNotification(ctx context.Context, args []string) error {
	if err := a.backend.DeleteNotification(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Notification deleted.")
	a.unread.Check(ctx)
	return nil
}
