package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cardboard/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) askCredentials() (email, password string, err error) {
	email, err = getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}
	password, err = getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// Register creates an account and signs straight in with it.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	if _, err := a.backend.Register(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created.")

	if err := a.backend.Login(ctx, email, password); err != nil {
		return err
	}
	a.afterLogin(ctx)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	if err := a.backend.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return errors.New("invalid email or password")
		}
		return err
	}
	a.afterLogin(ctx)
	return nil
}

func (a *App) afterLogin(ctx context.Context) {
	fmt.Fprintf(a.out, "Signed in as %s\n", a.backend.Session().Email)
	a.unread.Reset(0)
	a.unread.Check(ctx)
}

// Logout forgets the session and the cached board.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.backend.Logout(ctx); err != nil {
		return err
	}
	a.unread.Reset(0)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) Ping(ctx context.Context, _ []string) error {
	if err := a.backend.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Server is up.")
	return nil
}

// Whois resolves an email to a user id or the other way round.
func (a *App) Whois(ctx context.Context, args []string) error {
	q := args[0]
	if strings.Contains(q, "@") {
		id, err := a.backend.LookupUserID(ctx, q)
		if err != nil {
			return lookupError(err)
		}
		fmt.Fprintf(a.out, "%s is user %s\n", q, id)
		return nil
	}

	email, err := a.backend.LookupUserEmail(ctx, q)
	if err != nil {
		return lookupError(err)
	}
	fmt.Fprintf(a.out, "user %s is %s\n", q, email)
	return nil
}

func lookupError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return errors.New("no such user")
	}
	return err
}

// resolveUser accepts an email or a user id.
func (a *App) resolveUser(ctx context.Context, q string) (string, error) {
	if !strings.Contains(q, "@") {
		return q, nil
	}
	id, err := a.backend.LookupUserID(ctx, q)
	if err != nil {
		return "", lookupError(err)
	}
	return id, nil
}
