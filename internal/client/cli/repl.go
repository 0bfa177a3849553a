package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/cardboard/internal/client/client"
	"github.com/dmitrijs2005/cardboard/internal/common"
)

type command struct {
	name  string
	alias string
	usage string
	help  string
	// minimum number of arguments
	nargs int
	auth  bool
	run   func(ctx context.Context, args []string) error
}

// shell is what runREPL needs; App implements it and tests stub it.
type shell interface {
	isLoggedIn() bool
	status() string
	commands() []command
}

// runREPL reads one command per line and dispatches it. The loop ends on
// EOF or "exit"/"quit". Errors returned by commands are printed and the
// loop carries on.
func runREPL(ctx context.Context, sh shell, reader *bufio.Reader, w io.Writer) {
	cmds := sh.commands()
	for {
		fmt.Fprintf(w, "cardboard %s> ", sh.status())
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			name, args := parts[0], parts[1:]
			switch name {
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			case "help":
				printHelp(w, cmds, sh.isLoggedIn())
			default:
				dispatch(ctx, w, cmds, sh.isLoggedIn(), name, args)
			}
		}

		if readErr != nil {
			fmt.Fprintln(w)
			return
		}
	}
}

func dispatch(ctx context.Context, w io.Writer, cmds []command, loggedIn bool, name string, args []string) {
	cmd, ok := findCommand(cmds, name)
	switch {
	case !ok:
		fmt.Fprintln(w, "Unknown command:", name)
	case cmd.auth && !loggedIn:
		fmt.Fprintln(w, "Please log in first")
	case len(args) < cmd.nargs:
		fmt.Fprintln(w, "Usage:", cmd.usage)
	default:
		if err := cmd.run(ctx, args); err != nil {
			fmt.Fprintln(w, "Error:", describe(err))
		}
	}
}

func findCommand(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name || (c.alias != "" && c.alias == name) {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(w io.Writer, cmds []command, loggedIn bool) {
	fmt.Fprintln(w, "Available commands:")
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		if !c.auth && loggedIn && (c.name == "register" || c.name == "login") {
			continue
		}
		fmt.Fprintf(w, "  %-32s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(w, "  %-32s %s\n", "exit", "leave the program")
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrNotLoggedIn):
		return "not logged in"
	case errors.Is(err, common.ErrTransport):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrRefreshTokenExpired), errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return "session expired, please log in again"
	}
	return err.Error()
}
