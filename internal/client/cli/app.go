package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/client/cache"
	"github.com/dmitrijs2005/cardboard/internal/client/client"
	"github.com/dmitrijs2005/cardboard/internal/client/config"
	"github.com/dmitrijs2005/cardboard/internal/client/models"
	"github.com/dmitrijs2005/cardboard/internal/client/services"
	"github.com/dmitrijs2005/cardboard/internal/filex"
	"github.com/dmitrijs2005/cardboard/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Backend is the slice of client.GRPCClient the commands use.
type Backend interface {
	IsLoggedIn() bool
	Session() models.Session
	Resume(ctx context.Context) (bool, error)
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	LookupUserID(ctx context.Context, email string) (string, error)
	LookupUserEmail(ctx context.Context, userID string) (string, error)

	CreateCard(ctx context.Context, in *api.CreateCardRequest) (*api.Card, error)
	UpdateCard(ctx context.Context, in *api.UpdateCardRequest) (*api.Card, error)
	GetCard(ctx context.Context, cardID string) (*api.Card, error)
	ListCards(ctx context.Context) ([]api.Card, error)
	SetCardImage(ctx context.Context, cardID string, img *api.Image) (*api.Card, error)
	RemoveCardImage(ctx context.Context, cardID, iconName string) (*api.Card, error)

	ShareCard(ctx context.Context, cardID, recipientEmail string) (*api.Share, string, error)
	RemoveAccess(ctx context.Context, cardID string) (bool, error)
	RevokeShare(ctx context.Context, cardID, recipientID string) error
	ListShares(ctx context.Context, cardID string) ([]api.Share, error)

	ListNotifications(ctx context.Context) ([]api.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int64, error)

	GetProfile(ctx context.Context) (*api.Profile, error)
	UpdateProfile(ctx context.Context, in *api.UpdateProfileRequest) (*api.Profile, error)
	UploadAvatar(ctx context.Context, img *api.Image) (*api.Profile, error)
}

var _ Backend = (*client.GRPCClient)(nil)

type App struct {
	config  *config.Config
	backend Backend
	board   *services.BoardService
	unread  *services.UnreadWatcher
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local cache and the server connection described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, c.LogLevel)

	if err := filex.EnsureParentDir(c.CachePath); err != nil {
		return nil, err
	}
	store, err := cache.Open(ctx, c.CachePath)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, store, logger, c.RequestTimeout)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := newApp(c, apiClient, store, logger, os.Stdin, os.Stdout)
	a.closers = []io.Closer{apiClient, store}
	return a, nil
}

func newApp(c *config.Config, backend Backend, store services.CardCache, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		backend: backend,
		board:   services.NewBoardService(backend, store, logger),
		unread:  services.NewUnreadWatcher(backend, c.UnreadPollInterval, logger),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     &syncWriter{w: out},
	}
	a.unread.OnChange = a.announceUnread
	a.unread.OnReachable = func(online bool) {
		if online {
			a.setMode(ModeOnline)
		} else {
			a.setMode(ModeOffline)
		}
	}
	return a
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		fmt.Fprintf(a.out, "\nSwitched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) announceUnread(n int64) {
	if n > 0 {
		fmt.Fprintf(a.out, "\nYou have %d unread notification(s). Type 'notifications' to see them.\n", n)
	}
}

func (a *App) isLoggedIn() bool {
	return a.backend.IsLoggedIn()
}

func (a *App) status() string {
	s := ""
	if a.isLoggedIn() {
		s = a.backend.Session().Email
	}
	if m := a.currentMode(); m != "" {
		s = joinStatus(s, string(m))
	}
	if n := a.unread.Count(); n > 0 && a.isLoggedIn() {
		s = joinStatus(s, fmt.Sprintf("%d unread", n))
	}
	if s != "" {
		s = "(" + s + ") "
	}
	return s
}

func joinStatus(s, part string) string {
	if s == "" {
		return part
	}
	return s + ", " + part
}

// Run resumes a saved session, starts the unread poller and serves the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to CardBoard CLI (type 'help' for commands)")
	if ok, err := a.backend.Resume(ctx); err != nil {
		a.logger.Warn(ctx, "saved session unreadable", "error", err)
	} else if ok {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.backend.Session().Email)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.unread.Run(pollCtx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.reader, a.out)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Fprintln(a.out, "\nBye!")
	}
	return nil
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
