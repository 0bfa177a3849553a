package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/client/config"
	"github.com/dmitrijs2005/cardboard/internal/client/models"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
)

// fakeBackend implements the calls the tests exercise; anything else
// panics through the nil embedded interface.
type fakeBackend struct {
	Backend

	mu      sync.Mutex
	session models.Session
	calls   []string

	loginErr    error
	registerErr error
	resumed     models.Session

	cards    []api.Card
	listErr  error
	card     *api.Card
	getErr   error
	created  *api.CreateCardRequest
	updated  *api.UpdateCardRequest
	imageReq *api.Image
	iconReq  string

	cardDeleted bool
	shareWarn   string
	shareErr    error
	shares      []api.Share
	revokedFor  string

	lookupID    map[string]string
	lookupEmail map[string]string

	notifications []api.Notification
	unread        int64
	markedAll     int64

	profile *api.Profile
	profReq *api.UpdateProfileRequest
	pingErr error
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) IsLoggedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.session.Empty()
}

func (f *fakeBackend) Session() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeBackend) Resume(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = f.resumed
	return !f.resumed.Empty(), nil
}

func (f *fakeBackend) Register(_ context.Context, email, _ string) (string, error) {
	f.record("register:" + email)
	return "u1", f.registerErr
}

func (f *fakeBackend) Login(_ context.Context, email, password string) error {
	f.record("login:" + email + ":" + password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.mu.Lock()
	f.session = models.Session{Email: email, AccessToken: "A", RefreshToken: "R"}
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Logout(context.Context) error {
	f.record("logout")
	f.mu.Lock()
	f.session = models.Session{}
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Ping(context.Context) error { return f.pingErr }

func (f *fakeBackend) LookupUserID(_ context.Context, email string) (string, error) {
	if id, ok := f.lookupID[email]; ok {
		return id, nil
	}
	return "", common.ErrorNotFound
}

func (f *fakeBackend) LookupUserEmail(_ context.Context, id string) (string, error) {
	if email, ok := f.lookupEmail[id]; ok {
		return email, nil
	}
	return "", common.ErrorNotFound
}

func (f *fakeBackend) ListCards(context.Context) ([]api.Card, error) {
	f.record("list")
	return f.cards, f.listErr
}

func (f *fakeBackend) GetCard(_ context.Context, id string) (*api.Card, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c := *f.card
	c.ID = id
	return &c, nil
}

func (f *fakeBackend) CreateCard(_ context.Context, in *api.CreateCardRequest) (*api.Card, error) {
	f.created = in
	return &api.Card{ID: "new1", DisplayName: in.DisplayName}, nil
}

func (f *fakeBackend) UpdateCard(_ context.Context, in *api.UpdateCardRequest) (*api.Card, error) {
	f.updated = in
	return &api.Card{ID: in.CardID, DisplayName: in.DisplayName, IsOwner: true}, nil
}

func (f *fakeBackend) SetCardImage(_ context.Context, id string, img *api.Image) (*api.Card, error) {
	f.imageReq = img
	return &api.Card{ID: id, ImageURL: "http://s3/x.png", IsOwner: true}, nil
}

func (f *fakeBackend) RemoveCardImage(_ context.Context, id, icon string) (*api.Card, error) {
	f.iconReq = icon
	return &api.Card{ID: id, IconName: icon, IsOwner: true}, nil
}

func (f *fakeBackend) RemoveAccess(_ context.Context, id string) (bool, error) {
	f.record("remove:" + id)
	return f.cardDeleted, nil
}

func (f *fakeBackend) ShareCard(_ context.Context, id, email string) (*api.Share, string, error) {
	f.record("share:" + id + ":" + email)
	if f.shareErr != nil {
		return nil, "", f.shareErr
	}
	return &api.Share{CardID: id, SharedWithID: "u2"}, f.shareWarn, nil
}

func (f *fakeBackend) ListShares(context.Context, string) ([]api.Share, error) {
	return f.shares, nil
}

func (f *fakeBackend) RevokeShare(_ context.Context, id, recipient string) error {
	f.revokedFor = recipient
	return nil
}

func (f *fakeBackend) ListNotifications(context.Context) ([]api.Notification, error) {
	return f.notifications, nil
}

func (f *fakeBackend) MarkNotificationRead(_ context.Context, id string) error {
	f.record("read:" + id)
	return nil
}

func (f *fakeBackend) MarkAllNotificationsRead(context.Context) (int64, error) {
	f.record("readall")
	return f.markedAll, nil
}

func (f *fakeBackend) DeleteNotification(_ context.Context, id string) error {
	f.record("dismiss:" + id)
	return nil
}

func (f *fakeBackend) UnreadCount(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread, nil
}

func (f *fakeBackend) GetProfile(context.Context) (*api.Profile, error) {
	p := *f.profile
	return &p, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, in *api.UpdateProfileRequest) (*api.Profile, error) {
	f.profReq = in
	return &api.Profile{FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone}, nil
}

func (f *fakeBackend) UploadAvatar(_ context.Context, img *api.Image) (*api.Profile, error) {
	f.imageReq = img
	return &api.Profile{AvatarURL: "http://s3/avatar.png"}, nil
}

type memCache struct {
	cards []api.Card
}

func (m *memCache) SaveCards(_ context.Context, c []api.Card) error {
	m.cards = c
	return nil
}

func (m *memCache) LoadCards(context.Context) ([]api.Card, error) { return m.cards, nil }

// newTestApp builds an App reading input lines and writing to the
// returned buffer. Password prompts read from the same input.
func newTestApp(t *testing.T, f *fakeBackend, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	origPW := getPassword
	getPassword = func(r *bufio.Reader, w io.Writer) (string, error) {
		return GetSimpleText(r, "Enter password", w)
	}
	t.Cleanup(func() { getPassword = origPW })

	cfg := &config.Config{UnreadPollInterval: time.Hour}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return newApp(cfg, f, &memCache{}, logging.Nop{}, in, &out), &out
}
