package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/client/models"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type memStore struct {
	mu      sync.Mutex
	sess    models.Session
	saves   int
	cleared bool
	saveErr error
}

func (m *memStore) LoadSession(context.Context) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, nil
}

func (m *memStore) SaveSession(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = s
	m.saves++
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = models.Session{}
	m.cleared = true
	return nil
}

func statusErr(err error) error {
	st, _ := api.StatusError(err)
	return st.Err()
}

// fakeServer accepts access token "A2" and reports "A1" as expired.
type fakeServer struct {
	api.CardBoardServer

	mu         sync.Mutex
	refreshes  int
	listTokens []string
	delay      time.Duration
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakeServer) checkToken(ctx context.Context) error {
	switch tokenFrom(ctx) {
	case "A2":
		return nil
	case "A1":
		return statusErr(common.ErrTokenExpired)
	default:
		return statusErr(common.ErrInvalidToken)
	}
}

func (f *fakeServer) Ping(context.Context, *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (f *fakeServer) Register(_ context.Context, in *api.Credentials) (*api.RegisterResponse, error) {
	if in.Email == "taken@x.io" {
		return nil, statusErr(common.ErrEmailTaken)
	}
	return &api.RegisterResponse{UserID: "u1"}, nil
}

func (f *fakeServer) Login(_ context.Context, in *api.Credentials) (*api.TokenResponse, error) {
	if in.Password != "secret" {
		return nil, statusErr(common.ErrorUnauthorized)
	}
	return &api.TokenResponse{AccessToken: "A1", RefreshToken: "R1"}, nil
}

func (f *fakeServer) RefreshToken(_ context.Context, in *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if in.RefreshToken != "R1" {
		return nil, statusErr(common.ErrRefreshTokenExpired)
	}
	f.refreshes++
	return &api.TokenResponse{AccessToken: "A2", RefreshToken: "R2"}, nil
}

func (f *fakeServer) ListCards(ctx context.Context, _ *api.Empty) (*api.ListCardsResponse, error) {
	f.mu.Lock()
	f.listTokens = append(f.listTokens, tokenFrom(ctx))
	f.mu.Unlock()
	if err := f.checkToken(ctx); err != nil {
		return nil, err
	}
	return &api.ListCardsResponse{Cards: []api.Card{{ID: "c1", DisplayName: "Mail"}}}, nil
}

func (f *fakeServer) GetCard(ctx context.Context, in *api.CardRequest) (*api.CardResponse, error) {
	if err := f.checkToken(ctx); err != nil {
		return nil, err
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if in.CardID != "c1" {
		return nil, statusErr(common.ErrorNotFound)
	}
	return &api.CardResponse{Card: api.Card{ID: "c1"}}, nil
}

func (f *fakeServer) ShareCard(ctx context.Context, in *api.ShareCardRequest) (*api.ShareCardResponse, error) {
	if err := f.checkToken(ctx); err != nil {
		return nil, err
	}
	if in.RecipientEmail == "me@x.io" {
		return nil, statusErr(common.ErrSelfShareRejected)
	}
	return &api.ShareCardResponse{Share: api.Share{CardID: in.CardID, SharedWithID: "u2"}, Warning: "recipient was not notified"}, nil
}

func (f *fakeServer) UnreadCount(ctx context.Context, _ *api.Empty) (*api.UnreadCountResponse, error) {
	if err := f.checkToken(ctx); err != nil {
		return nil, err
	}
	return &api.UnreadCountResponse{Count: 3}, nil
}

func newTestClient(t *testing.T, srv api.CardBoardServer, store *memStore, timeout time.Duration) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	api.RegisterCardBoardServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", store, logging.Nop{}, timeout,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLogin_StoresSession(t *testing.T) {
	store := &memStore{}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "a@x.io", "secret"))
	assert.True(t, c.IsLoggedIn())
	assert.Equal(t, models.Session{Email: "a@x.io", AccessToken: "A1", RefreshToken: "R1"}, store.sess)

	err := c.Login(ctx, "a@x.io", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegister_MapsErrors(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &memStore{}, time.Second)

	id, err := c.Register(context.Background(), "new@x.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = c.Register(context.Background(), "taken@x.io", "secret")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestProtectedCall_WithoutSession(t *testing.T) {
	c := newTestClient(t, &fakeServer{}, &memStore{}, time.Second)

	_, err := c.ListCards(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, c.Ping(context.Background()))
}

func TestExpiredToken_RefreshesOnceAndReplays(t *testing.T) {
	srv := &fakeServer{}
	store := &memStore{sess: models.Session{Email: "a@x.io", AccessToken: "A1", RefreshToken: "R1"}}
	c := newTestClient(t, srv, store, time.Second)
	ctx := context.Background()

	ok, err := c.Resume(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	cards, err := c.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	assert.Equal(t, []string{"A1", "A2"}, srv.listTokens)
	assert.Equal(t, 1, srv.refreshes)
	assert.Equal(t, "A2", store.sess.AccessToken)
	assert.Equal(t, "R2", store.sess.RefreshToken)
	assert.Equal(t, "a@x.io", store.sess.Email)
}

func TestExpiredToken_ConcurrentCallersShareRefresh(t *testing.T) {
	srv := &fakeServer{}
	store := &memStore{sess: models.Session{AccessToken: "A1", RefreshToken: "R1"}}
	c := newTestClient(t, srv, store, 2*time.Second)
	ctx := context.Background()
	_, err := c.Resume(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.UnreadCount(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, srv.refreshes)
}

func TestExpiredToken_RefreshRejected(t *testing.T) {
	store := &memStore{sess: models.Session{AccessToken: "A1", RefreshToken: "gone"}}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	_, err = c.ListCards(context.Background())
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestExpiredToken_NoRefreshToken(t *testing.T) {
	store := &memStore{sess: models.Session{AccessToken: "A1"}}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	_, err = c.ListCards(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestExpiredToken_SaveFailure(t *testing.T) {
	store := &memStore{sess: models.Session{AccessToken: "A1", RefreshToken: "R1"}}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)
	store.saveErr = errors.New("disk full")

	_, err = c.ListCards(context.Background())
	assert.ErrorContains(t, err, "disk full")
}

func TestInvalidToken_NotRefreshed(t *testing.T) {
	srv := &fakeServer{}
	store := &memStore{sess: models.Session{AccessToken: "bogus", RefreshToken: "R1"}}
	c := newTestClient(t, srv, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	_, err = c.ListCards(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.Zero(t, srv.refreshes)
}

func TestShareCard_WarningAndRejection(t *testing.T) {
	store := &memStore{sess: models.Session{AccessToken: "A2"}}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	share, warning, err := c.ShareCard(context.Background(), "c1", "friend@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u2", share.SharedWithID)
	assert.Equal(t, "recipient was not notified", warning)

	_, _, err = c.ShareCard(context.Background(), "c1", "me@x.io")
	assert.ErrorIs(t, err, common.ErrSelfShareRejected)
}

func TestGetCard_NotFoundAndTimeout(t *testing.T) {
	srv := &fakeServer{}
	store := &memStore{sess: models.Session{AccessToken: "A2"}}
	c := newTestClient(t, srv, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	_, err = c.GetCard(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	srv.delay = 200 * time.Millisecond
	c.timeout = 20 * time.Millisecond
	_, err = c.GetCard(context.Background(), "c1")
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestLogout_ClearsStore(t *testing.T) {
	store := &memStore{sess: models.Session{AccessToken: "A2", RefreshToken: "R2"}}
	c := newTestClient(t, &fakeServer{}, store, time.Second)
	_, err := c.Resume(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.IsLoggedIn())
	assert.True(t, store.cleared)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(status.Error(codes.DeadlineExceeded, "slow")), common.ErrTransport)
	assert.ErrorIs(t, mapError(status.Error(codes.Unavailable, "connection refused")), common.ErrTransport)
	assert.ErrorIs(t, mapError(status.Error(codes.PermissionDenied, common.ErrPermissionDenied.Error())), common.ErrPermissionDenied)

	plain := errors.New("boom")
	assert.Same(t, plain, mapError(plain))
}
