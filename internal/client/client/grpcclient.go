package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/client/models"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SessionStore persists the session between runs. Clear also drops any
// other per-user local data.
type SessionStore interface {
	LoadSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}

type GRPCClient struct {
	conn    *grpc.ClientConn
	api     *api.CardBoardClient
	store   SessionStore
	logger  logging.Logger
	timeout time.Duration

	mu      sync.RWMutex
	session models.Session

	// serialises refreshes; a refresh token is single-use
	refreshMu sync.Mutex
}

// NewGRPCClient connects lazily to endpoint. A zero timeout leaves calls
// bounded only by the caller's context. Extra dial options are appended
// after the defaults (tests pass a bufconn dialer this way).
func NewGRPCClient(endpoint string, store SessionStore, logger logging.Logger, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{store: store, logger: logger.With("module", "client"), timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = api.NewCardBoardClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if api.PublicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	token := c.Session().AccessToken
	if token == "" {
		return ErrNotLoggedIn
	}

	err := invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
	if !isTokenExpired(err) {
		return err
	}

	fresh, rerr := c.refresh(ctx, token)
	if rerr != nil {
		return rerr
	}
	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refresh rotates the token pair unless another caller already replaced
// stale, in which case the newer access token is returned as is.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	sess := c.Session()
	if sess.AccessToken != "" && sess.AccessToken != stale {
		return sess.AccessToken, nil
	}
	if sess.RefreshToken == "" {
		return "", common.ErrorUnauthorized
	}

	resp, err := c.api.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: sess.RefreshToken})
	if err != nil {
		return "", err
	}

	sess.AccessToken, sess.RefreshToken = resp.AccessToken, resp.RefreshToken
	if err := c.setSession(ctx, sess); err != nil {
		return "", err
	}
	c.logger.Debug(ctx, "access token refreshed")
	return sess.AccessToken, nil
}

// Session returns a copy of the current session.
func (c *GRPCClient) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *GRPCClient) setSession(ctx context.Context, s models.Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return c.store.SaveSession(ctx, s)
}

func (c *GRPCClient) IsLoggedIn() bool {
	return !c.Session().Empty()
}

// Resume loads a session persisted by an earlier run. It reports whether
// one was found; the tokens are only checked by the next protected call.
func (c *GRPCClient) Resume(ctx context.Context) (bool, error) {
	s, err := c.store.LoadSession(ctx)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return !s.Empty(), nil
}

func (c *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Register(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.Register(ctx, &api.Credentials{Email: email, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	return resp.UserID, nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.Login(ctx, &api.Credentials{Email: email, Password: password})
	if err != nil {
		return mapError(err)
	}
	return c.setSession(ctx, models.Session{Email: email, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
}

// Logout forgets the session locally. Refresh tokens expire on their own
// server-side.
func (c *GRPCClient) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.session = models.Session{}
	c.mu.Unlock()
	return c.store.Clear(ctx)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.Ping(ctx)
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return common.ErrTransport
	}
	return nil
}

func (c *GRPCClient) LookupUserID(ctx context.Context, email string) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.LookupUserID(ctx, &api.LookupUserIDRequest{Email: email})
	if err != nil {
		return "", mapError(err)
	}
	return resp.UserID, nil
}

func (c *GRPCClient) LookupUserEmail(ctx context.Context, userID string) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.LookupUserEmail(ctx, &api.LookupUserEmailRequest{UserID: userID})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Email, nil
}
