package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/dbx"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/cards"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/shares"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/users"
)

// world is an in-memory stand-in for the database that keeps the same
// rules the schema enforces.
type world struct {
	mu       sync.Mutex
	seq      int
	clock    time.Time
	users    map[string]*models.User
	profiles map[string]*models.Profile
	tokens   map[string]*models.RefreshToken
	cards    map[string]*models.Card
	shares   []*models.Share
	notes    map[string]*models.Notification

	notifyErr     error
	cardCreateErr error
}

func newWorld() *world {
	return &world{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    map[string]*models.User{},
		profiles: map[string]*models.Profile{},
		tokens:   map[string]*models.RefreshToken{},
		cards:    map[string]*models.Card{},
		notes:    map[string]*models.Notification{},
	}
}

func (w *world) nextID(prefix string) string {
	w.seq++
	return fmt.Sprintf("%s%d", prefix, w.seq)
}

func (w *world) tick() time.Time {
	w.clock = w.clock.Add(time.Second)
	return w.clock
}

// addUser inserts a user directly and returns its id.
func (w *world) addUser(email string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID("u")
	w.users[id] = &models.User{ID: id, Email: email, CreatedAt: w.tick()}
	w.profiles[id] = &models.Profile{UserID: id}
	return id
}

// addCard inserts an icon card owned by ownerID.
func (w *world) addCard(ownerID, name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID("c")
	now := w.tick()
	w.cards[id] = &models.Card{ID: id, OwnerID: ownerID, DisplayName: name, IconName: "Star", CreatedAt: now, UpdatedAt: now}
	return id
}

func (w *world) grantCount(cardID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, s := range w.shares {
		if s.CardID == cardID {
			n++
		}
	}
	return n
}

type fakeRepoManager struct{ w *world }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return &fakeUsers{m.w} }

func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository { return &fakeProfiles{m.w} }

func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return &fakeTokens{m.w} }

func (m *fakeRepoManager) Cards(dbx.DBTX) cards.Repository { return &fakeCards{m.w} }

func (m *fakeRepoManager) Shares(dbx.DBTX) shares.Repository { return &fakeShares{m.w} }

func (m *fakeRepoManager) Notifications(dbx.DBTX) notifications.Repository {
	return &fakeNotifications{m.w}
}

type fakeUsers struct{ w *world }

func (r *fakeUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	for _, existing := range r.w.users {
		if existing.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
	}
	u.ID = r.w.nextID("u")
	u.CreatedAt = r.w.tick()
	cp := *u
	r.w.users[u.ID] = &cp
	return u, nil
}

func (r *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	email = models.NormalizeEmail(email)
	for _, u := range r.w.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	u, ok := r.w.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeProfiles struct{ w *world }

func (r *fakeProfiles) Create(ctx context.Context, userID string) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	r.w.profiles[userID] = &models.Profile{UserID: userID, UpdatedAt: r.w.tick()}
	return nil
}

func (r *fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	p, ok := r.w.profiles[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfiles) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	cur, ok := r.w.profiles[p.UserID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cur.FirstName, cur.LastName, cur.Phone, cur.UpdatedAt = p.FirstName, p.LastName, p.Phone, r.w.tick()
	cp := *cur
	return &cp, nil
}

func (r *fakeProfiles) SetAvatar(ctx context.Context, userID, path string) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	cur, ok := r.w.profiles[userID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.AvatarPath = path
	return nil
}

type fakeTokens struct{ w *world }

func (r *fakeTokens) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	r.w.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r *fakeTokens) Consume(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	rt, ok := r.w.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.w.tokens, token)
	return rt, nil
}

func (r *fakeTokens) DeleteExpired(ctx context.Context, userID string) (int64, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var n int64
	for k, rt := range r.w.tokens {
		if rt.UserID == userID && rt.Expires.Before(time.Now()) {
			delete(r.w.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeCards struct{ w *world }

func (r *fakeCards) Create(ctx context.Context, c *models.Card) (*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	if r.w.cardCreateErr != nil {
		return nil, r.w.cardCreateErr
	}
	now := r.w.tick()
	cp := *c
	cp.CreatedAt, cp.UpdatedAt, cp.IsOwner = now, now, false
	r.w.cards[c.ID] = &cp
	out := cp
	out.IsOwner = true
	return &out, nil
}

func (r *fakeCards) GetByID(ctx context.Context, id string) (*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	c, ok := r.w.cards[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCards) visible(c *models.Card, userID string) bool {
	if c.OwnerID == userID {
		return true
	}
	for _, s := range r.w.shares {
		if s.CardID == c.ID && s.SharedWithID == userID {
			return true
		}
	}
	return false
}

func (r *fakeCards) GetVisible(ctx context.Context, id, userID string) (*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	c, ok := r.w.cards[id]
	if !ok || !r.visible(c, userID) {
		return nil, common.ErrorNotFound
	}
	cp := *c
	cp.IsOwner = c.OwnerID == userID
	return &cp, nil
}

func (r *fakeCards) ListVisible(ctx context.Context, userID string) ([]*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*models.Card, 0)
	for _, c := range r.w.cards {
		if r.visible(c, userID) {
			cp := *c
			cp.IsOwner = c.OwnerID == userID
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCards) Update(ctx context.Context, c *models.Card) (*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	cur, ok := r.w.cards[c.ID]
	if !ok || cur.OwnerID != c.OwnerID {
		return nil, common.ErrorNotFound
	}
	cur.DisplayName, cur.IconName, cur.ImagePath, cur.Color, cur.Link = c.DisplayName, c.IconName, c.ImagePath, c.Color, c.Link
	cur.UpdatedAt = r.w.tick()
	cp := *cur
	cp.IsOwner = true
	return &cp, nil
}

func (r *fakeCards) DeleteOwned(ctx context.Context, id, ownerID string) (*models.Card, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	c, ok := r.w.cards[id]
	if !ok || c.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	delete(r.w.cards, id)
	kept := r.w.shares[:0]
	for _, s := range r.w.shares {
		if s.CardID != id {
			kept = append(kept, s)
		}
	}
	r.w.shares = kept
	return c, nil
}

type fakeShares struct{ w *world }

func (r *fakeShares) CreateOwned(ctx context.Context, cardID, recipientID, ownerID string) (*models.Share, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	c, ok := r.w.cards[cardID]
	if !ok || c.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	if _, ok := r.w.users[recipientID]; !ok {
		return nil, common.ErrorNotFound
	}
	if recipientID == c.OwnerID {
		return nil, common.ErrSelfShareRejected
	}
	for _, s := range r.w.shares {
		if s.CardID == cardID && s.SharedWithID == recipientID {
			return nil, common.ErrAlreadyShared
		}
	}
	s := &models.Share{ID: r.w.nextID("s"), CardID: cardID, SharedWithID: recipientID, SharedByID: ownerID, CreatedAt: r.w.tick()}
	r.w.shares = append(r.w.shares, s)
	cp := *s
	return &cp, nil
}

func (r *fakeShares) DeleteForRecipient(ctx context.Context, cardID, recipientID string) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	for i, s := range r.w.shares {
		if s.CardID == cardID && s.SharedWithID == recipientID {
			r.w.shares = append(r.w.shares[:i], r.w.shares[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *fakeShares) ListForCard(ctx context.Context, cardID string) ([]*models.Share, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*models.Share, 0)
	for i := len(r.w.shares) - 1; i >= 0; i-- {
		s := r.w.shares[i]
		if s.CardID == cardID {
			cp := *s
			cp.SharedWithEmail = r.w.users[s.SharedWithID].Email
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeNotifications struct{ w *world }

func (r *fakeNotifications) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	if r.w.notifyErr != nil {
		return nil, r.w.notifyErr
	}
	n.ID = r.w.nextID("n")
	n.CreatedAt = r.w.tick()
	cp := *n
	r.w.notes[n.ID] = &cp
	return n, nil
}

func (r *fakeNotifications) Get(ctx context.Context, id string) (*models.Notification, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	n, ok := r.w.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotifications) ListForRecipient(ctx context.Context, userID string) ([]*models.Notification, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	out := make([]*models.Notification, 0)
	for _, n := range r.w.notes {
		if n.RecipientID == userID {
			cp := *n
			if p, ok := r.w.profiles[n.Payload.SharerID]; ok {
				cp.SharerFirstName, cp.SharerLastName = p.FirstName, p.LastName
			}
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNotifications) MarkRead(ctx context.Context, id, recipientID string) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	n, ok := r.w.notes[id]
	if !ok || n.RecipientID != recipientID {
		return common.ErrorNotFound
	}
	n.Read = true
	return nil
}

func (r *fakeNotifications) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var changed int64
	for _, n := range r.w.notes {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

func (r *fakeNotifications) Delete(ctx context.Context, id, recipientID string) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	n, ok := r.w.notes[id]
	if !ok || n.RecipientID != recipientID {
		return common.ErrorNotFound
	}
	delete(r.w.notes, id)
	return nil
}

func (r *fakeNotifications) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()
	var c int64
	for _, n := range r.w.notes {
		if n.RecipientID == recipientID && !n.Read {
			c++
		}
	}
	return c, nil
}

// fakeStore is an in-memory ObjectStore.
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	putErr    error
	deleteErr error
}

func newFakeStore() *fakeStore { return &fakeStore{objects: map[string][]byte{}} }

func (s *fakeStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = data
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return "http://s3.test/bucket/" + key
}

func (s *fakeStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}
