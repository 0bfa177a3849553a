package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/services"
)

type fakeUsers struct {
	regResp   *models.User
	regErr    error
	loginResp *services.TokenPair
	loginErr  error
	refresh   *services.TokenPair
	refErr    error
	lookupID  string
	lookupErr error
}

func (f *fakeUsers) Register(ctx context.Context, email, password string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) RefreshToken(ctx context.Context, token string) (*services.TokenPair, error) {
	return f.refresh, f.refErr
}
func (f *fakeUsers) LookupUserID(ctx context.Context, email string) (string, error) {
	return f.lookupID, f.lookupErr
}
func (f *fakeUsers) LookupUserEmail(ctx context.Context, userID string) (string, error) {
	return "e@example.com", f.lookupErr
}

type fakeCards struct {
	card    *models.Card
	list    []*models.Card
	err     error
	gotUser string
	gotIn   services.CardInput
	gotImg  *models.Image
}

func (f *fakeCards) ImageURL(c *models.Card) string {
	if c.ImagePath == "" {
		return ""
	}
	return "http://s3.test/card-icons/" + c.ImagePath
}
func (f *fakeCards) CreateCard(ctx context.Context, ownerID string, in services.CardInput) (*models.Card, error) {
	f.gotUser, f.gotIn = ownerID, in
	return f.card, f.err
}
func (f *fakeCards) GetCard(ctx context.Context, cardID, userID string) (*models.Card, error) {
	f.gotUser = userID
	return f.card, f.err
}
func (f *fakeCards) ListCards(ctx context.Context, userID string) ([]*models.Card, error) {
	f.gotUser = userID
	return f.list, f.err
}
func (f *fakeCards) UpdateCard(ctx context.Context, cardID, actorID string, in services.CardInput) (*models.Card, error) {
	f.gotUser, f.gotIn = actorID, in
	return f.card, f.err
}
func (f *fakeCards) SetCardImage(ctx context.Context, cardID, actorID string, img *models.Image) (*models.Card, error) {
	f.gotUser, f.gotImg = actorID, img
	return f.card, f.err
}
func (f *fakeCards) RemoveCardImage(ctx context.Context, cardID, actorID, iconName string) (*models.Card, error) {
	f.gotUser = actorID
	return f.card, f.err
}

type fakeShares struct {
	result  *services.ShareResult
	removed *services.RemoveAccessResult
	list    []*models.Share
	err     error
}

func (f *fakeShares) ShareCard(ctx context.Context, cardID, email, actorID string) (*services.ShareResult, error) {
	return f.result, f.err
}
func (f *fakeShares) RemoveAccess(ctx context.Context, cardID, actorID string) (*services.RemoveAccessResult, error) {
	return f.removed, f.err
}
func (f *fakeShares) ListShares(ctx context.Context, cardID, actorID string) ([]*models.Share, error) {
	return f.list, f.err
}
func (f *fakeShares) RevokeShare(ctx context.Context, cardID, recipientID, actorID string) error {
	return f.err
}

type fakeNotifications struct {
	list  []*models.Notification
	count int64
	err   error
}

func (f *fakeNotifications) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	return f.list, f.err
}
func (f *fakeNotifications) MarkRead(ctx context.Context, id, actorID string) error { return f.err }
func (f *fakeNotifications) MarkAllRead(ctx context.Context, actorID string) (int64, error) {
	return f.count, f.err
}
func (f *fakeNotifications) Delete(ctx context.Context, id, actorID string) error { return f.err }
func (f *fakeNotifications) UnreadCount(ctx context.Context, actorID string) (int64, error) {
	return f.count, f.err
}

type fakeProfiles struct {
	profile *models.Profile
	err     error
}

func (f *fakeProfiles) AvatarURL(p *models.Profile) string { return p.AvatarPath }
func (f *fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfiles) Update(ctx context.Context, userID, first, last, phone string) (*models.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfiles) UploadAvatar(ctx context.Context, userID string, img *models.Image) (*models.Profile, error) {
	return f.profile, f.err
}

type fakes struct {
	users         *fakeUsers
	cards         *fakeCards
	shares        *fakeShares
	notifications *fakeNotifications
	profiles      *fakeProfiles
}

func newFakes() *fakes {
	return &fakes{
		users:         &fakeUsers{},
		cards:         &fakeCards{},
		shares:        &fakeShares{},
		notifications: &fakeNotifications{},
		profiles:      &fakeProfiles{},
	}
}

func (f *fakes) server(secret string) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, Services{
		Users:         f.users,
		Cards:         f.cards,
		Shares:        f.shares,
		Notifications: f.notifications,
		Profiles:      f.profiles,
	}, secret)
}
