package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shareFixture struct {
	w      *world
	store  *fakeStore
	shares *ShareService
	cards  *CardService
	notes  *NotificationService

	owner, recipient, stranger string
	card                       string
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()
	w := newWorld()
	rm := &fakeRepoManager{w}
	store := newFakeStore()
	notes := NewNotificationService(nil, rm)
	f := &shareFixture{
		w:      w,
		store:  store,
		shares: NewShareService(nil, rm, store, notes, time.Second, logging.Nop{}),
		cards:  NewCardService(nil, rm, store, logging.Nop{}),
		notes:  notes,
	}
	f.owner = w.addUser("owner@example.com")
	f.recipient = w.addUser("bob@example.com")
	f.stranger = w.addUser("eve@example.com")
	f.card = w.addCard(f.owner, "Mail")
	return f
}

func TestShareCard_RecipientSeesCardAndIsNotified(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	res, err := f.shares.ShareCard(ctx, f.card, " Bob@Example.com ", f.owner)
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, f.recipient, res.Share.SharedWithID)
	assert.Equal(t, f.owner, res.Share.SharedByID)
	assert.Equal(t, "bob@example.com", res.Share.SharedWithEmail)

	c, err := f.cards.GetCard(ctx, f.card, f.recipient)
	require.NoError(t, err)
	assert.False(t, c.IsOwner)

	list, err := f.cards.ListCards(ctx, f.recipient)
	require.NoError(t, err)
	require.Len(t, list, 1)

	feed, err := f.notes.List(ctx, f.recipient)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, common.NotificationKindCardShared, feed[0].Kind)
	assert.Equal(t, f.card, feed[0].Payload.CardID)
	assert.Equal(t, "Mail", feed[0].Payload.CardName)
	assert.Equal(t, f.owner, feed[0].Payload.SharerID)
	assert.False(t, feed[0].Read)
}

func TestShareCard_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		card    func(f *shareFixture) string
		email   string
		actor   func(f *shareFixture) string
		wantErr error
	}{
		{"non-owner", func(f *shareFixture) string { return f.card }, "eve@example.com",
			func(f *shareFixture) string { return f.recipient }, common.ErrPermissionDenied},
		{"unknown recipient", func(f *shareFixture) string { return f.card }, "ghost@example.com",
			func(f *shareFixture) string { return f.owner }, common.ErrRecipientNotFound},
		{"self share", func(f *shareFixture) string { return f.card }, "OWNER@example.com",
			func(f *shareFixture) string { return f.owner }, common.ErrSelfShareRejected},
		{"missing card", func(f *shareFixture) string { return "c-missing" }, "bob@example.com",
			func(f *shareFixture) string { return f.owner }, common.ErrorNotFound},
		{"empty email", func(f *shareFixture) string { return f.card }, "  ",
			func(f *shareFixture) string { return f.owner }, common.ErrorValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShareFixture(t)
			_, err := f.shares.ShareCard(context.Background(), tt.card(f), tt.email, tt.actor(f))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.w.grantCount(f.card))
			assert.Empty(t, f.w.notes)
		})
	}
}

func TestShareCard_DuplicateKeepsSingleGrant(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	require.NoError(t, err)

	_, err = f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	assert.ErrorIs(t, err, common.ErrAlreadyShared)
	assert.Equal(t, 1, f.w.grantCount(f.card))
	assert.Len(t, f.w.notes, 1)
}

func TestShareCard_ConcurrentDuplicatesYieldOneGrant(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrAlreadyShared):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)
	assert.Equal(t, 1, f.w.grantCount(f.card))
	assert.Len(t, f.w.notes, 1)
}

func TestShareCard_NotificationFailureIsAWarning(t *testing.T) {
	f := newShareFixture(t)
	f.w.notifyErr = errors.New("insert failed")

	res, err := f.shares.ShareCard(context.Background(), f.card, "bob@example.com", f.owner)
	require.NoError(t, err)
	assert.Equal(t, NotificationWarning, res.Warning)
	assert.Equal(t, 1, f.w.grantCount(f.card))
}

type recordingNotifier struct {
	ctxErr      error
	hasDeadline bool
	calls       int
}

func (n *recordingNotifier) NotifyCardShared(ctx context.Context, recipientID, cardID, cardName, sharerID string) error {
	n.calls++
	n.ctxErr = ctx.Err()
	_, n.hasDeadline = ctx.Deadline()
	return nil
}

func TestShareCard_NotifierOutlivesCallerContext(t *testing.T) {
	f := newShareFixture(t)
	rec := &recordingNotifier{}
	svc := NewShareService(nil, &fakeRepoManager{f.w}, f.store, rec, 0, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, 1, rec.calls)
	assert.NoError(t, rec.ctxErr)
	assert.True(t, rec.hasDeadline)
}

func TestRemoveAccess_OwnerDeletesCard(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	_, err := f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	require.NoError(t, err)

	res, err := f.shares.RemoveAccess(ctx, f.card, f.owner)
	require.NoError(t, err)
	assert.True(t, res.CardDeleted)

	_, err = f.cards.GetCard(ctx, f.card, f.recipient)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, 0, f.w.grantCount(f.card))

	// the notification is a snapshot and outlives the card
	feed, err := f.notes.List(ctx, f.recipient)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Mail", feed[0].Payload.CardName)
}

func TestRemoveAccess_OwnerDeletesStoredImage(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	f.w.cards[f.card].IconName = ""
	f.w.cards[f.card].ImagePath = f.owner + "/" + f.card + ".png"

	_, err := f.shares.RemoveAccess(ctx, f.card, f.owner)
	require.NoError(t, err)
	assert.Equal(t, []string{f.owner + "/" + f.card + ".png"}, f.store.deleted)
}

func TestRemoveAccess_RecipientDropsOwnGrant(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	_, err := f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	require.NoError(t, err)
	_, err = f.shares.ShareCard(ctx, f.card, "eve@example.com", f.owner)
	require.NoError(t, err)

	res, err := f.shares.RemoveAccess(ctx, f.card, f.recipient)
	require.NoError(t, err)
	assert.False(t, res.CardDeleted)

	_, err = f.cards.GetCard(ctx, f.card, f.recipient)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.cards.GetCard(ctx, f.card, f.owner)
	assert.NoError(t, err)
	_, err = f.cards.GetCard(ctx, f.card, f.stranger)
	assert.NoError(t, err)
	assert.Equal(t, 1, f.w.grantCount(f.card))
}

func TestRemoveAccess_StrangerAndMissingCard(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.shares.RemoveAccess(ctx, f.card, f.stranger)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.shares.RemoveAccess(ctx, "c-missing", f.owner)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.cards.GetCard(ctx, f.card, f.owner)
	assert.NoError(t, err)
}

func TestListAndRevokeShares(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	_, err := f.shares.ShareCard(ctx, f.card, "bob@example.com", f.owner)
	require.NoError(t, err)

	list, err := f.shares.ListShares(ctx, f.card, f.owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob@example.com", list[0].SharedWithEmail)

	_, err = f.shares.ListShares(ctx, f.card, f.recipient)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	err = f.shares.RevokeShare(ctx, f.card, f.recipient, f.recipient)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	require.NoError(t, f.shares.RevokeShare(ctx, f.card, f.recipient, f.owner))
	assert.Equal(t, 0, f.w.grantCount(f.card))

	err = f.shares.RevokeShare(ctx, f.card, f.recipient, f.owner)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
