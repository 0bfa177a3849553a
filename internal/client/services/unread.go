package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
)

type UnreadCounter interface {
	IsLoggedIn() bool
	UnreadCount(ctx context.Context) (int64, error)
}

// UnreadWatcher polls the unread notification count. OnChange fires when
// the count differs from the last one seen; OnReachable fires when the
// server goes from reachable to unreachable or back. Both may be nil.
type UnreadWatcher struct {
	api      UnreadCounter
	interval time.Duration
	logger   logging.Logger

	OnChange    func(count int64)
	OnReachable func(online bool)

	mu     sync.Mutex
	count  int64
	online *bool
}

func NewUnreadWatcher(api UnreadCounter, interval time.Duration, logger logging.Logger) *UnreadWatcher {
	return &UnreadWatcher{api: api, interval: interval, logger: logger.With("module", "unread")}
}

// Count returns the last count seen.
func (w *UnreadWatcher) Count() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Reset forgets the last count, e.g. after logout or after the user read
// the feed, so the next poll reports afresh.
func (w *UnreadWatcher) Reset(count int64) {
	w.mu.Lock()
	w.count = count
	w.mu.Unlock()
}

// Run checks once immediately and then every interval until ctx is done.
// A non-positive interval disables polling after the first check.
func (w *UnreadWatcher) Run(ctx context.Context) {
	w.Check(ctx)
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check performs a single poll. It is a no-op while signed out.
func (w *UnreadWatcher) Check(ctx context.Context) {
	if !w.api.IsLoggedIn() {
		return
	}

	n, err := w.api.UnreadCount(ctx)
	if err != nil {
		if errors.Is(err, common.ErrTransport) {
			w.setReachable(false)
			return
		}
		if ctx.Err() == nil {
			w.logger.Debug(ctx, "unread count failed", "error", err)
		}
		return
	}
	w.setReachable(true)

	w.mu.Lock()
	changed := n != w.count
	w.count = n
	w.mu.Unlock()

	if changed && w.OnChange != nil {
		w.OnChange(n)
	}
}

func (w *UnreadWatcher) setReachable(online bool) {
	w.mu.Lock()
	changed := w.online == nil || *w.online != online
	w.online = &online
	w.mu.Unlock()

	if changed && w.OnReachable != nil {
		w.OnReachable(online)
	}
}
