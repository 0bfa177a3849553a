// Package services holds the CLI's application logic that sits between the
// REPL and the gRPC client: the cache-backed card board and the unread
// notification watcher.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
)

type CardLister interface {
	ListCards(ctx context.Context) ([]api.Card, error)
}

type CardCache interface {
	SaveCards(ctx context.Context, cards []api.Card) error
	LoadCards(ctx context.Context) ([]api.Card, error)
}

// BoardService lists the visible cards, falling back to the last list seen
// online when the server cannot be reached.
type BoardService struct {
	api    CardLister
	cache  CardCache
	logger logging.Logger
}

func NewBoardService(api CardLister, cache CardCache, logger logging.Logger) *BoardService {
	return &BoardService{api: api, cache: cache, logger: logger.With("module", "board")}
}

// Cards returns the board. offline is true when the list came from the
// local cache; a failing cache write never fails an online read.
func (s *BoardService) Cards(ctx context.Context) (cards []api.Card, offline bool, err error) {
	cards, err = s.api.ListCards(ctx)
	if err == nil {
		if cerr := s.cache.SaveCards(ctx, cards); cerr != nil {
			s.logger.Warn(ctx, "card cache not updated", "error", cerr)
		}
		return cards, false, nil
	}
	if !errors.Is(err, common.ErrTransport) {
		return nil, false, err
	}

	cached, cerr := s.cache.LoadCards(ctx)
	if cerr != nil {
		s.logger.Warn(ctx, "card cache unreadable", "error", cerr)
		return nil, false, err
	}
	return cached, true, nil
}
