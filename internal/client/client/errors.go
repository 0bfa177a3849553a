package client

import (
	"errors"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotLoggedIn is returned by protected calls when no session is held.
var ErrNotLoggedIn = errors.New("not logged in")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok && st.Code() == codes.DeadlineExceeded {
		return errors.Join(common.ErrTransport, err)
	}
	return api.ErrorFromStatus(err)
}
