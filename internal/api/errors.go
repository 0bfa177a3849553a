package api

import (
	"errors"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// First match wins.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrPermissionDenied, codes.PermissionDenied},
	{common.ErrRecipientNotFound, codes.NotFound},
	{common.ErrSelfShareRejected, codes.FailedPrecondition},
	{common.ErrAlreadyShared, codes.AlreadyExists},
	{common.ErrEmailTaken, codes.AlreadyExists},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrorValidation, codes.InvalidArgument},
	{common.ErrTransport, codes.Unavailable},
}

// StatusError converts a domain error into a gRPC status. A known sentinel
// yields its code and its own text as the message; validation errors keep
// their detail. ok is false for anything unrecognised, which callers report
// as codes.Internal.
func StatusError(err error) (st *status.Status, ok bool) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			msg := e.err.Error()
			if e.err == common.ErrorValidation {
				msg = err.Error()
			}
			return status.New(e.code, msg), true
		}
	}
	return status.New(codes.Internal, "internal error"), false
}

// ErrorFromStatus turns a status received by a client back into the
// sentinel it was produced from, wrapped with the server's message when
// it carries extra detail. Unknown statuses are returned unchanged.
func ErrorFromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.Unavailable && st.Message() != common.ErrTransport.Error() {
		return errors.Join(common.ErrTransport, err)
	}
	for _, e := range errorCodes {
		if e.code != st.Code() {
			continue
		}
		if st.Message() == e.err.Error() {
			return e.err
		}
		if e.err == common.ErrorValidation {
			return &detailError{sentinel: e.err, msg: st.Message()}
		}
	}
	return err
}

type detailError struct {
	sentinel error
	msg      string
}

func (e *detailError) Error() string { return e.msg }

func (e *detailError) Unwrap() error { return e.sentinel }
