// Package client is the CLI's connection to the CardBoard gRPC API.
//
// GRPCClient owns the connection and the signed-in session. An interceptor
// attaches the access token to every protected call; when the server answers
// "token expired" it rotates the tokens once through RefreshToken, persists
// the new pair and replays the call. Concurrent callers that hit the same
// expired token share a single refresh.
//
// Errors come back as the sentinels of internal/common (via
// api.ErrorFromStatus), so callers match them with errors.Is. Anything that
// points at the network, including deadlines, is reported as
// common.ErrTransport.
package client
