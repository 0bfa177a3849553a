// Package api defines the cardboard.v1.CardBoard gRPC contract shared by the
// server and the CLI: message types, the service descriptor, a client stub
// and the mapping between domain errors and status codes.
//
// Messages travel as JSON through a codec registered under the "json"
// content subtype, so no generated protobuf code is involved.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype used by every CardBoard call.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
