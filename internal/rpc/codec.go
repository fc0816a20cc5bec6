// Package rpc defines the dongi.v1 Connect services: message types, procedure
// names, handler constructors and clients. Messages are plain Go structs
// carried as JSON.
package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecName matches the Connect content type application/json.
const codecName = "json"

// jsonCodec marshals plain structs with encoding/json.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON registers the JSON codec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
