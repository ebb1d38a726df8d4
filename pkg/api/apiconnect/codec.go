// Package apiconnect wires the api messages to Connect handlers and clients.
package apiconnect

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	codecNameJSON            = "json"
	codecNameJSONCharsetUTF8 = "json; charset=utf-8"
)

// Codec marshals api structs with encoding/json and protobuf messages
// (such as emptypb.Empty) with protojson.
type Codec struct {
	name string
}

var _ connect.Codec = Codec{}

// Name returns the codec name Connect negotiates on.
func (c Codec) Name() string {
	if c.name == "" {
		return codecNameJSON
	}
	return c.name
}

// Marshal encodes msg as JSON.
func (c Codec) Marshal(msg any) ([]byte, error) {
	if m, ok := msg.(proto.Message); ok {
		return protojson.MarshalOptions{}.Marshal(m)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal decodes JSON into msg. An empty body leaves msg at its zero value.
func (c Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if m, ok := msg.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// codecOptions replace Connect's protobuf-only JSON codecs.
func codecOptions() []connect.Option {
	return []connect.Option{
		connect.WithCodec(Codec{name: codecNameJSONCharsetUTF8}),
		connect.WithCodec(Codec{name: codecNameJSON}),
	}
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	merged := make([]connect.HandlerOption, 0, len(opts)+2)
	for _, o := range codecOptions() {
		merged = append(merged, o)
	}
	return append(merged, opts...)
}

// clientOptions makes clients speak JSON; the last WithCodec wins on clients.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	merged := make([]connect.ClientOption, 0, len(opts)+2)
	for _, o := range codecOptions() {
		merged = append(merged, o)
	}
	return append(merged, opts...)
}

// readOnly marks a procedure as safe to call with HTTP GET.
var readOnly = connect.WithIdempotency(connect.IdempotencyNoSideEffects)

func withReadOnly(opts []connect.HandlerOption) []connect.HandlerOption {
	merged := make([]connect.HandlerOption, 0, len(opts)+1)
	merged = append(merged, opts...)
	return append(merged, readOnly)
}
