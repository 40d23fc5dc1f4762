package client

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// Codec encodes request payloads and decodes response bodies.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec, backed by goccy/go-json.
//
// Numbers decoded into an interface value are kept as json.Number so that
// integer ids above 2^53 survive exactly.
type JSONCodec struct{}

// Marshal implements Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements Codec. data must hold exactly one JSON value.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	if !json.Valid(data) {
		// Unmarshal reports where the input went wrong.
		if err := json.Unmarshal(data, new(any)); err != nil {
			return err
		}
		return errors.New("invalid JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
