package dashboard

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Numbers are kept as json.Number so large integers survive decoding.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// DecodePayload reads a single JSON document from r without interpreting its shape.
func DecodePayload(r io.Reader) (any, error) {
	const op = "service.dashboard.DecodePayload"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyBody
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return raw, nil
}
