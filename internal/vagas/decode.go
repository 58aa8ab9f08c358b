package vagas

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// envelopeKeys are the wrapper fields list endpoints are known to use.
var envelopeKeys = []string{"content", "items", "vagas", "empresas", "curriculos", "data"}

// decodeBody decodes a JSON response into out. Decoding goes through
// mapstructure so numeric identifiers land in string fields.
func decodeBody(data []byte, out any, list bool) error {
	if out == nil {
		return nil
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return unexpectedError(fmt.Errorf("decode response: %w", err))
	}

	if list {
		items, err := unwrapList(raw)
		if err != nil {
			return unexpectedError(err)
		}
		raw = items
	}

	if err := decodeItems(raw, out); err != nil {
		return unexpectedError(fmt.Errorf("decode response: %w", err))
	}

	return nil
}

func unwrapList(raw any) ([]any, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return typed, nil
	case map[string]any:
		for _, key := range envelopeKeys {
			value, ok := typed[key]
			if !ok {
				continue
			}
			if value == nil {
				return nil, nil
			}
			if items, ok := value.([]any); ok {
				return items, nil
			}
		}
		return nil, fmt.Errorf("decode response: object without a known list field")
	default:
		return nil, fmt.Errorf("decode response: expected a list, got %T", raw)
	}
}

func decodeItems(input, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
