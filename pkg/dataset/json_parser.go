package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser reads datasets shaped as {"entry": ["tag", ...], ...}.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string][]string
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if data == nil {
		return nil, errors.Join(ErrFailedToParseJSON, ErrNotAMapping)
	}

	return data, nil
}

// SupportsFileExtension implements Parser.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
