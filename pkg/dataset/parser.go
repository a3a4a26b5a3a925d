package dataset

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes raw file content into an entry → tags mapping.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string][]string, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension.
// It returns nil for unknown extensions.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
