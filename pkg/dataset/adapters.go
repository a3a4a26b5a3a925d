package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
)

// Adapter produces the raw dataset mapping from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string][]string, error)
}

// MapAdapter serves an in-memory mapping.
type MapAdapter struct {
	Data map[string][]string
}

// Load implements Adapter.
func (a *MapAdapter) Load(ctx context.Context) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.Data == nil {
		return make(map[string][]string), nil
	}
	return maps.Clone(a.Data), nil
}

// FileAdapter reads and parses a dataset file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements Adapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string][]string, error) {
	if a == nil || a.parser == nil {
		return nil, ErrNilParser
	}
	if a.path == "" {
		return nil, ErrEmptyPath
	}
	return readAndParse(ctx, a.parser, a.path, os.ReadFile)
}

// FSAdapter reads a dataset file from an fs.FS such as embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	name   string
}

// NewFSAdapter returns nil if any argument is missing.
func NewFSAdapter(parser Parser, fsys fs.FS, name string) *FSAdapter {
	if parser == nil || fsys == nil || name == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, name: name}
}

// Load implements Adapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string][]string, error) {
	if a == nil || a.parser == nil {
		return nil, ErrNilParser
	}
	return readAndParse(ctx, a.parser, a.name, func(name string) ([]byte, error) {
		return fs.ReadFile(a.fsys, name)
	})
}

func readAndParse(
	ctx context.Context,
	parser Parser,
	name string,
	read func(string) ([]byte, error),
) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := read(name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	data, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return data, nil
}
