package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/kaanon/pkg/kaanon"
	"github.com/dmitrymomot/kaanon/pkg/logger"
)

// Option configures Load.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report loaded datasets.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Load reads the mapping from adapter and builds an immutable dataset.
func Load(ctx context.Context, adapter Adapter, opts ...Option) (*kaanon.Dataset, error) {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	if adapter == nil {
		return nil, fmt.Errorf("%w: adapter is nil", ErrInvalidDataset)
	}

	start := time.Now()
	data, err := adapter.Load(ctx)
	if err != nil {
		cfg.logger.ErrorContext(ctx, "failed to load dataset", logger.Error(err))
		return nil, err
	}

	d, err := kaanon.NewDataset(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidDataset, err)
	}

	cfg.logger.DebugContext(ctx, "dataset loaded",
		logger.Count(d.Len()),
		logger.Duration(time.Since(start)),
	)
	return d, nil
}

// LoadFile loads a JSON or YAML dataset, choosing the parser by extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*kaanon.Dataset, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return Load(ctx, NewFileAdapter(parser, path), slices.Concat(opts, []Option{withPath(path)})...)
}

func withPath(path string) Option {
	return func(c *config) {
		c.logger = c.logger.With(logger.Path(path))
	}
}
