package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	environ  map[string]string
}

// WithPrefix only reads variables starting with prefix, e.g. "KAANON_".
// Field tags are written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// an error. Variables already set in the process environment win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// WithEnvironment parses from the given map instead of the process
// environment. Handy in tests.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load populates v from environment variables according to its `env` and
// `envDefault` field tags. Without WithEnvFiles a .env file in the working
// directory is loaded if present.
//
//	type Config struct {
//		Dataset string `env:"DATASET,required"`
//		Domain  string `env:"EMAIL_DOMAIN" envDefault:"example.com"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("KAANON_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environ == nil {
		if len(o.envFiles) == 0 {
			// The default .env is optional.
			_ = godotenv.Load()
		} else if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
