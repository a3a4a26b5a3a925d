// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for optional .env files. Parsing failures are
// reported as ErrParsingConfig joined with the underlying error, so callers
// can match with errors.Is and still print the details.
//
//	type Config struct {
//	    Dataset string `env:"DATASET"`
//	    Domain  string `env:"EMAIL_DOMAIN" envDefault:"example.com"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("KAANON_")); err != nil {
//	    return err
//	}
package config
