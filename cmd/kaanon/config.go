package main

// Config is read from KAANON_* environment variables (and an optional .env).
// Command line flags take precedence.
type Config struct {
	Dataset     string `env:"DATASET"`
	EmailDomain string `env:"EMAIL_DOMAIN" envDefault:"example.com"`
	// Seed makes output reproducible. 0 means a random order on every run.
	Seed      uint64 `env:"SEED"`
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

const envPrefix = "KAANON_"
