// Package logger builds the *slog.Logger used by the kaanon tools.
//
// New applies functional options on top of production-safe defaults (JSON
// to stderr at INFO). WithEnvironment switches to human-readable text at
// DEBUG for development. Invalid formats or level names panic at
// construction so a bad configuration never reaches a running command.
//
// Helpers in attr.go (Error, Count, Path, Categories, ...) keep attribute
// keys consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "kaanon"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Info("sampled", logger.Count(len(items)), logger.Categories(tags))
package logger
