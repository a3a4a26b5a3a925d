package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Categories records category filters under the key "categories".
// An empty filter is left out.
func Categories(tags []string) slog.Attr {
	if len(tags) == 0 {
		return slog.Attr{}
	}
	return slog.Any("categories", tags)
}

func Domain(d string) slog.Attr {
	return slog.String("domain", d)
}

func Command(name string) slog.Attr {
	return slog.String("command", name)
}
