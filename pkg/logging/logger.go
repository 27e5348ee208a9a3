package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dargueta/inodefs/pkg/logging/slogpretty"
)

type ctxLoggerKey struct {
	Key string
}

var (
	cKey   = ctxLoggerKey{Key: "logger"}
	runKey = ctxLoggerKey{Key: "run_id"}
)

const (
	FormatPretty = "pretty"
	FormatText   = "text"
	FormatJSON   = "json"
)

// Default returns the logger used when none was configured: plain text records
// on standard error.
func Default() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// New builds a logger writing to `out` in one of the Format* styles.
func New(out io.Writer, format string, level slog.Level, useColor bool) (*slog.Logger, error) {
	slogOpts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatPretty, "":
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: slogOpts,
			NoColor:  !useColor,
		}
		return slog.New(opts.NewPrettyHandler(out)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(out, slogOpts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(out, slogOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	err := parsed.UnmarshalText([]byte(strings.TrimSpace(level)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return parsed, nil
}

func GetLoggerFromContext(ctx context.Context) *slog.Logger {
	var l *slog.Logger

	logger := ctx.Value(cKey)
	if logger != nil {
		l = logger.(*slog.Logger)
	} else {
		l = Default()
	}

	// Always attach run ID from context if available
	runID := GetRunIDFromCtx(ctx)
	if runID != "" {
		l = l.With(slog.String("run_id", runID))
	}

	return l
}

// Returns logger from context and attaches operation name
func GetLoggerFromContextWithOp(ctx context.Context, op string) *slog.Logger {
	return GetLoggerFromContext(ctx).With(slog.String("op", op))
}

func MakeContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, cKey, logger)
}
