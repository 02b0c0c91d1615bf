// Package bootstrap holds the process-level constructors shared by the
// binaries: the structured logger and the NATS JetStream connection.
package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NewLogger creates a JSON slog logger at the given level. Debug level also
// turns on source locations.
func NewLogger(level string) *slog.Logger {
	logLevel := toLevel(level)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	})
	return slog.New(handler)
}

// NewJetStream connects to NATS at the given URL and wraps the connection
// in a JetStream context. The caller owns the returned connection and must
// Drain or Close it on shutdown.
func NewJetStream(url string, dialTimeout time.Duration) (jetstream.JetStream, *nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Timeout(dialTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return js, nc, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
