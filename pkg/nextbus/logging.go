package nextbus

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/config"
)

// SetupLogging points the global logger at stderr, filtered to errors unless
// debug is on, and at the log file (if any) for everything from debug up.
// Every line carries a run ID so invocations can be told apart in the file.
// The returned func closes the log file.
func SetupLogging(cfg config.LogConfig) (func() error, error) {
	return setupLogging(cfg, os.Stderr)
}

func setupLogging(cfg config.LogConfig, stderr io.Writer) (func() error, error) {
	var console io.Writer = stderr
	if cfg.Format != "JSON" {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}
	}

	consoleLevel := zerolog.ErrorLevel
	if cfg.Debug {
		consoleLevel = zerolog.DebugLevel
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: console},
			Level:  consoleLevel,
		},
	}

	closer := func() error { return nil }

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closer = file.Close
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("run", uuid.New().String()).
		Logger().
		Level(zerolog.DebugLevel)

	return closer, nil
}
