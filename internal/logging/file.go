package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig describes where a run's log file goes.
type FileConfig struct {
	Enabled    bool
	Dir        string
	RunID      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// WriteToStderr also logs to stderr. Leave off while a TUI owns the terminal.
	WriteToStderr bool
}

// NewWithFile builds a logger writing JSON lines to the run's log file.
// The returned cleanup closes the file. With file logging disabled and no
// stderr output the logger discards everything.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	var writers []io.Writer
	if fc.WriteToStderr {
		writers = append(writers, consoleOutput(cfg, os.Stderr))
	}

	var rotator *LogRotator
	if fc.Enabled && fc.Dir != "" {
		if err := os.MkdirAll(fc.Dir, 0o755); err != nil {
			return New(cfg), noop, fmt.Errorf("create log dir: %w", err)
		}
		var err error
		rotator, err = NewLogRotator(RotatorOptions{
			Dir:        fc.Dir,
			Name:       RunFilename(fc.RunID),
			MaxSizeMB:  fc.MaxSizeMB,
			MaxBackups: fc.MaxBackups,
			MaxAgeDays: fc.MaxAgeDays,
			Compress:   fc.Compress,
		})
		if err != nil {
			return New(cfg), noop, err
		}
		writers = append(writers, rotator)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), noop, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("run", fc.RunID).
		Logger()

	cleanup := noop
	if rotator != nil {
		cleanup = func() { _ = rotator.Close() }
	}
	return logger, cleanup, nil
}

func consoleOutput(cfg Config, w io.Writer) io.Writer {
	if cfg.Format != "console" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat, NoColor: w != os.Stderr}
}
