package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger builds the logger described by the config. A nil w writes to
// standard error.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	if c.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	if c.Log.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
