package config

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Config is the complete set of settings.
type Config struct {
	Find Find `toml:"find"`
	Log  Log  `toml:"log"`
}

// Find holds the search defaults. Engine and HighlightClass apply to the
// whole session; the remaining fields are the default search options.
type Find struct {
	CaseSensitive  bool   `toml:"case_sensitive"`
	Wrap           bool   `toml:"wrap"`
	Regex          bool   `toml:"regex"`
	Engine         string `toml:"engine"`
	HighlightClass string `toml:"highlight_class"`
}

// Log holds logger settings.
type Log struct {
	Level string `toml:"level"`
}

// Engine names accepted by Find.Engine.
const (
	EngineRE2  = "re2"
	EnginePCRE = "pcre"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Find: Find{
			Wrap:           true,
			Engine:         EngineRE2,
			HighlightClass: "pm-find-text",
		},
		Log: Log{Level: "warn"},
	}
}

// Validate checks every setting and returns all problems found.
func (c Config) Validate() error {
	var errs []error
	switch c.Find.Engine {
	case EngineRE2, EnginePCRE:
	default:
		errs = append(errs, &ValidationError{
			Key:     "find.engine",
			Value:   c.Find.Engine,
			Message: `must be "re2" or "pcre"`,
		})
	}
	if c.Find.HighlightClass == "" {
		errs = append(errs, &ValidationError{
			Key:     "find.highlight_class",
			Value:   `""`,
			Message: "must not be empty",
		})
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Key:     "log.level",
			Value:   c.Log.Level,
			Message: "must be one of debug, info, warn, error, fatal",
		})
	}
	return errors.Join(errs...)
}

// Logger builds a logger writing to w at the configured level. An
// unrecognized level falls back to warn.
func (l Log) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
