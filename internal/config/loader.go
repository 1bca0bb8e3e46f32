package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "QUARRY_"

// Load reads a configuration from r on top of the defaults and validates it.
func Load(r io.Reader) (Config, error) {
	return load("<reader>", r)
}

// LoadFile reads the configuration file at path. A missing file yields the
// defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer f.Close()

	return load(path, f)
}

func load(source string, r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, parseError(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func parseError(source string, err error) *ParseError {
	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) && len(serr.Errors) > 0 {
		perr.Line, perr.Column = serr.Errors[0].Position()
		perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return perr
}

// envKeys maps environment variables (without prefix) to setters.
var envKeys = map[string]func(c *Config, v string) error{
	"FIND_CASE_SENSITIVE":  boolSetter(func(c *Config) *bool { return &c.Find.CaseSensitive }),
	"FIND_WRAP":            boolSetter(func(c *Config) *bool { return &c.Find.Wrap }),
	"FIND_REGEX":           boolSetter(func(c *Config) *bool { return &c.Find.Regex }),
	"FIND_ENGINE":          stringSetter(func(c *Config) *string { return &c.Find.Engine }),
	"FIND_HIGHLIGHT_CLASS": stringSetter(func(c *Config) *string { return &c.Find.HighlightClass }),
	"LOG_LEVEL":            stringSetter(func(c *Config) *string { return &c.Log.Level }),
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func stringSetter(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

// ApplyEnv overrides settings from QUARRY_* environment variables using
// lookup (os.LookupEnv when nil) and validates the result.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for key, set := range envKeys {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		if err := set(c, v); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
	}
	return c.Validate()
}
