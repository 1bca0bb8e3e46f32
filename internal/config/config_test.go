package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Find.Wrap || cfg.Find.CaseSensitive || cfg.Find.Regex {
		t.Errorf("unexpected default find options: %+v", cfg.Find)
	}
	if cfg.Find.Engine != EngineRE2 {
		t.Errorf("Engine = %q, want re2", cfg.Find.Engine)
	}
}

func TestLoad(t *testing.T) {
	input := `
[find]
case_sensitive = true
engine = "pcre"

[log]
level = "debug"
`
	cfg, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	want := Default()
	want.Find.CaseSensitive = true
	want.Find.Engine = EnginePCRE
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantParse bool
		wantLine  int
	}{
		{name: "syntax", input: "[find]\nwrap = \n", wantParse: true, wantLine: 2},
		{name: "unknown key", input: "[find]\nfuzzy = true\n", wantParse: true, wantLine: 2},
		{name: "wrong type", input: "[find]\nwrap = \"yes\"\n", wantParse: true},
		{name: "bad engine", input: "[find]\nengine = \"posix\"\n"},
		{name: "bad level", input: "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *ParseError
			if got := errors.As(err, &perr); got != tt.wantParse {
				t.Fatalf("ParseError = %v, want %v (err: %v)", got, tt.wantParse, err)
			}
			if tt.wantParse && tt.wantLine > 0 && perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}
			if !tt.wantParse && !errors.Is(err, ErrValidationFailed) {
				t.Errorf("error %v should wrap ErrValidationFailed", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"))
		if err != nil {
			t.Fatalf("LoadFile error = %v", err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
		}
	})

	t.Run("present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quarry.toml")
		if err := os.WriteFile(path, []byte("[find]\nhighlight_class = \"hit\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile error = %v", err)
		}
		if cfg.Find.HighlightClass != "hit" {
			t.Errorf("HighlightClass = %q", cfg.Find.HighlightClass)
		}
	})

	t.Run("parse error names file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[find"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Path != path {
			t.Errorf("error = %v, want ParseError for %s", err, path)
		}
	})
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Find.Engine = ""
	cfg.Find.HighlightClass = ""
	cfg.Log.Level = "noisy"

	err := cfg.Validate()
	for _, key := range []string{"find.engine", "find.highlight_class", "log.level"} {
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() = %v, want mention of %s", err, key)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"QUARRY_FIND_REGEX":  "true",
		"QUARRY_FIND_ENGINE": "pcre",
		"QUARRY_LOG_LEVEL":   "info",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv error = %v", err)
	}
	if !cfg.Find.Regex || cfg.Find.Engine != EnginePCRE || cfg.Log.Level != "info" {
		t.Errorf("config after ApplyEnv = %+v", cfg)
	}

	env["QUARRY_FIND_WRAP"] = "sometimes"
	if err := cfg.ApplyEnv(lookup); err == nil {
		t.Error("expected error for unparsable bool")
	}
}

func TestLogLogger(t *testing.T) {
	var sb strings.Builder
	logger := Log{Level: "error"}.Logger(&sb)
	if logger.GetLevel() != log.ErrorLevel {
		t.Errorf("level = %v, want error", logger.GetLevel())
	}
	logger.Warn("hidden")
	if sb.Len() != 0 {
		t.Errorf("warn should be filtered, got %q", sb.String())
	}

	if l := (Log{Level: "bogus"}).Logger(&sb); l.GetLevel() != log.WarnLevel {
		t.Errorf("fallback level = %v, want warn", l.GetLevel())
	}
}
