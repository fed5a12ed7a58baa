package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridsnake/game/types"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	s, err := cfg.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Boundary != types.BoundaryScaled || s.Width != 600 {
		t.Errorf("settings = %+v", s)
	}
}

func TestFileThenFlags(t *testing.T) {
	path := writeFile(t, `
width: 250
height: 500
tick: 50ms
seed: 7
boundary: cell
frontend: term
log_level: debug
`)
	cfg, err := Parse([]string{"-config", path, "-height", "300", "-speed", "80"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{
		Width:    250,
		Height:   300,
		Tick:     80 * time.Millisecond,
		Seed:     7,
		Boundary: "cell",
		Frontend: FrontendTerm,
		LogLevel: "debug",
	}
	if cfg != want {
		t.Errorf("cfg = %+v\nwant  %+v", cfg, want)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("level = %v", lvl)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Load(writeFile(t, "colour: red\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := Load(writeFile(t, "tick: soon\n")); err == nil {
		t.Error("bad duration accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Width = 100 }},
		{"short board", func(c *Config) { c.Height = 0 }},
		{"zero tick", func(c *Config) { c.Tick = 0 }},
		{"boundary", func(c *Config) { c.Boundary = "wrap" }},
		{"front end", func(c *Config) { c.Frontend = "web" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsBadFlag(t *testing.T) {
	if _, err := Parse([]string{"-ui", "web"}, io.Discard); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v", err)
	}
	if _, err := Parse([]string{"-nope"}, io.Discard); err == nil {
		t.Error("unknown flag accepted")
	}
}
