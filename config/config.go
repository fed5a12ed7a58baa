// Package config loads the game settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	FrontendRaylib = "raylib"
	FrontendTerm   = "term"
)

type Config struct {
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Tick      time.Duration `yaml:"tick"`
	Seed      uint64        `yaml:"seed"`
	Boundary  string        `yaml:"boundary"`
	AvoidBody bool          `yaml:"avoid_body"`
	Frontend  string        `yaml:"frontend"`
	LogLevel  string        `yaml:"log_level"`
	LogFile   string        `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Width:    600,
		Height:   600,
		Tick:     game.DefaultTickInterval,
		Boundary: types.BoundaryScaled.String(),
		Frontend: FrontendRaylib,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds the config from command-line arguments. Flags given on the
// command line override the file named by -config.
func Parse(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	def := Default()
	path := fs.String("config", "", "YAML config file")
	width := fs.Int("width", def.Width, "Board width in pixels")
	height := fs.Int("height", def.Height, "Board height in pixels")
	speed := fs.Int("speed", int(def.Tick/time.Millisecond), "Game speed in milliseconds (lower = faster)")
	seed := fs.Uint64("seed", 0, "Food seed, 0 picks one from the clock")
	boundary := fs.String("boundary", def.Boundary, "Wall check: scaled (classic) or cell")
	avoidBody := fs.Bool("avoid-body", false, "Never place food on the snake")
	frontend := fs.String("ui", def.Frontend, "Front end: raylib or term")
	logLevel := fs.String("log-level", def.LogLevel, "debug, info, warn or error")
	logFile := fs.String("log", "", "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "speed":
			cfg.Tick = time.Duration(*speed) * time.Millisecond
		case "seed":
			cfg.Seed = *seed
		case "boundary":
			cfg.Boundary = *boundary
		case "avoid-body":
			cfg.AvoidBody = *avoidBody
		case "ui":
			cfg.Frontend = *frontend
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log":
			cfg.LogFile = *logFile
		}
	})

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	minW := (types.StartCell.X + 1) * types.TileSize
	minH := (types.StartCell.Y + 1) * types.TileSize
	if c.Width < minW || c.Height < minH {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d", ErrInvalid, c.Width, c.Height, minW, minH)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Tick)
	}
	if _, err := types.ParseBoundaryMode(c.Boundary); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerm:
	default:
		return fmt.Errorf("%w: unknown front end %q", ErrInvalid, c.Frontend)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, err
	}
	return lvl, nil
}

// Settings converts the config into game settings.
func (c Config) Settings() (game.Settings, error) {
	mode, err := types.ParseBoundaryMode(c.Boundary)
	if err != nil {
		return game.Settings{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return game.Settings{
		Width:     c.Width,
		Height:    c.Height,
		Seed:      c.Seed,
		Boundary:  mode,
		AvoidBody: c.AvoidBody,
	}, nil
}
