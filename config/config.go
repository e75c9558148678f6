// SPDX-License-Identifier: MIT

// Package config loads process settings for the visualiser.
//
// Sources are applied in order, later ones winning:
//
//  1. Default()
//  2. a YAML file (optional)
//  3. a .env file, read with godotenv (optional, missing file ignored)
//  4. VISDIJKSTRA_* variables from the process environment
//
// The merged Config is checked with validator struct tags before it is
// returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

// Sentinel errors.
var (
	ErrReadConfig    = errors.New("config: cannot read file")
	ErrParseConfig   = errors.New("config: cannot parse")
	ErrInvalidConfig = errors.New("config: invalid")
)

// Config is the full set of process settings.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Engine   EngineConfig   `yaml:"engine"`
}

// PlaybackConfig sets the auto-advance rate. A positive Interval wins over
// SpeedLevel.
type PlaybackConfig struct {
	SpeedLevel int           `yaml:"speed_level" validate:"gte=0,lte=6"`
	Interval   time.Duration `yaml:"interval" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"hostname_port"`
	Path    string `yaml:"path" validate:"startswith=/"`
}

// EngineConfig bounds a single run; zero disables the limit.
type EngineConfig struct {
	MaxSnapshots int `yaml:"max_snapshots" validate:"gte=0"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Playback: PlaybackConfig{SpeedLevel: playback.DefaultSpeedLevel},
		Log:      LogConfig{Level: "info", Format: "text"},
		Metrics:  MetricsConfig{Addr: ":9090", Path: "/metrics"},
		Engine:   EngineConfig{MaxSnapshots: dijkstra.DefaultMaxSnapshots},
	}
}

// Load merges all sources. Empty path or envFile skips that source.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	env, err := readEnv(envFile)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	defer f.Close()

	return c.decode(f)
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PlaybackInterval resolves the auto-advance delay.
func (c Config) PlaybackInterval() time.Duration {
	if c.Playback.Interval > 0 {
		return c.Playback.Interval
	}
	d, err := playback.IntervalForSpeed(c.Playback.SpeedLevel)
	if err != nil {
		return playback.DefaultInterval
	}
	return d
}

// NewLogger builds a slog.Logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// missingOK treats an absent optional file as empty.
func missingOK(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
