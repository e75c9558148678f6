// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every recognised environment variable.
const EnvPrefix = "VISDIJKSTRA_"

// Recognised variables.
const (
	EnvSpeedLevel     = EnvPrefix + "SPEED_LEVEL"
	EnvInterval       = EnvPrefix + "INTERVAL"
	EnvLogLevel       = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat      = EnvPrefix + "LOG_FORMAT"
	EnvMetricsEnabled = EnvPrefix + "METRICS_ENABLED"
	EnvMetricsAddr    = EnvPrefix + "METRICS_ADDR"
	EnvMaxSnapshots   = EnvPrefix + "MAX_SNAPSHOTS"
)

// readEnv returns the .env entries overlaid with the process environment.
// The process environment wins, as with godotenv.Load.
func readEnv(envFile string) (map[string]string, error) {
	out := make(map[string]string)
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		if err != nil && !missingOK(err) {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		for k, v := range fromFile {
			if strings.HasPrefix(k, EnvPrefix) {
				out[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			out[k] = v
		}
	}
	return out, nil
}

// applyEnv overrides fields named by env.
func (c *Config) applyEnv(env map[string]string) error {
	var err error
	set := func(key string, apply func(string) error) {
		v, ok := env[key]
		if !ok || err != nil {
			return
		}
		if e := apply(strings.TrimSpace(v)); e != nil {
			err = fmt.Errorf("%w: %s=%q: %w", ErrParseConfig, key, v, e)
		}
	}

	set(EnvSpeedLevel, func(v string) (e error) {
		c.Playback.SpeedLevel, e = strconv.Atoi(v)
		return e
	})
	set(EnvInterval, func(v string) (e error) {
		c.Playback.Interval, e = time.ParseDuration(v)
		return e
	})
	set(EnvLogLevel, func(v string) error {
		c.Log.Level = strings.ToLower(v)
		return nil
	})
	set(EnvLogFormat, func(v string) error {
		c.Log.Format = strings.ToLower(v)
		return nil
	})
	set(EnvMetricsEnabled, func(v string) (e error) {
		c.Metrics.Enabled, e = strconv.ParseBool(v)
		return e
	})
	set(EnvMetricsAddr, func(v string) error {
		c.Metrics.Addr = v
		return nil
	})
	set(EnvMaxSnapshots, func(v string) (e error) {
		c.Engine.MaxSnapshots, e = strconv.Atoi(v)
		return e
	})

	return err
}
