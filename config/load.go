// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfig   = "AMBULANCE_CONFIG"
	EnvInterval = "AMBULANCE_INTERVAL"
	EnvSeed     = "AMBULANCE_SEED"
)

// fileConfig mirrors Config with optional fields, so absent keys keep defaults.
type fileConfig struct {
	Interval *Duration `yaml:"interval"`
	Seed     *int64    `yaml:"seed"`
	Traffic  *struct {
		MinDelta *int64 `yaml:"min_delta"`
		MaxDelta *int64 `yaml:"max_delta"`
		Floor    *int64 `yaml:"floor"`
	} `yaml:"traffic"`
	Locations []string `yaml:"locations"`
	Roads     []Road   `yaml:"roads"`
}

// Load reads the YAML file at path over Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r over Default(). Unknown keys are rejected.
// An empty document yields Default().
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if fc.Interval != nil {
		cfg.Interval = *fc.Interval
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if t := fc.Traffic; t != nil {
		if t.MinDelta != nil {
			cfg.Traffic.MinDelta = *t.MinDelta
		}
		if t.MaxDelta != nil {
			cfg.Traffic.MaxDelta = *t.MaxDelta
		}
		if t.Floor != nil {
			cfg.Traffic.Floor = *t.Floor
		}
	}
	switch {
	case fc.Locations != nil:
		cfg.Locations, cfg.Roads = fc.Locations, fc.Roads
	case fc.Roads != nil:
		cfg.Roads = fc.Roads
	}

	return cfg, cfg.Validate()
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; variables already set are not overwritten.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: dotenv: %w", err)
	}

	return nil
}

// ApplyEnv overlays AMBULANCE_INTERVAL and AMBULANCE_SEED using lookup
// (os.LookupEnv in production).
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvInterval); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("config: %s=%q: %w", EnvInterval, v, err)
		}
		cfg.Interval = Duration(d)
	}
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = s
	}

	return cfg, cfg.Validate()
}

// Resolve produces the effective configuration: path (or $AMBULANCE_CONFIG)
// if non-empty, else Default(); then environment overrides.
func Resolve(path string, lookup func(string) (string, bool)) (Config, error) {
	if path == "" {
		path, _ = lookup(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}

	return ApplyEnv(cfg, lookup)
}
