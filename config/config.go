// SPDX-License-Identifier: MIT

// Package config loads simulation settings: the cycle interval, the traffic
// model and the seed road network.
//
// Sources, later wins:
//
//  1. Default() – the reference instance (5s, delta −3..+3, floor 2, six locations).
//  2. A YAML file (Load / Decode).
//  3. Environment variables (ApplyEnv), optionally seeded from a .env file (LoadDotEnv).
//
// File layout:
//
//	interval: 5s
//	seed: 0            # 0 seeds from the wall clock
//	traffic:
//	  min_delta: -3
//	  max_delta: 3
//	  floor: 2
//	locations: [City Center, Main Hospital, ...]
//	roads:
//	  - {from: City Center, to: Main Hospital, minutes: 10}
//
// When a file lists locations it must list its roads too; the default roads
// are dropped.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ambroute/roadnet"
	"github.com/katalvlaran/ambroute/traffic"
)

// DefaultInterval is the reference pause between cycles.
const DefaultInterval = 5 * time.Second

// Sentinel errors returned by Validate.
var (
	ErrBadInterval   = errors.New("config: interval must be positive")
	ErrBadDelta      = errors.New("config: min_delta must not exceed max_delta")
	ErrDeltaSpan     = errors.New("config: delta range is too wide to sample")
	ErrBadFloor      = errors.New("config: floor must be at least 1")
	ErrUnknownPlace  = errors.New("config: road references unknown location")
	ErrDuplicateRoad = errors.New("config: duplicate road")
	ErrSelfRoad      = errors.New("config: road joins a location to itself")
	ErrBadMinutes    = errors.New("config: road minutes must be positive")
)

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: interval %q: %w", s, err)
	}
	*d = Duration(v)

	return nil
}

// MarshalYAML renders the duration string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Traffic configures the perturbation model.
type Traffic struct {
	MinDelta int64 `yaml:"min_delta"`
	MaxDelta int64 `yaml:"max_delta"`
	Floor    int64 `yaml:"floor"`
}

// Road is one undirected seed road.
type Road struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Minutes int64  `yaml:"minutes"`
}

// Config is the effective simulation configuration.
type Config struct {
	Interval  Duration `yaml:"interval"`
	Seed      int64    `yaml:"seed"`
	Traffic   Traffic  `yaml:"traffic"`
	Locations []string `yaml:"locations"`
	Roads     []Road   `yaml:"roads"`
}

// Default returns the reference configuration.
func Default() Config {
	names := roadnet.ReferenceNames()
	seed := roadnet.Reference()
	roads := make([]Road, 0, 8)
	for _, r := range seed.Roads() {
		roads = append(roads, Road{From: names[r.From], To: names[r.To], Minutes: r.Minutes})
	}

	return Config{
		Interval: Duration(DefaultInterval),
		Traffic: Traffic{
			MinDelta: traffic.DefaultMinDelta,
			MaxDelta: traffic.DefaultMaxDelta,
			Floor:    traffic.DefaultFloor,
		},
		Locations: names,
		Roads:     roads,
	}
}

// IntervalDuration returns Interval as a time.Duration.
func (c Config) IntervalDuration() time.Duration { return time.Duration(c.Interval) }

// Validate checks the scalar settings and the road list.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return ErrBadInterval
	}
	if c.Traffic.MinDelta > c.Traffic.MaxDelta {
		return fmt.Errorf("%w: %d > %d", ErrBadDelta, c.Traffic.MinDelta, c.Traffic.MaxDelta)
	}
	if !traffic.ValidRange(c.Traffic.MinDelta, c.Traffic.MaxDelta) {
		return fmt.Errorf("%w (%w): [%d, %d]", ErrDeltaSpan, ErrBadDelta, c.Traffic.MinDelta, c.Traffic.MaxDelta)
	}
	if c.Traffic.Floor < 1 {
		return fmt.Errorf("%w: %d", ErrBadFloor, c.Traffic.Floor)
	}
	_, err := c.Network()

	return err
}

// Network builds the seed road network.
func (c Config) Network() (*roadnet.RoadNetwork, error) {
	minutes, err := c.matrix()
	if err != nil {
		return nil, err
	}

	return roadnet.New(c.Locations, minutes)
}

// Simulator builds the traffic simulator. Seed 0 seeds from the wall clock.
func (c Config) Simulator() (*traffic.Simulator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []traffic.Option{
		traffic.WithDeltaRange(c.Traffic.MinDelta, c.Traffic.MaxDelta),
		traffic.WithFloor(c.Traffic.Floor),
	}
	if c.Seed != 0 {
		opts = append(opts, traffic.WithSeed(c.Seed))
	}

	return traffic.New(opts...), nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// matrix turns the road list into an N×N minutes matrix. Location names are
// matched case-insensitively, as roadnet.Lookup does.
func (c Config) matrix() ([][]int64, error) {
	n := len(c.Locations)
	index := make(map[string]int, n)
	for i, name := range c.Locations {
		index[fold(name)] = i
	}
	minutes := make([][]int64, n)
	for i := range minutes {
		minutes[i] = make([]int64, n)
	}
	for k, r := range c.Roads {
		from, ok := index[fold(r.From)]
		if !ok {
			return nil, fmt.Errorf("%w: roads[%d].from %q", ErrUnknownPlace, k, r.From)
		}
		to, ok := index[fold(r.To)]
		if !ok {
			return nil, fmt.Errorf("%w: roads[%d].to %q", ErrUnknownPlace, k, r.To)
		}
		if from == to {
			return nil, fmt.Errorf("%w: roads[%d] %q", ErrSelfRoad, k, r.From)
		}
		if r.Minutes <= 0 {
			return nil, fmt.Errorf("%w: roads[%d] %d", ErrBadMinutes, k, r.Minutes)
		}
		if minutes[from][to] != 0 {
			return nil, fmt.Errorf("%w: %q–%q", ErrDuplicateRoad, r.From, r.To)
		}
		minutes[from][to], minutes[to][from] = r.Minutes, r.Minutes
	}

	return minutes, nil
}

func fold(name string) string { return strings.ToLower(name) }
