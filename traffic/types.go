// SPDX-License-Identifier: MIT

package traffic

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNilNetwork indicates that Perturb was given a nil network.
var ErrNilNetwork = errors.New("traffic: network is nil")

// Change records one road update made by Perturb.
type Change struct {
	From, To int
	Old, New int64
}

// Delta returns the applied change after clamping.
func (c Change) Delta() int64 { return c.New - c.Old }

// Options configures a Simulator.
//
// MinDelta/MaxDelta – inclusive delta range, used when Delta is nil.
// Floor             – lowest weight a road may reach; must be >= 1.
// Delta             – custom delta source; overrides the range.
// Rand              – RNG stream; nil means seed from the wall clock.
type Options struct {
	MinDelta int64
	MaxDelta int64
	Floor    int64
	Delta    DeltaFn
	Rand     *rand.Rand
}

// Option represents a functional option for configuring a Simulator.
type Option func(*Options)

// DefaultOptions returns the reference configuration without an RNG.
func DefaultOptions() Options {
	return Options{
		MinDelta: DefaultMinDelta,
		MaxDelta: DefaultMaxDelta,
		Floor:    DefaultFloor,
	}
}

// WithSeed seeds a private RNG stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an RNG stream. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("traffic: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rand = rng
	}
}

// WithDeltaRange sets the inclusive delta range. Panics unless
// ValidRange(min, max).
func WithDeltaRange(min, max int64) Option {
	if !ValidRange(min, max) {
		panic("traffic: WithDeltaRange requires min <= max and max-min < MaxInt64")
	}

	return func(o *Options) {
		o.MinDelta, o.MaxDelta = min, max
	}
}

// WithFloor sets the minimum road weight. Panics if floor < 1, since a zero
// weight would remove the road.
func WithFloor(floor int64) Option {
	if floor < 1 {
		panic("traffic: WithFloor requires floor >= 1")
	}

	return func(o *Options) {
		o.Floor = floor
	}
}

// WithDeltaFn sets a custom delta source. Panics on nil.
func WithDeltaFn(fn DeltaFn) Option {
	if fn == nil {
		panic("traffic: WithDeltaFn(nil)")
	}

	return func(o *Options) {
		o.Delta = fn
	}
}

// wallClockRand seeds a stream from the current time.
func wallClockRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
