// SPDX-License-Identifier: MIT

package traffic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ambroute/roadnet"
)

// Simulator mutates road weights in place. It owns only its RNG stream.
// A Simulator is not safe for concurrent use.
type Simulator struct {
	rng   *rand.Rand
	delta DeltaFn
	min   int64
	max   int64
	floor int64

	// uniform is false when WithDeltaFn replaced the range.
	uniform bool
}

// New builds a Simulator. Options apply in order; later ones win.
func New(opts ...Option) *Simulator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = wallClockRand()
	}
	delta := cfg.Delta
	if delta == nil {
		delta = UniformDelta(cfg.MinDelta, cfg.MaxDelta)
	}

	return &Simulator{
		rng:   cfg.Rand,
		delta: delta,
		min:   cfg.MinDelta,
		max:   cfg.MaxDelta,
		floor: cfg.Floor,

		uniform: cfg.Delta == nil,
	}
}

// Floor returns the minimum road weight.
func (s *Simulator) Floor() int64 { return s.floor }

// DeltaRange returns the inclusive range deltas are drawn from. ok is false
// when a custom DeltaFn (WithDeltaFn) is in use; min and max then hold the
// unused configured range and say nothing about the actual draws.
func (s *Simulator) DeltaRange() (min, max int64, ok bool) {
	return s.min, s.max, s.uniform
}

// Perturb applies one traffic update to net and returns the changes in
// (From, To) order. One delta is drawn per existing road, so the RNG
// advances by exactly len(net.Roads()) draws per call.
func (s *Simulator) Perturb(net *roadnet.RoadNetwork) ([]Change, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	roads := net.Roads()
	changes := make([]Change, 0, len(roads))
	for _, r := range roads {
		w := applyDelta(r.Minutes, s.delta(s.rng), s.floor)
		if err := net.SetWeight(r.From, r.To, w); err != nil {
			return changes, fmt.Errorf("traffic: Perturb(%d,%d): %w", r.From, r.To, err)
		}
		changes = append(changes, Change{From: r.From, To: r.To, Old: r.Minutes, New: w})
	}

	return changes, nil
}

// applyDelta returns w+d clamped to [floor, MaxInt64]. w is non-negative,
// so only a positive d can overflow.
func applyDelta(w, d, floor int64) int64 {
	if d > 0 && w > math.MaxInt64-d {
		return math.MaxInt64
	}
	if w += d; w < floor {
		return floor
	}

	return w
}
