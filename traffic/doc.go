// SPDX-License-Identifier: MIT

// Package traffic perturbs road travel times between routing cycles.
//
// Each call to (*Simulator).Perturb walks every existing road (i<j) in
// ascending order, draws one delta from the simulator's DeltaFn, adds it to
// the current weight, clamps the result to the floor and writes it back
// symmetrically. Roads are never created or removed; only magnitudes drift.
//
// Defaults (the reference behavior):
//
//   - delta uniform in [-3, +3] inclusive;
//   - floor 2 minutes, so a road never becomes free or disappears;
//   - RNG seeded once from the wall clock.
//
// The RNG is owned by the Simulator and advances across calls; it is never
// reset. Fix the seed (WithSeed) or inject a generator (WithRand) for
// reproducible runs.
//
// After Perturb every previously existing road with weight w lies in
//
//	[max(floor, w+min), max(floor, w+max)]
//
// which for the defaults is [max(2, w-3), w+3]. Sums past math.MaxInt64 are
// capped there rather than wrapping.
package traffic
