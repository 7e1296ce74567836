// SPDX-License-Identifier: MIT

// Package roadnet holds the fixed road network an ambulance is routed over.
//
// A RoadNetwork is a set of named locations plus a symmetric N×N matrix of
// travel times in whole minutes. A zero entry means "no direct road". The
// location set and the matrix dimension are fixed at construction; only the
// magnitudes of existing roads change afterwards (see package traffic).
//
// Invariants (enforced by New and SetWeight):
//
//   - every weight is non-negative;
//   - weight(i,j) == weight(j,i);
//   - the diagonal is zero (no self roads);
//   - location names are non-empty and unique under case folding.
//
// Lookup is case-insensitive and exact: "city center" finds "City Center",
// "City" does not.
//
// Example:
//
//	net := roadnet.Reference()
//	src, err := net.Lookup("city center")
//	if errors.Is(err, roadnet.ErrLocationNotFound) {
//	    // report and stop
//	}
//
// Thread safety:
//
//   - RoadNetwork has no internal locking. The simulation loop is strictly
//     sequential, so reads (routing, rendering) and writes (traffic) never overlap.
package roadnet
