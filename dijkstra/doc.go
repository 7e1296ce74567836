// SPDX-License-Identifier: MIT

// Package dijkstra computes minimum-time ambulance routes on a roadnet.RoadNetwork.
//
// Overview:
//
//   - ShortestPath answers one (source, destination) query.
//   - Tree returns the full single-source result (distances and predecessors)
//     for callers that want more than one destination from the same snapshot.
//   - Both are pure reads of the network: calling them twice without an
//     intervening traffic update yields identical results.
//
// Algorithm:
//
//   - Classic dense Dijkstra. dist starts at Unreachable except dist[source] = 0,
//     prev starts at NoPredecessor. Each round picks the unsettled location with
//     the smallest finite distance by scanning indices in ascending order
//     (lowest index wins ties), settles it, and relaxes every road to an
//     unsettled neighbor with a strict "<". At most N−1 rounds; the loop stops
//     early when nothing finite is left.
//   - Roads are the positive entries of the matrix; zero means "no road".
//   - The path is rebuilt iteratively from prev, then reversed.
//
// Route states:
//
//   - source == destination: Path empty, Cost 0, Reachable() true.
//   - reachable:             Path[0] == source, Path[len-1] == destination,
//     Cost == sum of the traversed weights.
//   - unreachable:           Path empty, Cost == Unreachable, Reachable() false.
//
// Among several equal-cost paths the returned one follows from the tie rule
// above; only its cost is canonical.
//
// Complexity:
//
//   - Time:  O(N²)
//   - Space: O(N)
//
// Errors (sentinel):
//
//   - ErrNilNetwork            nil network.
//   - ErrSourceOutOfRange      source not in [0, N).
//   - ErrDestinationOutOfRange destination not in [0, N).
package dijkstra
