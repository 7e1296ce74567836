// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/ambroute/roadnet"
)

// Unreachable is the cost reported for a destination with no path from the source.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks a location with no recorded predecessor.
const NoPredecessor = -1

// Sentinel errors returned by the route engine.
var (
	// ErrNilNetwork indicates that a nil *roadnet.RoadNetwork was passed in.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrDestinationOutOfRange indicates a destination index outside [0, N).
	ErrDestinationOutOfRange = errors.New("dijkstra: destination index out of range")
)

// Route is the answer for one (source, destination) pair.
//
// Path lists location indices from Source to Destination inclusive. It is
// empty when Source == Destination (Cost 0) and when the destination is
// unreachable (Cost == Unreachable); Reachable tells the two apart.
type Route struct {
	Source      int
	Destination int
	Path        []int
	Cost        int64
}

// Reachable reports whether the destination can be reached at all.
func (r Route) Reachable() bool { return r.Cost != Unreachable }

// Hops returns the number of roads traversed (0 for empty paths).
func (r Route) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Names resolves Path to display names using net.
func (r Route) Names(net *roadnet.RoadNetwork) ([]string, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	out := make([]string, 0, len(r.Path))
	for _, i := range r.Path {
		name, err := net.Name(i)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, nil
}

// ShortestTree is the full single-source result.
//
//   - Dist[v]: minimal minutes from Source to v, Unreachable if none.
//   - Prev[v]: predecessor of v on one shortest path, NoPredecessor for
//     Source and for unreachable v.
type ShortestTree struct {
	Source int
	Dist   []int64
	Prev   []int
}
