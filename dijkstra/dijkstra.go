// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/ambroute/roadnet"
)

// ShortestPath computes the minimum-time route from source to destination
// over the current weights of net.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source must be in [0, N) (ErrSourceOutOfRange).
//  3. destination must be in [0, N) (ErrDestinationOutOfRange).
//
// An unreachable destination is not an error: the Route carries an empty
// Path and Cost == Unreachable. The call only reads net.
//
// Complexity:
//
//   - Time:  O(N²) linear-scan selection over a dense matrix.
//   - Space: O(N)
func ShortestPath(net *roadnet.RoadNetwork, source, destination int) (Route, error) {
	// 1) Run the single-source pass (validates net and source).
	tree, err := Tree(net, source)
	if err != nil {
		return Route{}, err
	}

	// 2) Validate destination.
	if destination < 0 || destination >= net.Len() {
		return Route{}, fmt.Errorf("%w: %d not in [0,%d)", ErrDestinationOutOfRange, destination, net.Len())
	}

	// 3) Rebuild the path from predecessors.
	path, _ := tree.PathTo(destination)

	return Route{
		Source:      source,
		Destination: destination,
		Path:        path,
		Cost:        tree.Dist[destination],
	}, nil
}

// Tree computes distances and predecessors from source to every location.
//
// Selection scans indices in ascending order and keeps the first strict
// minimum, so among equal distances the lowest index is settled first.
// At most N−1 locations are settled; the loop stops early once no unsettled
// location has a finite distance.
func Tree(net *roadnet.RoadNetwork, source int) (*ShortestTree, error) {
	// 1) Validate network.
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 2) Validate source.
	n := net.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// 3) Prepare runner state and run.
	r := &runner{
		net:     net,
		n:       n,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &ShortestTree{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// PathTo returns the location indices from the tree's source to dst.
// The boolean is false when dst is unreachable or out of range.
// For dst == Source the path is empty and the boolean is true.
func (t *ShortestTree) PathTo(dst int) ([]int, bool) {
	if dst < 0 || dst >= len(t.Dist) {
		return nil, false
	}
	if dst == t.Source {
		return nil, true
	}
	if t.Dist[dst] == Unreachable || t.Prev[dst] == NoPredecessor {
		return nil, false
	}

	// Walk back to the source; a simple path has at most N nodes.
	rev := make([]int, 0, len(t.Dist))
	for cur := dst; cur != NoPredecessor; cur = t.Prev[cur] {
		rev = append(rev, cur)
		if cur == t.Source || len(rev) > len(t.Dist) {
			break
		}
	}
	if rev[len(rev)-1] != t.Source {
		return nil, false
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, true
}

// runner holds the mutable state for a single pass.
type runner struct {
	net     *roadnet.RoadNetwork // read-only within the pass
	n       int
	source  int
	dist    []int64
	prev    []int
	visited []bool
}

// init sets dist = Unreachable and prev = NoPredecessor everywhere, then dist[source] = 0.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[r.source] = 0
}

// process settles up to N−1 locations, relaxing each one's roads.
func (r *runner) process() error {
	for count := 0; count < r.n-1; count++ {
		u := r.selectNext()
		if u == NoPredecessor {
			break // the rest is unreachable
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectNext returns the unvisited location with the smallest finite
// distance, lowest index on ties, or NoPredecessor if there is none.
func (r *runner) selectNext() int {
	best, idx := Unreachable, NoPredecessor
	for v := 0; v < r.n; v++ {
		if !r.visited[v] && r.dist[v] < best {
			best, idx = r.dist[v], v
		}
	}

	return idx
}

// relax tries to improve every unvisited neighbor of u.
// Assumes dist[u] is final and finite.
func (r *runner) relax(u int) error {
	neighbors, err := r.net.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	var w, newDist int64
	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		if w, err = r.net.Weight(u, v); err != nil {
			return fmt.Errorf("dijkstra: weight %d→%d: %w", u, v, err)
		}
		// Saturate instead of overflowing on absurdly large weights.
		if w >= Unreachable-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + w
		if newDist < r.dist[v] {
			r.dist[v] = newDist
			r.prev[v] = u
		}
	}

	return nil
}
