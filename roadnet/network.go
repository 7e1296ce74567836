// SPDX-License-Identifier: MIT

package roadnet

import (
	"fmt"
	"strings"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 4

// RoadNetwork stores locations and a dense row-major weight buffer.
// index maps a case-folded name to its location index.
type RoadNetwork struct {
	locations []Location
	index     map[string]int
	n         int
	data      []int64 // len n*n, offset i*n + j
}

// New builds a RoadNetwork from location names and an N×N minutes matrix.
// Stage 1 (Validate): names, shape, sign, symmetry and diagonal.
// Stage 2 (Prepare): allocate the flat buffer and the name index.
// Stage 3 (Execute): copy weights row by row.
// Inputs are copied; later changes to names or minutes do not leak in.
func New(names []string, minutes [][]int64) (*RoadNetwork, error) {
	// Stage 1
	if err := validateNames(names); err != nil {
		return nil, err
	}
	if err := validateMatrix(len(names), minutes); err != nil {
		return nil, err
	}

	// Stage 2
	n := len(names)
	net := &RoadNetwork{
		locations: make([]Location, n),
		index:     make(map[string]int, n),
		n:         n,
		data:      make([]int64, n*n),
	}

	// Stage 3
	for i, name := range names {
		net.locations[i] = Location{Index: i, Name: name}
		net.index[foldName(name)] = i
		copy(net.data[i*n:(i+1)*n], minutes[i])
	}

	return net, nil
}

// foldName is the lookup key for a location name.
func foldName(name string) string {
	return strings.ToLower(name)
}

// Len returns the number of locations N.
func (rn *RoadNetwork) Len() int { return rn.n }

// Lookup returns the index of the location whose name matches name
// case-insensitively. No trimming or prefix matching is done.
func (rn *RoadNetwork) Lookup(name string) (int, error) {
	if i, ok := rn.index[foldName(name)]; ok {
		return i, nil
	}

	return -1, fmt.Errorf("Lookup(%q): %w", name, ErrLocationNotFound)
}

// Name returns the display name of location i.
func (rn *RoadNetwork) Name(i int) (string, error) {
	if !rn.valid(i) {
		return "", netErrorf("Name", i, i, ErrIndexOutOfRange)
	}

	return rn.locations[i].Name, nil
}

// Names returns the display names in index order.
func (rn *RoadNetwork) Names() []string {
	out := make([]string, rn.n)
	for i, loc := range rn.locations {
		out[i] = loc.Name
	}

	return out
}

// Locations returns a copy of the location set in index order.
func (rn *RoadNetwork) Locations() []Location {
	out := make([]Location, rn.n)
	copy(out, rn.locations)

	return out
}

// Weight returns the travel time between i and j, NoRoad if there is none.
func (rn *RoadNetwork) Weight(i, j int) (int64, error) {
	if !rn.valid(i) || !rn.valid(j) {
		return 0, netErrorf("Weight", i, j, ErrIndexOutOfRange)
	}

	return rn.data[i*rn.n+j], nil
}

// SetWeight writes w to (i,j) and (j,i). Writing NoRoad removes the road.
// Returns ErrIndexOutOfRange, ErrSelfRoad or ErrNegativeWeight; on error
// the network is unchanged.
func (rn *RoadNetwork) SetWeight(i, j int, w int64) error {
	if !rn.valid(i) || !rn.valid(j) {
		return netErrorf("SetWeight", i, j, ErrIndexOutOfRange)
	}
	if i == j {
		return netErrorf("SetWeight", i, j, ErrSelfRoad)
	}
	if w < 0 {
		return netErrorf("SetWeight", i, j, ErrNegativeWeight)
	}
	rn.data[i*rn.n+j] = w
	rn.data[j*rn.n+i] = w

	return nil
}

// HasRoad reports whether a positive-weight road joins i and j.
// Out-of-range indices report false.
func (rn *RoadNetwork) HasRoad(i, j int) bool {
	if !rn.valid(i) || !rn.valid(j) {
		return false
	}

	return rn.data[i*rn.n+j] > 0
}

// Neighbors returns the indices joined to u by a road, ascending.
func (rn *RoadNetwork) Neighbors(u int) ([]int, error) {
	if !rn.valid(u) {
		return nil, netErrorf("Neighbors", u, u, ErrIndexOutOfRange)
	}
	out := make([]int, 0, defaultReserve)
	row := rn.data[u*rn.n : (u+1)*rn.n]
	for v, w := range row {
		if w > 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// Roads lists every road once, ordered by (From, To) with From < To.
func (rn *RoadNetwork) Roads() []Road {
	var out []Road
	for i := 0; i < rn.n; i++ {
		for j := i + 1; j < rn.n; j++ {
			if w := rn.data[i*rn.n+j]; w > 0 {
				out = append(out, Road{From: i, To: j, Minutes: w})
			}
		}
	}

	return out
}

// Snapshot returns a fresh N×N copy of the weight matrix.
func (rn *RoadNetwork) Snapshot() [][]int64 {
	out := make([][]int64, rn.n)
	for i := range out {
		out[i] = make([]int64, rn.n)
		copy(out[i], rn.data[i*rn.n:(i+1)*rn.n])
	}

	return out
}

// Clone returns a deep copy; mutations on either side are not shared.
func (rn *RoadNetwork) Clone() *RoadNetwork {
	c := &RoadNetwork{
		locations: make([]Location, rn.n),
		index:     make(map[string]int, rn.n),
		n:         rn.n,
		data:      make([]int64, len(rn.data)),
	}
	copy(c.locations, rn.locations)
	copy(c.data, rn.data)
	for k, v := range rn.index {
		c.index[k] = v
	}

	return c
}

func (rn *RoadNetwork) valid(i int) bool { return i >= 0 && i < rn.n }
