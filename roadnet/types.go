// SPDX-License-Identifier: MIT

package roadnet

// NoRoad is the stored weight for a pair without a direct road.
const NoRoad int64 = 0

// Location is a named stop on the network. Index is its row/column in the matrix.
type Location struct {
	Index int
	Name  string
}

// Road is one undirected road, reported with From < To.
type Road struct {
	From    int
	To      int
	Minutes int64
}
