// SPDX-License-Identifier: MIT

package roadnet

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "roadnet: ". Call sites attach context with
// fmt.Errorf("Op: ...: %w", ErrX); callers branch with errors.Is.
var (
	// ErrLocationNotFound is returned by Lookup when no location name matches.
	ErrLocationNotFound = errors.New("roadnet: location not found")

	// ErrIndexOutOfRange indicates a location index outside [0, N).
	ErrIndexOutOfRange = errors.New("roadnet: location index out of range")

	// ErrNoLocations indicates an empty location set.
	ErrNoLocations = errors.New("roadnet: no locations")

	// ErrEmptyName indicates a blank location name.
	ErrEmptyName = errors.New("roadnet: empty location name")

	// ErrDuplicateName indicates two names that are equal under case folding.
	ErrDuplicateName = errors.New("roadnet: duplicate location name")

	// ErrNonSquare indicates the weight matrix is not N×N for N locations.
	ErrNonSquare = errors.New("roadnet: weight matrix is not square")

	// ErrNegativeWeight indicates a negative travel time.
	ErrNegativeWeight = errors.New("roadnet: negative travel time")

	// ErrAsymmetric indicates weight(i,j) != weight(j,i).
	ErrAsymmetric = errors.New("roadnet: weight matrix is not symmetric")

	// ErrSelfRoad indicates a non-zero diagonal entry or a write to (i,i).
	ErrSelfRoad = errors.New("roadnet: self road not allowed")
)

// netErrorf wraps err with an operation tag and the offending coordinates.
func netErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}
