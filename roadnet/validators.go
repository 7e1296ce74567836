// SPDX-License-Identifier: MIT

package roadnet

import "fmt"

// validateNames checks the location set: non-empty, no blank names,
// no duplicates under case folding.
func validateNames(names []string) error {
	if len(names) == 0 {
		return ErrNoLocations
	}
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("validateNames: index %d: %w", i, ErrEmptyName)
		}
		key := foldName(name)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("validateNames: %q at %d and %d: %w", name, prev, i, ErrDuplicateName)
		}
		seen[key] = i
	}

	return nil
}

// validateMatrix checks an n×n minutes matrix. Order of checks:
// shape -> sign -> diagonal -> symmetry (upper triangle against lower).
func validateMatrix(n int, minutes [][]int64) error {
	if len(minutes) != n {
		return fmt.Errorf("validateMatrix: %d rows for %d locations: %w", len(minutes), n, ErrNonSquare)
	}
	for i, row := range minutes {
		if len(row) != n {
			return fmt.Errorf("validateMatrix: row %d has %d columns: %w", i, len(row), ErrNonSquare)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if minutes[i][j] < 0 {
				return netErrorf("validateMatrix", i, j, ErrNegativeWeight)
			}
		}
		if minutes[i][i] != NoRoad {
			return netErrorf("validateMatrix", i, i, ErrSelfRoad)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if minutes[i][j] != minutes[j][i] {
				return netErrorf("validateMatrix", i, j, ErrAsymmetric)
			}
		}
	}

	return nil
}
