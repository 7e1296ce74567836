// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambroute/dijkstra"
	"github.com/katalvlaran/ambroute/roadnet"
)

// randomNetwork builds an n-location network where each pair gets a road
// with probability p and a weight in [1, maxW].
func randomNetwork(t *testing.T, rng *rand.Rand, n int, p float64, maxW int64) *roadnet.RoadNetwork {
	t.Helper()
	names := make([]string, n)
	minutes := make([][]int64, n)
	for i := range names {
		names[i] = fmt.Sprintf("L%d", i)
		minutes[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				w := 1 + rng.Int63n(maxW)
				minutes[i][j], minutes[j][i] = w, w
			}
		}
	}
	net, err := roadnet.New(names, minutes)
	require.NoError(t, err)

	return net
}

// bruteForceCost enumerates every simple path src→dst and returns the cheapest,
// or dijkstra.Unreachable when there is none.
func bruteForceCost(net *roadnet.RoadNetwork, src, dst int) int64 {
	if src == dst {
		return 0
	}
	best := dijkstra.Unreachable
	onPath := make([]bool, net.Len())
	var walk func(u int, cost int64)
	walk = func(u int, cost int64) {
		if u == dst {
			if cost < best {
				best = cost
			}
			return
		}
		onPath[u] = true
		nb, _ := net.Neighbors(u)
		for _, v := range nb {
			if onPath[v] {
				continue
			}
			w, _ := net.Weight(u, v)
			walk(v, cost+w)
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

// pathCost sums the weights along path, failing on a missing road.
func pathCost(t *testing.T, net *roadnet.RoadNetwork, path []int) int64 {
	t.Helper()
	var sum int64
	for k := 0; k+1 < len(path); k++ {
		w, err := net.Weight(path[k], path[k+1])
		require.NoError(t, err)
		require.Positive(t, w, "road %d→%d must exist", path[k], path[k+1])
		sum += w
	}

	return sum
}
