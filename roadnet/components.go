// SPDX-License-Identifier: MIT

package roadnet

// Reachable returns every location reachable from start over existing roads,
// in breadth-first order (start first, neighbors by ascending index).
func (rn *RoadNetwork) Reachable(start int) ([]int, error) {
	if !rn.valid(start) {
		return nil, netErrorf("Reachable", start, start, ErrIndexOutOfRange)
	}
	visited := make([]bool, rn.n)

	return rn.walk(start, visited), nil
}

// Components partitions the locations into connected components.
// Components are ordered by their lowest index; members are in BFS order.
func (rn *RoadNetwork) Components() [][]int {
	visited := make([]bool, rn.n)
	var out [][]int
	for s := 0; s < rn.n; s++ {
		if visited[s] {
			continue
		}
		out = append(out, rn.walk(s, visited))
	}

	return out
}

// Connected reports whether a and b share a component.
func (rn *RoadNetwork) Connected(a, b int) bool {
	if !rn.valid(a) || !rn.valid(b) {
		return false
	}
	reach, _ := rn.Reachable(a)
	for _, v := range reach {
		if v == b {
			return true
		}
	}

	return false
}

// walk runs BFS from start, marking visited in place.
func (rn *RoadNetwork) walk(start int, visited []bool) []int {
	queue := make([]int, 0, rn.n)
	order := make([]int, 0, rn.n)
	visited[start] = true
	queue = append(queue, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for v := 0; v < rn.n; v++ {
			if visited[v] || rn.data[u*rn.n+v] == 0 {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return order
}
