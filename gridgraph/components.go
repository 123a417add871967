package gridgraph

// Regions finds all 4-connected regions of non-blocked cells.
// Each region lists its cells in BFS discovery order; regions are ordered by
// their first cell in a row-major scan.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]Cell

	for i0, v := range g.cells {
		if v == Blocked || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.cell(queue[qi])
			region = append(region, u)
			for _, n := range g.Neighbors(u) {
				vi := g.index(n)
				if g.cells[vi] == Blocked || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are non-blocked cells of the same region.
// Complexity: O(R×C) worst case.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.IsBlocked(a) || g.IsBlocked(b) {
		return false
	}
	seen := make([]bool, len(g.cells))
	queue := []int{g.index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.cell(queue[qi])
		if u == b {
			return true
		}
		for _, n := range g.Neighbors(u) {
			vi := g.index(n)
			if g.cells[vi] != Blocked && !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
