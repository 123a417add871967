// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func mustParse(t testing.TB, src string) *Grid {
	t.Helper()
	g, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

// TestRegions_Split tests Regions on a 3×4 grid cut by a wall column.
//
//	S # . .
//	. # . .
//	. # . G
//
// Expected: 2 regions of sizes 3 and 6.
func TestRegions_Split(t *testing.T) {
	g := mustParse(t, "S#..\n.#..\n.#.G\n")

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{3, 6}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
	if regions[0][0] != (Cell{0, 0}) {
		t.Errorf("first region starts at %v; want (0,0)", regions[0][0])
	}
}

// TestRegions_DiagonalDoesNotConnect checks that corner contact is not adjacency.
//
//	S #
//	# G
func TestRegions_DiagonalDoesNotConnect(t *testing.T) {
	g := mustParse(t, "S#\n#G\n")
	if got := len(g.Regions()); got != 2 {
		t.Errorf("got %d regions; want 2", got)
	}
	if g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = true; want false")
	}
}

func TestConnected(t *testing.T) {
	g := mustParse(t, "S..\n##.\nG..\n")
	if !g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = false; want true")
	}
	if g.Connected(g.Start(), Cell{1, 0}) {
		t.Error("blocked cell reported connected")
	}
	if g.Connected(g.Start(), Cell{5, 5}) {
		t.Error("out-of-bounds cell reported connected")
	}
}

// TestMinClearance_Wall needs exactly one blocked cell cleared.
//
//	S # G
func TestMinClearance_Wall(t *testing.T) {
	g := mustParse(t, "S#G\n")
	cleared, err := g.MinClearance(g.Start(), g.Goal())
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if want := []Cell{{0, 1}}; !reflect.DeepEqual(cleared, want) {
		t.Errorf("cleared = %v; want %v", cleared, want)
	}
}

// TestMinClearance_Enclosed surrounds the goal by a single ring of obstacles;
// the cheapest breach is one ring cell next to the goal.
func TestMinClearance_Enclosed(t *testing.T) {
	g := mustParse(t, strings.Join([]string{
		"S....",
		".###.",
		".#G#.",
		".###.",
		".....",
	}, "\n"))
	cleared, err := g.MinClearance(g.Start(), g.Goal())
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if len(cleared) != 1 {
		t.Fatalf("cleared %v; want exactly one cell", cleared)
	}
	if !cleared[0].Adjacent(g.Goal()) {
		t.Errorf("cleared cell %v is not next to the goal", cleared[0])
	}
}

func TestMinClearance_AlreadyConnected(t *testing.T) {
	g := mustParse(t, "S.G\n")
	cleared, err := g.MinClearance(g.Start(), g.Goal())
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if len(cleared) != 0 {
		t.Errorf("cleared = %v; want none", cleared)
	}
}

func TestMinClearance_OutOfBounds(t *testing.T) {
	g := mustParse(t, "S.G\n")
	if _, err := g.MinClearance(g.Start(), Cell{3, 3}); err == nil {
		t.Error("expected ErrOutOfBounds")
	}
}
