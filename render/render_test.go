package render_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func detourGrid(t *testing.T) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(strings.NewReader("S..\n.##\n..G\n"))
	require.NoError(t, err)
	return g
}

func TestText_Path(t *testing.T) {
	g := detourGrid(t)
	path, ok := astar.FindPath(g, g.Start(), g.Goal())
	require.True(t, ok)

	f := render.NewFrame(g, path)
	f.Caption = "path length 4"
	want := "S..\n*##\n**G\npath length 4\n"
	assert.Equal(t, want, render.Text(f))
}

func TestText_NoPath(t *testing.T) {
	g := detourGrid(t)
	assert.Equal(t, g.String(), render.Text(render.NewFrame(g, nil)))
}

func TestFrame_LayerPrecedence(t *testing.T) {
	g := detourGrid(t)
	f := render.Frame{
		Grid:     g,
		Path:     []gridgraph.Cell{{Row: 2, Col: 2}, {Row: 1, Col: 0}},
		Frontier: []gridgraph.Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}},
		Explored: []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}},
	}
	cases := []struct {
		c    gridgraph.Cell
		want render.Layer
	}{
		{gridgraph.Cell{Row: 0, Col: 0}, render.LayerStart},
		{gridgraph.Cell{Row: 2, Col: 2}, render.LayerGoal},
		{gridgraph.Cell{Row: 1, Col: 1}, render.LayerBlocked},
		{gridgraph.Cell{Row: 1, Col: 0}, render.LayerPath},
		{gridgraph.Cell{Row: 0, Col: 1}, render.LayerFrontier},
		{gridgraph.Cell{Row: 0, Col: 2}, render.LayerExplored},
		{gridgraph.Cell{Row: 2, Col: 0}, render.LayerFree},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.Layer(tc.c), "Layer(%v)", tc.c)
	}
}

func TestSnapshotFrame(t *testing.T) {
	g := detourGrid(t)
	s, err := astar.NewStepper(g, g.Start(), g.Goal())
	require.NoError(t, err)
	snap, ok := s.Step()
	require.True(t, ok)

	got := render.Text(render.SnapshotFrame(g, snap))
	assert.Equal(t, "S+.\n+##\n..G\n", got)
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestDraw_Screen(t *testing.T) {
	g := detourGrid(t)
	path, _ := astar.FindPath(g, g.Start(), g.Goal())
	p := render.DefaultPalette()

	s := newScreen(t, 10, 5)
	f := render.NewFrame(g, path)
	f.Caption = "ok"
	render.Draw(s, f, p)
	s.Show()

	styleAt := func(x, y int) tcell.Style {
		_, _, style, _ := s.GetContent(x, y)
		return style
	}
	// Each cell covers CellWidth columns.
	assert.Equal(t, p.Start, styleAt(0, 0))
	assert.Equal(t, p.Start, styleAt(1, 0))
	assert.Equal(t, p.Free, styleAt(2, 0))
	assert.Equal(t, p.Path, styleAt(0, 1))
	assert.Equal(t, p.Blocked, styleAt(2, 1))
	assert.Equal(t, p.Blocked, styleAt(5, 1))
	assert.Equal(t, p.Goal, styleAt(4, 2))

	r, _, _, _ := s.GetContent(0, 3)
	assert.Equal(t, 'o', r)
	r, _, _, _ = s.GetContent(1, 3)
	assert.Equal(t, 'k', r)
}

func TestDraw_Clipped(t *testing.T) {
	g := detourGrid(t)
	s := newScreen(t, 3, 2)
	assert.NotPanics(t, func() {
		render.Draw(s, render.NewFrame(g, nil), render.DefaultPalette())
	})
}

func TestPalette_Style(t *testing.T) {
	p := render.DefaultPalette()
	assert.Equal(t, p.Free, p.Style(render.LayerFree))
	assert.Equal(t, p.Explored, p.Style(render.LayerExplored))
	assert.NotEqual(t, p.Start, p.Goal)
}
