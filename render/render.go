package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// CellWidth is the number of terminal columns used per grid cell.
const CellWidth = 2

// Layer is the visual class of a single cell in a Frame.
type Layer int

const (
	LayerFree Layer = iota
	LayerBlocked
	LayerStart
	LayerGoal
	LayerPath
	LayerFrontier
	LayerExplored
)

// Palette maps each Layer to a terminal style.
type Palette struct {
	Free, Blocked, Start, Goal tcell.Style
	Path, Frontier, Explored   tcell.Style
	Caption                    tcell.Style
}

// DefaultPalette returns white free cells, light gray obstacles, a blue
// start, a red goal and a green path.
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Foreground(tcell.ColorBlack)
	return Palette{
		Free:     base.Background(tcell.ColorWhite),
		Blocked:  base.Background(tcell.NewRGBColor(200, 200, 200)),
		Start:    base.Background(tcell.ColorBlue),
		Goal:     base.Background(tcell.ColorRed),
		Path:     base.Background(tcell.ColorGreen),
		Frontier: base.Background(tcell.NewRGBColor(255, 230, 150)),
		Explored: base.Background(tcell.NewRGBColor(180, 220, 255)),
		Caption:  tcell.StyleDefault,
	}
}

// Style returns the style of layer l.
func (p Palette) Style(l Layer) tcell.Style {
	switch l {
	case LayerBlocked:
		return p.Blocked
	case LayerStart:
		return p.Start
	case LayerGoal:
		return p.Goal
	case LayerPath:
		return p.Path
	case LayerFrontier:
		return p.Frontier
	case LayerExplored:
		return p.Explored
	default:
		return p.Free
	}
}

// Frame is everything needed to draw one picture.
type Frame struct {
	Grid     *gridgraph.Grid
	Path     []gridgraph.Cell
	Frontier []gridgraph.Cell
	Explored []gridgraph.Cell
	Caption  string // drawn on the row below the grid

	path, frontier, explored map[gridgraph.Cell]struct{}
}

// NewFrame builds a frame showing g and a finished path.
func NewFrame(g *gridgraph.Grid, path []gridgraph.Cell) Frame {
	return Frame{Grid: g, Path: path}
}

// SnapshotFrame builds a frame from a Stepper snapshot.
func SnapshotFrame(g *gridgraph.Grid, snap astar.Snapshot) Frame {
	return Frame{
		Grid:     g,
		Path:     snap.Path,
		Frontier: snap.Frontier,
		Explored: snap.Expanded,
	}
}

// Layer returns the visual class of c.
func (f *Frame) Layer(c gridgraph.Cell) Layer {
	if f.path == nil {
		f.index()
	}
	switch f.Grid.At(c) {
	case gridgraph.Blocked:
		return LayerBlocked
	case gridgraph.Start:
		return LayerStart
	case gridgraph.Goal:
		return LayerGoal
	}
	if _, ok := f.path[c]; ok {
		return LayerPath
	}
	if _, ok := f.frontier[c]; ok {
		return LayerFrontier
	}
	if _, ok := f.explored[c]; ok {
		return LayerExplored
	}
	return LayerFree
}

func (f *Frame) index() {
	set := func(cells []gridgraph.Cell) map[gridgraph.Cell]struct{} {
		m := make(map[gridgraph.Cell]struct{}, len(cells))
		for _, c := range cells {
			m[c] = struct{}{}
		}
		return m
	}
	f.path, f.frontier, f.explored = set(f.Path), set(f.Frontier), set(f.Explored)
}

// Canvas is the subset of tcell.Screen that Draw needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Draw paints f onto s at the top-left corner, clipping anything beyond the
// canvas size. It does not call Show.
func Draw(s Canvas, f Frame, p Palette) {
	w, h := s.Size()
	for row := 0; row < f.Grid.Rows() && row < h; row++ {
		for col := 0; col < f.Grid.Cols(); col++ {
			style := p.Style(f.Layer(gridgraph.Cell{Row: row, Col: col}))
			for i := 0; i < CellWidth; i++ {
				if x := col*CellWidth + i; x < w {
					s.SetContent(x, row, ' ', nil, style)
				}
			}
		}
	}

	y := f.Grid.Rows()
	if y >= h {
		return
	}
	x := 0
	for _, r := range f.Caption {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, p.Caption)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, p.Caption)
	}
}

// Text renders f as text: the gridgraph map symbols, with '*' for path
// cells, '+' for frontier cells and '~' for explored cells.
func Text(f Frame) string {
	glyphs := map[Layer]byte{
		LayerFree:     '.',
		LayerBlocked:  '#',
		LayerStart:    'S',
		LayerGoal:     'G',
		LayerPath:     '*',
		LayerFrontier: '+',
		LayerExplored: '~',
	}
	var sb strings.Builder
	for row := 0; row < f.Grid.Rows(); row++ {
		for col := 0; col < f.Grid.Cols(); col++ {
			sb.WriteByte(glyphs[f.Layer(gridgraph.Cell{Row: row, Col: col})])
		}
		sb.WriteByte('\n')
	}
	if f.Caption != "" {
		sb.WriteString(f.Caption)
		sb.WriteByte('\n')
	}
	return sb.String()
}
