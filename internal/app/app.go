// Package app wires configuration, search and rendering into the gridpath
// command.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/render"
)

// App is one configured run: a grid, the search settings and a logger.
type App struct {
	cfg     config.Config
	grid    *gridgraph.Grid
	log     *logging.Logger
	palette render.Palette
	runID   uuid.UUID
}

// New builds the grid described by cfg.
func New(cfg config.Config, log *logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}
	g, cfg, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:     cfg,
		grid:    g,
		log:     log,
		palette: render.DefaultPalette(),
		runID:   uuid.New(),
	}
	a.log.Infof("run %s: %dx%d grid, start %v, goal %v, frontier %s",
		a.runID, g.Rows(), g.Cols(), cfg.Start, cfg.Goal, cfg.Frontier)

	return a, nil
}

// RunID identifies this run in the logs.
func (a *App) RunID() uuid.UUID { return a.runID }

// Grid returns the grid being searched.
func (a *App) Grid() *gridgraph.Grid { return a.grid }

// Solve runs the search to completion and logs the outcome. When no path
// exists it also logs the obstacle cells that would have to be cleared.
func (a *App) Solve() (astar.Result, error) {
	res, err := astar.Search(a.grid, a.cfg.Start, a.cfg.Goal, a.cfg.SearchOptions()...)
	if err != nil {
		a.log.Errorf("run %s: %v", a.runID, err)
		return astar.Result{}, err
	}
	a.report(res)
	return res, nil
}

func (a *App) report(res astar.Result) {
	if res.Found() {
		a.log.Infof("run %s: path of %d cells, %d expanded, %d pushed",
			a.runID, len(res.Path), res.Expanded, res.Pushed)
		return
	}
	a.log.Errorf("run %s: no path after %d expansions", a.runID, res.Expanded)
	if res.Truncated {
		return
	}
	a.log.Infof("run %s: %d free regions", a.runID, len(a.grid.Regions()))
	if cells, err := a.grid.MinClearance(a.cfg.Start, a.cfg.Goal); err == nil {
		a.log.Infof("run %s: clearing %v would connect start and goal", a.runID, cells)
	}
}

// Caption summarises a result for the status line.
func Caption(res astar.Result) string {
	switch {
	case res.Found():
		return fmt.Sprintf("path length %d, expanded %d", len(res.Path), res.Expanded)
	case res.Status == astar.StatusRunning:
		return fmt.Sprintf("searching, expanded %d", res.Expanded)
	default:
		return "no path"
	}
}

// WriteText solves the grid and writes the text rendering to w.
func (a *App) WriteText(w io.Writer) error {
	res, err := a.Solve()
	if err != nil {
		return err
	}
	f := render.NewFrame(a.grid, res.Path)
	f.Caption = Caption(res)
	_, err = io.WriteString(w, render.Text(f))
	return err
}

// errQuit ends the display loop.
var errQuit = errors.New("app: quit")

// Display draws the grid on s and runs the event loop until the user quits
// with Escape, q or Ctrl-C. s must already be initialised; Display does not
// call Fini. With a zero StepDelay the path is computed before the first
// frame; otherwise the search is animated one step per tick.
func (a *App) Display(s tcell.Screen) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var (
		frame   render.Frame
		stepper *astar.Stepper
		tick    <-chan time.Time
	)
	if a.cfg.StepDelay > 0 {
		var err error
		stepper, err = astar.NewStepper(a.grid, a.cfg.Start, a.cfg.Goal, a.cfg.SearchOptions()...)
		if err != nil {
			a.log.Errorf("run %s: %v", a.runID, err)
			return err
		}
		ticker := time.NewTicker(a.cfg.StepDelay)
		defer ticker.Stop()
		tick = ticker.C
		frame = render.NewFrame(a.grid, nil)
		frame.Caption = Caption(stepper.Result())
	} else {
		res, err := a.Solve()
		if err != nil {
			return err
		}
		frame = render.NewFrame(a.grid, res.Path)
		frame.Caption = Caption(res)
	}
	a.show(s, frame)

	for {
		select {
		case ev := <-events:
			if err := a.handle(s, ev, frame); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		case <-tick:
			snap, ok := stepper.Step()
			if !ok {
				tick = nil
				a.report(stepper.Result())
				continue
			}
			frame = render.SnapshotFrame(a.grid, snap)
			frame.Caption = Caption(stepper.Result())
			if stepper.Done() {
				tick = nil
				a.report(stepper.Result())
			}
			a.show(s, frame)
		}
	}
}

func (a *App) handle(s tcell.Screen, ev tcell.Event, frame render.Frame) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return errQuit
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return errQuit
		}
	case *tcell.EventResize:
		s.Sync()
		a.show(s, frame)
	}
	return nil
}

func (a *App) show(s tcell.Screen, f render.Frame) {
	s.Clear()
	render.Draw(s, f, a.palette)
	s.Show()
}
