// Package config loads the gridpath viewer settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidValue wraps every parse failure of an environment variable.
var ErrInvalidValue = errors.New("config: invalid value")

// Output selects where the result is drawn.
type Output string

const (
	OutputScreen Output = "screen" // interactive tcell display
	OutputText   Output = "text"   // plain text on stdout
)

// Environment keys.
const (
	KeyRows            = "GRIDPATH_ROWS"
	KeyCols            = "GRIDPATH_COLS"
	KeyStart           = "GRIDPATH_START"
	KeyGoal            = "GRIDPATH_GOAL"
	KeyObstacles       = "GRIDPATH_OBSTACLES"
	KeyMap             = "GRIDPATH_MAP"
	KeyFrontier        = "GRIDPATH_FRONTIER"
	KeyStrictEndpoints = "GRIDPATH_STRICT_ENDPOINTS"
	KeyIncludeStart    = "GRIDPATH_INCLUDE_START"
	KeyOutput          = "GRIDPATH_OUTPUT"
	KeyStepDelay       = "GRIDPATH_STEP_DELAY"
)

// DefaultObstacles is the demonstration obstacle layout.
const DefaultObstacles = "5,5;5,6;6,5;10,15;10,16;10,17"

// Config holds the viewer configuration.
type Config struct {
	Rows, Cols      int              // grid size
	Start, Goal     gridgraph.Cell   // endpoints
	Obstacles       []gridgraph.Cell // blocked cells
	MapFile         string           // text map; overrides the five fields above
	Frontier        astar.FrontierPolicy
	StrictEndpoints bool
	IncludeStart    bool
	Output          Output
	StepDelay       time.Duration // animate the search when > 0
}

// Default returns the 20×20 demonstration setup.
func Default() Config {
	obstacles, _ := ParseCells(DefaultObstacles)
	return Config{
		Rows:      20,
		Cols:      20,
		Start:     gridgraph.Cell{Row: 0, Col: 0},
		Goal:      gridgraph.Cell{Row: 19, Col: 19},
		Obstacles: obstacles,
		Frontier:  astar.MembershipCheck,
		Output:    OutputScreen,
	}
}

// Load reads a .env file if one exists, then builds a Config from the
// environment. Unset keys keep their Default values; GRIDPATH_GOAL defaults
// to the bottom-right cell of the configured size.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which has the signature of
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Rows, err = intValue(lookup, KeyRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = intValue(lookup, KeyCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	cfg.Goal = gridgraph.Cell{Row: cfg.Rows - 1, Col: cfg.Cols - 1}

	if v, ok := lookup(KeyStart); ok {
		if cfg.Start, err = ParseCell(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyStart, err)
		}
	}
	if v, ok := lookup(KeyGoal); ok {
		if cfg.Goal, err = ParseCell(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyGoal, err)
		}
	}
	if v, ok := lookup(KeyObstacles); ok {
		if cfg.Obstacles, err = ParseCells(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyObstacles, err)
		}
	}
	cfg.MapFile, _ = lookup(KeyMap)

	if v, ok := lookup(KeyFrontier); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case astar.MembershipCheck.String():
			cfg.Frontier = astar.MembershipCheck
		case astar.LazyDuplicates.String():
			cfg.Frontier = astar.LazyDuplicates
		default:
			return Config{}, fmt.Errorf("%w: %s: %q", ErrInvalidValue, KeyFrontier, v)
		}
	}
	if cfg.StrictEndpoints, err = boolValue(lookup, KeyStrictEndpoints); err != nil {
		return Config{}, err
	}
	if cfg.IncludeStart, err = boolValue(lookup, KeyIncludeStart); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(KeyOutput); ok {
		switch o := Output(strings.ToLower(strings.TrimSpace(v))); o {
		case OutputScreen, OutputText:
			cfg.Output = o
		default:
			return Config{}, fmt.Errorf("%w: %s: %q", ErrInvalidValue, KeyOutput, v)
		}
	}
	if v, ok := lookup(KeyStepDelay); ok {
		d, perr := time.ParseDuration(strings.TrimSpace(v))
		if perr != nil || d < 0 {
			return Config{}, fmt.Errorf("%w: %s: %q", ErrInvalidValue, KeyStepDelay, v)
		}
		cfg.StepDelay = d
	}

	return cfg, nil
}

// SearchOptions converts the search-related settings to astar options.
func (c Config) SearchOptions() []astar.Option {
	opts := []astar.Option{astar.WithFrontierPolicy(c.Frontier)}
	if c.StrictEndpoints {
		opts = append(opts, astar.WithStrictEndpoints())
	}
	if c.IncludeStart {
		opts = append(opts, astar.WithIncludeStart())
	}
	return opts
}

// Grid builds the occupancy grid: from MapFile when it is set, otherwise from
// the size, endpoint and obstacle fields. For a map file the endpoints are
// taken from its S and G tags and written back into the returned Config.
func (c Config) Grid() (*gridgraph.Grid, Config, error) {
	if c.MapFile == "" {
		g, err := gridgraph.New(c.Rows, c.Cols, c.Obstacles, c.Start, c.Goal)
		if err != nil {
			return nil, c, fmt.Errorf("config: build grid: %w", err)
		}
		return g, c, nil
	}

	f, err := os.Open(c.MapFile)
	if err != nil {
		return nil, c, fmt.Errorf("config: open map: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, c, fmt.Errorf("config: parse map %s: %w", c.MapFile, err)
	}
	c.Rows, c.Cols = g.Rows(), g.Cols()
	c.Start, c.Goal = g.Start(), g.Goal()
	c.Obstacles = nil

	return g, c, nil
}

// ParseCell parses "row,col".
func ParseCell(s string) (gridgraph.Cell, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: col: %w", s, err)
	}
	return gridgraph.Cell{Row: row, Col: col}, nil
}

// ParseCells parses a ';'-separated list of "row,col" cells. Empty items are
// skipped, so "" yields no cells.
func ParseCells(s string) ([]gridgraph.Cell, error) {
	var cells []gridgraph.Cell
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		c, err := ParseCell(item)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func intValue(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidValue, key, v)
	}
	return n, nil
}

func boolValue(lookup func(string) (string, bool), key string) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidValue, key, v)
	}
	return b, nil
}
