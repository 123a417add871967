// Package gridpath finds shortest paths across 2D occupancy grids with A*
// and draws them in the terminal.
//
// What is in the box?
//
//	• gridgraph/ — Cell, Occupancy and the immutable rectangular Grid;
//	               text maps, connected regions, minimum obstacle clearance
//	• astar/     — A* search (4-connected, unit cost, Manhattan heuristic),
//	               path reconstruction and a step-by-step Stepper
//	• render/    — tcell and plain-text drawing of grids, paths and search state
//	• config/    — GRIDPATH_* environment settings with optional .env file
//	• cmd/gridpath — the interactive viewer
//
// Quick start:
//
//	g, _ := gridgraph.New(20, 20, []gridgraph.Cell{{Row: 5, Col: 5}},
//		gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 19, Col: 19})
//	path, ok := astar.FindPath(g, g.Start(), g.Goal())
//
// The returned path excludes the start cell and ends at the goal; a start
// equal to the goal yields an empty path. An unreachable goal yields
// (nil, false).
package gridpath
