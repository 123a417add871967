// Package render draws a grid, its search state and the found path, either to
// a tcell screen or as plain text.
//
// Each grid cell is CellWidth terminal columns wide and one row tall, so a
// square grid looks roughly square in a terminal. Layers are resolved per
// cell in this order: blocked, start, goal, path, frontier, explored, free.
package render
