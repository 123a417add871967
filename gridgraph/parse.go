package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text map, one grid row per line:
//
//	'.' free   '#' blocked   'S' start   'G' goal
//
// Trailing blank lines and trailing '\r' are ignored. The result obeys the
// same rules as From2D.
func Parse(r io.Reader) (*Grid, error) {
	var values [][]Occupancy
	pendingBlank := 0

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pendingBlank++
			continue
		}
		if pendingBlank > 0 && len(values) > 0 {
			// a blank line inside the map would be an empty row
			return nil, fmt.Errorf("%w: blank line %d", ErrNonRectangular, line-1)
		}
		pendingBlank = 0

		row := make([]Occupancy, 0, len(text))
		for col, ch := range []rune(text) {
			switch ch {
			case '.':
				row = append(row, Free)
			case '#':
				row = append(row, Blocked)
			case 'S':
				row = append(row, Start)
			case 'G':
				row = append(row, Goal)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownSymbol, ch, line, col+1)
			}
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}

	return From2D(values)
}
