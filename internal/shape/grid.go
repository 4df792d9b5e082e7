package shape

import (
	"fmt"
	"strings"
)

// Grid is a container-sized bit grid. It describes either the usable cells
// of a container or the cells already taken by placed items.
type Grid [BigMaxHeight]uint32

// GridRect returns a grid with the w x h rectangle at (0, 0) set.
func GridRect(w, h int) (Grid, error) {
	var g Grid
	if w <= 0 || h <= 0 || w > BigMaxWidth || h > BigMaxHeight {
		return g, fmt.Errorf(ErrMsgInvalidExtent, w, h, BigMaxWidth, BigMaxHeight)
	}
	row := uint32(uint64(1)<<uint(w) - 1)
	for y := 0; y < h; y++ {
		g[y] = row
	}
	return g, nil
}

// ParseGrid builds a grid from text rows using '#' and '.'.
func ParseGrid(rows []string) (Grid, error) {
	var g Grid
	if len(rows) > BigMaxHeight {
		return g, fmt.Errorf(ErrMsgTooManyRows, len(rows), BigMaxHeight)
	}
	for y, row := range rows {
		if len(row) > BigMaxWidth {
			return g, fmt.Errorf(ErrMsgRowTooWide, y, len(row), BigMaxWidth)
		}
		for x, c := range row {
			switch c {
			case CellSet:
				g.Set(x, y)
			case CellEmpty:
			default:
				return g, fmt.Errorf(ErrMsgInvalidCell, y, c, x)
			}
		}
	}
	return g, nil
}

func inBig(x, y int) bool {
	return x >= 0 && y >= 0 && x < BigMaxWidth && y < BigMaxHeight
}

// IsSet reports whether cell (x, y) is set. Out-of-range cells are never set.
func (g *Grid) IsSet(x, y int) bool {
	if !inBig(x, y) {
		return false
	}
	return g[y]&(1<<uint(x)) != 0
}

// Set marks cell (x, y). Out-of-range cells are ignored.
func (g *Grid) Set(x, y int) {
	if inBig(x, y) {
		g[y] |= 1 << uint(x)
	}
}

// Inverted returns the complement of the grid.
func (g Grid) Inverted() Grid {
	var r Grid
	for y := range g {
		r[y] = ^g[y]
	}
	return r
}

// Merge ORs mask m placed at (x, y) into the grid. Cells falling outside the
// grid are dropped.
func (g *Grid) Merge(m Mask, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	for i := 0; i < SmallMaxHeight; i++ {
		if y+i >= BigMaxHeight {
			break
		}
		g[y+i] |= uint32(uint64(m.Row(i)) << uint(x))
	}
}

// Collides reports whether mask m placed at (x, y) overlaps a set cell or
// leaves the grid.
func (g *Grid) Collides(m Mask, x, y int) bool {
	if x < 0 || y < 0 {
		return true
	}
	for i := 0; i < SmallMaxHeight; i++ {
		row := m.Row(i)
		if row == 0 {
			continue
		}
		if y+i >= BigMaxHeight {
			return true
		}
		shifted := uint64(row) << uint(x)
		if shifted>>BigMaxWidth != 0 {
			return true
		}
		if uint32(shifted)&g[y+i] != 0 {
			return true
		}
	}
	return false
}

// Width is one past the right-most set column.
func (g *Grid) Width() int {
	w := 0
	for y := range g {
		for x := BigMaxWidth - 1; x >= w; x-- {
			if g[y]&(1<<uint(x)) != 0 {
				w = x + 1
				break
			}
		}
	}
	return w
}

// Height is one past the bottom-most set row.
func (g *Grid) Height() int {
	for y := BigMaxHeight - 1; y >= 0; y-- {
		if g[y] != 0 {
			return y + 1
		}
	}
	return 0
}

// String renders the grid down to width x height of its set cells.
func (g Grid) String() string {
	return g.Render(g.Width(), g.Height())
}

// Render draws the top-left w x h cells, one line per row.
func (g *Grid) Render(w, h int) string {
	var sb strings.Builder
	for y := 0; y < h && y < BigMaxHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w && x < BigMaxWidth; x++ {
			if g.IsSet(x, y) {
				sb.WriteByte(CellSet)
			} else {
				sb.WriteByte(CellEmpty)
			}
		}
	}
	return sb.String()
}
