package shape

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mask is the footprint of an item: up to SmallMaxWidth x SmallMaxHeight
// cells, bit y*SmallMaxWidth+x set when cell (x, y) is occupied.
type Mask uint32

// Rect returns a w x h rectangle anchored at (0, 0).
func Rect(w, h int) (Mask, error) {
	if w <= 0 || h <= 0 || w > SmallMaxWidth || h > SmallMaxHeight {
		return 0, fmt.Errorf(ErrMsgInvalidExtent, w, h, SmallMaxWidth, SmallMaxHeight)
	}
	var m Mask
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m = m.Set(x, y)
		}
	}
	return m, nil
}

// MustRect is Rect for static tables; it panics on an invalid extent.
func MustRect(w, h int) Mask {
	m, err := Rect(w, h)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMask builds a mask from text rows using '#' for occupied cells and
// '.' for free ones.
func ParseMask(rows []string) (Mask, error) {
	if len(rows) > SmallMaxHeight {
		return 0, fmt.Errorf(ErrMsgTooManyRows, len(rows), SmallMaxHeight)
	}
	var m Mask
	for y, row := range rows {
		if len(row) > SmallMaxWidth {
			return 0, fmt.Errorf(ErrMsgRowTooWide, y, len(row), SmallMaxWidth)
		}
		for x, c := range row {
			switch c {
			case CellSet:
				m = m.Set(x, y)
			case CellEmpty:
			default:
				return 0, fmt.Errorf(ErrMsgInvalidCell, y, c, x)
			}
		}
	}
	return m, nil
}

func inSmall(x, y int) bool {
	return x >= 0 && y >= 0 && x < SmallMaxWidth && y < SmallMaxHeight
}

// IsSet reports whether cell (x, y) is occupied. Out-of-range cells are never set.
func (m Mask) IsSet(x, y int) bool {
	if !inSmall(x, y) {
		return false
	}
	return m&(1<<uint(y*SmallMaxWidth+x)) != 0
}

// Set returns the mask with cell (x, y) occupied. Out-of-range cells are ignored.
func (m Mask) Set(x, y int) Mask {
	if !inSmall(x, y) {
		return m
	}
	return m | 1<<uint(y*SmallMaxWidth+x)
}

// Row returns the bits of row y, lowest bit being column 0.
func (m Mask) Row(y int) uint32 {
	if y < 0 || y >= SmallMaxHeight {
		return 0
	}
	return uint32(m>>uint(y*SmallMaxWidth)) & smallRowMask
}

// Width is one past the right-most occupied column.
func (m Mask) Width() int {
	w := 0
	for y := 0; y < SmallMaxHeight; y++ {
		if l := bits.Len32(m.Row(y)); l > w {
			w = l
		}
	}
	return w
}

// Height is one past the bottom-most occupied row.
func (m Mask) Height() int {
	for y := SmallMaxHeight - 1; y >= 0; y-- {
		if m.Row(y) != 0 {
			return y + 1
		}
	}
	return 0
}

// Cells counts occupied cells.
func (m Mask) Cells() int {
	return bits.OnesCount32(uint32(m))
}

// Empty reports whether no cell is occupied.
func (m Mask) Empty() bool {
	return m == 0
}

// Rotated turns the mask by 90 degrees: cell (x, y) moves to (y, w-1-x).
// Shapes wider than SmallMaxHeight cannot be turned and come back unchanged.
func (m Mask) Rotated() Mask {
	w := m.Width()
	if w > SmallMaxHeight {
		return m
	}
	var r Mask
	for y := 0; y < SmallMaxHeight; y++ {
		for x := 0; x < w; x++ {
			if m.IsSet(x, y) {
				r = r.Set(y, w-1-x)
			}
		}
	}
	return r
}

// String renders the used extent of the mask, one line per row.
func (m Mask) String() string {
	var sb strings.Builder
	w, h := m.Width(), m.Height()
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if m.IsSet(x, y) {
				sb.WriteByte(CellSet)
			} else {
				sb.WriteByte(CellEmpty)
			}
		}
	}
	return sb.String()
}
