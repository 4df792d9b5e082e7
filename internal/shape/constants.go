package shape

// Item shapes are packed into one 32-bit word: SmallMaxHeight rows of
// SmallMaxWidth bits each.
const (
	SmallMaxWidth  = 8
	SmallMaxHeight = 4
)

// Container grids hold one 32-bit word per row.
const (
	BigMaxWidth  = 32
	BigMaxHeight = 16
)

// smallRowMask selects one row of an item mask.
const smallRowMask = 0xFF

// Characters used by ParseMask, ParseGrid and String.
const (
	CellSet   = '#'
	CellEmpty = '.'
)

// Error messages
const (
	ErrMsgTooManyRows   = "too many rows: %d (max %d)"
	ErrMsgRowTooWide    = "row %d is too wide: %d (max %d)"
	ErrMsgInvalidCell   = "row %d has invalid cell %q at column %d"
	ErrMsgInvalidExtent = "invalid extent %dx%d (max %dx%d)"
)
