package tetris

// Cell is one board square: Empty, or the type of the piece that filled it.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// CellOf returns the cell value for a locked block of piece type t.
func CellOf(t PieceType) Cell {
	return Cell(t) + 1
}

// Piece returns the type that filled the cell; ok is false for Empty.
func (c Cell) Piece() (t PieceType, ok bool) {
	if c == Empty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// ClearResult describes one line clear.
type ClearResult struct {
	Count int
	Rows  []int // Pre-clear row indices, ascending
}

// Board is the fixed grid of locked cells. Row 0 is the top; the first
// hiddenRows rows are the buffer above the visible field.
type Board struct {
	catalog *Catalog
	width   int
	height  int
	hidden  int
	rows    [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(catalog *Catalog, width, height, hiddenRows int) *Board {
	b := &Board{
		catalog: catalog,
		width:   width,
		height:  height,
		hidden:  hiddenRows,
		rows:    make([][]Cell, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows, hidden rows included.
func (b *Board) Height() int { return b.height }

// HiddenRows returns the number of buffer rows above the visible field.
func (b *Board) HiddenRows() int { return b.hidden }

// Reset clears all cells.
func (b *Board) Reset() {
	for _, row := range b.rows {
		clear(row)
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the content at (x, y); out-of-bounds reads are Empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// SetCell writes a single cell. Out-of-bounds writes are ignored.
func (b *Board) SetCell(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.rows[y][x] = c
	}
}

// Occupied reports whether (x, y) blocks a piece. Walls and floor count as occupied.
func (b *Board) Occupied(x, y int) bool {
	return !b.InBounds(x, y) || b.rows[y][x] != Empty
}

// IsValid reports whether piece t at pivot (x, y) and rotation r lies fully
// inside the grid without overlapping locked cells.
func (b *Board) IsValid(t PieceType, x, y int, r Rotation) bool {
	for _, o := range b.catalog.Shape(t, r) {
		if b.Occupied(x+o.DX, y+o.DY) {
			return false
		}
	}
	return true
}

// Lock writes the piece into the grid. The caller must have validated the pose.
func (b *Board) Lock(t PieceType, x, y int, r Rotation) {
	c := CellOf(t)
	for _, o := range b.catalog.Shape(t, r) {
		b.SetCell(x+o.DX, y+o.DY, c)
	}
}

// DropDistance returns how many rows piece t can fall from (x, y) before
// resting. Returns 0 if the pose itself is invalid.
func (b *Board) DropDistance(t PieceType, x, y int, r Rotation) int {
	if !b.IsValid(t, x, y, r) {
		return 0
	}
	d := 0
	for b.IsValid(t, x, y+d+1, r) {
		d++
	}
	return d
}

// ClearLines removes every full row, shifts the rows above down to close
// the gaps and inserts the same number of empty rows at the top.
func (b *Board) ClearLines() ClearResult {
	var full []int
	for y, row := range b.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return ClearResult{}
	}

	// Keep the surviving rows in order and reuse the cleared rows' storage
	// as the fresh empty rows on top.
	kept := make([][]Cell, 0, b.height)
	fresh := make([][]Cell, 0, len(full))
	next := 0
	for y, row := range b.rows {
		if next < len(full) && full[next] == y {
			clear(row)
			fresh = append(fresh, row)
			next++
			continue
		}
		kept = append(kept, row)
	}
	b.rows = append(fresh, kept...)

	return ClearResult{Count: len(full), Rows: full}
}

// HasBlocksAboveVisible reports whether any hidden buffer row holds a block.
func (b *Board) HasBlocksAboveVisible() bool {
	for y := 0; y < b.hidden && y < b.height; y++ {
		for _, c := range b.rows[y] {
			if c != Empty {
				return true
			}
		}
	}
	return false
}

// Rows returns a deep copy of the grid, top row first.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}
