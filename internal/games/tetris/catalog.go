package tetris

import "fmt"

// kickCategory partitions pieces by which SRS kick table they use.
type kickCategory int

const (
	kicksStandard kickCategory = iota // J, L, S, T, Z
	kicksI
	kicksO
	kickCategories
)

// kickTable holds candidate offsets indexed by [from][to].
// Pairs that are not a quarter turn apart have no candidates.
type kickTable [4][4][]Offset

// Catalog is the immutable registry of piece shapes and kick tables.
// Components receive it explicitly; nothing mutates it after construction.
type Catalog struct {
	shapes [pieceCount][4]Shape
	kicks  [kickCategories]kickTable
}

// srs is the guideline catalog. Built once; exposed read-only through SRS.
var srs = newSRSCatalog()

// SRS returns the Super Rotation System catalog.
func SRS() *Catalog {
	return srs
}

// Shape returns the cells of t at rotation r (taken mod 4), relative to the pivot.
// Panics with ErrUnknownPiece for an invalid type.
func (c *Catalog) Shape(t PieceType, r Rotation) Shape {
	mustValid(t)
	return c.shapes[t][r.Normalize()]
}

// Kicks returns the ordered kick candidates for rotating t from one
// orientation to another. Offsets use the table convention (y up); the
// first candidate that fits wins. The returned slice must not be modified.
func (c *Catalog) Kicks(t PieceType, from, to Rotation) []Offset {
	mustValid(t)
	return c.kicks[categoryOf(t)][from.Normalize()][to.Normalize()]
}

func categoryOf(t PieceType) kickCategory {
	switch t {
	case PieceI:
		return kicksI
	case PieceO:
		return kicksO
	default:
		return kicksStandard
	}
}

func mustValid(t PieceType) {
	if !t.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownPiece, uint8(t)))
	}
}

func newSRSCatalog() *Catalog {
	c := &Catalog{}

	// Pivot-relative cells, y down. J, L, S, T, Z rotate inside a 3x3 box
	// around its center; I rotates inside a 4x4 box around the cell left
	// of and above its center; O never changes.
	c.shapes[PieceI] = [4]Shape{
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	}
	o := Shape{{0, -1}, {1, -1}, {0, 0}, {1, 0}}
	c.shapes[PieceO] = [4]Shape{o, o, o, o}
	c.shapes[PieceT] = [4]Shape{
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {0, 1}},
	}
	c.shapes[PieceS] = [4]Shape{
		{{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	}
	c.shapes[PieceZ] = [4]Shape{
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{1, -1}, {0, 0}, {1, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {-1, 1}},
	}
	c.shapes[PieceJ] = [4]Shape{
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {1, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {-1, 1}, {0, 1}},
	}
	c.shapes[PieceL] = [4]Shape{
		{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	}

	// SRS kick data, y up.
	std := &c.kicks[kicksStandard]
	std[0][1] = []Offset{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}
	std[1][0] = []Offset{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}
	std[1][2] = []Offset{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}
	std[2][1] = []Offset{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}
	std[2][3] = []Offset{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}
	std[3][2] = []Offset{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
	std[3][0] = []Offset{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
	std[0][3] = []Offset{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}

	i := &c.kicks[kicksI]
	i[0][1] = []Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}
	i[1][0] = []Offset{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}
	i[1][2] = []Offset{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}
	i[2][1] = []Offset{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}
	i[2][3] = []Offset{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}
	i[3][2] = []Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}
	i[3][0] = []Offset{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}
	i[0][3] = []Offset{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}

	oTable := &c.kicks[kicksO]
	for from := 0; from < 4; from++ {
		for _, to := range []int{(from + 1) % 4, (from + 3) % 4} {
			oTable[from][to] = []Offset{{0, 0}}
		}
	}

	return c
}
