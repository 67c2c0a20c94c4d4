// Package tetris implements a guideline falling-block game: SRS rotation
// with wall kicks, a 7-bag randomizer, lock delay with bounded resets,
// T-spin detection and combo/back-to-back scoring.
//
// The engine is pure and tick-driven. The platform feeds it elapsed time
// and discrete actions; it never reads a clock or a keyboard.
package tetris

import (
	"errors"
	"fmt"
)

// PieceType is one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
	pieceCount
)

// AllPieces lists every piece type in catalog order.
var AllPieces = [...]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// ErrUnknownPiece reports a piece type outside the closed set of seven.
// Reaching it is a programmer error.
var ErrUnknownPiece = errors.New("tetris: unknown piece type")

// Valid reports whether t is one of the seven tetrominoes.
func (t PieceType) Valid() bool {
	return t < pieceCount
}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
	return string("IOTSZJL"[t])
}

// ParsePieceType converts a single-letter name ("I", "T", ...) to a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range AllPieces {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}

// Rotation is an orientation index 0..3, clockwise from spawn.
type Rotation int

const (
	RotationSpawn   Rotation = 0
	RotationRight   Rotation = 1
	RotationReverse Rotation = 2
	RotationLeft    Rotation = 3
)

// Normalize maps any integer onto 0..3.
func (r Rotation) Normalize() Rotation {
	return ((r % 4) + 4) % 4
}

// Rotate returns the orientation reached by turning dir quarter turns (+1 clockwise).
func (r Rotation) Rotate(dir int) Rotation {
	return (r + Rotation(dir) + 4).Normalize()
}

// String returns the SRS name of the orientation.
func (r Rotation) String() string {
	return [...]string{"0", "R", "2", "L"}[r.Normalize()]
}

// Offset is a cell displacement. In shapes y grows downward (board
// convention); in kick tables y grows upward (SRS convention).
type Offset struct {
	DX, DY int
}

// Shape is the four cells of a piece relative to its pivot.
type Shape [4]Offset

// Piece is the active piece pose. X and Y locate the pivot on the board.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	X, Y     int
}

// Point is an absolute board cell.
type Point struct {
	X, Y int
}

// Cells returns the absolute cells the piece occupies.
func (p Piece) Cells(c *Catalog) [4]Point {
	var out [4]Point
	for i, o := range c.Shape(p.Type, p.Rotation) {
		out[i] = Point{X: p.X + o.DX, Y: p.Y + o.DY}
	}
	return out
}
