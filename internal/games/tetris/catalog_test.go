package tetris

import (
	"errors"
	"testing"
)

func TestShapesHaveFourDistinctCells(t *testing.T) {
	cat := SRS()
	for _, pt := range AllPieces {
		for r := RotationSpawn; r <= RotationLeft; r++ {
			seen := make(map[Offset]bool)
			for _, o := range cat.Shape(pt, r) {
				if seen[o] {
					t.Errorf("%v rotation %v: duplicate cell %v", pt, r, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestShapeRotationWrapsModFour(t *testing.T) {
	cat := SRS()
	if cat.Shape(PieceT, 4) != cat.Shape(PieceT, RotationSpawn) {
		t.Error("rotation 4 should equal spawn rotation")
	}
	if cat.Shape(PieceT, -1) != cat.Shape(PieceT, RotationLeft) {
		t.Error("rotation -1 should equal left rotation")
	}
}

// SRS kick data, y up, as published in the guideline.
var (
	wantStandardKicks = map[[2]Rotation][]Offset{
		{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}
	wantIKicks = map[[2]Rotation][]Offset{
		{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	}
)

func equalOffsets(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKickTables(t *testing.T) {
	cat := SRS()

	for _, pt := range AllPieces {
		for from := RotationSpawn; from <= RotationLeft; from++ {
			for to := RotationSpawn; to <= RotationLeft; to++ {
				var want []Offset
				switch pt {
				case PieceI:
					want = wantIKicks[[2]Rotation{from, to}]
				case PieceO:
					if to == from.Rotate(1) || to == from.Rotate(-1) {
						want = []Offset{{0, 0}}
					}
				default:
					want = wantStandardKicks[[2]Rotation{from, to}]
				}

				got := cat.Kicks(pt, from, to)
				if !equalOffsets(got, want) {
					t.Errorf("%v %v->%v: got %v, want %v", pt, from, to, got, want)
				}
			}
		}
	}
}

func TestKickTablesCoverEveryQuarterTurn(t *testing.T) {
	if len(wantStandardKicks) != 8 || len(wantIKicks) != 8 {
		t.Fatal("expected 8 transitions per table")
	}
	for pair := range wantStandardKicks {
		if pair[1] != pair[0].Rotate(1) && pair[1] != pair[0].Rotate(-1) {
			t.Errorf("%v is not a quarter turn", pair)
		}
		if len(wantStandardKicks[pair]) != 5 || len(wantIKicks[pair]) != 5 {
			t.Errorf("%v: expected 5 candidates", pair)
		}
	}
}

func TestUnknownPiecePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownPiece) {
			t.Fatalf("expected ErrUnknownPiece panic, got %v", r)
		}
	}()
	SRS().Shape(PieceType(9), RotationSpawn)
}

func TestParsePieceType(t *testing.T) {
	for _, pt := range AllPieces {
		got, err := ParsePieceType(pt.String())
		if err != nil || got != pt {
			t.Errorf("ParsePieceType(%q) = %v, %v", pt.String(), got, err)
		}
	}
	if _, err := ParsePieceType("X"); !errors.Is(err, ErrUnknownPiece) {
		t.Errorf("expected ErrUnknownPiece, got %v", err)
	}
}
