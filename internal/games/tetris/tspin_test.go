package tetris

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

// tSlot puts a T pointing down at (4, 20) and fills the listed corners.
func tSlot(corners ...Offset) *Engine {
	e := newTestEngine()
	e.piece = Piece{Type: PieceT, Rotation: RotationReverse, X: 4, Y: 20}
	for _, c := range corners {
		e.board.SetCell(4+c.DX, 20+c.DY, CellOf(PieceJ))
	}
	return e
}

func TestClassifyTSpin(t *testing.T) {
	tests := []struct {
		name     string
		corners  []Offset
		rotated  bool
		kicked   bool
		wantSpin bool
		wantMini bool
	}{
		{"four corners", []Offset{cornerTL, cornerTR, cornerBL, cornerBR}, true, false, true, false},
		{"four corners kicked", []Offset{cornerTL, cornerTR, cornerBL, cornerBR}, true, true, true, false},
		{"not rotated", []Offset{cornerTL, cornerTR, cornerBL, cornerBR}, false, false, false, false},
		{"two corners", []Offset{cornerBL, cornerBR}, true, true, false, false},
		{"front open kicked", []Offset{cornerTL, cornerTR, cornerBL}, true, true, true, true},
		{"front open unkicked", []Offset{cornerTL, cornerTR, cornerBL}, true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tSlot(tt.corners...)
			e.lastRotation = tt.rotated
			e.lastKick = tt.kicked

			spin, mini := e.classifyTSpin()
			if spin != tt.wantSpin || mini != tt.wantMini {
				t.Errorf("classify = (%v, %v), want (%v, %v)", spin, mini, tt.wantSpin, tt.wantMini)
			}
		})
	}
}

func TestClassifyTSpinBackOpen(t *testing.T) {
	e := newTestEngine()
	// T pointing up with both front corners filled and one back corner open.
	e.piece = Piece{Type: PieceT, Rotation: RotationSpawn, X: 4, Y: 10}
	for _, c := range []Offset{cornerTL, cornerTR, cornerBL} {
		e.board.SetCell(4+c.DX, 10+c.DY, CellOf(PieceJ))
	}
	e.lastRotation, e.lastKick = true, true

	spin, mini := e.classifyTSpin()
	if !spin || mini {
		t.Errorf("classify = (%v, %v), want (true, false)", spin, mini)
	}
}

func TestClassifyTSpinOtherPieces(t *testing.T) {
	e := tSlot(cornerTL, cornerTR, cornerBL, cornerBR)
	e.piece.Type = PieceS
	e.lastRotation = true
	if spin, _ := e.classifyTSpin(); spin {
		t.Error("only T pieces can spin")
	}
}

func TestTSpinReportedOnLock(t *testing.T) {
	e := tSlot(cornerTL, cornerTR, cornerBL, cornerBR)
	e.lastRotation = true
	res := e.Update(0, actions(core.ActionHardDrop))
	if len(res.Locks) != 1 || !res.Locks[0].IsTSpin || res.Locks[0].IsTSpinMini {
		t.Errorf("lock result %+v", res.Locks)
	}
}

func TestTSpinMiniThroughKickedRotation(t *testing.T) {
	e := newTestEngine()
	e.piece = Piece{Type: PieceT, Rotation: RotationSpawn, X: 1, Y: 21}
	for _, c := range []Point{{1, 19}, {3, 19}, {3, 21}} {
		e.board.SetCell(c.X, c.Y, CellOf(PieceJ))
	}

	// The first two candidates push the stem through the floor; the third
	// (+1, +1) lifts the T into the slot.
	if !e.Rotate(-1) {
		t.Fatal("rotation should succeed with a kick")
	}
	want := Piece{Type: PieceT, Rotation: RotationLeft, X: 2, Y: 20}
	if e.piece != want {
		t.Fatalf("piece = %+v, want %+v", e.piece, want)
	}

	res := e.Update(0, actions(core.ActionHardDrop))
	if len(res.Locks) != 1 {
		t.Fatalf("locks = %d, want 1", len(res.Locks))
	}
	lock := res.Locks[0]
	if !lock.IsTSpin || !lock.IsTSpinMini {
		t.Errorf("lock = %+v, want a T-spin Mini", lock)
	}
	if lock.LinesCleared != 0 {
		t.Errorf("lines = %d, want 0", lock.LinesCleared)
	}
}
