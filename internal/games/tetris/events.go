package tetris

// PieceSnapshot is a frozen copy of a piece pose and its absolute cells.
type PieceSnapshot struct {
	Type     PieceType
	Rotation Rotation
	X, Y     int
	Cells    [4]Point
}

func snapshotPiece(c *Catalog, p Piece) PieceSnapshot {
	return PieceSnapshot{
		Type:     p.Type,
		Rotation: p.Rotation,
		X:        p.X,
		Y:        p.Y,
		Cells:    p.Cells(c),
	}
}

// LockResult describes one piece committing to the board.
type LockResult struct {
	LinesCleared int
	ClearedRows  []int
	IsTSpin      bool
	IsTSpinMini  bool
	Piece        PieceSnapshot
}

// HardDropTrail describes the path of a hard drop for the renderer.
type HardDropTrail struct {
	Piece PieceSnapshot // Pose at the landing row
	FromY int           // Pivot row before the drop
	ToY   int           // Pivot row after the drop
}

// Rows returns the distance covered by the drop.
func (t HardDropTrail) Rows() int {
	return t.ToY - t.FromY
}

// GameOverReason tells how a game ended.
type GameOverReason int

const (
	ReasonNone     GameOverReason = iota
	ReasonBlockOut                // A new piece could not be placed
	ReasonLockOut                 // A lock left blocks in the hidden rows
)

// String returns a display name for the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonBlockOut:
		return "block out"
	case ReasonLockOut:
		return "lock out"
	default:
		return "none"
	}
}

// TickResult carries the one-shot events produced by a single Update.
// Each value is produced once; the engine keeps no copy.
type TickResult struct {
	Locks        []LockResult
	SoftDropRows int
	HardDropRows int
	Trails       []HardDropTrail
	GameOver     bool // Game is over after this tick
	Paused       bool // Engine is paused after this tick
}
