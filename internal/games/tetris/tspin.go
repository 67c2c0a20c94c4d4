package tetris

// Diagonal neighbours of the T pivot.
var (
	cornerTL = Offset{-1, -1}
	cornerTR = Offset{1, -1}
	cornerBR = Offset{1, 1}
	cornerBL = Offset{-1, 1}
)

// frontCorners are the two corners on the side the T points to, per rotation.
var frontCorners = [4][2]Offset{
	RotationSpawn:   {cornerTL, cornerTR},
	RotationRight:   {cornerTR, cornerBR},
	RotationReverse: {cornerBL, cornerBR},
	RotationLeft:    {cornerTL, cornerBL},
}

// classifyTSpin grades the active piece before it locks. Only a T whose
// last successful action was a rotation qualifies. Three or more occupied
// diagonal corners make a T-spin; it is a Mini when it took a kick, exactly
// three corners are occupied and the open corner is on the pointing side.
func (e *Engine) classifyTSpin() (tSpin, mini bool) {
	p := e.piece
	if p.Type != PieceT || !e.lastRotation {
		return false, false
	}

	occupied := 0
	for _, c := range [...]Offset{cornerTL, cornerTR, cornerBR, cornerBL} {
		if e.board.Occupied(p.X+c.DX, p.Y+c.DY) {
			occupied++
		}
	}
	if occupied < 3 {
		return false, false
	}

	front := 0
	for _, c := range frontCorners[p.Rotation.Normalize()] {
		if e.board.Occupied(p.X+c.DX, p.Y+c.DY) {
			front++
		}
	}

	mini = e.lastKick && occupied == 3 && front < 2
	return true, mini
}
