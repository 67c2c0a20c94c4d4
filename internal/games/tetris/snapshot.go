package tetris

// Snapshot contains the complete engine state for rendering and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Width      int
	Height     int
	HiddenRows int

	// Cells is row-major, width*height values (0 = empty, else piece type+1)
	Cells []int

	// Active piece (Type is -1 when there is none)
	Type     int
	Rotation int
	X, Y     int
	GhostY   int

	Hold     int // -1 when the hold slot is empty
	HoldUsed bool
	Next     []int

	Grounded    bool
	LockTimerMs int64
	LockResets  int
	GravityMs   int64

	Paused   bool
	GameOver bool
	Reason   int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	b := e.board
	cells := make([]int, 0, b.width*b.height)
	for _, row := range b.rows {
		for _, c := range row {
			cells = append(cells, int(c))
		}
	}

	next := e.Next()
	nextData := make([]int, len(next))
	for i, t := range next {
		nextData[i] = int(t)
	}

	snap := Snapshot{
		Tick:        e.tick,
		Width:       b.width,
		Height:      b.height,
		HiddenRows:  b.hidden,
		Cells:       cells,
		Type:        -1,
		Hold:        -1,
		HoldUsed:    e.holdUsed,
		Next:        nextData,
		Grounded:    e.grounded,
		LockTimerMs: e.lockTimer.Milliseconds(),
		LockResets:  e.resets,
		GravityMs:   e.gravity.Milliseconds(),
		Paused:      e.paused,
		GameOver:    e.gameOver,
		Reason:      int(e.reason),
	}
	if e.hasPiece {
		snap.Type = int(e.piece.Type)
		snap.Rotation = int(e.piece.Rotation)
		snap.X, snap.Y = e.piece.X, e.piece.Y
		snap.GhostY, _ = e.Ghost()
	}
	if e.hasHold {
		snap.Hold = int(e.hold)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Width)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Type+1)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotation)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.X+1)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Y+1)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hold+1)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LockResets)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LockTimerMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GravityMs)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reason)      //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.HoldUsed, snap.Grounded, snap.Paused, snap.GameOver)

	for _, v := range snap.Next {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBits(flags ...bool) uint64 {
	var v uint64
	for i, f := range flags {
		if f {
			v |= 1 << i
		}
	}
	return v
}

// GameSnapshot adds scoring and mode state to the engine snapshot.
type GameSnapshot struct {
	Engine    Snapshot
	Mode      string
	Score     int
	Lines     int
	Level     int
	Combo     int
	B2B       bool
	Pieces    int
	TSpins    int
	ElapsedMs int64
	Won       bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() GameSnapshot {
	st := g.scoring.Stats()
	return GameSnapshot{
		Engine:    g.engine.Snapshot(),
		Mode:      string(g.mode),
		Score:     st.Score,
		Lines:     st.Lines,
		Level:     st.Level,
		Combo:     st.Combo,
		B2B:       st.BackToBack,
		Pieces:    st.PiecesPlaced,
		TSpins:    st.TSpins,
		ElapsedMs: g.played.Milliseconds(),
		Won:       g.won,
	}
}

// Hash returns a simple hash of the game snapshot for determinism testing.
func (snap *GameSnapshot) Hash() uint64 {
	h := snap.Engine.Hash()
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pieces)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TSpins)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMs) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.B2B, snap.Won)
	for _, c := range snap.Mode {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	return h
}
