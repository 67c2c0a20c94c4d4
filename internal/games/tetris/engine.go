package tetris

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// LevelSource supplies the level that drives gravity. *Scoring satisfies it.
type LevelSource interface {
	Level() int
}

// Engine owns the board, the randomizer and the active piece lifecycle.
// It is driven by Update once per frame and never reads a clock.
type Engine struct {
	catalog *Catalog
	rules   config.RulesConfig
	board   *Board
	bag     *Bag
	levels  LevelSource

	piece     Piece
	hasPiece  bool
	hold      PieceType
	hasHold   bool
	holdUsed  bool
	spawnX    int
	spawnY    int
	tick      uint64
	paused    bool
	gameOver  bool
	reason    GameOverReason
	softDrop  bool // Soft drop asserted during the current tick
	gravity   time.Duration
	grounded  bool
	lockTimer time.Duration
	resets    int

	lastRotation bool // Last successful action on the piece was a rotation
	lastKick     bool // That rotation used a kick other than the first
}

// NewEngine creates an engine on an empty board and spawns the first piece.
func NewEngine(catalog *Catalog, rules config.RulesConfig, src Shuffler, levels LevelSource) *Engine {
	e := &Engine{
		catalog: catalog,
		rules:   rules,
		board:   NewBoard(catalog, rules.BoardWidth, rules.BoardHeight, rules.HiddenRows),
		bag:     NewBag(src, rules.Preview),
		levels:  levels,
		spawnX:  rules.BoardWidth/2 - 1,
		spawnY:  1,
	}
	e.spawn()
	return e
}

// Reset reinitializes board, randomizer, hold and timers, then spawns.
func (e *Engine) Reset(src Shuffler) {
	e.board.Reset()
	e.bag.Reset(src)
	e.hasPiece = false
	e.hold = 0
	e.hasHold = false
	e.holdUsed = false
	e.tick = 0
	e.paused = false
	e.gameOver = false
	e.reason = ReasonNone
	e.softDrop = false
	e.spawn()
}

// Update advances the engine by elapsed, applying actions in order first.
// A game-over engine ignores every call.
func (e *Engine) Update(elapsed time.Duration, actions []core.Action) TickResult {
	var res TickResult
	if e.gameOver {
		res.GameOver = true
		return res
	}
	e.tick++
	e.softDrop = false

	for _, a := range actions {
		if e.gameOver {
			break
		}
		if a == core.ActionPause {
			e.TogglePause()
			continue
		}
		if e.paused {
			continue
		}
		switch a {
		case core.ActionMoveLeft:
			e.Move(-1)
		case core.ActionMoveRight:
			e.Move(1)
		case core.ActionRotateCW:
			e.Rotate(1)
		case core.ActionRotateCCW:
			e.Rotate(-1)
		case core.ActionHold:
			e.Hold()
		case core.ActionSoftDrop:
			e.softDrop = true
		case core.ActionHardDrop:
			e.hardDrop(&res)
		}
	}

	if !e.paused && !e.gameOver && e.hasPiece {
		e.advance(elapsed, &res)
	}

	res.GameOver = e.gameOver
	res.Paused = e.paused
	return res
}

// Move shifts the active piece horizontally by dx columns.
func (e *Engine) Move(dx int) bool {
	if !e.active() {
		return false
	}
	p := e.piece
	if !e.board.IsValid(p.Type, p.X+dx, p.Y, p.Rotation) {
		return false
	}
	e.piece.X += dx
	e.lastRotation = false
	e.lastKick = false
	e.afterShift()
	return true
}

// Rotate turns the active piece clockwise (dir > 0) or counterclockwise,
// trying each kick candidate in order. Kick tables are y-up; the board is
// y-down, so the vertical component is negated.
func (e *Engine) Rotate(dir int) bool {
	if !e.active() {
		return false
	}
	p := e.piece
	to := p.Rotation.Rotate(dir)
	for i, k := range e.catalog.Kicks(p.Type, p.Rotation, to) {
		x, y := p.X+k.DX, p.Y-k.DY
		if !e.board.IsValid(p.Type, x, y, to) {
			continue
		}
		e.piece.X, e.piece.Y, e.piece.Rotation = x, y, to
		e.lastRotation = true
		e.lastKick = i > 0
		e.afterShift()
		return true
	}
	return false
}

// Hold stashes the active piece. The first hold spawns from the bag; later
// holds swap with the stored piece. Only one hold is allowed per piece.
func (e *Engine) Hold() bool {
	if !e.active() || e.holdUsed {
		return false
	}
	cur := e.piece.Type
	if !e.hasHold {
		e.hold, e.hasHold = cur, true
		e.spawn()
	} else {
		next := e.hold
		e.hold = cur
		e.place(next)
	}
	e.holdUsed = true
	return true
}

// TogglePause flips the paused flag. A finished game cannot be paused.
func (e *Engine) TogglePause() bool {
	if e.gameOver {
		return false
	}
	e.paused = !e.paused
	return true
}

// Ghost returns the pivot row the active piece would land on.
func (e *Engine) Ghost() (int, bool) {
	if !e.hasPiece {
		return 0, false
	}
	p := e.piece
	return p.Y + e.board.DropDistance(p.Type, p.X, p.Y, p.Rotation), true
}

// Piece returns the active piece.
func (e *Engine) Piece() (Piece, bool) {
	return e.piece, e.hasPiece
}

// Held returns the piece in the hold slot.
func (e *Engine) Held() (PieceType, bool) {
	return e.hold, e.hasHold
}

// Next returns the upcoming pieces, as many as the preview setting allows.
func (e *Engine) Next() []PieceType {
	return e.bag.Peek(e.rules.Preview)
}

// Board returns the playfield. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Catalog returns the shape and kick tables in use.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Paused reports whether the engine is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Reason returns why the game ended.
func (e *Engine) Reason() GameOverReason { return e.reason }

// Grounded reports whether the active piece rests on something.
func (e *Engine) Grounded() bool { return e.grounded }

// LockResets returns how many lock delay resets the active piece has used.
func (e *Engine) LockResets() int { return e.resets }

func (e *Engine) active() bool {
	return e.hasPiece && !e.paused && !e.gameOver
}

// afterShift applies lock delay rules after a successful move or rotation.
func (e *Engine) afterShift() {
	if !e.grounded {
		return
	}
	if e.resets < e.rules.MaxLockResets {
		e.lockTimer = 0
		e.resets++
	}
	p := e.piece
	if e.board.IsValid(p.Type, p.X, p.Y+1, p.Rotation) {
		e.grounded = false
		e.gravity = 0
	}
}

// advance runs gravity for an airborne piece or the lock timer for a
// grounded one.
func (e *Engine) advance(elapsed time.Duration, res *TickResult) {
	if e.grounded {
		e.lockTimer += elapsed
		if e.lockTimer >= e.rules.LockDelay() {
			res.Locks = append(res.Locks, e.lock())
		}
		return
	}

	interval := e.fallInterval()
	// Switching to soft drop must not release gravity banked at the slower rate.
	if e.gravity > interval {
		e.gravity = interval
	}
	e.gravity += elapsed
	for e.gravity >= interval {
		e.gravity -= interval
		p := e.piece
		if !e.board.IsValid(p.Type, p.X, p.Y+1, p.Rotation) {
			e.grounded = true
			e.lockTimer = 0
			e.gravity = 0
			return
		}
		e.piece.Y++
		e.lastRotation = false
		e.lastKick = false
		if e.softDrop {
			res.SoftDropRows++
		}
	}
}

func (e *Engine) fallInterval() time.Duration {
	interval := Speed(e.levels.Level())
	if e.softDrop {
		factor := max(e.rules.SoftDropFactor, 1)
		interval = min(interval/time.Duration(factor), e.rules.SoftDropMax())
	}
	return max(interval, time.Millisecond)
}

func (e *Engine) hardDrop(res *TickResult) {
	if !e.active() {
		return
	}
	p := e.piece
	d := e.board.DropDistance(p.Type, p.X, p.Y, p.Rotation)
	e.piece.Y += d
	if d > 0 {
		e.lastRotation = false
		e.lastKick = false
	}
	res.HardDropRows += d
	res.Trails = append(res.Trails, HardDropTrail{
		Piece: snapshotPiece(e.catalog, e.piece),
		FromY: p.Y,
		ToY:   e.piece.Y,
	})
	res.Locks = append(res.Locks, e.lock())
}

// lock commits the active piece, clears lines and spawns the next piece.
func (e *Engine) lock() LockResult {
	p := e.piece
	tSpin, mini := e.classifyTSpin()
	e.board.Lock(p.Type, p.X, p.Y, p.Rotation)
	cleared := e.board.ClearLines()

	res := LockResult{
		LinesCleared: cleared.Count,
		ClearedRows:  cleared.Rows,
		IsTSpin:      tSpin,
		IsTSpinMini:  mini,
		Piece:        snapshotPiece(e.catalog, p),
	}

	e.hasPiece = false
	e.lastRotation = false
	e.lastKick = false
	if e.board.HasBlocksAboveVisible() {
		e.end(ReasonLockOut)
		return res
	}
	e.spawn()
	return res
}

func (e *Engine) spawn() {
	e.place(e.bag.Next())
}

// place puts a piece of type t at the spawn pose with fresh per-piece state.
func (e *Engine) place(t PieceType) {
	p := Piece{Type: t, Rotation: RotationSpawn, X: e.spawnX, Y: e.spawnY}
	e.hasPiece = false
	e.grounded = false
	e.lockTimer = 0
	e.resets = 0
	e.gravity = 0
	e.lastRotation = false
	e.lastKick = false
	e.holdUsed = false
	if !e.board.IsValid(p.Type, p.X, p.Y, p.Rotation) {
		e.end(ReasonBlockOut)
		return
	}
	e.piece = p
	e.hasPiece = true
}

func (e *Engine) end(reason GameOverReason) {
	e.gameOver = true
	e.reason = reason
	e.paused = false
}
