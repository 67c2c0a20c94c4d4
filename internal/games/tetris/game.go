package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // Play until top-out
	ModeSprint   Mode = "sprint"   // Clear a fixed number of lines
)

const (
	labelTicks = 90 // ~1.5 seconds at 60 FPS
	trailTicks = 6
)

// trailEffect is a hard drop trail still on screen.
type trailEffect struct {
	trail HardDropTrail
	ticks int
}

// Game adapts the engine to the registry and routes its events into Scoring.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *Engine
	scoring *Scoring
	tick    uint64
	tickDur time.Duration
	played  time.Duration // Unpaused game time
	won     bool

	label      string
	labelTicks int
	award      int // Points of the labelled lock, combo included
	comboAward int
	trails     []trailEffect

	screenW int
	screenH int
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "tetris_sprint"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Sprint"
	}
	return "Marathon"
}

// Description returns a one-line summary of the mode's goal.
func (g *Game) Description() string {
	if g.mode == ModeSprint {
		return "Clear the line goal as fast as possible"
	}
	return "Play until the stack tops out"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Game.Rules.BoardWidth == 0 {
		cfg.Game = config.DefaultTetrisConfig()
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickDur = time.Second / time.Duration(cfg.TickRate)
	g.played = 0
	g.won = false
	g.label = ""
	g.labelTicks = 0
	g.award = 0
	g.comboAward = 0
	g.trails = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.scoring == nil {
		g.scoring = NewScoring()
	} else {
		g.scoring.Reset()
	}
	if g.engine == nil || g.engine.rules != cfg.Game.Rules {
		g.engine = NewEngine(SRS(), cfg.Game.Rules, g.rng, g.scoring)
	} else {
		g.engine.Reset(g.rng)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.finished() {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if g.won {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.decayEffects()

	res := g.engine.Update(g.tickDur, in.Ordered())
	g.scoring.AddSoftDropPoints(res.SoftDropRows)
	g.scoring.AddHardDropPoints(res.HardDropRows)
	for _, t := range res.Trails {
		g.trails = append(g.trails, trailEffect{trail: t, ticks: trailTicks})
	}
	for _, lr := range res.Locks {
		g.applyLock(lr)
	}

	if !res.Paused && !res.GameOver {
		g.played += g.tickDur
	}
	if g.mode == ModeSprint && g.scoring.Stats().Lines >= g.runtime.Game.Rules.SprintLines {
		g.won = true
	}

	return core.StepResult{State: g.State()}
}

// applyLock scores one lock and updates the event label.
func (g *Game) applyLock(lr LockResult) {
	before := g.scoring.Stats()
	points := g.scoring.ProcessLineClear(lr.LinesCleared, lr.IsTSpin, lr.IsTSpinMini)
	after := g.scoring.Stats()

	b2b := before.BackToBack && after.BackToBack && lr.LinesCleared > 0
	if label := LockLabel(lr, b2b, after.Combo); label != "" {
		g.label = label
		g.labelTicks = labelTicks
		g.comboAward = g.scoring.LastComboBonus()
		g.award = points + g.comboAward
	}
}

func (g *Game) decayEffects() {
	if g.labelTicks > 0 {
		g.labelTicks--
		if g.labelTicks == 0 {
			g.label = ""
			g.award = 0
			g.comboAward = 0
		}
	}
	kept := g.trails[:0]
	for _, t := range g.trails {
		t.ticks--
		if t.ticks > 0 {
			kept = append(kept, t)
		}
	}
	g.trails = kept
}

func (g *Game) finished() bool {
	return g.won || g.engine.GameOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoring.Stats().Score,
		GameOver: g.finished(),
		Paused:   g.engine.Paused(),
	}
}

// Stats returns the scoring snapshot.
func (g *Game) Stats() Stats {
	return g.scoring.Stats()
}

// Won reports whether a sprint reached its line goal.
func (g *Game) Won() bool {
	return g.won
}

// Elapsed returns unpaused play time.
func (g *Game) Elapsed() time.Duration {
	return g.played
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Summary returns end-of-game statistics for the platform.
func (g *Game) Summary() []core.Stat {
	st := g.scoring.Stats()
	out := []core.Stat{
		{Name: "Score", Value: fmt.Sprint(st.Score)},
		{Name: "Lines", Value: fmt.Sprint(st.Lines)},
		{Name: "Level", Value: fmt.Sprint(st.Level)},
		{Name: "Pieces", Value: fmt.Sprint(st.PiecesPlaced)},
		{Name: "T-Spins", Value: fmt.Sprint(st.TSpins)},
		{Name: "Time", Value: FormatElapsed(g.played)},
	}
	switch {
	case g.won:
		out = append(out, core.Stat{Name: "Result", Value: "Cleared"})
	case g.engine.GameOver():
		out = append(out, core.Stat{Name: "Result", Value: g.engine.Reason().String()})
	}
	return out
}

// FormatElapsed renders a duration as m:ss.cc.
func FormatElapsed(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

var clearNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}

// LockLabel names a lock event, e.g. "B2B T-SPIN DOUBLE COMBO 2".
// It returns "" for a plain lock.
func LockLabel(lr LockResult, b2b bool, combo int) string {
	lines := min(lr.LinesCleared, len(clearNames)-1)
	var name string
	switch {
	case lr.IsTSpinMini:
		name = "T-SPIN MINI"
		if lines > 0 {
			name += " " + clearNames[lines]
		}
	case lr.IsTSpin:
		name = "T-SPIN"
		if lines > 0 {
			name += " " + clearNames[lines]
		}
	case lines > 0:
		name = clearNames[lines]
	default:
		return ""
	}
	if b2b {
		name = "B2B " + name
	}
	if lines > 0 && combo > 0 {
		name += fmt.Sprintf(" COMBO %d", combo)
	}
	return name
}
