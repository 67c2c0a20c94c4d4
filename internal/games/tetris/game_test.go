package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestGameDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i, rangeN := 0, 2000; i < rangeN; i++ {
		input.Clear()
		switch i % 45 {
		case 5:
			input.Set(core.ActionMoveLeft)
		case 10:
			input.Set(core.ActionRotateCW)
		case 20:
			input.Set(core.ActionSoftDrop)
		case 30:
			input.Set(core.ActionHardDrop)
		case 40:
			input.Set(core.ActionMoveRight)
			input.Set(core.ActionHold)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Pieces == 0 {
		t.Error("no pieces were placed")
	}
}

func TestGameDifferentSeeds(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(1))
	g2 := New()
	g2.Reset(testConfig(2))

	n1, n2 := g1.Engine().Next(), g2.Engine().Next()
	p1, _ := g1.Engine().Piece()
	p2, _ := g2.Engine().Piece()
	same := p1.Type == p2.Type
	for i := range n1 {
		same = same && n1[i] == n2[i]
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestGameHardDropScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	p, _ := g.Engine().Piece()
	rows := g.Engine().Board().DropDistance(p.Type, p.X, p.Y, p.Rotation)

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	st := g.Stats()
	if st.Score != 2*rows {
		t.Errorf("score = %d, want %d", st.Score, 2*rows)
	}
	if st.PiecesPlaced != 1 {
		t.Errorf("pieces placed = %d, want 1", st.PiecesPlaced)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	res := g.Step(input)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	input.Clear()
	for rangeN := 120; rangeN > 0; rangeN-- {
		g.Step(input)
	}
	after := g.Snapshot()
	if before.Engine.Y != after.Engine.Y || before.ElapsedMs != after.ElapsedMs {
		t.Error("paused game advanced")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	for rangeN := 200; rangeN > 0; rangeN-- {
		if g.State().GameOver {
			break
		}
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("stacking hard drops should top out")
	}
	if g.Engine().Reason() == ReasonNone {
		t.Error("game over without a reason")
	}

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart left state %+v", g.State())
	}
}

func TestSprintFinishes(t *testing.T) {
	g := NewSprint()
	cfg := testConfig(4)
	cfg.Game.Rules.SprintLines = 1
	g.Reset(cfg)

	// Leave one gap under the spawn column of a flat I placement.
	b := g.Engine().Board()
	bottom := b.Height() - 1
	for x, rangeN := 0, b.Width(); x < rangeN; x++ {
		b.SetCell(x, bottom, CellOf(PieceL))
	}
	b.SetCell(3, bottom, Empty)
	b.SetCell(4, bottom, Empty)
	b.SetCell(5, bottom, Empty)
	b.SetCell(6, bottom, Empty)
	g.Engine().place(PieceI)

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	res := g.Step(input)

	if !g.Won() || !res.State.GameOver {
		t.Fatalf("sprint should be cleared, stats %+v", g.Stats())
	}
	before := g.Elapsed()
	input.Clear()
	g.Step(input)
	if g.Elapsed() != before {
		t.Error("clock kept running after the sprint finished")
	}
}

func TestGameElapsed(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	input := core.NewInputFrame()
	for rangeN := 60; rangeN > 0; rangeN-- {
		g.Step(input)
	}
	if g.Elapsed() != 60*(time.Second/60) {
		t.Errorf("elapsed = %v after 60 ticks", g.Elapsed())
	}
}

func TestLockLabel(t *testing.T) {
	tests := []struct {
		name  string
		lr    LockResult
		b2b   bool
		combo int
		want  string
	}{
		{"plain", LockResult{}, false, 0, ""},
		{"single", LockResult{LinesCleared: 1}, false, 0, "SINGLE"},
		{"tetris", LockResult{LinesCleared: 4}, false, 0, "TETRIS"},
		{"b2b tetris", LockResult{LinesCleared: 4}, true, 0, "B2B TETRIS"},
		{"t-spin", LockResult{IsTSpin: true}, false, 0, "T-SPIN"},
		{"t-spin double combo", LockResult{LinesCleared: 2, IsTSpin: true}, false, 2, "T-SPIN DOUBLE COMBO 2"},
		{"mini single", LockResult{LinesCleared: 1, IsTSpin: true, IsTSpinMini: true}, false, 0, "T-SPIN MINI SINGLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LockLabel(tt.lr, tt.b2b, tt.combo); got != tt.want {
				t.Errorf("LockLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLockAwardIncludesCombo(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	g.applyLock(LockResult{LinesCleared: 1})
	if g.award != 100 || g.comboAward != 0 {
		t.Fatalf("first single: award %d combo %d, want 100 and 0", g.award, g.comboAward)
	}

	g.applyLock(LockResult{LinesCleared: 1})
	if g.award != 150 || g.comboAward != 50 {
		t.Fatalf("second single: award %d combo %d, want 150 and 50", g.award, g.comboAward)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"SINGLE COMBO", "+150", "combo +50"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	for rangeN := labelTicks; rangeN > 0; rangeN-- {
		g.decayEffects()
	}
	if g.award != 0 || g.label != "" {
		t.Errorf("award %d label %q should expire with the label", g.award, g.label)
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(83*time.Second + 450*time.Millisecond); got != "1:23.45" {
		t.Errorf("FormatElapsed = %q", got)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"HOLD", "NEXT", "Score 0", "Marathon"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show resize hint")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_sprint"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.Summarizer); !ok {
			t.Errorf("%s does not report a summary", id)
		}
	}
}

func TestSummary(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	names := make(map[string]bool)
	for _, s := range g.Summary() {
		names[s.Name] = true
	}
	for _, want := range []string{"Score", "Lines", "Level", "Time"} {
		if !names[want] {
			t.Errorf("summary missing %s", want)
		}
	}
}
