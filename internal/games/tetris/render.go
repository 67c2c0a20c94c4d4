package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellW     = 2  // Screen columns per board column
	panelW    = 14 // Width of the side panels
	panelGap  = 1
	boardTop  = 1 // First screen row of the board frame
	blockRune = '█'
	ghostRune = '░'
	trailRune = '│'
)

var pieceColors = [pieceCount]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// ColorOf returns the display color of a piece type.
func ColorOf(t PieceType) core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// layout holds the screen positions computed for one frame.
type layout struct {
	leftX  int
	boardX int
	rightX int
	boardW int
	boardH int
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	b := g.engine.Board()
	l := layout{
		boardW: b.Width()*cellW + 2,
		boardH: b.Height() - b.HiddenRows() + 2,
	}
	total := panelW + panelGap + l.boardW + panelGap + panelW
	if dst.Width() < total || dst.Height() < boardTop+l.boardH {
		return l, false
	}
	l.leftX = (dst.Width() - total) / 2
	l.boardX = l.leftX + panelW + panelGap
	l.rightX = l.boardX + l.boardW + panelGap
	return l, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.layout(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Please resize terminal")
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, l)
	g.renderHold(dst, l)
	g.renderStats(dst, l)
	g.renderNext(dst, l)

	switch {
	case g.won:
		g.renderOverlay(dst, "Sprint cleared!", fmt.Sprintf("Time %s  R to restart", FormatElapsed(g.played)))
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  R to restart", g.scoring.Stats().Score))
	case g.engine.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := "BLOCKFALL · " + g.Title()
	dst.DrawTextCentered(0, hud, core.ColorWhite)
}

// boardCell returns the screen position of board cell (x, y), or false if
// the cell is in the hidden rows.
func (g *Game) boardCell(l layout, x, y int) (int, int, bool) {
	hidden := g.engine.Board().HiddenRows()
	if y < hidden {
		return 0, 0, false
	}
	return l.boardX + 1 + x*cellW, boardTop + 1 + y - hidden, true
}

func (g *Game) drawBlock(dst *core.Screen, l layout, x, y int, r rune, c core.Color) {
	sx, sy, ok := g.boardCell(l, x, y)
	if !ok {
		return
	}
	for i := 0; i < cellW; i++ {
		dst.SetColored(sx+i, sy, r, c)
	}
}

// renderBoard draws the frame, locked cells, trails, ghost and active piece.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	b := g.engine.Board()
	dst.DrawBox(core.NewRect(l.boardX, boardTop, l.boardW, l.boardH), core.ColorGray)

	for y := b.HiddenRows(); y < b.Height(); y++ {
		for x, w := 0, b.Width(); x < w; x++ {
			if t, ok := b.Cell(x, y).Piece(); ok {
				g.drawBlock(dst, l, x, y, blockRune, ColorOf(t))
			} else {
				g.drawBlock(dst, l, x, y, ' ', core.ColorDefault)
			}
		}
	}

	for _, fx := range g.trails {
		g.renderTrail(dst, l, fx.trail)
	}

	p, ok := g.engine.Piece()
	if !ok {
		return
	}
	cat := g.engine.Catalog()
	if g.runtime.Game.Display.Ghost {
		if gy, ok := g.engine.Ghost(); ok && gy != p.Y {
			ghost := p
			ghost.Y = gy
			for _, c := range ghost.Cells(cat) {
				g.drawBlock(dst, l, c.X, c.Y, ghostRune, core.ColorDarkGray)
			}
		}
	}
	for _, c := range p.Cells(cat) {
		g.drawBlock(dst, l, c.X, c.Y, blockRune, ColorOf(p.Type))
	}
}

// renderTrail draws the streak a hard drop left above the landed piece.
func (g *Game) renderTrail(dst *core.Screen, l layout, t HardDropTrail) {
	b := g.engine.Board()
	rows := t.Rows()
	for _, c := range t.Piece.Cells {
		for y := c.Y - rows; y < c.Y; y++ {
			if b.Cell(c.X, y) != Empty {
				continue
			}
			sx, sy, ok := g.boardCell(l, c.X, y)
			if ok {
				dst.SetColored(sx, sy, trailRune, core.ColorDarkGray)
			}
		}
	}
}

// renderMini draws a piece in spawn orientation with its pivot at (px, py).
func (g *Game) renderMini(dst *core.Screen, t PieceType, px, py int, c core.Color) {
	for _, o := range g.engine.Catalog().Shape(t, RotationSpawn) {
		x := px + o.DX*cellW
		for i := 0; i < cellW; i++ {
			dst.SetColored(x+i, py+o.DY, blockRune, c)
		}
	}
}

func (g *Game) renderHold(dst *core.Screen, l layout) {
	box := core.NewRect(l.leftX, boardTop, panelW, 5)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y, " HOLD ")

	t, ok := g.engine.Held()
	if !ok {
		return
	}
	c := ColorOf(t)
	if g.engine.holdUsed {
		c = core.ColorGray
	}
	g.renderMini(dst, t, box.X+5, box.Y+2, c)
}

func (g *Game) renderStats(dst *core.Screen, l layout) {
	st := g.scoring.Stats()
	x, y := l.leftX+1, boardTop+6
	lines := []string{
		fmt.Sprintf("Score %d", st.Score),
		fmt.Sprintf("Level %d", st.Level),
		fmt.Sprintf("Lines %d", st.Lines),
	}
	if g.mode == ModeSprint {
		left := max(g.runtime.Game.Rules.SprintLines-st.Lines, 0)
		lines = append(lines, fmt.Sprintf("Left  %d", left))
	}
	lines = append(lines, fmt.Sprintf("Time  %s", FormatElapsed(g.played)))
	if st.BackToBack {
		lines = append(lines, "B2B ready")
	}
	for i, s := range lines {
		dst.DrawText(x, y+i, s)
	}

	if g.label != "" {
		ly := y + len(lines) + 1
		wrapped := wrapLabel(g.label, panelW-1)
		for i, word := range wrapped {
			dst.DrawTextColored(x, ly+i, word, core.ColorYellow)
		}
		ly += len(wrapped)
		if g.award > 0 {
			dst.DrawTextColored(x, ly, fmt.Sprintf("+%d", g.award), core.ColorWhite)
		}
		if g.comboAward > 0 {
			dst.DrawTextColored(x, ly+1, fmt.Sprintf("combo +%d", g.comboAward), core.ColorGray)
		}
	}
}

// wrapLabel splits a label into lines no wider than w.
func wrapLabel(label string, w int) []string {
	var out []string
	line := ""
	start := 0
	for i := 0; i <= len(label); i++ {
		if i < len(label) && label[i] != ' ' {
			continue
		}
		word := label[start:i]
		start = i + 1
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= w:
			line += " " + word
		default:
			out = append(out, line)
			line = word
		}
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

func (g *Game) renderNext(dst *core.Screen, l layout) {
	next := g.engine.Next()
	if len(next) == 0 {
		return
	}
	h := min(2+3*len(next), l.boardH)
	box := core.NewRect(l.rightX, boardTop, panelW, h)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y, " NEXT ")
	for i, t := range next {
		py := box.Y + 2 + i*3
		if py >= box.Bottom()-1 {
			break
		}
		g.renderMini(dst, t, box.X+5, py, ColorOf(t))
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
