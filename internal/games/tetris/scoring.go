package tetris

import (
	"math"
	"time"
)

// Base points per cleared line count, multiplied by level.
var (
	clearPoints     = [...]int{0, 100, 300, 500, 800}
	tSpinPoints     = [...]int{400, 800, 1200, 1600}
	tSpinMiniPoints = [...]int{100, 200}
)

const (
	comboPoints      = 50
	linesPerLevel    = 10
	minFallInterval  = 20 * time.Millisecond
	comboInactive    = -1
	backToBackFactor = 1.5
)

// Stats is a read-only snapshot of the score state.
type Stats struct {
	Score        int
	Lines        int
	Level        int
	Combo        int // Consecutive clearing placements after the first; 0 when none
	BackToBack   bool
	PiecesPlaced int
	TSpins       int
}

// Scoring turns lock events into score, level, combo and back-to-back state.
type Scoring struct {
	score        int
	lines        int
	level        int
	combo        int
	backToBack   bool
	piecesPlaced int
	tSpins       int
	comboBonus   int
}

// NewScoring creates a scorer at level 1.
func NewScoring() *Scoring {
	s := &Scoring{}
	s.Reset()
	return s
}

// Reset zeroes every field and deactivates the combo.
func (s *Scoring) Reset() {
	*s = Scoring{level: 1, combo: comboInactive}
}

// ProcessLineClear scores one placement and returns the line-clear award
// (back-to-back included). The combo bonus goes straight to the score and is
// reported by LastComboBonus. Every lock must be reported, including those
// that clear nothing.
func (s *Scoring) ProcessLineClear(lines int, tSpin, mini bool) int {
	s.piecesPlaced++
	if tSpin {
		s.tSpins++
	}

	level := s.level
	points := basePoints(lines, tSpin, mini) * level
	s.comboBonus = 0

	if lines > 0 {
		difficult := lines == 4 || tSpin
		if difficult && s.backToBack {
			points = int(math.Floor(float64(points) * backToBackFactor))
		}
		s.backToBack = difficult

		s.combo++
		if s.combo > 0 {
			s.comboBonus = comboPoints * s.combo * level
		}
	} else {
		s.combo = comboInactive
	}

	s.score += points + s.comboBonus
	s.lines += lines
	s.level = max(s.level, s.lines/linesPerLevel+1)
	return points
}

// basePoints looks up the unscaled award for a placement.
func basePoints(lines int, tSpin, mini bool) int {
	lines = max(lines, 0)
	switch {
	case mini && lines < len(tSpinMiniPoints):
		return tSpinMiniPoints[lines]
	case tSpin:
		return tSpinPoints[min(lines, len(tSpinPoints)-1)]
	default:
		return clearPoints[min(lines, len(clearPoints)-1)]
	}
}

// AddSoftDropPoints awards one point per soft-dropped row.
func (s *Scoring) AddSoftDropPoints(rows int) {
	s.score += rows
}

// AddHardDropPoints awards two points per hard-dropped row.
func (s *Scoring) AddHardDropPoints(rows int) {
	s.score += 2 * rows
}

// LastComboBonus returns the combo points added by the latest ProcessLineClear.
func (s *Scoring) LastComboBonus() int {
	return s.comboBonus
}

// Level returns the current level.
func (s *Scoring) Level() int {
	return s.level
}

// Stats returns a snapshot of the score state.
func (s *Scoring) Stats() Stats {
	return Stats{
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.level,
		Combo:        max(s.combo, 0),
		BackToBack:   s.backToBack,
		PiecesPlaced: s.piecesPlaced,
		TSpins:       s.tSpins,
	}
}

// Speed returns the gravity interval for a level:
// (0.8 - (level-1) * 0.007)^(level-1) seconds, never below 20ms.
func Speed(level int) time.Duration {
	level = max(level, 1)
	base := 0.8 - float64(level-1)*0.007
	if base <= 0 {
		return minFallInterval
	}
	ms := math.Round(1000 * math.Pow(base, float64(level-1)))
	return max(time.Duration(ms)*time.Millisecond, minFallInterval)
}
