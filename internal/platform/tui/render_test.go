package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
)

func testSnapshot(phase game.Phase) game.Snapshot {
	return game.Snapshot{
		Phase:       phase,
		Character:   game.CharacterPose{X: 20, Y: 25, Lane: 2},
		Enemies:     []game.EnemyPose{{ID: 1, X: 80, Y: 5, Lane: 0, Variant: 1, Radius: 3}},
		Score:       4,
		High:        9,
		Total:       31,
		LaneCenters: []float64{5, 15, 25, 35, 45},
		Occupied:    []bool{true, false, false, false, false},
	}
}

func TestDrawFrameHUD(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	l.Arrange(game.PhasePlaying)
	s := core.NewScreen(80, 24)

	DrawFrame(s, l, testSnapshot(game.PhasePlaying))

	if row := s.Row(0); !strings.Contains(row, "SCORE 4") || !strings.Contains(row, "BEST 9") || !strings.Contains(row, "EVADED 31") {
		t.Errorf("HUD row = %q", row)
	}
	if row := s.Row(0); !strings.Contains(row, buttonLabels[game.RegionPause]) {
		t.Error("pause button missing from HUD row")
	}
}

func TestDrawFrameBodies(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	l.Arrange(game.PhasePlaying)
	s := core.NewScreen(80, 24)
	snap := testSnapshot(game.PhasePlaying)

	DrawFrame(s, l, snap)

	cx, cy := l.ToCell(core.V(snap.Character.X, snap.Character.Y))
	if got := s.Get(cx, cy); got != '▶' {
		t.Errorf("character cell = %q, want ▶", got)
	}
	ex, ey := l.ToCell(core.V(snap.Enemies[0].X, snap.Enemies[0].Y))
	if got := s.Get(ex, ey); got != enemyGlyphs[1] {
		t.Errorf("enemy cell = %q, want %q", got, enemyGlyphs[1])
	}
	_, laneRow := l.ToCell(core.V(0, 5))
	if cell := s.GetCell(0, laneRow); cell.Rune != '1' || cell.Color != core.ColorRed {
		t.Errorf("occupied lane marker = %+v", cell)
	}
}

func TestDrawFrameSpinningCharacter(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	l.Arrange(game.PhaseGameOver)
	s := core.NewScreen(80, 24)
	snap := testSnapshot(game.PhaseGameOver)
	snap.Character.Rotating = true
	snap.Character.Rotation = math.Pi / 2

	DrawFrame(s, l, snap)

	cx, cy := l.ToCell(core.V(snap.Character.X, snap.Character.Y))
	if got := s.Get(cx, cy); got != '↓' {
		t.Errorf("spinning character = %q, want ↓", got)
	}
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
