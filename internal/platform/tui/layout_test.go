package tui

import (
	"testing"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	for cy := 0; cy < 24; cy++ {
		for cx := 0; cx < 80; cx++ {
			gx, gy := l.ToCell(l.ToWorld(cx, cy))
			if gx != cx || gy != cy {
				t.Fatalf("cell (%d,%d) round-tripped to (%d,%d)", cx, cy, gx, gy)
			}
		}
	}
}

func TestLayoutField(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	f := l.Field()
	if f.X != 0 || f.Y != 1 || f.W != 80 || f.H != 22 {
		t.Errorf("Field() = %+v, want {0 1 80 22}", f)
	}

	tiny := NewLayout(0, 1, 100, 50)
	if tiny.Field().W < 1 || tiny.Field().H < 1 {
		t.Errorf("tiny field %+v should stay non-empty", tiny.Field())
	}
}

func TestLayoutButtonsPerPhase(t *testing.T) {
	tests := []struct {
		phase   game.Phase
		visible []game.Region
	}{
		{game.PhaseMenu, []game.Region{game.RegionPlay, game.RegionScores}},
		{game.PhasePlaying, []game.Region{game.RegionPause}},
		{game.PhasePaused, []game.Region{game.RegionResume}},
		{game.PhaseGameOver, []game.Region{game.RegionReplay, game.RegionHome, game.RegionScores}},
	}

	l := NewLayout(80, 24, 100, 50)
	for _, tt := range tests {
		l.Arrange(tt.phase)
		want := make(map[game.Region]bool)
		for _, r := range tt.visible {
			want[r] = true
		}
		for _, r := range regionOrder {
			_, ok := l.Button(r)
			if ok != want[r] {
				t.Errorf("%s: button %s visible=%v, want %v", tt.phase, r, ok, want[r])
			}
		}
	}
}

func TestLayoutButtonsDoNotOverlap(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	l.Arrange(game.PhaseGameOver)
	var rects []core.Rect
	for _, r := range regionOrder {
		if rect, ok := l.Button(r); ok {
			for _, other := range rects {
				if rect.Intersects(other) {
					t.Fatalf("button %s overlaps another", r)
				}
			}
			rects = append(rects, rect)
		}
	}
}

func TestLayoutHit(t *testing.T) {
	l := NewLayout(80, 24, 100, 50)
	l.Arrange(game.PhaseMenu)

	play, _ := l.Button(game.RegionPlay)
	p := l.ToWorld(play.X+1, play.Y)
	if !l.Hit(game.RegionPlay, p) {
		t.Error("click inside play button missed")
	}
	if l.Hit(game.RegionScores, p) || l.Hit(game.RegionPause, p) {
		t.Error("click inside play button hit another region")
	}
	if l.Hit(game.RegionPlay, l.ToWorld(0, 0)) {
		t.Error("click in the corner hit play")
	}

	l.Arrange(game.PhasePlaying)
	pause, _ := l.Button(game.RegionPause)
	if pause.Y != 0 {
		t.Errorf("pause button on row %d, want HUD row", pause.Y)
	}
	if !l.Hit(game.RegionPause, l.ToWorld(pause.X, pause.Y)) {
		t.Error("click on pause button missed")
	}
}

func TestLayoutLaneClicks(t *testing.T) {
	grid := game.NewLaneGrid(5, 50)
	for _, size := range [][2]int{{80, 24}, {40, 12}, {120, 9}} {
		l := NewLayout(size[0], size[1], 100, 50)
		for i := 0; i < grid.Count(); i++ {
			_, cy := l.ToCell(core.V(0, grid.Center(i)))
			if got := grid.LaneForY(l.ToWorld(10, cy).Y); got != i {
				t.Errorf("%dx%d: clicking lane %d row maps to lane %d", size[0], size[1], i, got)
			}
		}
	}
}
