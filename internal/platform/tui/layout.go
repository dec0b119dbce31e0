package tui

import (
	"math"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
)

// Screen layout: one HUD row, the playfield, one footer row.
const (
	hudRows    = 1
	footerRows = 1
)

// buttonLabels are the clickable overlay labels.
var buttonLabels = map[game.Region]string{
	game.RegionPlay:   "[ PLAY ]",
	game.RegionPause:  "[ || ]",
	game.RegionResume: "[ RESUME ]",
	game.RegionHome:   "[ HOME ]",
	game.RegionReplay: "[ REPLAY ]",
	game.RegionScores: "[ SCORES ]",
}

// regionOrder fixes the drawing order of buttons.
var regionOrder = []game.Region{
	game.RegionPlay,
	game.RegionPause,
	game.RegionResume,
	game.RegionReplay,
	game.RegionHome,
	game.RegionScores,
}

// Layout maps world coordinates onto terminal cells and owns the button
// rectangles for the current phase. It implements game.HitTester.
//
// The mapping is linear over the whole screen, so a click on the HUD maps to
// a world point above the field; the session clamps it to the top lane.
type Layout struct {
	width, height  int
	field          core.Rect
	worldW, worldH float64
	phase          game.Phase
	buttons        map[game.Region]core.Rect
}

// NewLayout creates a layout for a screen of width x height cells.
func NewLayout(width, height int, worldW, worldH float64) *Layout {
	l := &Layout{worldW: worldW, worldH: worldH}
	l.Resize(width, height)
	return l
}

// Resize recomputes the field and buttons for a new screen size.
func (l *Layout) Resize(width, height int) {
	l.width = core.Max(width, 1)
	l.height = core.Max(height, 1)
	l.field = core.NewRect(0, hudRows, l.width, core.Max(l.height-hudRows-footerRows, 1))
	l.Arrange(l.phase)
}

// Width returns the screen width in cells.
func (l *Layout) Width() int { return l.width }

// Height returns the screen height in cells.
func (l *Layout) Height() int { return l.height }

// Field returns the playfield rectangle.
func (l *Layout) Field() core.Rect { return l.field }

// Phase returns the phase the buttons were arranged for.
func (l *Layout) Phase() game.Phase { return l.phase }

// Arrange places the buttons that are visible in phase.
func (l *Layout) Arrange(phase game.Phase) {
	l.phase = phase
	l.buttons = make(map[game.Region]core.Rect)
	mid := l.field.Y + l.field.H/2

	switch phase {
	case game.PhaseMenu:
		l.center(mid+1, game.RegionPlay)
		l.center(mid+3, game.RegionScores)
	case game.PhasePlaying:
		w := len(buttonLabels[game.RegionPause])
		l.buttons[game.RegionPause] = core.NewRect(l.width-w-1, 0, w, 1)
	case game.PhasePaused:
		l.center(mid+1, game.RegionResume)
	case game.PhaseGameOver:
		l.center(mid+2, game.RegionReplay, game.RegionHome, game.RegionScores)
	}
}

// center lays regions out left to right, centered as a group on row y.
func (l *Layout) center(y int, regions ...game.Region) {
	const gap = 2
	total := gap * (len(regions) - 1)
	for _, r := range regions {
		total += len(buttonLabels[r])
	}
	x := (l.width - total) / 2
	for _, r := range regions {
		w := len(buttonLabels[r])
		l.buttons[r] = core.NewRect(x, y, w, 1)
		x += w + gap
	}
}

// Button returns the rectangle of a visible button.
func (l *Layout) Button(r game.Region) (core.Rect, bool) {
	rect, ok := l.buttons[r]
	return rect, ok
}

// ToWorld returns the world point at the center of cell (cx, cy).
func (l *Layout) ToWorld(cx, cy int) core.Vec {
	return core.V(
		(float64(cx-l.field.X)+0.5)*l.worldW/float64(l.field.W),
		(float64(cy-l.field.Y)+0.5)*l.worldH/float64(l.field.H),
	)
}

// ToCell returns the cell containing world point p.
func (l *Layout) ToCell(p core.Vec) (int, int) {
	cx := l.field.X + int(math.Floor(p.X*float64(l.field.W)/l.worldW))
	cy := l.field.Y + int(math.Floor(p.Y*float64(l.field.H)/l.worldH))
	return cx, cy
}

// Hit implements game.HitTester.
func (l *Layout) Hit(r game.Region, p core.Vec) bool {
	rect, ok := l.buttons[r]
	if !ok {
		return false
	}
	return rect.Contains(l.ToCell(p))
}

var _ game.HitTester = (*Layout)(nil)
