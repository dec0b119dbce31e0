package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Enemy looks, indexed by variant modulo the table length.
var (
	enemyGlyphs = []rune{'◆', '●', '■', '▲'}
	enemyColors = []core.Color{core.ColorBrightRed, core.ColorBrightMagenta, core.ColorOrange, core.ColorBrightCyan}
)

// spinGlyphs are the character's eight headings, clockwise from east.
var spinGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var footers = map[game.Phase]string{
	game.PhaseMenu:     "enter play · tab scores · q quit",
	game.PhasePlaying:  "↑/↓ or 1-9 hop · click a lane · p pause · q quit",
	game.PhasePaused:   "p resume · q quit",
	game.PhaseGameOver: "r replay · b home · tab scores · q quit",
}

// DrawFrame draws a snapshot into the screen buffer.
func DrawFrame(s *core.Screen, l *Layout, snap game.Snapshot) {
	s.Clear()

	drawLanes(s, l, snap)
	for _, e := range snap.Enemies {
		drawEnemy(s, l, e)
	}
	drawCharacter(s, l, snap)

	drawHUD(s, snap)
	drawOverlay(s, l, snap)
	for _, r := range regionOrder {
		if rect, ok := l.Button(r); ok {
			s.DrawText(rect.X, rect.Y, buttonLabels[r], core.ColorBrightYellow)
		}
	}
	s.DrawText(1, l.Height()-1, footers[snap.Phase], core.ColorGray)
}

func drawLanes(s *core.Screen, l *Layout, snap game.Snapshot) {
	f := l.Field()
	for i, y := range snap.LaneCenters {
		_, cy := l.ToCell(core.V(0, y))
		for x := f.X + 2; x < f.Right(); x += 4 {
			s.SetColor(x, cy, '·', core.ColorGray)
		}
		if i < 9 {
			c := core.ColorGray
			if i < len(snap.Occupied) && snap.Occupied[i] {
				c = core.ColorRed
			}
			s.SetColor(f.X, cy, rune('1'+i), c)
		}
	}
}

func drawEnemy(s *core.Screen, l *Layout, e game.EnemyPose) {
	v := e.Variant
	if v < 0 {
		v = -v
	}
	glyph := enemyGlyphs[v%len(enemyGlyphs)]
	color := enemyColors[v%len(enemyColors)]

	x0, cy := l.ToCell(core.V(e.X-e.Radius, e.Y))
	x1, _ := l.ToCell(core.V(e.X+e.Radius, e.Y))
	for x := x0; x <= x1; x++ {
		if x == l.Field().X {
			continue
		}
		s.SetColor(x, cy, glyph, color)
	}
}

func drawCharacter(s *core.Screen, l *Layout, snap game.Snapshot) {
	c := snap.Character
	cx, cy := l.ToCell(core.V(c.X, c.Y))

	glyph, color := '▶', core.ColorBrightGreen
	if c.Rotating {
		step := int(math.Round(c.Rotation/(math.Pi/4))) % len(spinGlyphs)
		if step < 0 {
			step += len(spinGlyphs)
		}
		glyph, color = spinGlyphs[step], core.ColorBrightRed
	}
	s.SetColor(cx, cy, glyph, color)
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" SCORE %d   BEST %d   EVADED %d", snap.Score, snap.High, snap.Total)
	s.DrawText(0, 0, hud, core.ColorBrightWhite)
}

func drawOverlay(s *core.Screen, l *Layout, snap game.Snapshot) {
	f := l.Field()
	mid := f.Y + f.H/2

	switch snap.Phase {
	case game.PhaseMenu:
		s.DrawTextCentered(mid-3, "L A N E H O P", core.ColorBrightCyan)
		s.DrawTextCentered(mid-1, fmt.Sprintf("%d lanes. Hop between them. Touch nothing.", len(snap.LaneCenters)), core.ColorWhite)
	case game.PhasePaused:
		s.DrawTextCentered(mid-1, "PAUSED", core.ColorBrightYellow)
	case game.PhaseGameOver:
		s.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
		line := fmt.Sprintf("score %d   best %d", snap.Score, snap.High)
		if snap.Score > 0 && snap.Score >= snap.High {
			line += "   NEW BEST!"
		}
		s.DrawTextCentered(mid, line, core.ColorBrightWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
