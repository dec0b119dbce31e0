package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
	"github.com/vovakirdan/lanehop/internal/storage"
)

func newTestModel(t *testing.T, history *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:        config.DefaultConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		History:       history,
		Player:        "tester",
		ScreenshotDir: filepath.Join(t.TempDir(), "shots"),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{})
	return m
}

func TestModelStartsGame(t *testing.T) {
	m := newTestModel(t, nil)
	if !strings.Contains(m.View(), "L A N E H O P") {
		t.Error("menu title missing from first view")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if m.Session().Phase() != game.PhasePlaying {
		t.Fatalf("phase = %s, want playing", m.Session().Phase())
	}
	if _, ok := m.layout.Button(game.RegionPause); !ok {
		t.Error("pause button not arranged after start")
	}
}

func TestModelClickTeleports(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	grid := m.Session().Grid()
	_, cy := m.layout.ToCell(core.V(0, grid.Center(4)))
	m, _ = send(t, m, tea.MouseMsg{X: 30, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)

	if lane := m.Session().World().Character().Lane; lane != 4 {
		t.Errorf("lane after click = %d, want 4", lane)
	}
}

func TestModelClickPause(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	pause, _ := m.layout.Button(game.RegionPause)
	m, _ = send(t, m, tea.MouseMsg{X: pause.X + 1, Y: pause.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)
	if m.Session().Phase() != game.PhasePaused {
		t.Errorf("phase = %s, want paused", m.Session().Phase())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRecordsFinishedSession(t *testing.T) {
	history, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer history.Close()

	m := newTestModel(t, history)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	s := m.Session()
	s.Score().Evade()
	s.Score().Evade()
	c := s.World().Character()
	s.World().AddEnemy(c.Pos, core.Vec{}, 3, c.Lane, 0)
	m = tick(t, m)

	if s.Phase() != game.PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", s.Phase())
	}
	scores, err := history.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 2 || scores[0].Player != "tester" {
		t.Errorf("history = %+v, want one session of 2 by tester", scores)
	}
	if got := history.GetInt(game.KeyHighScore, 0); got != 2 {
		t.Errorf("persisted high = %d, want 2", got)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestModelScoreboardOpensAndCloses(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = tick(t, m)
	if m.scores == nil {
		t.Fatal("tab in menu did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scores != nil {
		t.Fatal("esc did not close the scoreboard")
	}
	if m.Session().Phase() != game.PhaseMenu {
		t.Errorf("phase = %s, want menu", m.Session().Phase())
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "L A N E H O P") {
		t.Error("screenshot does not contain the menu")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	before := m.Session().Snapshot().Tick

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Session().Phase() != game.PhasePlaying || m.Session().Snapshot().Tick != before {
		t.Error("resize disturbed the running session")
	}
	if m.layout.Width() != 120 || m.screen.Height() != 40 {
		t.Error("resize not applied to layout and screen")
	}
}
