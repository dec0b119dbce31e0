package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
	"github.com/vovakirdan/lanehop/internal/storage"
)

// Options configures a Model.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig

	// History records finished sessions and backs the scoreboard. It is
	// also the score store unless Scores is set. May be nil.
	History *storage.Store
	Scores  game.Store

	Events game.EventSink
	Player string // recorded with each finished session
	Logger *log.Logger

	// ScreenshotDir defaults to ~/.lanehop/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session    *game.Session
	layout     *Layout
	screen     *core.Screen
	history    *storage.Store
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	last       game.Snapshot
	logger     *log.Logger
	shotDir    string
	scores     *ScoreboardModel
	quitting   bool
}

// NewModel builds the session and its terminal collaborators.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := NewLayout(cfg.ScreenW, cfg.ScreenH, opts.Config.World.Width, opts.Config.World.Height)

	var scores game.Store
	switch {
	case opts.Scores != nil:
		scores = opts.Scores
	case opts.History != nil:
		scores = opts.History
	}

	session, err := game.NewSession(game.Options{
		Config:  opts.Config,
		Runtime: cfg,
		Store:   scores,
		Events:  opts.Events,
		Hits:    layout,
		Logger:  logger,
	})
	if err != nil {
		return Model{}, err
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".lanehop", "screenshots")
	}

	m := Model{
		session:    session,
		layout:     layout,
		screen:     core.NewScreen(layout.Width(), layout.Height()),
		history:    opts.History,
		player:     opts.Player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		shotDir:    shotDir,
	}
	m.last = session.Snapshot()
	layout.Arrange(m.last.Phase)
	return m, nil
}

// Session returns the hosted session.
func (m Model) Session() *game.Session { return m.session }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click into a tap at the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.TapAt(m.layout.ToWorld(msg.X, msg.Y))
	}
	return m, nil
}

// handleResize processes window resize events. World coordinates do not
// depend on the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout.Resize(msg.Width, msg.Height)
	m.screen.Resize(m.layout.Width(), m.layout.Height())
	return m, nil
}

// handleTick runs exactly one session frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Frame(m.inputFrame)
	m.inputFrame.Clear()
	m.last = res.Snapshot
	m.layout.Arrange(res.Snapshot.Phase)

	for _, tr := range res.Transitions {
		if tr.To == game.PhaseGameOver {
			m.recordSession(res.Snapshot.Score)
		}
	}

	if res.ShowScores {
		sb := NewScoreboardModel(m.history, res.Snapshot.High, res.Snapshot.Total, m.layout.Width(), m.layout.Height())
		m.scores = &sb
	}

	return m, tickCmd(m.config.TickRate)
}

// recordSession appends a finished session to the history.
func (m Model) recordSession(score int) {
	if m.history == nil || score <= 0 {
		return
	}
	if _, err := m.history.SaveScore(m.player, score); err != nil {
		m.logger.Warn("could not record session", "score", score, "error", err)
	}
}

// updateScores routes messages to the scoreboard while it is open.
// Ticks keep flowing so the loop survives, but no frame runs.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.layout.Resize(wsm.Width, wsm.Height)
		m.screen.Resize(m.layout.Width(), m.layout.Height())
	}

	sb, cmd := m.scores.update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, cmd
	}
	m.scores = &sb
	return m, cmd
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	DrawFrame(m.screen, m.layout, m.last)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("lanehop_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	DrawFrame(m.screen, m.layout, m.last)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
