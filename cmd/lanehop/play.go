package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanehop/internal/audio"
	"github.com/vovakirdan/lanehop/internal/core"
	"github.com/vovakirdan/lanehop/internal/game"
	"github.com/vovakirdan/lanehop/internal/platform/tui"
	"github.com/vovakirdan/lanehop/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Enter/Space     - Start / replay
  Up/Down, W/S    - Hop one lane
  1-9             - Teleport to a lane
  Mouse click     - Teleport to the clicked lane, or press a button
  P               - Pause / resume
  Esc/B           - Back to menu (after game over)
  Tab             - Scores
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's base speed

Examples:
  lanehop play
  lanehop play --difficulty hard
  lanehop play --config ./my-lanehop.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		gameCfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	history, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		history = nil
	}

	scores, err := openScores(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		scores = nil
	}

	player := audio.New(gameCfg.Audio, logger)
	events := game.MultiSink{player}
	if flagLogPath != "" {
		events = append(events, game.SinkFunc(func(e game.Event) {
			logger.Debug("event", "kind", e.Kind, "lane", e.Lane)
		}))
	}

	runErr := tui.Run(tui.Options{
		Config:  gameCfg,
		Runtime: cfg,
		History: history,
		Scores:  scores,
		Events:  events,
		Player:  playerName(),
		Logger:  logger,
	})

	player.Close()
	if history != nil {
		history.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName is the local user name recorded with each session.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
