// lanehop is a lane-hopping avoidance game for the terminal.
//
// Usage:
//
//	lanehop play             - Play locally
//	lanehop scores           - Show high score, lifetime total and top sessions
//	lanehop serve            - Start SSH server for remote play
//	lanehop config           - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible spawning
//	--db <path>        - Set database path (default: ~/.lanehop/lanehop.db)
//	--store <backend>  - Score store: sqlite or gdata (default: sqlite)
//	--log <path>       - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/game"
	"github.com/vovakirdan/lanehop/internal/storage"
)

const appName = "lanehop"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagLogPath string

	// Game config flags, shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanehop",
	Short: "Lanehop - hop between lanes, touch nothing",
	Long: `Lanehop is a terminal avoidance game. Your character sits in one of
several lanes while enemies stream in from the right. Teleport between lanes
to dodge them; every enemy that leaves the screen is a point.

Available commands:
  play     - Play the game
  scores   - View high score and session history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  lanehop play
  lanehop play --difficulty hard
  lanehop scores -i
  lanehop serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Score store backend: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file (e.g. ~/.lanehop/lanehop.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameConfigFlags registers --config and --difficulty on cmd.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger returns a logger for a process whose stdout belongs to the
// terminal UI. Without --log everything is discarded. The returned function
// closes the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := flagLogPath
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openScores opens the score store selected by --store. history is the
// sqlite store (nil when it could not be opened); with --store sqlite it is
// also the returned score store.
func openScores(history *storage.Store) (game.Store, error) {
	switch flagStore {
	case "", "sqlite":
		if history == nil {
			return nil, nil
		}
		return history, nil
	case "gdata":
		s, err := storage.OpenGdata(appName)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q (want sqlite or gdata)", flagStore)
	}
}
