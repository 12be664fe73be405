package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ball/internal/audio"
	"github.com/vovakirdan/ball/internal/config"
	"github.com/vovakirdan/ball/internal/core"
	"github.com/vovakirdan/ball/internal/games/ball"
	"github.com/vovakirdan/ball/internal/platform/tui"
	"github.com/vovakirdan/ball/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Ball.

Controls:
  Arrows/WASD - Move (diagonals combine)
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.ball/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower enemies that spawn less often
  normal - The configured rules
  hard   - Faster enemies, spawning more often, two more at the start
  fixed  - The configured rules, unchanged

Examples:
  ball play
  ball play --difficulty easy
  ball play --config ./my-ball.toml
  ball play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.BallConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BallConfig{}, err
	}
	cfg, err := config.LoadBall(flagConfig)
	if err != nil {
		return config.BallConfig{}, err
	}
	config.ApplyBallPreset(&cfg, preset)
	return cfg, nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := tui.NewLogger(expandHome(flagLogPath), flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger, logCloser, _ = tui.NewLogger("", false)
	}
	defer logCloser.Close()

	// Sound is optional: without an audio device the game runs silently
	opts := []ball.Option{
		ball.WithSpriteLoader(tui.NewSpriteSheet()),
		ball.WithScoreSink(tui.NewLogScoreSink(logger)),
	}
	if gameCfg.Audio.Enabled && !flagMute {
		player := audio.NewPlayer(gameCfg.Audio.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts = append(opts, ball.WithAudio(player))
		}
	}
	game := ball.New(gameCfg, opts...)

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

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		FixedSeed: flagSeed != 0,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
