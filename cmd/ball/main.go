// ball is a terminal arcade game: steer a ball, dodge the bouncing enemies
// and collect the stars that keep appearing.
//
// Usage:
//
//	ball                     - Play (same as "ball play")
//	ball play                - Play a game
//	ball scores              - Show high scores
//	ball serve               - Start SSH server for remote play
//	ball config              - Show, locate or create the config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ball/scores.db)
//	--config <path>       - Game config file (.yaml or .toml)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.ball/ball.log)
//	--debug               - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ball",
	Short: "Ball - dodge enemies and collect stars in your terminal",
	Long: `Ball is a small arcade game for the terminal. Steer the blue ball with
the arrow keys or WASD, avoid the red balls bouncing around the window
and collect as many stars as you can.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Show, locate or create the config file

Examples:
  ball
  ball play --difficulty hard
  ball play --seed 42
  ball scores --interactive
  ball serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogPath, "log", "~/.ball/ball.log", "Log file (empty to disable)")
	pf.BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
