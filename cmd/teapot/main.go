// teapot is a terminal arcade game about a carnivorous teapot prowling a
// scrolling street for lambs while dodging flying vegetables.
//
// Usage:
//
//	teapot play              - Play in the current terminal
//	teapot scores            - Show the high-score table
//	teapot serve             - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Override the gameplay tick rate (0 = use config)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.teapot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it.
	_ "github.com/jfuerth/carnivorous-teapot/internal/games/teapot"
)

const gameID = "teapot"

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teapot",
	Short: "Carnivorous Teapot - a street-food arcade for your terminal",
	Long: `Carnivorous Teapot is a terminal arcade game. Guide a hungry teapot
along a scrolling street, spend knives to eat passing lambs, pick up
fresh blades from the road, and stay clear of the flying vegetables.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score table
  serve    - Start an SSH server for remote play

Examples:
  teapot play
  teapot play --config ./my-tuning.yaml
  teapot scores
  teapot serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Gameplay tick rate (0 = use config file)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.teapot/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
