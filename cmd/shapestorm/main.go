// shapestorm is a terminal arcade duel: tap shapes for points while an
// autonomous snake agent races you to each level's target score.
//
// Usage:
//
//	shapestorm play [mode]   - Play a duel (default: arcade mode)
//	shapestorm stats         - Show the win tally and match ledger
//	shapestorm serve         - Start SSH server for remote play
//	shapestorm version       - Print the version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shapestorm/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "shapestorm/internal/games/shapestorm"
)

var (
	// Global flags
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
	Use:   "shapestorm",
	Short: "Shapestorm - a shape-tapping duel in your terminal",
	Long: `Shapestorm pits you against an autonomous snake agent. Tap shapes
with the mouse for points; the agent eats the same shapes and the
occasional power-up. First to each level's target takes it.

Available commands:
  play     - Play a duel (arcade or classic mode)
  stats    - Show the win tally and match ledger
  serve    - Start SSH server for remote play
  version  - Print the version

Examples:
  shapestorm play
  shapestorm play shapestorm_classic
  shapestorm play --difficulty hard
  shapestorm serve --ssh :2222
  shapestorm stats`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapestorm/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("shapestorm", version)
	},
}
