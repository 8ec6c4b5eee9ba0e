package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shapestorm/internal/platform/tui"
	"shapestorm/internal/storage"
)

var flagPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the win tally and match ledger",
	Long: `Show the lifetime win tally (you vs the agent) and the most
recent duels.

Examples:
  shapestorm stats
  shapestorm stats --plain`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive ledger")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunLedger(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store) {
	playerWins, err := store.Counter(storage.CounterPlayerWins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	agentWins, err := store.Counter(storage.CounterAgentWins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wins: you %d, agent %d\n\n", playerWins, agentWins)

	matches, err := store.RecentMatches(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Println("No duels recorded yet.")
		return
	}

	fmt.Println("Recent duels:")
	for _, rec := range matches {
		fmt.Printf("  %s  %-20s  winner: %-6s  %4d : %-4d  level %d  %ds\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.GameID, rec.Winner,
			rec.PlayerScore, rec.AgentScore,
			rec.LevelReached, rec.DurationSecs,
		)
	}
}
