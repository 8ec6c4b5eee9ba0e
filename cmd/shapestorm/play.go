package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shapestorm/internal/audio"
	"shapestorm/internal/config"
	"shapestorm/internal/core"
	"shapestorm/internal/platform/tui"
	"shapestorm/internal/registry"
	"shapestorm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a duel",
	Long: `Start a duel against the agent. Defaults to arcade mode; pass
"shapestorm_classic" for the single-level variant.

Controls:
  Mouse      - Tap shapes
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Mute
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower agent, gentler traps
  normal - Default balance
  hard   - Faster agent, denser traps, faster shapes
  fixed  - Use the config file exactly as written

Examples:
  shapestorm play
  shapestorm play shapestorm_classic
  shapestorm play --difficulty hard
  shapestorm play --config ./my-shapestorm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

// configurable is implemented by games that accept tunables beyond the
// runtime config.
type configurable interface {
	Configure(config.Config)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "shapestorm"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		os.Exit(1)
	}

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

	opts, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&opts, preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if c, ok := game.(configurable); ok {
		c.Configure(opts)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var player audio.Player = audio.Nop{}
	if !flagNoSound {
		enhanced := store != nil && store.EnhancedSoundUnlocked()
		player = audio.NewSoundManager(enhanced)
	}

	runErr := tui.Run(game, store, player, cfg)

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
