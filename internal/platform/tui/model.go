package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shapestorm/internal/audio"
	"shapestorm/internal/core"
	"shapestorm/internal/registry"
	"shapestorm/internal/storage"
)

// Model is the Bubble Tea model running one shapestorm session. It owns
// the tick loop and the two outward boundaries the simulation never
// touches: audio (events -> sounds) and storage (game over -> counters
// and match history).
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     audio.Player
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	startedAt  time.Time
	muted      bool
	quitting   bool
	saved      bool // result persisted for the current game over
}

// NewModel creates a model for the given game. store and player may be
// nil; a nil player is replaced with the silent implementation.
func NewModel(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.Nop{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

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
		m.saveScreenshot()
		return m, nil
	}

	// Mute is a platform concern; the simulation never hears about it.
	if msg.String() == "m" {
		m.muted = !m.muted
		m.player.SetMuted(m.muted)
		return m, nil
	}

	if m.keyMapper.MapKey(msg, &m.inputFrame) {
		m.quitting = true
		m.player.Close()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize adapts to the new terminal size. An in-progress game is
// reset: the play field geometry is part of the simulation state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation one step and drains its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for the new duel.
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.drainEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// drainEvents maps simulation events onto the audio player and, on game
// over, the result store.
func (m *Model) drainEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameStarted:
			m.startedAt = time.Now()
			m.player.StartMusic()
		case core.EventShapeHit:
			m.player.PlayHit()
		case core.EventTrapHit:
			m.player.PlayDanger()
		case core.EventAgentAteShape:
			m.player.PlayAgentEat()
		case core.EventAgentAtePower:
			m.player.PlayExplosion()
		case core.EventLevelUp:
			m.player.PlayLevelUp()
		case core.EventGameOver:
			m.player.StopMusic()
			m.player.PlayGameOver(e.Winner == core.WinnerPlayer)
			m.saveResult()
		}
	}
}

// saveResult persists the finished duel once: win counter, match row,
// and the enhanced-sound unlock on a player win. All best-effort.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	counter := storage.CounterAgentWins
	if m.gameState.Winner == core.WinnerPlayer {
		counter = storage.CounterPlayerWins
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.IncrementCounter(counter)

	duration := 0
	if !m.startedAt.IsZero() {
		duration = int(time.Since(m.startedAt).Seconds())
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(storage.MatchRecord{
		GameID:       m.game.ID(),
		Winner:       m.gameState.Winner.String(),
		PlayerScore:  m.gameState.Score,
		AgentScore:   m.gameState.AgentScore,
		LevelReached: m.gameState.Level,
		DurationSecs: duration,
	})

	if m.gameState.Winner == core.WinnerPlayer {
		//nolint:errcheck // Best-effort save
		m.store.SetSetting(storage.SettingEnhancedSound, "1")
	}
}

// saveScreenshot dumps the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".shapestorm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // taps are the primary input
	)

	_, err := p.Run()
	return err
}
