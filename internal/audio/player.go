// Package audio provides the sound boundary for shapestorm.
// The simulation core never imports this package; the platform layer maps
// simulation events onto a Player. Failures here must never reach the core,
// so every implementation degrades to silence instead of returning errors.
package audio

// Player is the capability interface the platform drives.
// All calls are fire-and-forget.
type Player interface {
	// PlayHit plays the standard shape-hit sound, or the enhanced variant
	// when it has been unlocked.
	PlayHit()
	// PlayDanger plays the trap-hit sound.
	PlayDanger()
	// PlayAgentEat plays the agent-consumed-a-shape sound.
	PlayAgentEat()
	// PlayExplosion plays the power-up explosion sound.
	PlayExplosion()
	// PlayLevelUp plays the level-transition chime.
	PlayLevelUp()
	// PlayGameOver plays the win or lose sting.
	PlayGameOver(playerWon bool)
	// StartMusic begins the looping background pulse.
	StartMusic()
	// StopMusic stops the background pulse and any held effects.
	StopMusic()
	// SetMuted toggles all output.
	SetMuted(muted bool)
	// Close releases audio resources.
	Close()
}

// Nop is a Player that does nothing. Used when the speaker cannot be
// initialized or when running headless (tests, SSH sessions without audio).
type Nop struct{}

func (Nop) PlayHit()          {}
func (Nop) PlayDanger()       {}
func (Nop) PlayAgentEat()     {}
func (Nop) PlayExplosion()    {}
func (Nop) PlayLevelUp()      {}
func (Nop) PlayGameOver(bool) {}
func (Nop) StartMusic()       {}
func (Nop) StopMusic()        {}
func (Nop) SetMuted(bool)     {}
func (Nop) Close()            {}

var _ Player = Nop{}
