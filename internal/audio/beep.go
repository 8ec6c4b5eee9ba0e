package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager is the beep-backed Player. All sounds are short synthesized
// tones mixed onto one speaker stream; the background music is a slow looped
// pulse held in a Ctrl so it can be paused.
type SoundManager struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	music    *beep.Ctrl
	enhanced bool
	muted    bool
	ready    bool
}

// NewSoundManager initializes the speaker and returns a ready Player.
// On any initialization failure it returns a Nop player instead of an
// error: audio must never take the game down.
func NewSoundManager(enhancedHit bool) Player {
	sm := &SoundManager{
		mixer:    &beep.Mixer{},
		enhanced: enhancedHit,
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*60)); err != nil {
		return Nop{}
	}

	speaker.Play(sm.mixer)
	sm.ready = true
	return sm
}

// play mixes a finite streamer onto the speaker.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayHit plays the standard hit blip, or a brighter two-tone chirp when
// the enhanced sound is unlocked.
func (sm *SoundManager) PlayHit() {
	if sm.enhanced {
		first := tone(880, 50*time.Millisecond, 0.5)
		second := tone(1320, 70*time.Millisecond, 0.4)
		sm.play(beep.Seq(first, second))
		return
	}
	sm.play(tone(880, 70*time.Millisecond, 0.5))
}

// PlayDanger plays a low buzz.
func (sm *SoundManager) PlayDanger() {
	sm.play(buzz(130, 160*time.Millisecond, 0.6))
}

// PlayAgentEat plays a short mid chirp.
func (sm *SoundManager) PlayAgentEat() {
	sm.play(tone(520, 60*time.Millisecond, 0.35))
}

// PlayExplosion plays a descending noise burst.
func (sm *SoundManager) PlayExplosion() {
	sm.play(sweep(600, 80, 260*time.Millisecond, 0.6))
}

// PlayLevelUp plays an ascending chime.
func (sm *SoundManager) PlayLevelUp() {
	sm.play(beep.Seq(
		tone(660, 90*time.Millisecond, 0.5),
		tone(880, 90*time.Millisecond, 0.5),
		tone(1100, 140*time.Millisecond, 0.5),
	))
}

// PlayGameOver plays the win or lose sting.
func (sm *SoundManager) PlayGameOver(playerWon bool) {
	if playerWon {
		sm.play(beep.Seq(
			tone(780, 120*time.Millisecond, 0.5),
			tone(980, 120*time.Millisecond, 0.5),
			tone(1240, 240*time.Millisecond, 0.5),
		))
		return
	}
	sm.play(sweep(420, 110, 500*time.Millisecond, 0.5))
}

// StartMusic begins the looping background pulse.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready {
		return
	}
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = sm.muted
		speaker.Unlock()
		return
	}

	sm.music = &beep.Ctrl{Streamer: pulseLoop(), Paused: sm.muted}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// StopMusic pauses the background pulse.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
	}
}

// SetMuted toggles all output.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
}

// Close silences everything. beep has no speaker teardown; clearing the
// mixer is enough to stop artifacts.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.ready = false
}

var _ Player = (*SoundManager)(nil)

// --- synthesized streamers ---

// synth is a finite streamer producing samples from a generator function
// with an attack/release envelope.
type synth struct {
	gen      func(t float64) float64
	pos      int
	total    int
	envelope int // attack/release length in samples
	gain     float64
}

func (s *synth) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		t := float64(s.pos) / float64(sampleRate)
		v := s.gen(t) * s.gain

		// Envelope to avoid clicks.
		if s.pos < s.envelope {
			v *= float64(s.pos) / float64(s.envelope)
		}
		if rem := s.total - s.pos; rem < s.envelope {
			v *= float64(rem) / float64(s.envelope)
		}

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *synth) Err() error { return nil }

func newSynth(d time.Duration, gain float64, gen func(t float64) float64) beep.Streamer {
	total := sampleRate.N(d)
	env := sampleRate.N(5 * time.Millisecond)
	if env < 1 {
		env = 1
	}
	return &synth{gen: gen, total: total, envelope: env, gain: gain}
}

// tone is a plain sine.
func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	return newSynth(d, gain, func(t float64) float64 {
		return math.Sin(2 * math.Pi * freq * t)
	})
}

// buzz is a square wave.
func buzz(freq float64, d time.Duration, gain float64) beep.Streamer {
	return newSynth(d, gain, func(t float64) float64 {
		if math.Mod(freq*t, 1) < 0.5 {
			return 1
		}
		return -1
	})
}

// sweep glides a sine from one frequency to another.
func sweep(from, to float64, d time.Duration, gain float64) beep.Streamer {
	secs := d.Seconds()
	return newSynth(d, gain, func(t float64) float64 {
		f := from + (to-from)*(t/secs)
		return math.Sin(2 * math.Pi * f * t)
	})
}

// pulseLoop is the infinite background music: a soft slow amplitude pulse
// over a low sine.
type pulseStreamer struct {
	pos int
}

func (p *pulseStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(p.pos) / float64(sampleRate)
		carrier := math.Sin(2 * math.Pi * 110 * t)
		pulse := 0.5 + 0.5*math.Sin(2*math.Pi*0.5*t)
		v := carrier * pulse * 0.12
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *pulseStreamer) Err() error { return nil }

func pulseLoop() beep.Streamer {
	return &pulseStreamer{}
}
