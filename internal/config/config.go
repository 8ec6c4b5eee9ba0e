// Package config provides YAML-based game configuration loading and
// difficulty presets for shapestorm.
package config

// Config contains all tunables for the shapestorm simulation.
type Config struct {
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Field     FieldConfig     `yaml:"field"`
	Shapes    ShapesConfig    `yaml:"shapes"`
	Agent     AgentConfig     `yaml:"agent"`
	PowerUp   PowerUpConfig   `yaml:"powerup"`
	Traps     TrapConfig      `yaml:"traps"`
	Particles ParticleConfig  `yaml:"particles"`
}

// GameplayConfig defines scoring and level progression.
type GameplayConfig struct {
	LevelThreshold     int     `yaml:"level_threshold"`      // Points per level (level N won at N*threshold)
	MaxLevel           int     `yaml:"max_level"`            // Final level
	HitValue           int     `yaml:"hit_value"`            // Standard shape hit
	SmallHitValue      int     `yaml:"small_hit_value"`      // Reduced value at max level for shrunk shapes
	SmallSizeThreshold float64 `yaml:"small_size_threshold"` // Size below which the reduced value applies
	TrapPenalty        int     `yaml:"trap_penalty"`         // Points lost on a trap hit
	PopupTicks         int     `yaml:"popup_ticks"`          // How long a points popup stays visible
	OverlayTicks       int     `yaml:"overlay_ticks"`        // Level-transition overlay duration
}

// FieldConfig defines the play bounds and background field.
type FieldConfig struct {
	SideMargin   float64 `yaml:"side_margin"`
	TopMargin    float64 `yaml:"top_margin"` // Larger: HUD rows
	BottomMargin float64 `yaml:"bottom_margin"`
	StarCount    int     `yaml:"star_count"`      // Level-1 background population
	StarsPerLevel int    `yaml:"stars_per_level"` // Added per level past the first
}

// ShapesConfig defines the target-shape pool.
type ShapesConfig struct {
	Count       int     `yaml:"count"` // Fixed pool size
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	PulseRate   float64 `yaml:"pulse_rate"`
	ShrinkRate  float64 `yaml:"shrink_rate"`  // Size lost per tick once shrinking
	ShrinkFloor float64 `yaml:"shrink_floor"` // Size where shrinking stops
	MinOrbiters int     `yaml:"min_orbiters"`
	MaxOrbiters int     `yaml:"max_orbiters"`
}

// AgentConfig defines the competing snake.
type AgentConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"` // Added per level past the first
	StartLength   int     `yaml:"start_length"`
	SegmentRadius float64 `yaml:"segment_radius"`
	SpacingPrefix int     `yaml:"spacing_prefix"` // Only this many segments are spacing-corrected per tick
	Growth        int     `yaml:"growth"`         // Target-length gain per shape eaten
	PowerUpBias   float64 `yaml:"powerup_bias"`   // Extra distance a power-up may be and still win targeting
}

// PowerUpConfig defines the falling bonus object.
type PowerUpConfig struct {
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
	FallSpeed       float64 `yaml:"fall_speed"`
	Size            float64 `yaml:"size"`
	Bonus           int     `yaml:"bonus"` // Flat agent award, independent of explosion size
	ExplosionRadius float64 `yaml:"explosion_radius"`
	OffscreenMargin float64 `yaml:"offscreen_margin"` // Past-bottom distance before deactivation
}

// TrapConfig defines trap conversion (levels >= 2).
type TrapConfig struct {
	ConvertEveryTicks int `yaml:"convert_every_ticks"`
	DurationTicks     int `yaml:"duration_ticks"`
	MinPerWave        int `yaml:"min_per_wave"`
	MaxPerWave        int `yaml:"max_per_wave"`
}

// ParticleConfig defines the transient effect pools.
type ParticleConfig struct {
	MaxParticles   int     `yaml:"max_particles"` // Hard cap, oldest evicted first
	MaxFireballs   int     `yaml:"max_fireballs"`
	Friction       float64 `yaml:"friction"`
	FireballGravity float64 `yaml:"fireball_gravity"`
	BurstCount     int     `yaml:"burst_count"`
	FireballBurst  int     `yaml:"fireball_burst"`
	MinDecay       float64 `yaml:"min_decay"`
	MaxDecay       float64 `yaml:"max_decay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
