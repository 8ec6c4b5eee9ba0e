package config

import (
	_ "embed"
)

//go:embed defaults/shapestorm.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Kept in sync with defaults/shapestorm.yaml, which takes precedence
// when the embed parses cleanly.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			LevelThreshold:     500,
			MaxLevel:           3,
			HitValue:           10,
			SmallHitValue:      5,
			SmallSizeThreshold: 1.2,
			TrapPenalty:        10,
			PopupTicks:         45,
			OverlayTicks:       90,
		},
		Field: FieldConfig{
			SideMargin:    1.0,
			TopMargin:     3.0,
			BottomMargin:  2.0,
			StarCount:     40,
			StarsPerLevel: 20,
		},
		Shapes: ShapesConfig{
			Count:       8,
			MinSize:     1.4,
			MaxSize:     2.6,
			MinSpeed:    0.08,
			MaxSpeed:    0.30,
			PulseRate:   0.08,
			ShrinkRate:  0.004,
			ShrinkFloor: 0.8,
			MinOrbiters: 2,
			MaxOrbiters: 4,
		},
		Agent: AgentConfig{
			BaseSpeed:     0.34,
			SpeedPerLevel: 0.08,
			StartLength:   8,
			SegmentRadius: 0.5,
			SpacingPrefix: 32,
			Growth:        3,
			PowerUpBias:   8.0,
		},
		PowerUp: PowerUpConfig{
			SpawnEveryTicks: 600,
			FallSpeed:       0.15,
			Size:            1.5,
			Bonus:           20,
			ExplosionRadius: 7.0,
			OffscreenMargin: 2.0,
		},
		Traps: TrapConfig{
			ConvertEveryTicks: 300,
			DurationTicks:     240,
			MinPerWave:        1,
			MaxPerWave:        3,
		},
		Particles: ParticleConfig{
			MaxParticles:    192,
			MaxFireballs:    96,
			Friction:        0.92,
			FireballGravity: 0.05,
			BurstCount:      14,
			FireballBurst:   8,
			MinDecay:        0.015,
			MaxDecay:        0.035,
		},
	}
}
