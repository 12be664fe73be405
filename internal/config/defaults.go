package config

import (
	_ "embed"
)

//go:embed defaults/ball.yaml
var defaultBallYAML []byte

// DefaultBallConfig returns the default Ball configuration.
func DefaultBallConfig() BallConfig {
	return BallConfig{
		Player: PlayerConfig{
			Size:  64,
			Speed: 500,
		},
		Enemy: EnemyConfig{
			Size:         64,
			Speed:        200,
			InitialCount: 4,
			SpawnPeriod:  5.0,
		},
		Star: StarConfig{
			Size:         32,
			InitialCount: 10,
			SpawnPeriod:  1.0,
		},
		Timers: TimersConfig{
			Policy: "carry",
		},
		World: WorldConfig{
			CellWidth:  16,
			CellHeight: 32, // terminal cells are roughly twice as tall as wide
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Sprites: SpritesConfig{
			Player: "sprites/ball_blue_large.png",
			Enemy:  "sprites/ball_red_large.png",
			Star:   "sprites/star.png",
		},
	}
}
