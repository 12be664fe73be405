package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBallConfig().Validate(); err != nil {
		t.Errorf("DefaultBallConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := decode(ConfigFileName, defaultBallYAML)
	if err != nil {
		t.Fatalf("decode embedded default: %v", err)
	}
	if cfg != DefaultBallConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBallConfig())
	}
}

func TestLoadCustomYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "enemy:\n  speed: 320\ntimers:\n  policy: reset\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBall(path)
	if err != nil {
		t.Fatalf("LoadBall: %v", err)
	}
	if cfg.Enemy.Speed != 320 {
		t.Errorf("Enemy.Speed = %v, expected 320", cfg.Enemy.Speed)
	}
	if cfg.Timers.Policy != "reset" {
		t.Errorf("Timers.Policy = %q, expected reset", cfg.Timers.Policy)
	}
	if cfg.Player.Speed != 500 {
		t.Errorf("Player.Speed = %v, expected default 500", cfg.Player.Speed)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[star]\ninitial_count = 3\nspawn_period = 0.5\n\n[audio]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBall(path)
	if err != nil {
		t.Fatalf("LoadBall: %v", err)
	}
	if cfg.Star.InitialCount != 3 || cfg.Star.SpawnPeriod != 0.5 {
		t.Errorf("Star = %+v, expected count 3 period 0.5", cfg.Star)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, expected false")
	}
	if cfg.Enemy.InitialCount != 4 {
		t.Errorf("Enemy.InitialCount = %d, expected default 4", cfg.Enemy.InitialCount)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBall(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBall(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBall(bad); err == nil {
		t.Error("LoadBall(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemy:\n  spawn_period: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBall(invalid)
	if err == nil || !strings.Contains(err.Error(), "enemy.spawn_period") {
		t.Errorf("LoadBall(invalid) error = %v, expected enemy.spawn_period complaint", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BallConfig)
		field  string
	}{
		{"zero player size", func(c *BallConfig) { c.Player.Size = 0 }, "player.size"},
		{"negative enemy speed", func(c *BallConfig) { c.Enemy.Speed = -1 }, "enemy.speed"},
		{"negative star count", func(c *BallConfig) { c.Star.InitialCount = -2 }, "star.initial_count"},
		{"unknown policy", func(c *BallConfig) { c.Timers.Policy = "drop" }, "timers.policy"},
		{"loud volume", func(c *BallConfig) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"zero cell height", func(c *BallConfig) { c.World.CellHeight = 0 }, "world.cell_height"},
		{"infinite player speed", func(c *BallConfig) { c.Player.Speed = math.Inf(1) }, "player.speed"},
		{"infinite enemy size", func(c *BallConfig) { c.Enemy.Size = math.Inf(1) }, "enemy.size"},
		{"infinite star period", func(c *BallConfig) { c.Star.SpawnPeriod = math.Inf(1) }, "star.spawn_period"},
		{"NaN enemy period", func(c *BallConfig) { c.Enemy.SpawnPeriod = math.NaN() }, "enemy.spawn_period"},
		{"sub-millisecond period", func(c *BallConfig) { c.Star.SpawnPeriod = 1e-12 }, "star.spawn_period"},
		{"NaN volume", func(c *BallConfig) { c.Audio.Volume = math.NaN() }, "audio.volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected mention of %s", err, tc.field)
			}
		})
	}
}

func TestLoadRejectsInfiniteValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inf.yaml")
	data := "enemy:\n  speed: .inf\nstar:\n  spawn_period: .inf\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBall(path)
	if err == nil {
		t.Fatal("LoadBall() = nil, expected error for .inf values")
	}
	for _, field := range []string{"enemy.speed", "star.spawn_period"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("LoadBall() = %v, expected mention of %s", err, field)
		}
	}
}

func TestApplyBallPreset(t *testing.T) {
	base := DefaultBallConfig()

	tests := []struct {
		preset      DifficultyPreset
		faster      bool
		slower      bool
		moreEnemies bool
	}{
		{DifficultyEasy, false, true, false},
		{DifficultyNormal, false, false, false},
		{DifficultyHard, true, false, true},
		{DifficultyFixed, false, false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBallConfig()
			ApplyBallPreset(&cfg, tc.preset)

			if got := cfg.Enemy.Speed > base.Enemy.Speed; got != tc.faster {
				t.Errorf("enemy speed %v vs %v, faster = %v, expected %v", cfg.Enemy.Speed, base.Enemy.Speed, got, tc.faster)
			}
			if got := cfg.Enemy.Speed < base.Enemy.Speed; got != tc.slower {
				t.Errorf("enemy speed %v vs %v, slower = %v, expected %v", cfg.Enemy.Speed, base.Enemy.Speed, got, tc.slower)
			}
			if got := cfg.Enemy.InitialCount > base.Enemy.InitialCount; got != tc.moreEnemies {
				t.Errorf("initial enemies = %d, more = %v, expected %v", cfg.Enemy.InitialCount, got, tc.moreEnemies)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) = %v, expected nil", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ball.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("second WriteDefault without force should fail")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault with force: %v", err)
	}

	cfg, err := LoadBall(path)
	if err != nil {
		t.Fatalf("LoadBall(written default): %v", err)
	}
	if cfg != DefaultBallConfig() {
		t.Errorf("written default = %+v, expected %+v", cfg, DefaultBallConfig())
	}
}
