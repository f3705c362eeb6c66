package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	game "github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BodySettings describes a moving body: its size and per-tick speed.
type BodySettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// Settings holds the session's initial configuration.
//
// Config file location: $PONG_CONFIG (optional). Fields missing from the file
// keep their defaults.
type Settings struct {
	Arena    Size         `yaml:"arena"`
	Paddle   BodySettings `yaml:"paddle"`
	Ball     BodySettings `yaml:"ball"`
	TickRate int          `yaml:"tickRate"`
	// Seed for the match's random source; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// maxTickRate bounds TickRate so a typo cannot spin a core.
const maxTickRate = 240

// DefaultSettings returns the standard arena, body sizes and speeds.
func DefaultSettings() Settings {
	return Settings{
		Arena: Size{Width: game.ArenaWidth, Height: game.ArenaHeight},
		Paddle: BodySettings{
			Width:  game.PaddleWidth,
			Height: game.PaddleHeight,
			Speed:  game.PaddleSpeed,
		},
		Ball: BodySettings{
			Width:  game.BallWidth,
			Height: game.BallHeight,
			Speed:  game.BallSpeed,
		},
		TickRate: game.TickRate,
	}
}

// LoadSettings reads a YAML settings file on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// LoadSettingsFromEnv loads the file named by PONG_CONFIG, or returns the
// defaults when the variable is unset or empty.
func LoadSettingsFromEnv() (Settings, error) {
	path := GetEnv("PONG_CONFIG", "")
	if path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}

// Validate checks every size and speed is usable. Errors are *object.ConfigError.
func (s Settings) Validate() error {
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return &object.ConfigError{Field: "arena", Reason: fmt.Sprintf("size must be positive, got %vx%v", s.Arena.Width, s.Arena.Height)}
	}
	if s.Paddle.Width <= 0 || s.Paddle.Height <= 0 {
		return &object.ConfigError{Field: "paddle", Reason: fmt.Sprintf("size must be positive, got %vx%v", s.Paddle.Width, s.Paddle.Height)}
	}
	if s.Paddle.Height > s.Arena.Height || 2*s.Paddle.Width > s.Arena.Width {
		return &object.ConfigError{Field: "paddle", Reason: "both paddles must fit in the arena"}
	}
	if s.Paddle.Speed <= 0 {
		return &object.ConfigError{Field: "paddle speed", Reason: fmt.Sprintf("must be positive, got %v", s.Paddle.Speed)}
	}
	if s.Ball.Width <= 0 || s.Ball.Height <= 0 {
		return &object.ConfigError{Field: "ball", Reason: fmt.Sprintf("size must be positive, got %vx%v", s.Ball.Width, s.Ball.Height)}
	}
	if s.Ball.Width >= s.Arena.Width || s.Ball.Height >= s.Arena.Height {
		return &object.ConfigError{Field: "ball", Reason: "must be smaller than the arena"}
	}
	if s.Ball.Speed <= 0 {
		return &object.ConfigError{Field: "ball speed", Reason: fmt.Sprintf("must be positive, got %v", s.Ball.Speed)}
	}
	if s.TickRate < 1 || s.TickRate > maxTickRate {
		return &object.ConfigError{Field: "tickRate", Reason: fmt.Sprintf("must be between 1 and %d, got %d", maxTickRate, s.TickRate)}
	}
	return nil
}
