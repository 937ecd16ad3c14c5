// Package config loads the demo's settings from an optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type Camera struct {
	Distance  float32 `toml:"distance"`
	Yaw       float32 `toml:"yaw"`
	Pitch     float32 `toml:"pitch"`
	LookSpeed float32 `toml:"look_speed"`
	ZoomSpeed float32 `toml:"zoom_speed"`
}

type Interaction struct {
	DetachDistance   float32 `toml:"detach_distance"`
	ReattachDistance float32 `toml:"reattach_distance"`
}

type Highlight struct {
	Color [4]uint8 `toml:"color"`
}

type Config struct {
	Window      Window      `toml:"window"`
	Camera      Camera      `toml:"camera"`
	Interaction Interaction `toml:"interaction"`
	Highlight   Highlight   `toml:"highlight"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Robot Lab",
			TargetFPS: 120,
		},
		Camera: Camera{
			Distance:  8.0,
			Yaw:       -135.0,
			Pitch:     25.0,
			LookSpeed: 0.25,
			ZoomSpeed: 0.8,
		},
		Interaction: Interaction{
			DetachDistance:   0.9,
			ReattachDistance: 0.6,
		},
		Highlight: Highlight{
			Color: [4]uint8{255, 203, 0, 255}, // raylib Gold
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Interaction.DetachDistance <= 0 {
		return fmt.Errorf("interaction.detach_distance must be positive, got %v", c.Interaction.DetachDistance)
	}
	if c.Interaction.ReattachDistance <= 0 {
		return fmt.Errorf("interaction.reattach_distance must be positive, got %v", c.Interaction.ReattachDistance)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
