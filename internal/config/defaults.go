package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Animation: AnimationConfig{
			SlideMillis: 250,
			PopMillis:   100,
			Easing:      EasingLinear,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
			Keys: KeyConfig{
				Up:      []string{"up", "w", "k"},
				Down:    []string{"down", "s", "j"},
				Left:    []string{"left", "a", "h"},
				Right:   []string{"right", "d", "l"},
				Pause:   []string{"p"},
				Restart: []string{"r"},
				Quit:    []string{"q", "ctrl+c"},
			},
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
