// Package config provides YAML-based configuration loading for tui-2048.
package config

import (
	"fmt"
	"time"
)

// Easing names accepted in the animation section.
const (
	EasingLinear  = "linear"
	EasingEaseOut = "ease-out"
)

// Config contains all configuration for the game and its front ends.
type Config struct {
	TickRate  int             `yaml:"tick_rate"`
	Seed      int64           `yaml:"seed"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// AnimationConfig defines the visual settling of a move.
type AnimationConfig struct {
	SlideMillis int    `yaml:"slide_ms"` // Tile slide duration
	PopMillis   int    `yaml:"pop_ms"`   // Spawned tile pop duration
	Easing      string `yaml:"easing"`   // "linear" or "ease-out"
}

// InputConfig defines key bindings and gesture thresholds.
type InputConfig struct {
	SwipeThreshold float64   `yaml:"swipe_threshold"` // Minimum drag length in cells
	Keys           KeyConfig `yaml:"keys"`
}

// KeyConfig lists the keys bound to each action, in Bubble Tea key notation.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlideTicks converts the slide duration to simulation ticks (at least 1).
func (a AnimationConfig) SlideTicks(tickRate int) int {
	return millisToTicks(a.SlideMillis, tickRate)
}

// PopTicks converts the pop duration to simulation ticks (at least 1).
func (a AnimationConfig) PopTicks(tickRate int) int {
	return millisToTicks(a.PopMillis, tickRate)
}

func millisToTicks(ms, tickRate int) int {
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return ValidationError{
			Code:    "INVALID_TICK_RATE",
			Message: fmt.Sprintf("tick_rate must be in 1..240, got %d", c.TickRate),
		}
	}

	if c.Animation.SlideMillis < 0 || c.Animation.PopMillis < 0 {
		return ValidationError{
			Code:    "INVALID_ANIMATION",
			Message: "animation durations must not be negative",
		}
	}

	switch c.Animation.Easing {
	case EasingLinear, EasingEaseOut:
	default:
		return ValidationError{
			Code:    "INVALID_EASING",
			Message: fmt.Sprintf("unknown easing %q", c.Animation.Easing),
		}
	}

	if c.Input.SwipeThreshold <= 0 {
		return ValidationError{
			Code:    "INVALID_SWIPE_THRESHOLD",
			Message: fmt.Sprintf("swipe_threshold must be positive, got %v", c.Input.SwipeThreshold),
		}
	}

	if err := c.Input.Keys.validate(); err != nil {
		return err
	}

	if c.Server.IdleTimeoutMinutes < 0 {
		return ValidationError{
			Code:    "INVALID_IDLE_TIMEOUT",
			Message: "idle_timeout_minutes must not be negative",
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ValidationError{
			Code:    "INVALID_LOG_LEVEL",
			Message: fmt.Sprintf("unknown log level %q", c.Log.Level),
		}
	}

	return nil
}

// validate checks that every action has a key and no key is bound twice.
func (k KeyConfig) validate() error {
	bindings := []struct {
		action string
		keys   []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"quit", k.Quit},
	}

	owner := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return ValidationError{
				Code:    "MISSING_KEY",
				Message: fmt.Sprintf("no key bound to %s", b.action),
			}
		}
		for _, key := range b.keys {
			if prev, ok := owner[key]; ok {
				return ValidationError{
					Code:    "DUPLICATE_KEY",
					Message: fmt.Sprintf("key %q bound to both %s and %s", key, prev, b.action),
				}
			}
			owner[key] = b.action
		}
	}
	return nil
}
