package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"pusoydos/internal/domain"
)

type GameConfig struct {
	// DefaultVariant is used when a match is created without one.
	DefaultVariant domain.Variant `json:"default_variant"`

	TurnDurationSeconds int `json:"turn_duration_seconds"`

	// BotAutoFillDelaySeconds is how many seconds a solo human lobby
	// waits before bots take the empty seats.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`

	// Bot think delay bounds, in seconds. A bot's move lands at a
	// uniformly random point inside the window.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

func defaults() *GameConfig {
	return &GameConfig{
		DefaultVariant:          domain.VariantClassic,
		TurnDurationSeconds:     30,
		BotAutoFillDelaySeconds: 10,
		BotMinDelaySeconds:      1,
		BotMaxDelaySeconds:      3,
	}
}

// LoadGameConfig loads the game configuration from the given path,
// layered over the built-in defaults. Loading happens at most once.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c := defaults()

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, falling back to
// defaults when no file was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}
