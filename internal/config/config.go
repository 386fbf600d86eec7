// Package config provides YAML-based configuration loading for gesture snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains the complete game configuration.
type Config struct {
	Grid     GridConfig    `yaml:"grid"`
	TickRate int           `yaml:"tick_rate"`
	Seed     int64         `yaml:"seed"`
	Gesture  GestureConfig `yaml:"gesture"`
	Skin     string        `yaml:"skin"`
	Skins    []SkinConfig  `yaml:"skins"`
}

// GridConfig defines the board size in cells. The play area excludes the
// last column and the bottom three rows.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GestureConfig defines the gesture classifier and its consumer.
type GestureConfig struct {
	Cooldown    time.Duration `yaml:"cooldown"`
	Reverse     bool          `yaml:"reverse"`
	MirrorInput bool          `yaml:"mirror_input"`
	HistorySize int           `yaml:"history_size"`
}

// SkinConfig names a snake/food color pair.
type SkinConfig struct {
	Name  string `yaml:"name"`
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// Skin is a SkinConfig with its colors resolved.
type Skin struct {
	Name  string
	Snake core.Color
	Food  core.Color
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < snake.MinGridW || c.Grid.Height < snake.MinGridH {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height, snake.MinGridW, snake.MinGridH)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.Gesture.Cooldown < 0 {
		return fmt.Errorf("%w: gesture.cooldown must not be negative", ErrInvalidConfig)
	}
	if c.Gesture.HistorySize < 1 {
		return fmt.Errorf("%w: gesture.history_size must be at least 1", ErrInvalidConfig)
	}
	if _, err := c.ResolveSkins(); err != nil {
		return err
	}
	if c.SkinIndex(c.Skin) < 0 {
		return fmt.Errorf("%w: unknown skin %q", ErrInvalidConfig, c.Skin)
	}
	return nil
}

// ResolveSkins parses the color names of every skin.
func (c Config) ResolveSkins() ([]Skin, error) {
	if len(c.Skins) == 0 {
		return nil, fmt.Errorf("%w: at least one skin is required", ErrInvalidConfig)
	}

	skins := make([]Skin, 0, len(c.Skins))
	for _, sc := range c.Skins {
		if sc.Name == "" {
			return nil, fmt.Errorf("%w: skin without a name", ErrInvalidConfig)
		}
		snake, err := core.ParseColor(sc.Snake)
		if err != nil {
			return nil, fmt.Errorf("%w: skin %s: %v", ErrInvalidConfig, sc.Name, err)
		}
		food, err := core.ParseColor(sc.Food)
		if err != nil {
			return nil, fmt.Errorf("%w: skin %s: %v", ErrInvalidConfig, sc.Name, err)
		}
		skins = append(skins, Skin{Name: sc.Name, Snake: snake, Food: food})
	}
	return skins, nil
}

// SkinIndex returns the position of the named skin, or -1.
func (c Config) SkinIndex(name string) int {
	for i, s := range c.Skins {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Runtime converts the config into the session's runtime configuration.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		GridW:    c.Grid.Width,
		GridH:    c.Grid.Height,
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}

// TickInterval returns the duration of one game tick.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / time.Duration(core.DefaultConfig().TickRate)
	}
	return time.Second / time.Duration(c.TickRate)
}
