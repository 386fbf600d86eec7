package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

//go:embed defaults/gsnake.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/gsnake.yaml.
func Default() Config {
	rc := core.DefaultConfig()
	return Config{
		Grid: GridConfig{
			Width:  rc.GridW,
			Height: rc.GridH,
		},
		TickRate: rc.TickRate,
		Seed:     rc.Seed,
		Gesture: GestureConfig{
			Cooldown:    100 * time.Millisecond,
			Reverse:     true,
			MirrorInput: false,
			HistorySize: 5,
		},
		Skin: "classic",
		Skins: []SkinConfig{
			{Name: "classic", Snake: "bright_green", Food: "red"},
			{Name: "neon", Snake: "bright_cyan", Food: "bright_magenta"},
			{Name: "retro", Snake: "bright_yellow", Food: "orange"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
