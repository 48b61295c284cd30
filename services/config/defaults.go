package config

import (
	"time"

	"tictactoe-go/types"
)

// -----------------------------------------------------------------------------
// Compiled-in defaults
//
// Geometry and timings follow the original 320-wide portrait layout.
// Pins are Pico GP numbers; the turn LEDs are wired active-low and the
// game-over LED active-high.
// -----------------------------------------------------------------------------

var defaultConfig = types.GameConfig{
	Layout: types.LayoutConfig{
		GridX:         50,
		GridY:         50,
		GridSize:      220,
		LineThickness: 3,
		SymbolPadding: 10,

		TitleY:  10,
		PromptY: 300,
		StatusY: 280,
		StatusH: 20,
		BannerY: 120,
		FatalY:  220,
	},
	Timing: types.TimingConfig{
		PollInterval: 100 * time.Millisecond,
		ReleasePoll:  50 * time.Millisecond,
		BannerDelay:  1 * time.Second,
	},
	Pins: types.PinConfig{
		LEDX:        types.OutputPin{Pin: 13, ActiveLow: true},
		LEDO:        types.OutputPin{Pin: 14, ActiveLow: true},
		LEDGameOver: types.OutputPin{Pin: 15},
		Button:      types.InputPin{Pin: 22, Pull: "up", Invert: true},
	},
	Touch: types.TouchConfig{
		SwapXY: true,
		RangeX: 320,
		RangeY: 270,
	},
	LogLevel: "info",
}

// Default returns a copy of the compiled-in configuration.
func Default() types.GameConfig { return defaultConfig }
