package types

import "time"

// GameConfig is the effective device configuration, retained on "config/game".
// The yaml/env tags are read by the host loader only; firmware uses the
// compiled-in defaults.
type GameConfig struct {
	Layout   LayoutConfig `yaml:"layout" json:"layout"`
	Timing   TimingConfig `yaml:"timing" json:"timing"`
	Pins     PinConfig    `yaml:"pins" json:"pins"`
	Touch    TouchConfig  `yaml:"touch" json:"touch"`
	LogLevel string       `yaml:"log-level" json:"log_level" env:"TTT_LOG_LEVEL"`
}

// LayoutConfig is the on-screen geometry, in display pixels.
type LayoutConfig struct {
	GridX         int `yaml:"grid-x" json:"grid_x" env:"TTT_GRID_X"`
	GridY         int `yaml:"grid-y" json:"grid_y" env:"TTT_GRID_Y"`
	GridSize      int `yaml:"grid-size" json:"grid_size" env:"TTT_GRID_SIZE"`
	LineThickness int `yaml:"line-thickness" json:"line_thickness" env:"TTT_LINE_THICKNESS"`
	SymbolPadding int `yaml:"symbol-padding" json:"symbol_padding" env:"TTT_SYMBOL_PADDING"`

	TitleY  int `yaml:"title-y" json:"title_y"`
	PromptY int `yaml:"prompt-y" json:"prompt_y"`
	StatusY int `yaml:"status-y" json:"status_y"`
	StatusH int `yaml:"status-h" json:"status_h"`
	BannerY int `yaml:"banner-y" json:"banner_y"`
	FatalY  int `yaml:"fatal-y" json:"fatal_y"`
}

// TimingConfig holds the poll cadence.
type TimingConfig struct {
	PollInterval time.Duration `yaml:"poll-interval" json:"poll_interval" env:"TTT_POLL_INTERVAL"`
	ReleasePoll  time.Duration `yaml:"release-poll" json:"release_poll" env:"TTT_RELEASE_POLL"`
	BannerDelay  time.Duration `yaml:"banner-delay" json:"banner_delay" env:"TTT_BANNER_DELAY"`
}

// PinConfig names the GPIOs for the three indicators and the reset button.
type PinConfig struct {
	LEDX        OutputPin `yaml:"led-x" json:"led_x"`
	LEDO        OutputPin `yaml:"led-o" json:"led_o"`
	LEDGameOver OutputPin `yaml:"led-game-over" json:"led_game_over"`
	Button      InputPin  `yaml:"button" json:"button"`
}

type OutputPin struct {
	Pin       int  `yaml:"pin" json:"pin"`
	ActiveLow bool `yaml:"active-low" json:"active_low"`
}

type InputPin struct {
	Pin    int    `yaml:"pin" json:"pin"`
	Pull   string `yaml:"pull" json:"pull"`     // "none","up","down"
	Invert bool   `yaml:"invert" json:"invert"` // true if pressed == low
}

// TouchConfig adjusts controller coordinates to display pixels.
//
// RangeX/RangeY are the raw axis extents the driver normalised to 16 bits
// (ft6336 reports raw*(65536/320) on X and raw*(65536/270) on Y). Zero
// means the pointer already reports pixels.
type TouchConfig struct {
	SwapXY bool `yaml:"swap-xy" json:"swap_xy" env:"TTT_TOUCH_SWAP_XY"`
	RangeX int  `yaml:"range-x" json:"range_x" env:"TTT_TOUCH_RANGE_X"`
	RangeY int  `yaml:"range-y" json:"range_y" env:"TTT_TOUCH_RANGE_Y"`
}
