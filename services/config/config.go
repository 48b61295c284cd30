package config

import (
	"strconv"

	"tictactoe-go/bus"
	"tictactoe-go/errcode"
	"tictactoe-go/types"
)

const (
	configPrefix = "config"
	configKey    = "game"

	touchFullScale = 1 << 16
)

// Topic is where the effective configuration is retained.
var Topic = bus.T(configPrefix, configKey)

// Validate rejects configurations the game loop cannot run with.
func Validate(cfg types.GameConfig) error {
	l := cfg.Layout
	switch {
	case l.GridSize/3 < 3:
		return invalid("layout.grid_size", l.GridSize)
	case l.GridX < 0:
		return invalid("layout.grid_x", l.GridX)
	case l.GridY < 0:
		return invalid("layout.grid_y", l.GridY)
	case l.LineThickness < 0 || l.SymbolPadding < 0:
		return invalid("layout.stroke", l.LineThickness)
	case l.SymbolPadding*2 >= l.GridSize/3:
		return invalid("layout.symbol_padding", l.SymbolPadding)
	}

	tm := cfg.Timing
	switch {
	case tm.PollInterval <= 0:
		return invalid("timing.poll_interval", int(tm.PollInterval))
	case tm.ReleasePoll <= 0:
		return invalid("timing.release_poll", int(tm.ReleasePoll))
	case tm.BannerDelay < 0:
		return invalid("timing.banner_delay", int(tm.BannerDelay))
	}

	for _, r := range []struct {
		name string
		v    int
	}{
		{"touch.range_x", cfg.Touch.RangeX},
		{"touch.range_y", cfg.Touch.RangeY},
	} {
		if r.v < 0 || r.v > touchFullScale {
			return invalid(r.name, r.v)
		}
	}

	seen := map[int]string{}
	for _, p := range []struct {
		name string
		pin  int
	}{
		{"pins.led_x", cfg.Pins.LEDX.Pin},
		{"pins.led_o", cfg.Pins.LEDO.Pin},
		{"pins.led_game_over", cfg.Pins.LEDGameOver.Pin},
		{"pins.button", cfg.Pins.Button.Pin},
	} {
		if p.pin < 0 {
			return invalid(p.name, p.pin)
		}
		if other, dup := seen[p.pin]; dup {
			return &errcode.E{C: errcode.InvalidConfig, Op: p.name, Msg: "pin shared with " + other}
		}
		seen[p.pin] = p.name
	}

	switch cfg.Pins.Button.Pull {
	case "", "none", "up", "down":
	default:
		return &errcode.E{C: errcode.InvalidConfig, Op: "pins.button.pull", Msg: cfg.Pins.Button.Pull}
	}
	return nil
}

func invalid(field string, v int) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: field, Msg: strconv.Itoa(v)}
}

// Publish retains cfg on "config/game". A nil connection is ignored.
func Publish(conn *bus.Connection, cfg types.GameConfig) {
	if conn == nil {
		return
	}
	conn.Publish(conn.NewMessage(Topic, cfg, true))
}
