//go:build !rp2040 && !rp2350

// Command tictactoe-sim runs the game loop on a host against in-memory
// peripherals. Commands on stdin:
//
//	<x> <y>        touch a display pixel
//	c <row> <col>  touch the centre of a cell
//	r              press the reset button
//	q              quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"tictactoe-go/bus"
	"tictactoe-go/services/config"
	"tictactoe-go/services/display"
	gamesvc "tictactoe-go/services/game"
	"tictactoe-go/services/hal"
	"tictactoe-go/services/hal/platform"
	"tictactoe-go/services/indicator"
	"tictactoe-go/types"
	"tictactoe-go/x/logx"
	"tictactoe-go/x/logx/zlog"
)

const (
	screenW = 320
	screenH = 480
)

func main() {
	path := flag.String("config", "", "optional YAML/JSON config file")
	var usageCfg types.GameConfig
	flag.Usage = cleanenv.FUsage(os.Stderr, &usageCfg, nil, flag.Usage)
	flag.Parse()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	logx.SetSink(zlog.Sink(zl))
	log := logx.New("sim")

	cfg, err := config.Load(*path)
	if err != nil {
		log.Error("config", logx.Err(err))
		os.Exit(1)
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := bus.NewBus(16)
	config.Publish(b.NewConnection("config"), cfg)

	pins := platform.DefaultPinFactory()
	reg := hal.NewRegistry(pins)
	leds, ind, err := newIndicators(reg, cfg.Pins)
	if err != nil {
		log.Error("indicators", logx.Err(err))
		os.Exit(1)
	}
	btn, err := hal.NewButton(reg, "reset", cfg.Pins.Button)
	if err != nil {
		log.Error("button", logx.Err(err))
		os.Exit(1)
	}
	btnPin, _ := pins.Get(cfg.Pins.Button.Pin)

	ft := &platform.FakeTouch{}
	fb := display.NewFrameBuffer(screenW, screenH)
	renderer := display.NewRenderer(display.NewTinyCanvas(fb), cfg.Layout)

	svc := gamesvc.New(gamesvc.Deps{
		Touch:     hal.NewTouch(ft, cfg.Touch),
		Button:    btn,
		Renderer:  renderer,
		Indicator: ind,
		Timing:    cfg.Timing,
		Conn:      b.NewConnection("game"),
	})

	go watch(ctx, b.NewConnection("watch"), leds)

	in := &inputs{
		touch:  ft,
		button: btnPin,
		invert: cfg.Pins.Button.Invert,
		tcfg:   cfg.Touch,
		layout: renderer.Layout(),
		hold:   2 * cfg.Timing.PollInterval,
	}
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			cmd, err := parseCommand(sc.Text())
			if err != nil {
				log.Warn("input", logx.Err(err))
				continue
			}
			if cmd.kind == cmdQuit {
				stop()
				return
			}
			in.do(cmd)
		}
		stop()
	}()

	if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("run", logx.Err(err))
		os.Exit(1)
	}
	log.Info("bye", logx.Int("flushes", fb.Flushes()))
}

func newIndicators(reg *hal.Registry, p types.PinConfig) ([3]*hal.LED, indicator.Driver, error) {
	var leds [3]*hal.LED
	for i, spec := range []struct {
		id  string
		pin types.OutputPin
	}{
		{"led_x", p.LEDX},
		{"led_o", p.LEDO},
		{"led_game_over", p.LEDGameOver},
	} {
		led, err := hal.NewLED(reg, spec.id, spec.pin)
		if err != nil {
			return leds, nil, err
		}
		leds[i] = led
	}
	return leds, indicator.NewLEDs(leds[0], leds[1], leds[2]), nil
}

// watch prints the board on every retained snapshot and logs events.
func watch(ctx context.Context, conn *bus.Connection, leds [3]*hal.LED) {
	defer conn.Disconnect()
	sub := conn.Subscribe(bus.T("game", "#"))
	log := logx.New("watch")
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-sub.Channel():
			if !ok {
				return
			}
			switch p := m.Payload.(type) {
			case types.GameSnapshot:
				fmt.Print(renderBoard(p, leds[0].On(), leds[1].On(), leds[2].On()))
			case types.GameEvent:
				log.Debug("event", logx.Str("kind", p.Kind), logx.Str("player", p.Player),
					logx.Int("row", p.Row), logx.Int("col", p.Col))
			}
		}
	}
}
