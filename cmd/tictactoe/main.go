//go:build rp2040 || rp2350

// Command tictactoe is the device firmware: an ILI9341 SPI panel with an
// FT6336 capacitive touch controller, three indicator LEDs and a reset
// button on a Pico-class board.
package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ft6336"
	"tinygo.org/x/drivers/ili9341"

	"tictactoe-go/bus"
	"tictactoe-go/errcode"
	"tictactoe-go/services/config"
	"tictactoe-go/services/display"
	gamesvc "tictactoe-go/services/game"
	"tictactoe-go/services/hal"
	"tictactoe-go/services/hal/platform"
	"tictactoe-go/services/indicator"
	"tictactoe-go/types"
	"tictactoe-go/x/logx"
)

// Fixed board wiring. The configurable pins live in config.Default.
const (
	lcdSCK = machine.GPIO18
	lcdSDO = machine.GPIO19
	lcdSDI = machine.GPIO16
	lcdCS  = machine.GPIO17
	lcdDC  = machine.GPIO20
	lcdRST = machine.GPIO21

	tsSDA = machine.GPIO4
	tsSCL = machine.GPIO5
	tsINT = machine.GPIO6

	logTX = machine.GPIO0
	logRX = machine.GPIO1
)

const (
	ft6336Addr     = 0x38
	ft6336RegChip  = 0xA8 // vendor ID register
	lcdFrequencyHz = 40_000_000
	logBaud        = 115200

	// The ILI9341 is 240 px wide in portrait; shift the grid left so it
	// fits (10..230).
	panelGridX = 10
)

var log = logx.New("main")

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")
	mirrorLogs()

	cfg := config.Default()
	cfg.Layout.GridX = panelGridX
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	if err := config.Validate(cfg); err != nil {
		gamesvc.Halt(nil, "", err)
	}

	b := bus.NewBus(4)
	config.Publish(b.NewConnection("config"), cfg)

	reg := hal.NewRegistry(platform.DefaultPinFactory())
	claimBoardPins(reg)

	lcd, err := newPanel()
	if err != nil {
		gamesvc.Halt(nil, "", err)
	}
	renderer := display.NewRenderer(display.NewTinyCanvas(lcd), cfg.Layout)

	ts, err := newTouch()
	if err != nil {
		gamesvc.Halt(renderer, display.FatalTouchInit, err)
	}

	ind, btn, err := newPeripherals(reg, cfg.Pins)
	if err != nil {
		gamesvc.Halt(renderer, "Pin Setup Failed!", err)
	}

	svc := gamesvc.New(gamesvc.Deps{
		Touch:     hal.NewTouch(ts, cfg.Touch),
		Button:    btn,
		Renderer:  renderer,
		Indicator: ind,
		Timing:    cfg.Timing,
		Conn:      b.NewConnection("game"),
	})
	log.Info("running")
	err = svc.Run(context.Background())
	gamesvc.Halt(renderer, "Display Failed!", err)
}

// mirrorLogs copies every log line to UART0 alongside the USB console.
func mirrorLogs() {
	if err := uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: logBaud,
		TX:       logTX,
		RX:       logRX,
	}); err != nil {
		println("uart0 mirror disabled:", err.Error())
		return
	}
	logx.SetSink(logx.Tee(logx.PrintSink, logx.WriterSink(uartx.UART0)))
}

// claimBoardPins reserves the fixed wiring so a config that reuses one of
// these GPIOs fails at claim time.
func claimBoardPins(reg *hal.Registry) {
	for _, p := range []struct {
		id string
		n  machine.Pin
	}{
		{"lcd", lcdSCK}, {"lcd", lcdSDO}, {"lcd", lcdSDI},
		{"lcd", lcdCS}, {"lcd", lcdDC}, {"lcd", lcdRST},
		{"touch", tsSDA}, {"touch", tsSCL}, {"touch", tsINT},
		{"uart0", logTX}, {"uart0", logRX},
	} {
		if _, err := reg.ClaimPin(p.id, int(p.n)); err != nil {
			gamesvc.Halt(nil, "", err)
		}
	}
}

func newPanel() (*ili9341.Device, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: lcdFrequencyHz,
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		SDI:       lcdSDI,
	}); err != nil {
		return nil, errcode.Wrap(errcode.DisplayInitFailed, "spi0", err)
	}
	lcd := ili9341.NewSPI(machine.SPI0, lcdDC, lcdCS, lcdRST)
	lcd.Configure(ili9341.Config{})
	return lcd, nil
}

func newTouch() (*ft6336.Device, error) {
	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       tsSDA,
		SCL:       tsSCL,
	}); err != nil {
		return nil, errcode.Wrap(errcode.TouchInitFailed, "i2c0", err)
	}
	// Read the vendor ID before handing the controller to the driver.
	id := []byte{0}
	if err := machine.I2C0.Tx(ft6336Addr, []byte{ft6336RegChip}, id); err != nil {
		return nil, errcode.Wrap(errcode.TouchInitFailed, "ft6336 vendor id", err)
	}
	ts := ft6336.New(machine.I2C0, tsINT)
	if err := hal.ConfigureTouch[ft6336.Config](ts, ft6336.Config{}); err != nil {
		return nil, err
	}
	log.Info("touch ready", logx.Int("vendor", int(id[0])))
	return ts, nil
}

func newPeripherals(reg *hal.Registry, pins types.PinConfig) (indicator.Driver, hal.ButtonSource, error) {
	x, err := hal.NewLED(reg, "led_x", pins.LEDX)
	if err != nil {
		return nil, nil, err
	}
	o, err := hal.NewLED(reg, "led_o", pins.LEDO)
	if err != nil {
		return nil, nil, err
	}
	over, err := hal.NewLED(reg, "led_game_over", pins.LEDGameOver)
	if err != nil {
		return nil, nil, err
	}
	btn, err := hal.NewButton(reg, "reset", pins.Button)
	if err != nil {
		return nil, nil, err
	}
	return indicator.NewLEDs(x, o, over), btn, nil
}
