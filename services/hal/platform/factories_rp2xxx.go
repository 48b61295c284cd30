// services/hal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"tictactoe-go/services/hal"
)

// DefaultPinFactory returns a GPIO factory that maps logical numbers directly
// to machine.Pin(n). This matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() hal.PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (hal.Pin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }
