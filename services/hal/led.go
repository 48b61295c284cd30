package hal

import "tictactoe-go/types"

// LED is a boolean GPIO output with optional inverted polarity.
type LED struct {
	id        string
	pin       Pin
	activeLow bool
}

// NewLED claims the pin and configures it as an output that starts off.
func NewLED(reg *Registry, id string, p types.OutputPin) (*LED, error) {
	pin, err := reg.ClaimPin(id, p.Pin)
	if err != nil {
		return nil, err
	}
	d := &LED{id: id, pin: pin, activeLow: p.ActiveLow}
	if err := pin.ConfigureOutput(d.level(false)); err != nil {
		reg.ReleasePin(id, p.Pin)
		return nil, err
	}
	return d, nil
}

func (d *LED) ID() string { return d.id }

// Set drives the logical state; polarity is applied here.
func (d *LED) Set(on bool) { d.pin.Set(d.level(on)) }

// On reports the logical state.
func (d *LED) On() bool { return d.level(d.pin.Get()) }

// level converts logical to electrical and back (the mapping is its own inverse).
func (d *LED) level(v bool) bool {
	if d.activeLow {
		return !v
	}
	return v
}
