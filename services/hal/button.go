package hal

import "tictactoe-go/types"

// ButtonSource is polled once per loop iteration.
type ButtonSource interface {
	Pressed() bool
}

// Button is a polled GPIO push button.
type Button struct {
	id     string
	pinN   int
	gpio   Pin
	invert bool
}

func NewButton(reg *Registry, id string, p types.InputPin) (*Button, error) {
	gpio, err := reg.ClaimPin(id, p.Pin)
	if err != nil {
		return nil, err
	}
	if err := gpio.ConfigureInput(ParsePull(p.Pull)); err != nil {
		reg.ReleasePin(id, p.Pin)
		return nil, err
	}
	return &Button{id: id, pinN: p.Pin, gpio: gpio, invert: p.Invert}, nil
}

func (b *Button) ID() string { return b.id }

func (b *Button) Pressed() bool { return b.logicalPressed(b.gpio.Get()) }

func (b *Button) logicalPressed(level bool) bool {
	if b.invert {
		return !level
	}
	return level
}
