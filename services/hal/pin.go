// Package hal wraps the board's GPIOs and touch controller behind the small
// polled interfaces the game loop consumes.
package hal

import (
	"sync"

	"tictactoe-go/errcode"
)

// ---- GPIO handles ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// ParsePull maps "up"/"down" to a Pull; anything else is PullNone.
func ParsePull(s string) Pull {
	switch s {
	case "up":
		return PullUp
	case "down":
		return PullDown
	default:
		return PullNone
	}
}

type Pin interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
}

// PinFactory resolves logical pin numbers to handles.
type PinFactory interface {
	ByNumber(n int) (Pin, bool)
}

// ---- Claims ----

// Registry hands out each pin to at most one device.
type Registry struct {
	mu     sync.Mutex
	pins   PinFactory
	owners map[int]string
}

func NewRegistry(pins PinFactory) *Registry {
	return &Registry{pins: pins, owners: map[int]string{}}
}

// ClaimPin reserves pin n for devID.
func (r *Registry) ClaimPin(devID string, n int) (Pin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.owners[n]; ok && owner != devID {
		return nil, &errcode.E{C: errcode.PinInUse, Op: devID, Msg: "held by " + owner}
	}
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: devID}
	}
	r.owners[n] = devID
	return p, nil
}

// ReleasePin frees pin n if devID holds it.
func (r *Registry) ReleasePin(devID string, n int) {
	r.mu.Lock()
	if r.owners[n] == devID {
		delete(r.owners, n)
	}
	r.mu.Unlock()
}
