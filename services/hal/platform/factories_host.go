// services/hal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"sync"

	"tinygo.org/x/drivers/touch"

	"tictactoe-go/services/hal"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements hal.Pin for host-side tests and the simulator.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    hal.Pull
}

func NewFakePin(n int) *FakePin { return &FakePin{number: n} }

func (p *FakePin) ConfigureInput(pull hal.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	// An idle pulled-up input reads high.
	p.level = pull == hal.PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports the configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (hal.Pin, bool) {
	if n < 0 {
		return nil, false
	}
	return f.pin(n), true
}

// Get exposes the underlying *FakePin for tests (e.g. to press a button).
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

func (f *HostPinFactory) pin(n int) *FakePin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = NewFakePin(n)
		f.pins[n] = p
	}
	return p
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() *HostPinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- Touch (host) ----------------------------------

// FakeTouch implements touch.Pointer with a settable point.
type FakeTouch struct {
	mu sync.Mutex
	pt touch.Point
}

func (f *FakeTouch) ReadTouchPoint() touch.Point {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pt
}

// Press reports a touch at (x, y) until Release.
func (f *FakeTouch) Press(x, y int) {
	f.mu.Lock()
	f.pt = touch.Point{X: x, Y: y, Z: 1}
	f.mu.Unlock()
}

func (f *FakeTouch) Release() {
	f.mu.Lock()
	f.pt = touch.Point{}
	f.mu.Unlock()
}
