// Package indicator drives the three turn/game-over LEDs.
package indicator

import (
	"sync"

	"tictactoe-go/errcode"
	"tictactoe-go/types"
)

// Driver sets one of the three mutually exclusive indicator states.
type Driver interface {
	Set(s types.IndicatorState) error
}

// Output is a single logical on/off light; *hal.LED satisfies it.
type Output interface {
	Set(on bool)
}

// LEDs is the GPIO backend: one LED per player plus a game-over LED.
type LEDs struct {
	x, o, over Output
}

func NewLEDs(x, o, over Output) *LEDs {
	return &LEDs{x: x, o: o, over: over}
}

// Set lights exactly the turn LED for X or O, or all three for game over.
// All LEDs are switched off before the new state is applied.
func (d *LEDs) Set(s types.IndicatorState) error {
	var x, o, over bool
	switch s {
	case types.IndicatorX:
		x = true
	case types.IndicatorO:
		o = true
	case types.IndicatorAll:
		x, o, over = true, true, true
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "indicator", Msg: s.String()}
	}
	d.x.Set(false)
	d.o.Set(false)
	d.over.Set(false)

	d.x.Set(x)
	d.o.Set(o)
	d.over.Set(over)
	return nil
}

// Recorder is an in-memory Driver for tests.
type Recorder struct {
	mu     sync.Mutex
	states []types.IndicatorState
	Err    error
}

func (r *Recorder) Set(s types.IndicatorState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
	return r.Err
}

// States returns a copy of every state set so far.
func (r *Recorder) States() []types.IndicatorState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.IndicatorState(nil), r.states...)
}

// Last returns the most recent state, or 0 if none.
func (r *Recorder) Last() types.IndicatorState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return 0
	}
	return r.states[len(r.states)-1]
}
