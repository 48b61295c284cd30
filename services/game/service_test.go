package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-go/bus"
	"tictactoe-go/errcode"
	core "tictactoe-go/game"
	"tictactoe-go/services/config"
	"tictactoe-go/services/display"
	"tictactoe-go/services/hal"
	"tictactoe-go/services/hal/platform"
	"tictactoe-go/services/indicator"
	"tictactoe-go/types"
	"tictactoe-go/x/timex"
)

const (
	pollD    = 100 * time.Millisecond
	releaseD = 50 * time.Millisecond
	bannerD  = time.Second
)

// ---- scripted inputs ----

type touchScript struct{ pts []hal.TouchPoint }

func (s *touchScript) Poll() hal.TouchPoint {
	if len(s.pts) == 0 {
		return hal.TouchPoint{}
	}
	p := s.pts[0]
	s.pts = s.pts[1:]
	return p
}

type buttonScript struct{ seq []bool }

func (s *buttonScript) Pressed() bool {
	if len(s.seq) == 0 {
		return false
	}
	v := s.seq[0]
	s.seq = s.seq[1:]
	return v
}

var lift = hal.TouchPoint{}

// tap touches the centre of a cell on the default layout.
func tap(row, col int) hal.TouchPoint {
	return hal.TouchPoint{Detected: true, X: 50 + col*73 + 36, Y: 50 + row*73 + 36}
}

// ---- harness ----

type harness struct {
	svc    *Service
	canvas *display.Recorder
	ind    *indicator.Recorder
	sleep  *timex.Fake
	ctx    context.Context
}

// newHarness cancels the run after the n-th poll delay.
func newHarness(t *testing.T, touch hal.TouchSource, button hal.ButtonSource, polls int, conn *bus.Connection) *harness {
	t.Helper()
	cfg := config.Default()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := &harness{
		canvas: &display.Recorder{W: 320, H: 480},
		ind:    &indicator.Recorder{},
		ctx:    ctx,
	}
	seen := 0
	h.sleep = &timex.Fake{OnSleep: func(_ int, d time.Duration) {
		if d == pollD {
			seen++
			if seen == polls {
				cancel()
			}
		}
	}}
	h.svc = New(Deps{
		Touch:     touch,
		Button:    button,
		Renderer:  display.NewRenderer(h.canvas, cfg.Layout),
		Indicator: h.ind,
		Timing:    cfg.Timing,
		Sleeper:   h.sleep,
		Conn:      conn,
		Now:       func() int64 { return 42 },
	})
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	err := h.svc.Run(h.ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// ---- tests ----

func TestRun_StartScreen(t *testing.T) {
	h := newHarness(t, &touchScript{}, &buttonScript{}, 1, nil)
	h.run(t)

	assert.Equal(t, "clear", h.canvas.Ops[0].Kind)
	assert.Len(t, h.canvas.Of("flush"), 2, "init + board")
	assert.Equal(t, []types.IndicatorState{types.IndicatorX}, h.ind.States())
	assert.Equal(t, []time.Duration{pollD}, h.sleep.Slept)
}

func TestRun_MoveWaitsForRelease(t *testing.T) {
	h := newHarness(t, &touchScript{pts: []hal.TouchPoint{tap(0, 0), tap(0, 0), lift}}, &buttonScript{}, 1, nil)
	h.run(t)

	c := h.svc.Controller()
	assert.Equal(t, core.PlayerX, c.Board().At(core.Cell{Row: 0, Col: 0}))
	assert.Equal(t, core.PlayerO, c.Current())
	assert.Equal(t, []types.IndicatorState{types.IndicatorX, types.IndicatorO}, h.ind.States())
	// Touch held for two release polls, then the regular poll delay.
	assert.Equal(t, []time.Duration{releaseD, releaseD, pollD}, h.sleep.Slept)
	// Start draws twice; a non-winning move redraws twice more.
	assert.Len(t, h.canvas.Of("flush"), 4)
}

func TestRun_OutsideGridIgnored(t *testing.T) {
	off := hal.TouchPoint{Detected: true, X: 10, Y: 10}
	h := newHarness(t, &touchScript{pts: []hal.TouchPoint{off, lift}}, &buttonScript{}, 1, nil)
	h.run(t)

	assert.Equal(t, 0, h.svc.Controller().Board().Count())
	assert.Equal(t, []types.IndicatorState{types.IndicatorX}, h.ind.States())
	// The release wait still applies to ignored touches.
	assert.Equal(t, []time.Duration{releaseD, pollD}, h.sleep.Slept)
}

func TestRun_WinShowsBannerAndFreezes(t *testing.T) {
	pts := []hal.TouchPoint{
		tap(0, 0), lift, // X
		tap(1, 0), lift, // O
		tap(0, 1), lift, // X
		tap(1, 1), lift, // O
		tap(0, 2), lift, // X wins on the top row
		tap(2, 2), lift, // ignored
	}
	h := newHarness(t, &touchScript{pts: pts}, &buttonScript{}, 6, nil)
	h.run(t)

	c := h.svc.Controller()
	assert.Equal(t, core.GameOver, c.State())
	assert.Equal(t, core.PlayerX, c.Winner())
	assert.Equal(t, core.Empty, c.Board().At(core.Cell{Row: 2, Col: 2}))
	assert.Equal(t, types.IndicatorAll, h.ind.Last())
	assert.Len(t, h.ind.States(), 6)

	// The banner delay sits between the final redraw and the release wait.
	s := h.sleep.Slept
	require.GreaterOrEqual(t, len(s), 5)
	assert.Equal(t, []time.Duration{bannerD, releaseD, pollD, releaseD, pollD}, s[len(s)-5:])
	assert.Equal(t, 1, countOf(s, bannerD))

	texts := h.canvas.Of("text")
	last := texts[len(texts)-1]
	assert.Equal(t, "X WINS!", last.Text)
	assert.Equal(t, display.Green, last.Color)
	ops := h.canvas.Ops
	assert.Equal(t, "clear", ops[len(ops)-3].Kind, "banner clears the screen")
	assert.Equal(t, "flush", ops[len(ops)-1].Kind)
}

func TestRun_ResetWaitsForRelease(t *testing.T) {
	touch := &touchScript{pts: []hal.TouchPoint{tap(1, 1), lift}}
	button := &buttonScript{seq: []bool{false, true, true, true, false}}
	h := newHarness(t, touch, button, 2, nil)
	h.run(t)

	c := h.svc.Controller()
	assert.Equal(t, 0, c.Board().Count())
	assert.Equal(t, core.PlayerX, c.Current())
	assert.Equal(t, core.Playing, c.State())
	assert.Equal(t,
		[]types.IndicatorState{types.IndicatorX, types.IndicatorO, types.IndicatorX},
		h.ind.States())
	assert.Equal(t, []time.Duration{releaseD, pollD, releaseD, releaseD, pollD}, h.sleep.Slept)
}

func TestRun_PublishesStateAndEvents(t *testing.T) {
	b := bus.NewBus(32)
	reader := b.NewConnection("reader")
	events := reader.Subscribe(bus.T("game", "event", "#"))

	h := newHarness(t, &touchScript{pts: []hal.TouchPoint{tap(2, 1), lift}}, &buttonScript{}, 1, b.NewConnection("game"))
	h.run(t)

	select {
	case m := <-events.Channel():
		ev, ok := m.Payload.(types.GameEvent)
		require.True(t, ok)
		assert.Equal(t, "game/event/move", m.Topic.String())
		assert.Equal(t, types.GameEvent{Kind: types.EventMove, Row: 2, Col: 1, Player: "X", TS: 42}, ev)
	default:
		t.Fatal("no move event")
	}

	state := reader.Subscribe(TopicState)
	select {
	case m := <-state.Channel():
		snap, ok := m.Payload.(types.GameSnapshot)
		require.True(t, ok)
		assert.True(t, m.Retained)
		assert.Equal(t, "X", snap.Cells[7])
		assert.Equal(t, "O", snap.Turn)
		assert.Equal(t, "playing", snap.State)
		assert.Equal(t, 1, snap.Moves)
		assert.Equal(t, int64(42), snap.TS)
	default:
		t.Fatal("no retained snapshot")
	}
}

func TestRun_PublishesWinAndResetEvents(t *testing.T) {
	b := bus.NewBus(32)
	reader := b.NewConnection("reader")
	events := reader.Subscribe(bus.T("game", "event", "#"))

	pts := []hal.TouchPoint{
		tap(0, 0), lift, tap(1, 0), lift, tap(0, 1), lift,
		tap(1, 1), lift, tap(0, 2), lift, // X takes the top row
	}
	button := &buttonScript{seq: []bool{false, false, false, false, false, true, false}}
	h := newHarness(t, &touchScript{pts: pts}, button, 6, b.NewConnection("game"))
	h.run(t)

	var got []types.GameEvent
	var topics []string
	for len(got) < 7 {
		select {
		case m := <-events.Channel():
			ev, ok := m.Payload.(types.GameEvent)
			require.True(t, ok)
			got = append(got, ev)
			topics = append(topics, m.Topic.String())
		default:
			t.Fatalf("only %d events: %v", len(got), topics)
		}
	}
	assert.Equal(t, []string{
		"game/event/move", "game/event/move", "game/event/move", "game/event/move",
		"game/event/move", "game/event/win", "game/event/reset",
	}, topics)
	assert.Equal(t, types.GameEvent{Kind: types.EventWin, Row: 0, Col: 2, Player: "X", TS: 42}, got[5])
	assert.Equal(t, types.GameEvent{Kind: types.EventReset, Row: -1, Col: -1, TS: 42}, got[6])

	select {
	case m := <-reader.Subscribe(TopicState).Channel():
		snap, ok := m.Payload.(types.GameSnapshot)
		require.True(t, ok)
		assert.Equal(t, "playing", snap.State)
		assert.Equal(t, "X", snap.Turn)
		assert.Zero(t, snap.Moves)
		assert.Empty(t, snap.Winner)
	default:
		t.Fatal("no retained snapshot")
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	r := display.NewRenderer(&display.Recorder{W: 320, H: 480}, config.Default().Layout)
	full := Deps{Touch: &touchScript{}, Button: &buttonScript{}, Renderer: r, Indicator: &indicator.Recorder{}}
	require.NotPanics(t, func() { New(full) })

	for name, mut := range map[string]func(*Deps){
		"touch":     func(d *Deps) { d.Touch = nil },
		"button":    func(d *Deps) { d.Button = nil },
		"renderer":  func(d *Deps) { d.Renderer = nil },
		"indicator": func(d *Deps) { d.Indicator = nil },
	} {
		t.Run(name, func(t *testing.T) {
			d := full
			mut(&d)
			defer func() {
				e, ok := recover().(*errcode.E)
				require.True(t, ok, "panics with *errcode.E")
				assert.Equal(t, errcode.InvalidParams, e.C)
				assert.Equal(t, name+" is nil", e.Msg)
			}()
			New(d)
		})
	}
}

func TestRun_IndicatorErrorsIgnored(t *testing.T) {
	h := newHarness(t, &touchScript{pts: []hal.TouchPoint{tap(0, 0), lift}}, &buttonScript{}, 1, nil)
	h.ind.Err = errors.New("i2c")
	h.run(t)
	assert.Equal(t, 1, h.svc.Controller().Board().Count())
}

func TestRun_StartDisplayFailure(t *testing.T) {
	h := newHarness(t, &touchScript{}, &buttonScript{}, 1, nil)
	h.canvas.FlushErr = errors.New("spi")

	err := h.svc.Run(h.ctx)
	require.Error(t, err)
	assert.Equal(t, errcode.DisplayInitFailed, errcode.Of(err))
	assert.Empty(t, h.sleep.Slept)
}

func TestRun_HostPeripherals(t *testing.T) {
	cfg := config.Default()
	pins := platform.DefaultPinFactory()
	reg := hal.NewRegistry(pins)
	btn, err := hal.NewButton(reg, "reset", cfg.Pins.Button)
	require.NoError(t, err)

	ft := &platform.FakeTouch{}
	// The controller reports (y, x), scaled to 16 bits by the driver.
	ft.Press(hal.Normalise(cfg.Touch, 50+36, 50+73+36))

	h := newHarness(t, hal.NewTouch(ft, cfg.Touch), btn, 1, nil)
	cancelOnPoll := h.sleep.OnSleep
	h.sleep.OnSleep = func(n int, d time.Duration) {
		if n == 1 {
			ft.Release()
		}
		cancelOnPoll(n, d)
	}
	h.run(t)

	assert.Equal(t, core.PlayerX, h.svc.Controller().Board().At(core.Cell{Row: 0, Col: 1}))
	assert.Equal(t, []time.Duration{releaseD, pollD}, h.sleep.Slept)
}

func TestHalt_ShowsFatalAndParks(t *testing.T) {
	parked := false
	orig := park
	park = func() { parked = true }
	defer func() { park = orig }()

	rec := &display.Recorder{W: 320, H: 480}
	Halt(display.NewRenderer(rec, config.Default().Layout), display.FatalTouchInit, errcode.TouchInitFailed)

	assert.True(t, parked)
	texts := rec.Of("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "Touch Init Failed!", texts[0].Text)
}

func countOf(ds []time.Duration, d time.Duration) int {
	n := 0
	for _, v := range ds {
		if v == d {
			n++
		}
	}
	return n
}
