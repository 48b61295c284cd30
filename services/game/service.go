// Package game runs the tic-tac-toe poll loop: it feeds touch and button
// input to the controller and applies the returned intents to the display
// and the indicator LEDs.
package game

import (
	"context"

	"tictactoe-go/bus"
	"tictactoe-go/errcode"
	core "tictactoe-go/game"
	"tictactoe-go/services/display"
	"tictactoe-go/services/hal"
	"tictactoe-go/services/indicator"
	"tictactoe-go/types"
	"tictactoe-go/x/logx"
	"tictactoe-go/x/timex"
)

// TopicState carries the retained types.GameSnapshot.
var TopicState = bus.T("game", "state")

// EventTopic returns "game/event/<kind>".
func EventTopic(kind string) bus.Topic { return bus.T("game", "event", kind) }

// Deps wires the service to its collaborators. Touch, Button, Renderer and
// Indicator are required. Sleeper defaults to timex.Real, Now to
// timex.NowMs. Conn is optional.
type Deps struct {
	Touch     hal.TouchSource
	Button    hal.ButtonSource
	Renderer  *display.Renderer
	Indicator indicator.Driver
	Timing    types.TimingConfig

	Sleeper timex.Sleeper
	Conn    *bus.Connection
	Now     func() int64
}

// Service is single-threaded; Run must not be called concurrently.
type Service struct {
	ctrl   *core.Controller
	layout core.Layout

	touch  hal.TouchSource
	button hal.ButtonSource
	r      *display.Renderer
	ind    indicator.Driver
	timing types.TimingConfig
	sleep  timex.Sleeper
	conn   *bus.Connection
	now    func() int64

	log logx.Logger
}

// New panics with InvalidParams if a required dependency is nil.
func New(d Deps) *Service {
	for _, req := range []struct {
		name    string
		missing bool
	}{
		{"touch", d.Touch == nil},
		{"button", d.Button == nil},
		{"renderer", d.Renderer == nil},
		{"indicator", d.Indicator == nil},
	} {
		if req.missing {
			panic(&errcode.E{C: errcode.InvalidParams, Op: "game.New", Msg: req.name + " is nil"})
		}
	}
	s := &Service{
		ctrl:   core.NewController(),
		layout: d.Renderer.Layout(),
		touch:  d.Touch,
		button: d.Button,
		r:      d.Renderer,
		ind:    d.Indicator,
		timing: d.Timing,
		sleep:  d.Sleeper,
		conn:   d.Conn,
		now:    d.Now,
		log:    logx.New("game"),
	}
	if s.sleep == nil {
		s.sleep = timex.Real{}
	}
	if s.now == nil {
		s.now = timex.NowMs
	}
	return s
}

// Controller exposes the game state for inspection.
func (s *Service) Controller() *core.Controller { return s.ctrl }

// Run draws the start screen and polls until ctx is cancelled. A failure to
// draw the start screen is returned as DisplayInitFailed; later render and
// indicator errors are logged and play continues.
func (s *Service) Run(ctx context.Context) error {
	if err := s.apply(s.ctrl.Start()); err != nil {
		return errcode.Wrap(errcode.DisplayInitFailed, "start", err)
	}
	s.log.Info("ready", logx.Str("turn", s.ctrl.Current().String()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
		s.sleep.Sleep(s.timing.PollInterval)
	}
}

// Step runs one poll cycle without the trailing poll delay: touch first,
// then the reset button. Each handled input is followed by a wait for its
// release. Only ctx errors are returned.
func (s *Service) Step(ctx context.Context) error {
	if tp := s.touch.Poll(); tp.Detected {
		s.onTouch(tp)
		if err := s.spin(ctx, true, func() bool { return s.touch.Poll().Detected }); err != nil {
			return err
		}
	}

	if s.button.Pressed() {
		s.onReset()
		if err := s.spin(ctx, s.button.Pressed(), s.button.Pressed); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) onTouch(tp hal.TouchPoint) {
	cell, ok := s.layout.MapTouch(tp.X, tp.Y)
	if !ok {
		s.log.Debug("touch outside grid", logx.Int("x", tp.X), logx.Int("y", tp.Y))
		return
	}

	player := s.ctrl.Current()
	intents := s.ctrl.HandleCell(cell)
	if len(intents) == 0 {
		s.log.Debug("move ignored",
			logx.Int("row", cell.Row), logx.Int("col", cell.Col),
			logx.Str("state", s.ctrl.State().String()))
		return
	}

	s.log.Info("move", logx.Str("player", player.String()), logx.Int("row", cell.Row), logx.Int("col", cell.Col))
	s.event(types.GameEvent{Kind: types.EventMove, Row: cell.Row, Col: cell.Col, Player: player.String()})
	if s.ctrl.State() == core.GameOver {
		s.log.Info("winner", logx.Str("player", s.ctrl.Winner().String()))
		s.event(types.GameEvent{Kind: types.EventWin, Row: cell.Row, Col: cell.Col, Player: s.ctrl.Winner().String()})
	}
	s.apply(intents)
}

func (s *Service) onReset() {
	s.log.Info("reset")
	s.event(types.GameEvent{Kind: types.EventReset, Row: -1, Col: -1})
	s.apply(s.ctrl.Reset())
}

// spin waits for an input to be released, re-polling every ReleasePoll.
func (s *Service) spin(ctx context.Context, held bool, poll func() bool) error {
	for held {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.sleep.Sleep(s.timing.ReleasePoll)
		held = poll()
	}
	return nil
}

// apply executes intents in order and publishes the resulting snapshot.
// It returns the first render error.
func (s *Service) apply(intents []core.Intent) error {
	var first error
	for _, in := range intents {
		var err error
		switch in.Kind {
		case core.InitDisplay:
			err = s.r.Init()
		case core.RedrawBoard:
			err = s.r.DrawBoard(s.ctrl.Board())
		case core.SetIndicator:
			if e := s.ind.Set(in.Indicator); e != nil {
				s.log.Warn("indicator", logx.Str("state", in.Indicator.String()), logx.Err(e))
			}
		case core.ShowWinner:
			// Keep the final board on screen before the banner.
			s.sleep.Sleep(s.timing.BannerDelay)
			err = s.r.ShowWinner(in.Winner)
		}
		if err != nil {
			s.log.Error("render", logx.Str("intent", in.Kind.String()), logx.Err(err))
			if first == nil {
				first = err
			}
		}
	}
	s.publishState()
	return first
}

// Snapshot renders the controller state as a bus payload.
func Snapshot(c *core.Controller, ts int64) types.GameSnapshot {
	b := c.Board()
	return types.GameSnapshot{
		Cells:  b.Cells(),
		Turn:   c.Current().String(),
		State:  c.State().String(),
		Winner: c.Winner().String(),
		Moves:  b.Count(),
		TS:     ts,
	}
}

func (s *Service) publishState() {
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(TopicState, Snapshot(s.ctrl, s.now()), true))
}

func (s *Service) event(ev types.GameEvent) {
	if s.conn == nil {
		return
	}
	ev.TS = s.now()
	s.conn.Publish(s.conn.NewMessage(EventTopic(ev.Kind), ev, false))
}
