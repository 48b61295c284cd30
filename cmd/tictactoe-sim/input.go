//go:build !rp2040 && !rp2350

package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"tictactoe-go/game"
	"tictactoe-go/services/hal"
	"tictactoe-go/services/hal/platform"
	"tictactoe-go/types"
)

type cmdKind uint8

const (
	cmdTouch cmdKind = iota + 1
	cmdCell
	cmdReset
	cmdQuit
)

type command struct {
	kind cmdKind
	a, b int
}

var errSyntax = errors.New("want '<x> <y>', 'c <row> <col>', 'r' or 'q'")

func parseCommand(line string) (command, error) {
	f := strings.Fields(line)
	switch {
	case len(f) == 1 && (f[0] == "r" || f[0] == "reset"):
		return command{kind: cmdReset}, nil
	case len(f) == 1 && (f[0] == "q" || f[0] == "quit"):
		return command{kind: cmdQuit}, nil
	case len(f) == 3 && f[0] == "c":
		a, b, err := pair(f[1], f[2])
		return command{kind: cmdCell, a: a, b: b}, err
	case len(f) == 2:
		a, b, err := pair(f[0], f[1])
		return command{kind: cmdTouch, a: a, b: b}, err
	}
	return command{}, errSyntax
}

func pair(s1, s2 string) (int, int, error) {
	a, err := strconv.Atoi(s1)
	if err != nil {
		return 0, 0, errSyntax
	}
	b, err := strconv.Atoi(s2)
	if err != nil {
		return 0, 0, errSyntax
	}
	return a, b, nil
}

// inputs drives the fake peripherals. Each press is held long enough for
// the poll loop to see it, then released.
type inputs struct {
	touch  *platform.FakeTouch
	button *platform.FakePin
	invert bool
	tcfg   types.TouchConfig
	layout game.Layout
	hold   time.Duration
}

func (in *inputs) do(c command) {
	switch c.kind {
	case cmdTouch:
		in.press(c.a, c.b)
	case cmdCell:
		cs := in.layout.CellSize()
		x, y := in.layout.CellOrigin(game.Cell{Row: c.a, Col: c.b})
		in.press(x+cs/2, y+cs/2)
	case cmdReset:
		if in.button == nil {
			return
		}
		in.button.Set(!in.invert)
		time.Sleep(in.hold)
		in.button.Set(in.invert)
	}
}

// press takes display coordinates and reports them the way the touch
// controller and its driver would.
func (in *inputs) press(x, y int) {
	if in.tcfg.SwapXY {
		x, y = y, x
	}
	in.touch.Press(hal.Normalise(in.tcfg, x, y))
	time.Sleep(in.hold)
	in.touch.Release()
}

// renderBoard draws a snapshot and the LED row as text.
func renderBoard(s types.GameSnapshot, ledX, ledO, ledOver bool) string {
	var sb strings.Builder
	for r := 0; r < game.Size; r++ {
		if r > 0 {
			sb.WriteString("---+---+---\n")
		}
		for c := 0; c < game.Size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			v := s.Cells[r*game.Size+c]
			if v == "" {
				v = " "
			}
			sb.WriteString(" " + v + " ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("leds: X=" + onOff(ledX) + " O=" + onOff(ledO) + " over=" + onOff(ledOver))
	sb.WriteString("  state=" + s.State + " turn=" + s.Turn)
	if s.Winner != "" {
		sb.WriteString(" winner=" + s.Winner)
	}
	sb.WriteString("\n\n")
	return sb.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
