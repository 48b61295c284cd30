package game

import "tictactoe-go/types"

// State is the controller state.
type State uint8

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// Outcome is derived from the board on demand.
type Outcome struct {
	Winner Mark // Empty while in progress
}

func (o Outcome) InProgress() bool { return o.Winner == Empty }

// Controller owns the board, the current player and the state. It is not
// safe for concurrent use; the poll loop is its only caller.
//
// A full board without a winner has no transition: the state stays Playing
// and every further move is a no-op until Reset.
type Controller struct {
	board   Board
	current Mark
	state   State
	winner  Mark
}

func NewController() *Controller {
	return &Controller{current: PlayerX, state: Playing}
}

func (c *Controller) Board() Board     { return c.board }
func (c *Controller) Current() Mark    { return c.current }
func (c *Controller) State() State     { return c.state }
func (c *Controller) Outcome() Outcome { return Outcome{Winner: CheckWinner(c.board)} }

// Start returns the power-on intents.
func (c *Controller) Start() []Intent {
	return []Intent{{Kind: InitDisplay}, redraw(), indicate(TurnIndicator(c.current))}
}

// HandleTouch maps a display coordinate and applies it as a move.
func (c *Controller) HandleTouch(l Layout, x, y int) []Intent {
	cell, ok := l.MapTouch(x, y)
	if !ok {
		return nil
	}
	return c.HandleCell(cell)
}

// HandleCell applies a move for the current player. Moves while GameOver,
// off-board cells and occupied cells are ignored and yield no intents.
func (c *Controller) HandleCell(cell Cell) []Intent {
	if c.state != Playing || !cell.Valid() || c.board.At(cell) != Empty {
		return nil
	}

	c.board.PlaceMove(cell, c.current)
	out := []Intent{redraw()}

	if w := CheckWinner(c.board); w != Empty {
		c.state = GameOver
		c.winner = w
		return append(out, indicate(types.IndicatorAll), Intent{Kind: ShowWinner, Winner: w})
	}

	c.current = c.current.Other()
	return append(out, indicate(TurnIndicator(c.current)), redraw())
}

// Reset restarts the game from any state.
func (c *Controller) Reset() []Intent {
	c.board.Reset()
	c.current = PlayerX
	c.state = Playing
	c.winner = Empty
	return c.Start()
}

// Winner returns the mark that ended the game, or Empty.
func (c *Controller) Winner() Mark { return c.winner }
