package game

import "tictactoe-go/types"

// IntentKind names a side effect requested by the controller.
type IntentKind uint8

const (
	// InitDisplay clears the screen and draws the title and prompt.
	InitDisplay IntentKind = iota + 1
	// RedrawBoard repaints the grid and every mark from the board snapshot.
	RedrawBoard
	// SetIndicator drives the LEDs to Intent.Indicator.
	SetIndicator
	// ShowWinner replaces the board with a banner naming Intent.Winner.
	ShowWinner
)

func (k IntentKind) String() string {
	switch k {
	case InitDisplay:
		return "init_display"
	case RedrawBoard:
		return "redraw_board"
	case SetIndicator:
		return "set_indicator"
	case ShowWinner:
		return "show_winner"
	default:
		return "unknown"
	}
}

// Intent is consumed by the boundary layer in emission order.
type Intent struct {
	Kind      IntentKind
	Indicator types.IndicatorState // SetIndicator only
	Winner    Mark                 // ShowWinner only
}

func redraw() Intent { return Intent{Kind: RedrawBoard} }

func indicate(s types.IndicatorState) Intent {
	return Intent{Kind: SetIndicator, Indicator: s}
}

// TurnIndicator maps a player to its turn LED state.
func TurnIndicator(player Mark) types.IndicatorState {
	if player == PlayerO {
		return types.IndicatorO
	}
	return types.IndicatorX
}
