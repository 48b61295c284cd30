package types

// ------------------------
// Indicator
// ------------------------

// IndicatorState is one of three mutually exclusive LED states.
type IndicatorState uint8

const (
	IndicatorX   IndicatorState = iota + 1 // X to move
	IndicatorO                             // O to move
	IndicatorAll                           // game over
)

func (s IndicatorState) String() string {
	switch s {
	case IndicatorX:
		return "x_turn"
	case IndicatorO:
		return "o_turn"
	case IndicatorAll:
		return "all"
	default:
		return "unknown"
	}
}

// ------------------------
// Bus payloads (game/state retained, game/event/* not)
// ------------------------

type GameSnapshot struct {
	Cells  [9]string `json:"cells"`  // "", "X" or "O", row-major
	Turn   string    `json:"turn"`   // "X" or "O"
	State  string    `json:"state"`  // "playing" or "game_over"
	Winner string    `json:"winner"` // "" while in progress
	Moves  int       `json:"moves"`
	TS     int64     `json:"ts_ms"`
}

type GameEvent struct {
	Kind   string `json:"kind"` // "move", "win", "reset"
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player string `json:"player,omitempty"`
	TS     int64  `json:"ts_ms"`
}

// Event kinds.
const (
	EventMove  = "move"
	EventWin   = "win"
	EventReset = "reset"
)
