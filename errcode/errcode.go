package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	InvalidConfig Code = "invalid_config"
	UnknownPin    Code = "unknown_pin"
	PinInUse      Code = "pin_in_use"

	TouchInitFailed   Code = "touch_init_failed"
	DisplayInitFailed Code = "display_init_failed"
	DisplayFailed     Code = "display_failed"
	IndicatorFailed   Code = "indicator_failed"

	// IllegalMove is raised only by board assertions; the controller filters
	// illegal moves before they reach the board.
	IllegalMove Code = "illegal_move"

	Error Code = "error" // generic fallback
)

// E wraps a Code with context and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E. A nil cause is allowed.
func Wrap(c Code, op string, err error) *E {
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return Of(u.Unwrap())
	}
	return Error
}
