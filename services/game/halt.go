package game

import (
	"tictactoe-go/errcode"
	"tictactoe-go/services/display"
	"tictactoe-go/x/logx"
)

// park blocks forever; swapped in tests.
var park = func() { select {} }

// Halt shows msg on the display, logs the failure and never returns.
// There is no retry path.
func Halt(r *display.Renderer, msg string, err error) {
	log := logx.New("game")
	if r != nil {
		if derr := r.ShowFatal(msg); derr != nil {
			log.Error("fatal screen", logx.Err(derr))
		}
	}
	log.Error("halted", logx.Str("code", string(errcode.Of(err))), logx.Str("msg", msg), logx.Err(err))
	park()
}
