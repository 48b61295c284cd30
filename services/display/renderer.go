package display

import (
	"tictactoe-go/errcode"
	"tictactoe-go/game"
	"tictactoe-go/types"
)

const (
	titleText  = "TIC TAC TOE"
	promptText = "Touch a square to play!"
)

// FatalTouchInit is shown when the touch controller cannot be brought up.
const FatalTouchInit = "Touch Init Failed!"

// Renderer issues the fixed draw sequences for each screen.
type Renderer struct {
	c   Canvas
	cfg types.LayoutConfig
	l   game.Layout
}

func NewRenderer(c Canvas, cfg types.LayoutConfig) *Renderer {
	return &Renderer{
		c:   c,
		cfg: cfg,
		l:   game.Layout{GridX: cfg.GridX, GridY: cfg.GridY, GridSize: cfg.GridSize},
	}
}

// Layout returns the grid geometry the renderer draws with.
func (r *Renderer) Layout() game.Layout { return r.l }

// Init clears the screen and draws the title and prompt.
func (r *Renderer) Init() error {
	r.c.Clear(Black)
	r.c.Text(0, r.cfg.TitleY, titleText, FontLarge, AlignCenter, White)
	r.c.Text(0, r.cfg.PromptY, promptText, FontSmall, AlignCenter, White)
	return r.flush("init")
}

// DrawBoard repaints the grid and every placed mark, then blanks the
// status strip.
func (r *Renderer) DrawBoard(b game.Board) error {
	r.drawGrid()
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			cell := game.Cell{Row: row, Col: col}
			if m := b.At(cell); m != game.Empty {
				r.drawSymbol(cell, m)
			}
		}
	}
	w, _ := r.c.Size()
	r.c.FillRect(0, r.cfg.StatusY, w, r.cfg.StatusH, Black)
	return r.flush("draw_board")
}

// ShowWinner replaces the screen with the win banner.
func (r *Renderer) ShowWinner(w game.Mark) error {
	r.c.Clear(Black)
	r.c.Text(0, r.cfg.BannerY, w.String()+" WINS!", FontLarge, AlignCenter, Green)
	return r.flush("show_winner")
}

// ShowFatal draws a halt message on a cleared screen.
func (r *Renderer) ShowFatal(msg string) error {
	r.c.Clear(Black)
	r.c.Text(0, r.cfg.FatalY, msg, FontSmall, AlignCenter, White)
	return r.flush("show_fatal")
}

func (r *Renderer) drawGrid() {
	gx, gy, gs := r.l.GridX, r.l.GridY, r.l.GridSize
	cs := r.l.CellSize()
	lt := r.cfg.LineThickness

	r.c.FillRect(gx, gy, gs, gs, Black)
	for k := 1; k < game.Size; k++ {
		r.c.FillRect(gx+k*cs-lt/2, gy, lt, gs, White)
		r.c.FillRect(gx, gy+k*cs-lt/2, gs, lt, White)
	}
}

func (r *Renderer) drawSymbol(cell game.Cell, m game.Mark) {
	x, y := r.l.CellOrigin(cell)
	cs := r.l.CellSize()
	p := r.cfg.SymbolPadding

	switch m {
	case game.PlayerX:
		r.c.Line(x+p, y+p, x+cs-p, y+cs-p, Red)
		r.c.Line(x+cs-p, y+p, x+p, y+cs-p, Red)
	case game.PlayerO:
		r.c.Circle(x+cs/2, y+cs/2, cs/2-p, Blue)
	}
}

func (r *Renderer) flush(op string) error {
	if err := r.c.Flush(); err != nil {
		return errcode.Wrap(errcode.DisplayFailed, op, err)
	}
	return nil
}
