package display

import "image/color"

// Op is one recorded drawing command.
type Op struct {
	Kind       string // "clear","fill","line","circle","text","flush"
	X, Y, W, H int    // line: W,H hold x1,y1; circle: W holds r
	Text       string
	Font       Font
	Align      Align
	Color      color.RGBA
}

// Recorder is a Canvas that keeps every command, for tests.
type Recorder struct {
	W, H     int
	Ops      []Op
	FlushErr error
}

func (r *Recorder) Size() (w, h int) { return r.W, r.H }

func (r *Recorder) Clear(c color.RGBA) { r.Ops = append(r.Ops, Op{Kind: "clear", Color: c}) }

func (r *Recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1 int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, W: x1, H: y1, Color: c})
}

func (r *Recorder) Circle(x, y, rad int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: x, Y: y, W: rad, Color: c})
}

func (r *Recorder) Text(x, y int, s string, f Font, a Align, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Font: f, Align: a, Color: c})
}

func (r *Recorder) Flush() error {
	r.Ops = append(r.Ops, Op{Kind: "flush"})
	return r.FlushErr
}

// Of returns the recorded ops of one kind.
func (r *Recorder) Of(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
