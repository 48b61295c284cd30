package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

type fontFace struct {
	f      tinyfont.Fonter
	ascent int // pixels from line top to baseline
}

var faces = [...]fontFace{
	FontSmall: {f: &freemono.Regular9pt7b, ascent: 13},
	FontLarge: {f: &freemono.Bold12pt7b, ascent: 17},
}

// TinyCanvas draws on a tinygo display driver.
type TinyCanvas struct {
	d drivers.Displayer
}

func NewTinyCanvas(d drivers.Displayer) *TinyCanvas { return &TinyCanvas{d: d} }

func (t *TinyCanvas) Size() (w, h int) {
	x, y := t.d.Size()
	return int(x), int(y)
}

func (t *TinyCanvas) Clear(c color.RGBA) {
	w, h := t.Size()
	t.FillRect(0, 0, w, h, c)
}

func (t *TinyCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	tinydraw.FilledRectangle(t.d, int16(x), int16(y), int16(w), int16(h), c)
}

func (t *TinyCanvas) Line(x0, y0, x1, y1 int, c color.RGBA) {
	tinydraw.Line(t.d, int16(x0), int16(y0), int16(x1), int16(y1), c)
}

func (t *TinyCanvas) Circle(x, y, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	tinydraw.Circle(t.d, int16(x), int16(y), int16(r), c)
}

func (t *TinyCanvas) Text(x, y int, s string, f Font, a Align, c color.RGBA) {
	face := faces[FontSmall]
	if int(f) < len(faces) {
		face = faces[f]
	}
	if a == AlignCenter {
		w, _ := t.Size()
		_, outbox := tinyfont.LineWidth(face.f, s)
		x = (w - int(outbox)) / 2
		if x < 0 {
			x = 0
		}
	}
	tinyfont.WriteLine(t.d, face.f, int16(x), int16(y+face.ascent), s, c)
}

func (t *TinyCanvas) Flush() error { return t.d.Display() }
