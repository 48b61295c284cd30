// Package display renders the board through a small drawing-command
// surface. TinyCanvas backs it with tinydraw/tinyfont on any tinygo
// drivers.Displayer.
package display

import "image/color"

// Colours used by the renderer.
var (
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Blue  = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Green = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

type Font uint8

const (
	FontSmall Font = iota
	FontLarge
)

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter // x is ignored; text is centred on the canvas width
)

// Canvas accepts the drawing commands the renderer issues. Coordinates are
// display pixels; text y is the top of the line.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Line(x0, y0, x1, y1 int, c color.RGBA)
	Circle(x, y, r int, c color.RGBA)
	Text(x, y int, s string, f Font, a Align, c color.RGBA)
	Flush() error
}
