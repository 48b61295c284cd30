package display

import (
	"image/color"
	"sync"
)

// FrameBuffer is an in-memory drivers.Displayer used by the host simulator
// and tests. Out-of-range pixels are dropped.
type FrameBuffer struct {
	mu      sync.RWMutex
	w, h    int16
	px      []color.RGBA
	flushes int
}

func NewFrameBuffer(w, h int16) *FrameBuffer {
	return &FrameBuffer{w: w, h: h, px: make([]color.RGBA, int(w)*int(h))}
}

func (f *FrameBuffer) Size() (x, y int16) { return f.w, f.h }

func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.mu.Lock()
	f.px[int(y)*int(f.w)+int(x)] = c
	f.mu.Unlock()
}

func (f *FrameBuffer) Display() error {
	f.mu.Lock()
	f.flushes++
	f.mu.Unlock()
	return nil
}

// At returns the pixel at (x, y); out of range reads as the zero colour.
func (f *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= int(f.w) || y >= int(f.h) {
		return color.RGBA{}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.px[y*int(f.w)+x]
}

// Count returns how many pixels inside the rectangle have colour c.
func (f *FrameBuffer) Count(x, y, w, h int, c color.RGBA) int {
	n := 0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if f.At(xx, yy) == c {
				n++
			}
		}
	}
	return n
}

// Flushes reports how many times Display was called.
func (f *FrameBuffer) Flushes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.flushes
}
