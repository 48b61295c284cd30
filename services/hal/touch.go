package hal

import (
	"tinygo.org/x/drivers/touch"

	"tictactoe-go/errcode"
	"tictactoe-go/types"
)

// fullScale is the 16-bit range touch drivers normalise coordinates to.
const fullScale = 1 << 16

// TouchPoint is one poll of the touch surface, in display pixels.
type TouchPoint struct {
	Detected bool
	X, Y     int
}

// TouchSource is polled once per loop iteration and during release waits.
type TouchSource interface {
	Poll() TouchPoint
}

// Touch adapts a tinygo touch.Pointer. A point with Z > 0 counts as a touch.
// Normalised coordinates are converted back to raw controller pixels first,
// then optionally swapped.
type Touch struct {
	p            touch.Pointer
	swap         bool
	stepX, stepY int // driver units per raw pixel; 0 = already pixels
}

func NewTouch(p touch.Pointer, cfg types.TouchConfig) *Touch {
	return &Touch{p: p, swap: cfg.SwapXY, stepX: step(cfg.RangeX), stepY: step(cfg.RangeY)}
}

func (t *Touch) Poll() TouchPoint {
	pt := t.p.ReadTouchPoint()
	if pt.Z <= 0 {
		return TouchPoint{}
	}
	x, y := denorm(pt.X, t.stepX), denorm(pt.Y, t.stepY)
	if t.swap {
		x, y = y, x
	}
	return TouchPoint{Detected: true, X: x, Y: y}
}

// Configurer is a touch driver whose Configure reports bus errors, such as
// *ft6336.Device.
type Configurer[C any] interface {
	Configure(C) error
}

// ConfigureTouch configures d and reports a failure as TouchInitFailed.
func ConfigureTouch[C any](d Configurer[C], cfg C) error {
	if err := d.Configure(cfg); err != nil {
		return errcode.Wrap(errcode.TouchInitFailed, "touch configure", err)
	}
	return nil
}

// Normalise returns what a driver configured like cfg reports for a raw
// controller point. Fakes and the simulator use it to look like hardware.
func Normalise(cfg types.TouchConfig, rawX, rawY int) (x, y int) {
	return norm(rawX, step(cfg.RangeX)), norm(rawY, step(cfg.RangeY))
}

// step mirrors the driver's integer scale factor, fullScale/extent.
func step(extent int) int {
	if extent <= 0 || extent > fullScale {
		return 0
	}
	return fullScale / extent
}

func denorm(v, step int) int {
	if step == 0 {
		return v
	}
	return v / step
}

func norm(v, step int) int {
	if step == 0 {
		return v
	}
	return v * step
}
