package metrics

import (
	"time"

	"github.com/san-kum/pointmorph/internal/layout"
)

// FrameRate is an exponential moving average of frames per second.
type FrameRate struct {
	name    string
	alpha   float64
	fps     float64
	samples int
}

// NewFrameRate weights each new frame by alpha, clamped to (0, 1].
func NewFrameRate(alpha float64) *FrameRate {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return &FrameRate{name: "fps", alpha: alpha}
}

func (f *FrameRate) Name() string { return f.name }

func (f *FrameRate) Observe(_ []layout.Vec, dt time.Duration) {
	if dt <= 0 {
		return
	}
	rate := float64(time.Second) / float64(dt)
	if f.samples == 0 {
		f.fps = rate
	} else {
		f.fps += f.alpha * (rate - f.fps)
	}
	f.samples++
}

func (f *FrameRate) Value() float64 { return f.fps }

func (f *FrameRate) Reset() {
	f.fps = 0
	f.samples = 0
}
