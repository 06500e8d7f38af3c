package character

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bob is an idle vertical sway that eases between -Amplitude and +Amplitude,
// reversing every half period.
type Bob struct {
	amplitude float32
	half      float32
	tween     *gween.Tween
	rising    bool
	offset    float64
}

// NewBob returns a bob starting at the bottom of its swing. A non-positive
// amplitude or period gives a bob that stays at 0.
func NewBob(amplitude, period float64) *Bob {
	b := &Bob{amplitude: float32(amplitude), half: float32(period / 2)}
	if amplitude <= 0 || period <= 0 {
		return b
	}
	b.offset = -amplitude
	b.rising = true
	b.tween = gween.New(-b.amplitude, b.amplitude, b.half, ease.InOutSine)
	return b
}

func (b *Bob) Update(dt float64) {
	if b == nil || b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.offset = float64(v)
	if !done {
		return
	}
	b.rising = !b.rising
	from, to := b.amplitude, -b.amplitude
	if b.rising {
		from, to = to, from
	}
	b.tween = gween.New(from, to, b.half, ease.InOutSine)
}

// Offset is the current vertical displacement in unscaled pixels.
func (b *Bob) Offset() float64 {
	if b == nil {
		return 0
	}
	return b.offset
}
