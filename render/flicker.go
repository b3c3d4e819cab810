package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flicker pulses an alpha value for actors that are hit or intangible.
type Flicker struct {
	seq   *gween.Sequence
	alpha float32
}

func NewFlicker(period float32) *Flicker {
	return &Flicker{
		seq: gween.NewSequence(
			gween.New(1, 0.25, period/2, ease.InOutQuad),
			gween.New(0.25, 1, period/2, ease.InOutQuad),
		),
		alpha: 1,
	}
}

// Update advances the pulse by dt seconds, looping forever.
func (f *Flicker) Update(dt float32) {
	alpha, _, done := f.seq.Update(dt)
	f.alpha = alpha
	if done {
		f.seq.Reset()
	}
}

func (f *Flicker) Alpha() float32 {
	return f.alpha
}
