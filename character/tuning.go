package character

import "github.com/milk9111/puppeteer/regions"

// LayerTuning is the playback policy for one layer's frames.
type LayerTuning struct {
	FPS  float64
	Loop bool
}

// Tuning holds every timing constant the character uses. Zero values fall
// back to DefaultTuning when passed through WithTuning.
type Tuning struct {
	Layers map[regions.LayerID]LayerTuning

	FirstBlinkMin float64
	FirstBlinkMax float64
	BlinkMin      float64
	BlinkMax      float64
	BlinkStep     float64
	BlinkSequence []int
	// ShortBlinkSequence is used when the eyes layer has fewer frames than
	// the full sequence needs.
	ShortBlinkSequence []int

	WordsPerMinute float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Layers: map[regions.LayerID]LayerTuning{
			regions.Base:   {FPS: 0, Loop: false},
			regions.Hands:  {FPS: 10, Loop: true},
			regions.Eyes:   {FPS: 0, Loop: false},
			regions.Mouths: {FPS: 12, Loop: true},
			regions.Glow:   {FPS: 7, Loop: true},
		},
		FirstBlinkMin:      2.8,
		FirstBlinkMax:      5.5,
		BlinkMin:           3.0,
		BlinkMax:           6.0,
		BlinkStep:          0.06,
		BlinkSequence:      []int{0, 1, 2, 1, 0},
		ShortBlinkSequence: []int{0, 0},
		WordsPerMinute:     150,
	}
}

// withDefaults fills unset fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	layers := make(map[regions.LayerID]LayerTuning, len(regions.Layers))
	for _, id := range regions.Layers {
		if lt, ok := t.Layers[id]; ok {
			layers[id] = lt
		} else {
			layers[id] = d.Layers[id]
		}
	}
	t.Layers = layers
	if t.FirstBlinkMax <= 0 {
		t.FirstBlinkMin, t.FirstBlinkMax = d.FirstBlinkMin, d.FirstBlinkMax
	}
	if t.BlinkMax <= 0 {
		t.BlinkMin, t.BlinkMax = d.BlinkMin, d.BlinkMax
	}
	if t.BlinkStep <= 0 {
		t.BlinkStep = d.BlinkStep
	}
	if len(t.BlinkSequence) == 0 {
		t.BlinkSequence = d.BlinkSequence
	}
	if len(t.ShortBlinkSequence) == 0 {
		t.ShortBlinkSequence = d.ShortBlinkSequence
	}
	if t.WordsPerMinute <= 0 {
		t.WordsPerMinute = d.WordsPerMinute
	}
	return t
}
