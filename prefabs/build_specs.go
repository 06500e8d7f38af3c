package prefabs

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/puppeteer/character"
	"github.com/milk9111/puppeteer/regions"
)

// Tuning converts the spec into character tuning. Unknown layer keys are
// logged and skipped; anything left unset keeps its default.
func (s *CharacterSpec) Tuning() character.Tuning {
	t := character.DefaultTuning()
	if s == nil {
		return t
	}

	for name, ls := range s.Layers {
		id, err := regions.ParseLayer(name)
		if err != nil {
			log.Printf("prefabs: character spec layer %q: %v", name, err)
			continue
		}
		t.Layers[id] = character.LayerTuning{FPS: ls.FPS, Loop: ls.Loop}
	}

	b := s.Blink
	if b.FirstMax > 0 {
		t.FirstBlinkMin, t.FirstBlinkMax = b.FirstMin, b.FirstMax
	}
	if b.Max > 0 {
		t.BlinkMin, t.BlinkMax = b.Min, b.Max
	}
	if b.Step > 0 {
		t.BlinkStep = b.Step
	}
	if len(b.Sequence) > 0 {
		t.BlinkSequence = b.Sequence
	}
	if len(b.ShortSequence) > 0 {
		t.ShortBlinkSequence = b.ShortSequence
	}
	if s.Speech.WordsPerMinute > 0 {
		t.WordsPerMinute = s.Speech.WordsPerMinute
	}
	return t
}

// Validate reports spec values that can never produce sane playback.
func (s *CharacterSpec) Validate() error {
	for name, ls := range s.Layers {
		if ls.FPS < 0 {
			return fmt.Errorf("prefabs: layer %s: negative fps %v", name, ls.FPS)
		}
	}
	if s.Blink.Min > s.Blink.Max || s.Blink.FirstMin > s.Blink.FirstMax {
		return fmt.Errorf("prefabs: blink range min exceeds max")
	}
	if s.Scale < 0 {
		return fmt.Errorf("prefabs: negative scale %v", s.Scale)
	}
	return nil
}

// ResolveLayerColors maps the configured layer colours onto layer IDs, using
// fallback for layers the spec leaves out.
func (s *EditorSpec) ResolveLayerColors(fallback color.Color) map[regions.LayerID]color.Color {
	out := make(map[regions.LayerID]color.Color, len(regions.Layers))
	for _, id := range regions.Layers {
		out[id] = fallback
	}
	if s == nil {
		return out
	}
	for name, c := range s.LayerColors {
		id, err := regions.ParseLayer(name)
		if err != nil {
			log.Printf("prefabs: editor spec layer %q: %v", name, err)
			continue
		}
		out[id] = c.Or(fallback)
	}
	return out
}
