package prefabs

import (
	"image/color"
	"testing"

	"github.com/milk9111/puppeteer/regions"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedCharacterSpec(t *testing.T) {
	spec, err := LoadCharacterSpec()
	if err != nil {
		t.Fatalf("LoadCharacterSpec: %v", err)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tuning := spec.Tuning()
	tests := []struct {
		id   regions.LayerID
		fps  float64
		loop bool
	}{
		{regions.Base, 0, false},
		{regions.Hands, 10, true},
		{regions.Eyes, 0, false},
		{regions.Mouths, 12, true},
		{regions.Glow, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			lt := tuning.Layers[tt.id]
			if lt.FPS != tt.fps || lt.Loop != tt.loop {
				t.Fatalf("got %+v, want fps=%v loop=%v", lt, tt.fps, tt.loop)
			}
		})
	}
	if tuning.WordsPerMinute != 150 {
		t.Fatalf("wpm = %v, want 150", tuning.WordsPerMinute)
	}
	if tuning.FirstBlinkMin != 2.8 || tuning.FirstBlinkMax != 5.5 {
		t.Fatalf("first blink range = [%v,%v]", tuning.FirstBlinkMin, tuning.FirstBlinkMax)
	}
	if spec.Speech.Phrase == "" {
		t.Fatalf("expected a default phrase")
	}
}

func TestEmbeddedEditorSpecColorsEveryLayer(t *testing.T) {
	spec, err := LoadEditorSpec()
	if err != nil {
		t.Fatalf("LoadEditorSpec: %v", err)
	}
	fallback := color.White
	colors := spec.ResolveLayerColors(fallback)
	for _, id := range regions.Layers {
		if colors[id] == fallback {
			t.Fatalf("layer %s uses the fallback colour", id)
		}
	}
	if len(spec.Help) == 0 {
		t.Fatalf("expected help lines")
	}
}

func TestTuningSkipsUnknownLayers(t *testing.T) {
	spec := &CharacterSpec{Layers: map[string]LayerAnimSpec{
		"hands": {FPS: 3, Loop: false},
		"tail":  {FPS: 99},
	}}
	tuning := spec.Tuning()
	if got := tuning.Layers[regions.Hands]; got.FPS != 3 || got.Loop {
		t.Fatalf("hands = %+v", got)
	}
	if len(tuning.Layers) != len(regions.Layers) {
		t.Fatalf("unexpected layers: %v", tuning.Layers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    CharacterSpec
		wantErr bool
	}{
		{"zero", CharacterSpec{}, false},
		{"negative fps", CharacterSpec{Layers: map[string]LayerAnimSpec{"glow": {FPS: -1}}}, true},
		{"inverted blink", CharacterSpec{Blink: BlinkSpec{Min: 5, Max: 1}}, true},
		{"negative scale", CharacterSpec{Scale: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 255, G: 128, A: 255}, false},
		{`"10203040"`, color.NRGBA{R: 16, G: 32, B: 48, A: 64}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`"#gg0000"`, color.NRGBA{}, true},
		{`[1, 2]`, color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := c.Color.(color.NRGBA); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var unset YAMLColor
	if unset.Or(color.Black) != color.Black {
		t.Fatalf("unset colour should fall back")
	}
}

func TestResolveLayerColorsFillsGaps(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	spec := &EditorSpec{LayerColors: map[string]YAMLColor{
		"eyes":  {Color: red},
		"tail":  {Color: red},
		"hands": {},
	}}
	fallback := color.White
	colors := spec.ResolveLayerColors(fallback)
	if len(colors) != len(regions.Layers) {
		t.Fatalf("got %d colours, want %d", len(colors), len(regions.Layers))
	}
	if colors[regions.Eyes] != red {
		t.Fatalf("eyes = %v, want %v", colors[regions.Eyes], red)
	}
	for _, id := range []regions.LayerID{regions.Base, regions.Hands, regions.Mouths, regions.Glow} {
		if colors[id] != fallback {
			t.Fatalf("%s = %v, want fallback", id, colors[id])
		}
	}

	var none *EditorSpec
	if got := none.ResolveLayerColors(fallback); got[regions.Base] != fallback {
		t.Fatalf("nil spec base = %v", got[regions.Base])
	}
}
