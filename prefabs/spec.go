package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CharacterSpecFile = "character.yaml"
	EditorSpecFile    = "editor.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec tunes the composite character.
type CharacterSpec struct {
	Name       string                   `yaml:"name"`
	Scale      float64                  `yaml:"scale"`
	Background YAMLColor                `yaml:"background"`
	Layers     map[string]LayerAnimSpec `yaml:"layers"`
	Blink      BlinkSpec                `yaml:"blink"`
	Speech     SpeechSpec               `yaml:"speech"`
	Bob        BobSpec                  `yaml:"bob"`
}

type LayerAnimSpec struct {
	FPS  float64 `yaml:"fps"`
	Loop bool    `yaml:"loop"`
}

type BlinkSpec struct {
	FirstMin      float64 `yaml:"first_min"`
	FirstMax      float64 `yaml:"first_max"`
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	Step          float64 `yaml:"step"`
	Sequence      []int   `yaml:"sequence"`
	ShortSequence []int   `yaml:"short_sequence"`
}

type SpeechSpec struct {
	WordsPerMinute float64 `yaml:"words_per_minute"`
	Phrase         string  `yaml:"phrase"`
}

// BobSpec is the idle vertical bob applied to the character on screen.
type BobSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EditorSpec styles the region editor.
type EditorSpec struct {
	Background  YAMLColor            `yaml:"background"`
	TextColor   YAMLColor            `yaml:"text_color"`
	StatusColor YAMLColor            `yaml:"status_color"`
	LayerColors map[string]YAMLColor `yaml:"layer_colors"`
	Help        []string             `yaml:"help"`
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec](EditorSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was never set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
