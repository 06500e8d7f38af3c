package regions

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegionClamp(t *testing.T) {
	cases := []struct {
		name string
		in   Region
		want Region
	}{
		{"inside", Region{10, 10, 20, 20}, Region{10, 10, 20, 20}},
		{"negative_origin", Region{-10, -5, 30, 30}, Region{0, 0, 20, 25}},
		{"past_far_edge", Region{90, 50, 40, 100}, Region{90, 50, 10, 50}},
		{"covers_everything", Region{-1, -1, 500, 500}, Region{0, 0, 100, 100}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Clamp(100, 100)
			if got != c.want {
				t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
			}
			if !got.Within(100, 100) {
				t.Fatalf("%v not within bounds", got)
			}
		})
	}
	if r := (Region{200, 200, 10, 10}).Clamp(100, 100); !r.Empty() {
		t.Fatalf("outside region clamped to %v, want empty", r)
	}
}

func TestPopUndoesAppendExactly(t *testing.T) {
	s := Empty()
	var history [][]Region
	for i := 0; i < 5; i++ {
		history = append(history, append([]Region{}, s.Regions(Eyes)...))
		s.Append(Eyes, Region{i, i, 10 + i, 10})
	}
	for i := 4; i >= 0; i-- {
		if _, ok := s.Pop(Eyes); !ok {
			t.Fatalf("Pop %d failed", i)
		}
		if !reflect.DeepEqual(s.Regions(Eyes), history[i]) {
			t.Fatalf("after pop %d: %v, want %v", i, s.Regions(Eyes), history[i])
		}
	}
	if _, ok := s.Pop(Eyes); ok {
		t.Fatal("Pop on empty layer should report false")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := sampleSet()
	c := s.Clone()
	c.Layers[Hands][0].X = 999
	c.Offsets[Hands] = Offset{}
	if s.Layers[Hands][0].X == 999 || s.Offsets[Hands] == (Offset{}) {
		t.Fatal("clone shares storage with original")
	}
}

func TestEqual(t *testing.T) {
	cleared := sampleSet()
	cleared.Clear(Glow)
	popped := sampleSet()
	popped.Pop(Hands)
	moved := sampleSet()
	moved.Offsets[Hands] = Offset{DX: 40, DY: 40}

	tests := []struct {
		name string
		a, b *RegionSet
		want bool
	}{
		{"clone", sampleSet(), sampleSet().Clone(), true},
		{"cleared empty layer", sampleSet(), cleared, true},
		{"popped", sampleSet(), popped, false},
		{"offset moved", sampleSet(), moved, false},
		{"nil vs set", nil, Empty(), false},
		{"both nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSavedSetEqualsLoaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.json")
	s := sampleSet()
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("loaded set differs from saved set")
	}
	got.Offsets[Glow] = Offset{DX: 1}
	if got.Equal(s) {
		t.Fatalf("changed offset not detected")
	}
}

func TestClampAllDropsEmpty(t *testing.T) {
	s := Empty()
	s.Append(Glow, Region{-4, 0, 10, 10})
	s.Append(Glow, Region{500, 500, 10, 10})
	s.ClampAll(100, 100)
	if want := []Region{{0, 0, 6, 10}}; !reflect.DeepEqual(s.Regions(Glow), want) {
		t.Fatalf("glow = %v, want %v", s.Regions(Glow), want)
	}
}

func TestParseLayer(t *testing.T) {
	for _, id := range Layers {
		got, err := ParseLayer(string(id))
		if err != nil || got != id {
			t.Fatalf("ParseLayer(%q) = %q, %v", id, got, err)
		}
	}
	if _, err := ParseLayer("mouth"); !errors.Is(err, ErrUnknownLayer) {
		t.Fatalf("err = %v, want ErrUnknownLayer", err)
	}
}
