package regions

import (
	"maps"
	"slices"
)

// RegionSet maps every layer to its ordered regions and every overlay layer
// to its Offset. Both maps always hold all of their keys.
type RegionSet struct {
	Layers  map[LayerID][]Region
	Offsets map[LayerID]Offset
}

// Empty returns a set with five empty layers and zero offsets.
func Empty() *RegionSet {
	s := &RegionSet{
		Layers:  make(map[LayerID][]Region, len(Layers)),
		Offsets: make(map[LayerID]Offset, len(Overlays)),
	}
	for _, id := range Layers {
		s.Layers[id] = []Region{}
	}
	for _, id := range Overlays {
		s.Offsets[id] = Offset{}
	}
	return s
}

// Partial is a decoded document. A nil field means the key was absent.
type Partial struct {
	Base    *[]Region         `json:"base,omitempty" yaml:"base,omitempty"`
	Hands   *[]Region         `json:"hands,omitempty" yaml:"hands,omitempty"`
	Eyes    *[]Region         `json:"eyes,omitempty" yaml:"eyes,omitempty"`
	Mouths  *[]Region         `json:"mouths,omitempty" yaml:"mouths,omitempty"`
	Glow    *[]Region         `json:"glow,omitempty" yaml:"glow,omitempty"`
	Offsets map[string]Offset `json:"offsets,omitempty" yaml:"offsets,omitempty"`
}

func (p *Partial) layer(id LayerID) *[]Region {
	switch id {
	case Base:
		return p.Base
	case Hands:
		return p.Hands
	case Eyes:
		return p.Eyes
	case Mouths:
		return p.Mouths
	case Glow:
		return p.Glow
	}
	return nil
}

// Merge returns the empty defaults overwritten by whatever p carries. Absent
// layers and offsets keep their defaults and unknown offset keys are dropped.
func Merge(p Partial) *RegionSet {
	s := Empty()
	for _, id := range Layers {
		if rs := p.layer(id); rs != nil {
			s.Layers[id] = append([]Region{}, (*rs)...)
		}
	}
	for _, id := range Overlays {
		if off, ok := p.Offsets[string(id)]; ok {
			s.Offsets[id] = off
		}
	}
	return s
}

// Clone returns a deep copy.
func (s *RegionSet) Clone() *RegionSet {
	out := Empty()
	for id, rs := range s.Layers {
		out.Layers[id] = append([]Region{}, rs...)
	}
	for id, off := range s.Offsets {
		out.Offsets[id] = off
	}
	return out
}

// Equal reports whether both sets hold the same regions in the same order and
// the same offsets. Nil and empty layers compare equal.
func (s *RegionSet) Equal(o *RegionSet) bool {
	if s == nil || o == nil {
		return s == o
	}
	for _, id := range Layers {
		if !slices.Equal(s.Layers[id], o.Layers[id]) {
			return false
		}
	}
	return maps.Equal(s.Offsets, o.Offsets)
}

func (s *RegionSet) Regions(id LayerID) []Region {
	return s.Layers[id]
}

// Len is the total number of regions across all layers.
func (s *RegionSet) Len() int {
	n := 0
	for _, rs := range s.Layers {
		n += len(rs)
	}
	return n
}

// Append adds r to the end of layer id and returns its index.
func (s *RegionSet) Append(id LayerID, r Region) int {
	s.Layers[id] = append(s.Layers[id], r)
	return len(s.Layers[id]) - 1
}

// Pop removes and returns the last region of layer id.
func (s *RegionSet) Pop(id LayerID) (Region, bool) {
	rs := s.Layers[id]
	if len(rs) == 0 {
		return Region{}, false
	}
	last := rs[len(rs)-1]
	s.Layers[id] = rs[:len(rs)-1]
	return last, true
}

func (s *RegionSet) Clear(id LayerID) {
	s.Layers[id] = []Region{}
}

// ClampAll re-clamps every region into [0,w]x[0,h], dropping regions that
// end up empty.
func (s *RegionSet) ClampAll(w, h int) {
	for id, rs := range s.Layers {
		kept := rs[:0]
		for _, r := range rs {
			if c := r.Clamp(w, h); !c.Empty() {
				kept = append(kept, c)
			}
		}
		s.Layers[id] = kept
	}
}

// document is the on-disk shape with every key present, in layer order.
type document struct {
	Base    []Region          `json:"base" yaml:"base"`
	Hands   []Region          `json:"hands" yaml:"hands"`
	Eyes    []Region          `json:"eyes" yaml:"eyes"`
	Mouths  []Region          `json:"mouths" yaml:"mouths"`
	Glow    []Region          `json:"glow" yaml:"glow"`
	Offsets map[string]Offset `json:"offsets" yaml:"offsets"`
}

func (s *RegionSet) document() document {
	nonNil := func(rs []Region) []Region {
		if rs == nil {
			return []Region{}
		}
		return rs
	}
	d := document{
		Base:    nonNil(s.Layers[Base]),
		Hands:   nonNil(s.Layers[Hands]),
		Eyes:    nonNil(s.Layers[Eyes]),
		Mouths:  nonNil(s.Layers[Mouths]),
		Glow:    nonNil(s.Layers[Glow]),
		Offsets: make(map[string]Offset, len(Overlays)),
	}
	for _, id := range Overlays {
		d.Offsets[string(id)] = s.Offsets[id]
	}
	return d
}
