package regions

import (
	"errors"
	"fmt"
)

// LayerID names one of the five fixed animation channels.
type LayerID string

const (
	Base   LayerID = "base"
	Hands  LayerID = "hands"
	Eyes   LayerID = "eyes"
	Mouths LayerID = "mouths"
	Glow   LayerID = "glow"
)

var ErrUnknownLayer = errors.New("regions: unknown layer")

// Layers lists every layer in canonical order.
var Layers = []LayerID{Base, Hands, Eyes, Mouths, Glow}

// Overlays lists the layers that carry an Offset.
var Overlays = []LayerID{Hands, Eyes, Mouths, Glow}

func ParseLayer(s string) (LayerID, error) {
	for _, id := range Layers {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

// Index returns the position of id in Layers, or -1.
func (id LayerID) Index() int {
	for i, l := range Layers {
		if l == id {
			return i
		}
	}
	return -1
}

func (id LayerID) String() string { return string(id) }
