package character

import (
	"math"
	"testing"
)

func TestBobSwingsBetweenAmplitudes(t *testing.T) {
	b := NewBob(4, 2)
	if got := b.Offset(); got != -4 {
		t.Fatalf("start = %v, want -4", got)
	}

	steps := []struct {
		dt   float64
		want float64
	}{
		{0.5, 0},
		{0.5, 4},
		{0.5, 0},
		{0.5, -4},
	}
	for i, s := range steps {
		b.Update(s.dt)
		if got := b.Offset(); math.Abs(got-s.want) > 1e-3 {
			t.Fatalf("step %d: offset = %v, want %v", i, got, s.want)
		}
	}
}

func TestBobDisabled(t *testing.T) {
	tests := []struct {
		name      string
		amplitude float64
		period    float64
	}{
		{"zero amplitude", 0, 2},
		{"zero period", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBob(tt.amplitude, tt.period)
			b.Update(0.7)
			if b.Offset() != 0 {
				t.Fatalf("offset = %v, want 0", b.Offset())
			}
		})
	}

	var nilBob *Bob
	nilBob.Update(1)
	if nilBob.Offset() != 0 {
		t.Fatalf("nil bob moved")
	}
}
