package render

import "testing"

func TestPressed(t *testing.T) {
	events := []Event{
		PointerMoveTo(1, 2),
		KeyRelease(KeyB),
		KeyPress(KeySpace, false),
	}
	tests := []struct {
		key  Key
		want bool
	}{
		{KeySpace, true},
		{KeyB, false},
		{KeyTab, false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := Pressed(events, tt.key); got != tt.want {
				t.Fatalf("Pressed(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{W: 0, H: 3}).Empty() || (Rect{W: 1, H: 1}).Empty() {
		t.Fatalf("unexpected Empty results")
	}
}

func TestArrowKeyEvents(t *testing.T) {
	tests := []struct {
		key  Key
		name string
	}{
		{KeyArrowLeft, "Left"},
		{KeyArrowRight, "Right"},
		{KeyArrowUp, "Up"},
		{KeyArrowDown, "Down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := KeyPress(tt.key, true)
			if down.Kind != KeyDown || down.Key != tt.key || !down.Shift {
				t.Fatalf("KeyPress(%s) = %+v", tt.key, down)
			}
			up := KeyRelease(tt.key)
			if up.Kind != KeyUp || up.Key != tt.key {
				t.Fatalf("KeyRelease(%s) = %+v", tt.key, up)
			}
			if got := tt.key.String(); got != tt.name {
				t.Fatalf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}
