// Package render is the boundary between the engine packages and a concrete
// graphics backend. The engine draws onto a Surface and reads Events from an
// InputSource; it never touches the backend directly.
package render

import (
	"image"
	"image/color"
)

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

type Surface interface {
	// DrawImageAt draws img with its top-left corner at (x, y), scaled
	// uniformly with nearest-neighbour filtering.
	DrawImageAt(img image.Image, x, y, scale float64)
	DrawRectOutline(r Rect, c color.Color)
	DrawText(s string, x, y int, c color.Color)
	Size() (w, h int)
}

type InputSource interface {
	PollInput() []Event
}

type EventKind int

const (
	PointerDown EventKind = iota
	PointerUp
	PointerMove
	Scroll
	KeyDown
	KeyUp
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

type Key int

const (
	KeyUnknown Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyB
	KeyC
	KeyF
	KeyR
	KeyS
	KeyY
	KeyZ
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

var keyNames = map[Key]string{
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	KeyB: "B", KeyC: "C", KeyF: "F", KeyR: "R", KeyS: "S", KeyY: "Y", KeyZ: "Z",
	KeyEnter: "Enter", KeyEscape: "Escape", KeySpace: "Space", KeyTab: "Tab",
	KeyArrowLeft: "Left", KeyArrowRight: "Right", KeyArrowUp: "Up", KeyArrowDown: "Down",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Event is one input occurrence. Which fields are meaningful depends on Kind:
// pointer events use Button, X and Y; Scroll uses WheelY, X and Y; key events
// use Key and Shift.
type Event struct {
	Kind   EventKind
	Button Button
	Key    Key
	X, Y   float64
	WheelY float64
	Shift  bool
}

func PointerDownAt(b Button, x, y float64) Event {
	return Event{Kind: PointerDown, Button: b, X: x, Y: y}
}

func PointerUpAt(b Button, x, y float64) Event {
	return Event{Kind: PointerUp, Button: b, X: x, Y: y}
}

func PointerMoveTo(x, y float64) Event {
	return Event{Kind: PointerMove, X: x, Y: y}
}

func ScrollAt(wheelY, x, y float64) Event {
	return Event{Kind: Scroll, WheelY: wheelY, X: x, Y: y}
}

func KeyPress(k Key, shift bool) Event {
	return Event{Kind: KeyDown, Key: k, Shift: shift}
}

func KeyRelease(k Key) Event {
	return Event{Kind: KeyUp, Key: k}
}

// Pressed reports whether events contain a key-down for k.
func Pressed(events []Event, k Key) bool {
	for _, ev := range events {
		if ev.Kind == KeyDown && ev.Key == k {
			return true
		}
	}
	return false
}
