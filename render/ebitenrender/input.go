package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/puppeteer/render"
)

type keyBinding struct {
	src ebiten.Key
	key render.Key
}

// trackedKeys is ordered so modifiers like F are reported before arrows
// pressed in the same tick.
var trackedKeys = []keyBinding{
	{ebiten.KeyDigit1, render.Key1},
	{ebiten.KeyDigit2, render.Key2},
	{ebiten.KeyDigit3, render.Key3},
	{ebiten.KeyDigit4, render.Key4},
	{ebiten.KeyDigit5, render.Key5},
	{ebiten.KeyNumpad1, render.Key1},
	{ebiten.KeyNumpad2, render.Key2},
	{ebiten.KeyNumpad3, render.Key3},
	{ebiten.KeyNumpad4, render.Key4},
	{ebiten.KeyNumpad5, render.Key5},
	{ebiten.KeyB, render.KeyB},
	{ebiten.KeyC, render.KeyC},
	{ebiten.KeyF, render.KeyF},
	{ebiten.KeyR, render.KeyR},
	{ebiten.KeyS, render.KeyS},
	{ebiten.KeyY, render.KeyY},
	{ebiten.KeyZ, render.KeyZ},
	{ebiten.KeyEnter, render.KeyEnter},
	{ebiten.KeyEscape, render.KeyEscape},
	{ebiten.KeySpace, render.KeySpace},
	{ebiten.KeyTab, render.KeyTab},
	{ebiten.KeyArrowLeft, render.KeyArrowLeft},
	{ebiten.KeyArrowRight, render.KeyArrowRight},
	{ebiten.KeyArrowUp, render.KeyArrowUp},
	{ebiten.KeyArrowDown, render.KeyArrowDown},
}

type buttonBinding struct {
	src    ebiten.MouseButton
	button render.Button
}

var trackedButtons = []buttonBinding{
	{ebiten.MouseButtonLeft, render.ButtonPrimary},
	{ebiten.MouseButtonRight, render.ButtonSecondary},
}

// Input polls ebiten's keyboard and mouse state once per tick and reports the
// changes as render.Events.
type Input struct {
	// Ignore, when set, drops pointer presses that land on other UI.
	Ignore func(x, y int) bool

	lastX, lastY int
	seen         bool
}

func NewInput() *Input { return &Input{} }

func (in *Input) PollInput() []render.Event {
	var events []render.Event

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !in.seen || mx != in.lastX || my != in.lastY {
		events = append(events, render.PointerMoveTo(x, y))
		in.lastX, in.lastY, in.seen = mx, my, true
	}

	for _, bb := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(bb.src) {
			if in.Ignore != nil && in.Ignore(mx, my) {
				continue
			}
			events = append(events, render.PointerDownAt(bb.button, x, y))
		}
		if inpututil.IsMouseButtonJustReleased(bb.src) {
			events = append(events, render.PointerUpAt(bb.button, x, y))
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		events = append(events, render.ScrollAt(wy, x, y))
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, kb := range trackedKeys {
		if inpututil.IsKeyJustPressed(kb.src) {
			events = append(events, render.KeyPress(kb.key, shift))
		}
		if inpututil.IsKeyJustReleased(kb.src) {
			events = append(events, render.KeyRelease(kb.key))
		}
	}

	return events
}
