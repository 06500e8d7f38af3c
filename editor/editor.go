// Package editor is the mark mode of the app: the user drags rectangles over
// the atlas to define each layer's frames.
package editor

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/milk9111/puppeteer/atlas"
	"github.com/milk9111/puppeteer/common"
	"github.com/milk9111/puppeteer/regions"
	"github.com/milk9111/puppeteer/render"
	"github.com/milk9111/puppeteer/view"
	"golang.org/x/image/colornames"
)

const (
	// minDragSize is the largest width or height, in atlas pixels, that is
	// still treated as an accidental click.
	minDragSize = 5

	zoomStep  = 1.1
	nudgeStep = 1
	nudgeBig  = 10

	defaultViewportW = 1280
	defaultViewportH = 720
)

// Clipboard receives copied region text.
type Clipboard interface {
	WriteText(s string) error
}

type Options struct {
	LayerColors map[regions.LayerID]color.Color
	TextColor   color.Color
	StatusColor color.Color
	Help        []string
	Clipboard   Clipboard
}

var defaultHelp = []string{
	"MARK MODE: click and drag to create regions",
	"1=base 2=hands 3=eyes 4=mouths 5=glow",
	"Z undo, C clear layer, S save, Y copy last region",
	"F+arrows nudge last region 1px (Shift=10px)",
	"wheel zoom, right-drag pan, R reset view",
	"ENTER play, ESC quit",
}

func (o Options) withDefaults() Options {
	colors := make(map[regions.LayerID]color.Color, len(regions.Layers))
	for _, id := range regions.Layers {
		colors[id] = colornames.White
	}
	for id, c := range o.LayerColors {
		if c != nil {
			colors[id] = c
		}
	}
	o.LayerColors = colors
	if o.TextColor == nil {
		o.TextColor = colornames.Whitesmoke
	}
	if o.StatusColor == nil {
		o.StatusColor = colornames.Gold
	}
	if len(o.Help) == 0 {
		o.Help = defaultHelp
	}
	return o
}

// lastRef points at the most recently created region.
type lastRef struct {
	layer regions.LayerID
	index int
	ok    bool
}

type Editor struct {
	atlas *atlas.Atlas
	set   *regions.RegionSet
	path  string
	opts  Options

	view   view.View
	layer  regions.LayerID
	vw, vh int

	cursorX, cursorY float64

	dragging               bool
	dragStartX, dragStartY float64
	dragCurX, dragCurY     float64

	panning                bool
	panAnchorX, panAnchorY float64

	nudgeHeld bool
	last      lastRef

	status    string
	wantsPlay bool

	onLayerChange func(regions.LayerID)
}

// New creates an editor over a, editing set in place and saving to path.
func New(a *atlas.Atlas, set *regions.RegionSet, path string, opts Options) *Editor {
	if set == nil {
		set = regions.Empty()
	}
	e := &Editor{
		atlas: a,
		set:   set,
		path:  path,
		opts:  opts.withDefaults(),
		layer: regions.Base,
		vw:    defaultViewportW,
		vh:    defaultViewportH,
	}
	e.view = view.New(a.Width(), a.Height()).Fit(e.vw, e.vh)
	return e
}

func (e *Editor) Set() *regions.RegionSet { return e.set }
func (e *Editor) Path() string            { return e.path }
func (e *Editor) View() view.View         { return e.view }
func (e *Editor) SetView(v view.View)     { e.view = v }
func (e *Editor) Layer() regions.LayerID  { return e.layer }
func (e *Editor) Status() string          { return e.status }
func (e *Editor) SetStatus(s string)      { e.status = s }
func (e *Editor) Dragging() bool          { return e.dragging }

// Replace swaps in a new region set, e.g. after a reload from disk.
func (e *Editor) Replace(set *regions.RegionSet) {
	if set == nil {
		set = regions.Empty()
	}
	e.set = set
	e.last = lastRef{}
	e.dragging = false
}

// OnLayerChange registers fn to be told whenever the current layer changes.
func (e *Editor) OnLayerChange(fn func(regions.LayerID)) {
	e.onLayerChange = fn
}

func (e *Editor) SetLayer(id regions.LayerID) {
	if id.Index() < 0 || id == e.layer {
		return
	}
	e.layer = id
	if e.onLayerChange != nil {
		e.onLayerChange(id)
	}
}

// SetViewport records the screen size used by R to refit the view.
func (e *Editor) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		e.vw, e.vh = w, h
	}
}

// ResetView fits the atlas into the current viewport.
func (e *Editor) ResetView() {
	e.view = e.view.Fit(e.vw, e.vh)
}

// WantsPlay reports, once, that the user asked to switch to play mode.
func (e *Editor) WantsPlay() bool {
	w := e.wantsPlay
	e.wantsPlay = false
	return w
}

// LastRegion returns the most recently created region, if it still exists.
func (e *Editor) LastRegion() (regions.LayerID, regions.Region, bool) {
	if !e.last.ok {
		return "", regions.Region{}, false
	}
	rs := e.set.Regions(e.last.layer)
	if e.last.index >= len(rs) {
		return "", regions.Region{}, false
	}
	return e.last.layer, rs[e.last.index], true
}

// Update drains src and applies every event.
func (e *Editor) Update(src render.InputSource) {
	for _, ev := range src.PollInput() {
		e.HandleEvent(ev)
	}
}

func (e *Editor) HandleEvent(ev render.Event) {
	switch ev.Kind {
	case render.PointerDown:
		e.cursorX, e.cursorY = ev.X, ev.Y
		e.pointerDown(ev)
	case render.PointerMove:
		e.cursorX, e.cursorY = ev.X, ev.Y
		e.pointerMove()
	case render.PointerUp:
		e.cursorX, e.cursorY = ev.X, ev.Y
		e.pointerUp(ev)
	case render.Scroll:
		e.scroll(ev)
	case render.KeyDown:
		e.keyDown(ev)
	case render.KeyUp:
		if ev.Key == render.KeyF {
			e.nudgeHeld = false
		}
	}
}

func (e *Editor) pointerDown(ev render.Event) {
	switch ev.Button {
	case render.ButtonPrimary:
		if e.panning {
			return
		}
		e.dragStartX, e.dragStartY = e.view.ScreenToAtlas(ev.X, ev.Y)
		e.dragCurX, e.dragCurY = e.dragStartX, e.dragStartY
		e.dragging = true
	case render.ButtonSecondary:
		if e.dragging {
			return
		}
		e.panning = true
		e.panAnchorX = ev.X - e.view.PanX
		e.panAnchorY = ev.Y - e.view.PanY
	}
}

func (e *Editor) pointerMove() {
	if e.dragging {
		e.dragCurX, e.dragCurY = e.view.ScreenToAtlas(e.cursorX, e.cursorY)
	}
	if e.panning {
		e.view.PanX = e.cursorX - e.panAnchorX
		e.view.PanY = e.cursorY - e.panAnchorY
	}
}

func (e *Editor) pointerUp(ev render.Event) {
	switch ev.Button {
	case render.ButtonPrimary:
		if !e.dragging {
			return
		}
		e.dragging = false
		e.dragCurX, e.dragCurY = e.view.ScreenToAtlas(ev.X, ev.Y)
		r, ok := e.finalRegion()
		if !ok {
			return
		}
		idx := e.set.Append(e.layer, r)
		e.last = lastRef{layer: e.layer, index: idx, ok: true}
		e.status = fmt.Sprintf("%s += %s", e.layer, r)
	case render.ButtonSecondary:
		e.panning = false
	}
}

func (e *Editor) scroll(ev render.Event) {
	switch {
	case ev.WheelY > 0:
		e.view = e.view.ZoomAbout(ev.X, ev.Y, zoomStep)
	case ev.WheelY < 0:
		e.view = e.view.ZoomAbout(ev.X, ev.Y, 1/zoomStep)
	}
}

// Preview returns the in-progress drag rectangle in atlas space.
func (e *Editor) Preview() (x, y, w, h float64, ok bool) {
	if !e.dragging {
		return 0, 0, 0, 0, false
	}
	x, y, w, h = e.dragRect()
	return x, y, w, h, true
}

// finalRegion turns the drag into an atlas region. Tiny drags are discarded;
// the rest is clamped into the atlas and truncated to whole pixels.
func (e *Editor) finalRegion() (regions.Region, bool) {
	x, y, w, h := e.dragRect()
	if w <= minDragSize || h <= minDragSize {
		return regions.Region{}, false
	}
	aw, ah := float64(e.atlas.Width()), float64(e.atlas.Height())
	x0, y0 := math.Max(x, 0), math.Max(y, 0)
	x1, y1 := math.Min(x+w, aw), math.Min(y+h, ah)
	if x1 <= x0 || y1 <= y0 {
		return regions.Region{}, false
	}
	r := regions.Region{X: int(x0), Y: int(y0), W: int(x1 - x0), H: int(y1 - y0)}
	r = r.Clamp(e.atlas.Width(), e.atlas.Height())
	if r.Empty() {
		return regions.Region{}, false
	}
	return r, true
}

func (e *Editor) dragRect() (x, y, w, h float64) {
	x, x1 := common.MinMax(e.dragStartX, e.dragCurX)
	y, y1 := common.MinMax(e.dragStartY, e.dragCurY)
	return x, y, x1 - x, y1 - y
}

var layerKeys = map[render.Key]regions.LayerID{
	render.Key1: regions.Base,
	render.Key2: regions.Hands,
	render.Key3: regions.Eyes,
	render.Key4: regions.Mouths,
	render.Key5: regions.Glow,
}

func (e *Editor) keyDown(ev render.Event) {
	if id, ok := layerKeys[ev.Key]; ok {
		e.SetLayer(id)
		return
	}
	switch ev.Key {
	case render.KeyZ:
		e.Undo()
	case render.KeyC:
		e.ClearLayer()
	case render.KeyS:
		_ = e.Save()
	case render.KeyR:
		e.ResetView()
	case render.KeyY:
		e.CopyLast()
	case render.KeyEnter:
		e.wantsPlay = true
	case render.KeyF:
		e.nudgeHeld = true
	case render.KeyArrowLeft, render.KeyArrowRight, render.KeyArrowUp, render.KeyArrowDown:
		if e.nudgeHeld {
			e.nudge(ev.Key, ev.Shift)
		}
	}
}

// Undo removes the last region of the current layer.
func (e *Editor) Undo() {
	r, ok := e.set.Pop(e.layer)
	if !ok {
		return
	}
	if e.last.ok && e.last.layer == e.layer && e.last.index >= len(e.set.Regions(e.layer)) {
		e.last = lastRef{}
	}
	e.status = fmt.Sprintf("%s -= %s", e.layer, r)
}

func (e *Editor) ClearLayer() {
	e.set.Clear(e.layer)
	if e.last.layer == e.layer {
		e.last = lastRef{}
	}
	e.status = fmt.Sprintf("%s cleared", e.layer)
}

func (e *Editor) nudge(k render.Key, shift bool) {
	if !e.last.ok {
		return
	}
	rs := e.set.Regions(e.last.layer)
	if e.last.index >= len(rs) {
		e.last = lastRef{}
		return
	}
	step := nudgeStep
	if shift {
		step = nudgeBig
	}
	dx, dy := 0, 0
	switch k {
	case render.KeyArrowLeft:
		dx = -step
	case render.KeyArrowRight:
		dx = step
	case render.KeyArrowUp:
		dy = -step
	case render.KeyArrowDown:
		dy = step
	}
	r := rs[e.last.index].Translate(dx, dy)
	rs[e.last.index] = e.keepInside(r)
	e.status = fmt.Sprintf("%s[%d] = %s", e.last.layer, e.last.index, rs[e.last.index])
}

// keepInside moves r back inside the atlas without changing its size, or
// clamps it when it is larger than the atlas.
func (e *Editor) keepInside(r regions.Region) regions.Region {
	aw, ah := e.atlas.Width(), e.atlas.Height()
	if r.W > aw || r.H > ah {
		return r.Clamp(aw, ah)
	}
	r.X = common.ClampInt(r.X, 0, aw-r.W)
	r.Y = common.ClampInt(r.Y, 0, ah-r.H)
	return r
}

// Save re-clamps every region and writes the set to the editor's path. On
// failure the error is logged and shown in the status line.
func (e *Editor) Save() error {
	e.set.ClampAll(e.atlas.Width(), e.atlas.Height())
	if err := regions.Save(e.path, e.set); err != nil {
		log.Printf("editor: save: %v", err)
		e.status = fmt.Sprintf("save failed: %v", err)
		return err
	}
	log.Printf("editor: saved %d regions to %s", e.set.Len(), e.path)
	e.status = fmt.Sprintf("saved %d regions to %s", e.set.Len(), e.path)
	return nil
}

// CopyLast copies the most recent region as [x,y,w,h] to the clipboard.
func (e *Editor) CopyLast() {
	if e.opts.Clipboard == nil {
		return
	}
	_, r, ok := e.LastRegion()
	if !ok {
		return
	}
	if err := e.opts.Clipboard.WriteText(r.String()); err != nil {
		log.Printf("editor: copy region: %v", err)
		e.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	e.status = fmt.Sprintf("copied %s", r)
}
