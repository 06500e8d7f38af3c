package editor

import (
	"fmt"

	"github.com/milk9111/puppeteer/regions"
	"github.com/milk9111/puppeteer/render"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// Draw renders the atlas, every region outlined in its layer colour, the
// live drag rectangle and the HUD.
func (e *Editor) Draw(s render.Surface) {
	e.SetViewport(s.Size())

	ox, oy := e.view.Origin()
	s.DrawImageAt(e.atlas.Image, ox, oy, e.view.Zoom)

	for _, id := range regions.Layers {
		c := e.opts.LayerColors[id]
		for _, r := range e.set.Regions(id) {
			x, y, w, h := e.view.AtlasRectToScreen(r.Rect())
			s.DrawRectOutline(render.Rect{X: x, Y: y, W: w, H: h}, c)
		}
	}

	if x, y, w, h, ok := e.Preview(); ok {
		sx, sy := e.view.AtlasToScreen(x, y)
		s.DrawRectOutline(render.Rect{X: sx, Y: sy, W: w * e.view.Zoom, H: h * e.view.Zoom}, e.opts.LayerColors[e.layer])
	}

	e.drawHUD(s)
}

func (e *Editor) drawHUD(s render.Surface) {
	y := hudMargin
	for _, line := range e.opts.Help {
		s.DrawText(line, hudMargin, y, e.opts.TextColor)
		y += hudLineHeight
	}
	y += hudLineHeight / 2
	s.DrawText(e.summary(), hudMargin, y, e.opts.LayerColors[e.layer])

	if e.status != "" {
		_, h := s.Size()
		s.DrawText(e.status, hudMargin, h-hudMargin-hudLineHeight, e.opts.StatusColor)
	}
}

func (e *Editor) summary() string {
	return fmt.Sprintf("layer: %s (%d)  zoom: %.2fx  regions: %d",
		e.layer, len(e.set.Regions(e.layer)), e.view.Zoom, e.set.Len())
}
