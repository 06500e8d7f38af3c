// Package view maps between screen pixels and atlas pixels under a pan/zoom
// state. The atlas is drawn centred on (PanX, PanY).
package view

import (
	"image"

	"github.com/milk9111/puppeteer/common"
)

const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// fitFraction of the viewport the atlas may occupy after Fit.
	fitFraction = 0.8
)

// View is the affine map from atlas space to screen space:
//
//	screen = pan + (atlas - atlasCenter) * zoom
type View struct {
	Zoom float64
	PanX float64
	PanY float64

	// AtlasW and AtlasH are the atlas size in pixels.
	AtlasW float64
	AtlasH float64
}

// New returns a zoom 1.0 view for an atlas of the given size with the pan at
// the origin.
func New(atlasW, atlasH int) View {
	return View{Zoom: 1.0, AtlasW: float64(atlasW), AtlasH: float64(atlasH)}
}

func (v View) center() (float64, float64) {
	return v.AtlasW / 2, v.AtlasH / 2
}

// AtlasToScreen converts an atlas pixel position to screen coordinates.
func (v View) AtlasToScreen(x, y float64) (float64, float64) {
	cx, cy := v.center()
	return v.PanX + (x-cx)*v.Zoom, v.PanY + (y-cy)*v.Zoom
}

// ScreenToAtlas is the exact inverse of AtlasToScreen.
func (v View) ScreenToAtlas(sx, sy float64) (float64, float64) {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	cx, cy := v.center()
	return (sx-v.PanX)/zoom + cx, (sy-v.PanY)/zoom + cy
}

// ZoomAbout scales the zoom by factor (clamped to [MinZoom, MaxZoom]) and
// moves the pan so the atlas point under the cursor stays under the cursor.
func (v View) ZoomAbout(cursorX, cursorY, factor float64) View {
	old := v.Zoom
	if old == 0 {
		old = 1.0
	}
	v.Zoom = common.Clamp(old*factor, MinZoom, MaxZoom)
	change := v.Zoom / old
	v.PanX = cursorX + (v.PanX-cursorX)*change
	v.PanY = cursorY + (v.PanY-cursorY)*change
	return v
}

// Fit centres the atlas in a viewport and picks the largest zoom (never above
// 1.0) that keeps it within 80% of the viewport.
func (v View) Fit(viewportW, viewportH int) View {
	zoom := 1.0
	if v.AtlasW > 0 && v.AtlasH > 0 {
		zoom = min(float64(viewportW)*fitFraction/v.AtlasW, float64(viewportH)*fitFraction/v.AtlasH, 1.0)
	}
	v.Zoom = common.Clamp(zoom, MinZoom, MaxZoom)
	v.PanX = float64(viewportW) / 2
	v.PanY = float64(viewportH) / 2
	return v
}

// Origin is the screen position of atlas pixel (0,0).
func (v View) Origin() (float64, float64) {
	return v.AtlasToScreen(0, 0)
}

// AtlasRectToScreen maps an atlas-space rectangle to screen space as
// (x, y, w, h).
func (v View) AtlasRectToScreen(r image.Rectangle) (float64, float64, float64, float64) {
	x, y := v.AtlasToScreen(float64(r.Min.X), float64(r.Min.Y))
	return x, y, float64(r.Dx()) * v.Zoom, float64(r.Dy()) * v.Zoom
}
