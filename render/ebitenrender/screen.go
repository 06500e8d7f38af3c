package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/puppeteer/render"
)

// Screen adapts an *ebiten.Image to render.Surface. Call Begin with the frame's
// target before drawing.
type Screen struct {
	dst   *ebiten.Image
	cache *ImageCache
	face  text.Face
}

func NewScreen(cache *ImageCache, face text.Face) *Screen {
	if cache == nil {
		cache = NewImageCache()
	}
	return &Screen{cache: cache, face: face}
}

func (s *Screen) Begin(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) Cache() *ImageCache { return s.cache }

func (s *Screen) DrawImageAt(img image.Image, x, y, scale float64) {
	eimg := s.cache.Get(img)
	if eimg == nil || s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	s.dst.DrawImage(eimg, op)
}

func (s *Screen) DrawRectOutline(r render.Rect, c color.Color) {
	if s.dst == nil || r.Empty() {
		return
	}
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

func (s *Screen) DrawText(str string, x, y int, c color.Color) {
	if s.dst == nil || s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}

func (s *Screen) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}
