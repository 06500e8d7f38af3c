package ebitenrender

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxCachedImages = 512

// ImageCache holds one GPU image per CPU image, keyed by identity. Images
// marked dirty are re-uploaded on their next use.
type ImageCache struct {
	images map[image.Image]*ebiten.Image
	dirty  map[image.Image]bool
}

func NewImageCache() *ImageCache {
	return &ImageCache{
		images: map[image.Image]*ebiten.Image{},
		dirty:  map[image.Image]bool{},
	}
}

// Get returns the GPU copy of img, uploading it on first use.
func (c *ImageCache) Get(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if cached, ok := c.images[img]; ok {
		if c.dirty[img] {
			delete(c.dirty, img)
			cached = c.refresh(img, cached)
		}
		return cached
	}
	if len(c.images) >= maxCachedImages {
		c.Clear()
	}
	cached := ebiten.NewImageFromImage(img)
	c.images[img] = cached
	return cached
}

// Invalidate marks img's pixels as changed.
func (c *ImageCache) Invalidate(img image.Image) {
	if _, ok := c.images[img]; ok {
		c.dirty[img] = true
	}
}

// Forget drops img from the cache and frees its GPU copy.
func (c *ImageCache) Forget(img image.Image) {
	if cached, ok := c.images[img]; ok {
		cached.Deallocate()
		delete(c.images, img)
		delete(c.dirty, img)
	}
}

func (c *ImageCache) Clear() {
	for _, cached := range c.images {
		cached.Deallocate()
	}
	c.images = map[image.Image]*ebiten.Image{}
	c.dirty = map[image.Image]bool{}
}

func (c *ImageCache) Len() int { return len(c.images) }

// refresh writes img's pixels into cached in place when the layout allows,
// otherwise it replaces the cached copy.
func (c *ImageCache) refresh(img image.Image, cached *ebiten.Image) *ebiten.Image {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() && cached.Bounds().Size() == b.Size() {
		cached.WritePixels(rgba.Pix[:4*b.Dx()*b.Dy()])
		return cached
	}
	cached.Deallocate()
	fresh := ebiten.NewImageFromImage(img)
	c.images[img] = fresh
	return fresh
}
