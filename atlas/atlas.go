// Package atlas loads the sprite sheet shared by the editor and the player.
package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrEmptyPath = errors.New("atlas: empty path")

// Atlas is an immutable decoded sprite sheet.
type Atlas struct {
	Path  string
	Image image.Image
}

// Load reads and decodes the image at path.
func Load(path string) (*Atlas, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("atlas: decode %s: %w", path, err)
	}
	return New(path, img), nil
}

// New wraps an already decoded image.
func New(path string, img image.Image) *Atlas {
	return &Atlas{Path: path, Image: img}
}

func (a *Atlas) Width() int  { return a.Image.Bounds().Dx() }
func (a *Atlas) Height() int { return a.Image.Bounds().Dy() }

// Slice copies the pixels under r (atlas coordinates, origin top-left) into a
// new RGBA image whose bounds start at (0,0). r is intersected with the atlas
// first; the result is nil when nothing remains.
func (a *Atlas) Slice(r image.Rectangle) *image.RGBA {
	b := a.Image.Bounds()
	src := r.Add(b.Min).Intersect(b)
	if src.Empty() {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Draw(dst, dst.Bounds(), a.Image, src.Min, draw.Src)
	return dst
}

// ConfigPath derives the region config path for an atlas by replacing its
// extension, e.g. assets/atlas.png -> assets/atlas.json.
func ConfigPath(atlasPath, ext string) string {
	if ext == "" {
		ext = ".json"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(atlasPath, filepath.Ext(atlasPath)) + ext
}
