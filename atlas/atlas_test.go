package atlas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestConfigPath(t *testing.T) {
	cases := []struct {
		in, ext, want string
	}{
		{"assets/atlas.png", "", "assets/atlas.json"},
		{"assets/atlas.png", "yaml", "assets/atlas.yaml"},
		{"/tmp/sheet.v2.webp", ".json", "/tmp/sheet.v2.json"},
		{"noext", ".json", "noext.json"},
	}
	for _, c := range cases {
		if got := ConfigPath(c.in, c.ext); got != c.want {
			t.Errorf("ConfigPath(%q,%q) = %q, want %q", c.in, c.ext, got, c.want)
		}
	}
}

func TestLoadDecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checker(40, 30)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Width() != 40 || a.Height() != 30 {
		t.Fatalf("size = %dx%d, want 40x30", a.Width(), a.Height())
	}
}

func TestLoadMissingIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing atlas")
	}
	if _, err := Load(""); err != ErrEmptyPath {
		t.Fatalf("err = %v, want ErrEmptyPath", err)
	}
}

func TestSliceCopiesPixels(t *testing.T) {
	src := checker(40, 30)
	a := New("mem", src)
	sub := a.Slice(image.Rect(10, 5, 20, 12))
	if sub.Bounds() != image.Rect(0, 0, 10, 7) {
		t.Fatalf("bounds = %v", sub.Bounds())
	}
	if got := sub.RGBAAt(0, 0); got != src.RGBAAt(10, 5) {
		t.Fatalf("pixel = %v, want %v", got, src.RGBAAt(10, 5))
	}
	sub.SetRGBA(0, 0, color.RGBA{})
	if src.RGBAAt(10, 5).A == 0 {
		t.Fatal("slice aliases atlas pixels")
	}
	if a.Slice(image.Rect(100, 100, 110, 110)) != nil {
		t.Fatal("slice outside atlas should be nil")
	}
}
