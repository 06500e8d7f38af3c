package ebitenrender

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NewFace loads the Go regular font at size.
func NewFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenrender: load font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}
