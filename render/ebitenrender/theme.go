package ebitenrender

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	barBackground = color.RGBA{24, 24, 28, 220}
	buttonIdle    = color.RGBA{40, 40, 46, 255}
	buttonHover   = color.RGBA{60, 60, 70, 255}
	buttonPressed = color.RGBA{90, 90, 110, 255}
)

// newTheme is the dark theme used by the layer bar.
func newTheme(face *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: image.NewNineSliceColor(barBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    image.NewNineSliceColor(buttonIdle),
				Hover:   image.NewNineSliceColor(buttonHover),
				Pressed: image.NewNineSliceColor(buttonPressed),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: color.White},
		},
	}
}
