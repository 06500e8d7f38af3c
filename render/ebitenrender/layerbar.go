package ebitenrender

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/puppeteer/regions"
)

// LayerBar is a row of toggle buttons, one per layer, in the top-right
// corner. It mirrors the editor's current layer in both directions.
type LayerBar struct {
	ui      *ebitenui.UI
	bar     *widget.Container
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func NewLayerBar(face text.Face, colors map[regions.LayerID]color.Color, initial regions.LayerID, onSelect func(regions.LayerID)) *LayerBar {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newTheme(&face)

	lb := &LayerBar{ui: ui}

	lb.bar = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 36),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}),
			),
		),
		widget.ContainerOpts.BackgroundImage(ui.PrimaryTheme.PanelTheme.BackgroundImage),
	)

	for i, id := range regions.Layers {
		c := colors[id]
		if c == nil {
			c = color.White
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(layerLabel(i, id), &face, &widget.ButtonTextColor{
				Idle:     c,
				Hover:    c,
				Pressed:  color.White,
				Disabled: color.Gray{Y: 128},
			}),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(72, 28),
			),
		)
		lb.buttons = append(lb.buttons, btn)
		lb.bar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(lb.buttons))
	for _, b := range lb.buttons {
		elements = append(elements, b)
	}

	lb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onSelect == nil {
				return
			}
			for idx, b := range lb.buttons {
				if args.Active == b {
					onSelect(regions.Layers[idx])
					return
				}
			}
		}),
	)
	lb.SetLayer(initial)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(lb.bar)
	ui.Container = root

	return lb
}

func layerLabel(i int, id regions.LayerID) string {
	return string(rune('1'+i)) + " " + id.String()
}

// SetLayer activates id's button. The change may be echoed through onSelect,
// so the callback must be idempotent.
func (lb *LayerBar) SetLayer(id regions.LayerID) {
	idx := id.Index()
	if lb == nil || lb.group == nil || idx < 0 || idx >= len(lb.buttons) {
		return
	}
	lb.group.SetActive(lb.buttons[idx])
}

// Contains reports whether the screen point is over the bar.
func (lb *LayerBar) Contains(x, y int) bool {
	if lb == nil || lb.bar == nil {
		return false
	}
	return image.Pt(x, y).In(lb.bar.GetWidget().Rect)
}

func (lb *LayerBar) Update() {
	lb.ui.Update()
}

func (lb *LayerBar) Draw(screen *ebiten.Image) {
	lb.ui.Draw(screen)
}
