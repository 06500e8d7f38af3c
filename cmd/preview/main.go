package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/puppeteer/atlas"
	"github.com/milk9111/puppeteer/component"
	"github.com/milk9111/puppeteer/regions"
	"github.com/milk9111/puppeteer/render/ebitenrender"
)

const (
	screenW = 512
	screenH = 512
)

type previewGame struct {
	anim   *component.Animation
	screen *ebitenrender.Screen
	scale  float64
}

func (g *previewGame) Update() error {
	g.anim.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	frame, ok := g.anim.Current()
	if !ok {
		return
	}
	g.screen.Begin(screen)
	fw := float64(frame.Bounds().Dx()) * g.scale
	fh := float64(frame.Bounds().Dy()) * g.scale
	g.screen.DrawImageAt(frame, (screenW-fw)/2, (screenH-fh)/2, g.scale)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func loadFrames(atlasPath, configPath string, layer regions.LayerID) ([]image.Image, error) {
	a, err := atlas.Load(atlasPath)
	if err != nil {
		return nil, err
	}
	set, err := regions.Load(configPath)
	if err != nil {
		return nil, err
	}
	var frames []image.Image
	for _, r := range set.Regions(layer) {
		if img := a.Slice(r.Rect()); img != nil {
			frames = append(frames, img)
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("layer %s has no frames in %s", layer, configPath)
	}
	return frames, nil
}

func main() {
	atlasPath := flag.String("atlas", "", "atlas image")
	configPath := flag.String("config", "", "region config (default: atlas path with .json)")
	layerName := flag.String("layer", "hands", "layer to preview")
	fps := flag.Float64("fps", 10, "frames per second")
	scale := flag.Float64("scale", 3, "display scale")
	flag.Parse()

	if *atlasPath == "" && flag.NArg() > 0 {
		*atlasPath = flag.Arg(0)
	}
	if *atlasPath == "" {
		log.Fatal("preview: -atlas is required")
	}
	if *configPath == "" {
		*configPath = atlas.ConfigPath(*atlasPath, ".json")
	}
	layer, err := regions.ParseLayer(*layerName)
	if err != nil {
		log.Fatalf("preview: %v", err)
	}

	frames, err := loadFrames(*atlasPath, *configPath, layer)
	if err != nil {
		log.Fatalf("preview: %v", err)
	}

	anim := component.NewAnimation(frames, *fps, true)
	loops := 0
	anim.AddFrameCallback(0, func(_ *component.Animation, _ int) {
		loops++
		log.Printf("%s: loop %d (%d frames)", layer, loops, anim.Len())
	})

	g := &previewGame{anim: anim, screen: ebitenrender.NewScreen(nil, nil), scale: *scale}
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("puppeteer preview: " + layer.String())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
