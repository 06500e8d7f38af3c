package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config is the parsed command line.
type Config struct {
	AtlasPath  string
	ConfigPath string
	Scale      float64
	Say        string
	Stdin      bool
	Watch      bool
	Width      int
	Height     int
	Monitor    bool
}

var errNoAtlas = errors.New("an atlas image is required (-atlas path or first argument)")

func parseConfig(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("puppeteer", flag.ContinueOnError)
	fs.StringVar(&cfg.AtlasPath, "atlas", "", "atlas image (png, jpeg, gif, bmp or webp)")
	fs.StringVar(&cfg.ConfigPath, "config", "", "region config (default: atlas path with .json)")
	fs.Float64Var(&cfg.Scale, "scale", 0, "play mode display scale (default from character.yaml)")
	fs.StringVar(&cfg.Say, "say", "", "text to speak once play mode starts")
	fs.BoolVar(&cfg.Stdin, "stdin", false, "speak each line read from stdin")
	fs.BoolVar(&cfg.Watch, "watch", true, "reload the region config and specs when they change on disk")
	fs.IntVar(&cfg.Width, "w", 1280, "window width")
	fs.IntVar(&cfg.Height, "h", 720, "window height")
	fs.BoolVar(&cfg.Monitor, "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.AtlasPath == "" && fs.NArg() > 0 {
		cfg.AtlasPath = fs.Arg(0)
	}
	if cfg.AtlasPath == "" {
		return Config{}, errNoAtlas
	}
	if cfg.Scale < 0 {
		return Config{}, fmt.Errorf("invalid -scale %v", cfg.Scale)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if cfg.Monitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("puppeteer")

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("puppeteer: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
