package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/puppeteer/atlas"
	"github.com/milk9111/puppeteer/character"
	"github.com/milk9111/puppeteer/editor"
	"github.com/milk9111/puppeteer/prefabs"
	"github.com/milk9111/puppeteer/regions"
	"github.com/milk9111/puppeteer/render"
	"github.com/milk9111/puppeteer/render/ebitenrender"
	"github.com/milk9111/puppeteer/speech"
	"golang.org/x/image/colornames"
)

type mode int

const (
	modeMark mode = iota
	modePlay
)

func (m mode) String() string {
	if m == modePlay {
		return "play"
	}
	return "mark"
}

const (
	hudFontSize   = 14
	defaultScale  = 3
	defaultPhrase = "Welcome, I can see your destiny..."
	playHelp      = "SPACE speak   B blink   TAB mark mode   ESC quit"
)

type Game struct {
	cfg        Config
	atlas      *atlas.Atlas
	configPath string

	charSpec *prefabs.CharacterSpec
	editSpec *prefabs.EditorSpec

	mode   mode
	editor *editor.Editor
	char   *character.Character
	bob    *character.Bob
	status string

	input    *ebitenrender.Input
	screen   *ebitenrender.Screen
	layerBar *ebitenrender.LayerBar
	watcher  *prefabs.Watcher
	feed     *speech.Feed

	background color.Color
}

func NewGame(cfg Config) (*Game, error) {
	a, err := atlas.Load(cfg.AtlasPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		atlas:      a,
		configPath: cfg.ConfigPath,
		input:      ebitenrender.NewInput(),
	}
	if g.configPath == "" {
		g.configPath = atlas.ConfigPath(cfg.AtlasPath, ".json")
	}

	g.charSpec, err = prefabs.LoadCharacterSpec()
	if err != nil {
		log.Printf("character spec: %v (using defaults)", err)
		g.charSpec = &prefabs.CharacterSpec{}
	} else if err := g.charSpec.Validate(); err != nil {
		log.Printf("character spec: %v (using defaults)", err)
		g.charSpec = &prefabs.CharacterSpec{}
	}
	g.editSpec, err = prefabs.LoadEditorSpec()
	if err != nil {
		log.Printf("editor spec: %v (using defaults)", err)
		g.editSpec = &prefabs.EditorSpec{}
	}
	g.background = g.charSpec.Background.Or(colornames.Black)
	g.bob = character.NewBob(g.charSpec.Bob.Amplitude, g.charSpec.Bob.Period)

	face, err := ebitenrender.NewFace(hudFontSize)
	if err != nil {
		return nil, err
	}
	g.screen = ebitenrender.NewScreen(ebitenrender.NewImageCache(), face)

	set, err := regions.Load(g.configPath)
	configExists := err == nil
	if err != nil {
		log.Printf("warning: %v; starting with an empty region set", err)
	}

	colors := g.editSpec.ResolveLayerColors(colornames.White)
	g.editor = editor.New(a, set, g.configPath, editor.Options{
		LayerColors: colors,
		TextColor:   g.editSpec.TextColor.Or(colornames.Whitesmoke),
		StatusColor: g.editSpec.StatusColor.Or(colornames.Gold),
		Help:        g.editSpec.Help,
		Clipboard:   newClipboard(),
	})
	g.editor.SetViewport(cfg.Width, cfg.Height)
	g.editor.ResetView()

	g.layerBar = ebitenrender.NewLayerBar(face, colors, g.editor.Layer(), g.editor.SetLayer)
	g.editor.OnLayerChange(g.layerBar.SetLayer)
	g.input.Ignore = g.layerBar.Contains

	if configExists {
		if err := g.enterPlay(); err != nil {
			log.Printf("staying in mark mode: %v", err)
		}
	}

	if cfg.Watch {
		g.startWatcher()
	}
	if cfg.Stdin {
		g.feed = speech.NewFeed(os.Stdin)
	}
	if cfg.Say != "" && g.char != nil {
		g.char.SpeakText(cfg.Say)
	}

	return g, nil
}

func (g *Game) startWatcher() {
	dirs := []string{filepath.Dir(g.configPath)}
	if info, err := os.Stat(prefabs.Dir()); err == nil && info.IsDir() {
		dirs = append(dirs, prefabs.Dir())
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.feed != nil {
		g.feed.Close()
	}
}

func (g *Game) scale() float64 {
	if g.cfg.Scale > 0 {
		return g.cfg.Scale
	}
	if g.charSpec.Scale > 0 {
		return g.charSpec.Scale
	}
	return defaultScale
}

func (g *Game) phrase() string {
	if g.charSpec.Speech.Phrase != "" {
		return g.charSpec.Speech.Phrase
	}
	return defaultPhrase
}

func (g *Game) buildCharacter(set *regions.RegionSet) (*character.Character, error) {
	c, err := character.New(g.atlas, set, character.WithTuning(g.charSpec.Tuning()))
	if err != nil {
		return nil, fmt.Errorf("build character from %s: %w", g.configPath, err)
	}
	return c, nil
}

// enterPlay builds a character from the editor's regions and switches to play
// mode. On failure the game stays in mark mode.
func (g *Game) enterPlay() error {
	c, err := g.buildCharacter(g.editor.Set())
	if err != nil {
		if errors.Is(err, character.ErrNoBaseFrames) {
			g.editor.SetStatus("mark at least one base region before playing")
		}
		return err
	}
	g.setCharacter(c)
	g.mode = modePlay
	g.status = ""
	log.Printf("play mode: %d regions", g.editor.Set().Len())
	return nil
}

func (g *Game) setCharacter(c *character.Character) {
	if g.char != nil {
		g.screen.Cache().Forget(g.char.Frame())
	}
	g.char = c
}

// enterMark reloads the region set from disk and hands it to the editor.
func (g *Game) enterMark() {
	set, err := regions.Load(g.configPath)
	if err != nil {
		log.Printf("warning: %v", err)
		set = g.editor.Set()
	}
	g.editor.Replace(set)
	g.mode = modeMark
	log.Printf("mark mode")
}

func (g *Game) Update() error {
	events := g.input.PollInput()
	if render.Pressed(events, render.KeyEscape) {
		return ebiten.Termination
	}

	if g.watcher != nil {
		g.watcher.Drain(g.reload)
		g.watcher.DrainErrors(func(err error) {
			log.Printf("watcher: %v", err)
		})
	}

	switch g.mode {
	case modeMark:
		g.updateMark(events)
	case modePlay:
		g.updatePlay(events)
	}
	return nil
}

func (g *Game) updateMark(events []render.Event) {
	g.layerBar.Update()
	for _, ev := range events {
		g.editor.HandleEvent(ev)
	}
	if !g.editor.WantsPlay() {
		return
	}
	if err := g.editor.Save(); err != nil {
		return
	}
	if err := g.enterPlay(); err != nil {
		log.Printf("staying in mark mode: %v", err)
	}
}

func (g *Game) updatePlay(events []render.Event) {
	if render.Pressed(events, render.KeyTab) {
		g.enterMark()
		return
	}
	if render.Pressed(events, render.KeySpace) {
		g.char.SpeakText(g.phrase())
	}
	if render.Pressed(events, render.KeyB) {
		g.char.BlinkNow()
	}
	if g.feed != nil {
		g.feed.Drain(g.char.SpeakText)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.char.Update(dt)
	g.screen.Cache().Invalidate(g.char.Frame())
	g.bob.Update(dt)
}

// reload reacts to a changed file reported by the watcher.
func (g *Game) reload(path string) {
	switch {
	case prefabs.SamePath(path, g.configPath):
		if g.mode != modePlay {
			return
		}
		set, err := regions.Load(g.configPath)
		if err != nil {
			log.Printf("reload: %v (keeping current character)", err)
			return
		}
		if set.Equal(g.editor.Set()) {
			return
		}
		c, err := g.buildCharacter(set)
		if err != nil {
			log.Printf("reload: %v (keeping current character)", err)
			return
		}
		g.editor.Replace(set)
		g.setCharacter(c)
		g.status = "reloaded " + filepath.Base(path)
		log.Printf("reloaded %s", path)
	case filepath.Base(path) == prefabs.CharacterSpecFile:
		spec, err := prefabs.LoadCharacterSpec()
		if err == nil {
			err = spec.Validate()
		}
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		g.charSpec = spec
		g.bob = character.NewBob(spec.Bob.Amplitude, spec.Bob.Period)
		g.background = spec.Background.Or(colornames.Black)
		if g.mode == modePlay {
			if c, err := g.buildCharacter(g.editor.Set()); err == nil {
				g.setCharacter(c)
			} else {
				log.Printf("reload: %v (keeping current character)", err)
			}
		}
		log.Printf("reloaded %s", path)
	case filepath.Base(path) == prefabs.EditorSpecFile:
		log.Printf("%s changed; restart to apply editor styling", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.screen.Begin(screen)

	switch g.mode {
	case modeMark:
		g.editor.Draw(g.screen)
		g.layerBar.Draw(screen)
	case modePlay:
		g.drawPlay()
	}
}

func (g *Game) drawPlay() {
	sw, sh := g.screen.Size()
	w, h := g.char.Size()
	scale := g.scale()
	x := (float64(sw) - float64(w)*scale) / 2
	y := (float64(sh)-float64(h)*scale)/2 + g.bob.Offset()*scale
	g.screen.DrawImageAt(g.char.Frame(), x, y, scale)

	g.screen.DrawText(playHelp, 10, 10, colornames.Whitesmoke)
	state := "idle"
	if g.char.Speaking() {
		state = "speaking"
	}
	g.screen.DrawText(fmt.Sprintf("mode: %s   %s", g.mode, state), 10, 30, colornames.Gold)
	if g.status != "" {
		g.screen.DrawText(g.status, 10, sh-28, colornames.Gold)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.editor.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
