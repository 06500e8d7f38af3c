package character

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/milk9111/puppeteer/atlas"
	"github.com/milk9111/puppeteer/component"
	"github.com/milk9111/puppeteer/regions"
	"golang.org/x/image/draw"
)

var ErrNoBaseFrames = errors.New("character: base layer has no frames")

// Rand is the random source used to schedule blinks. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

type Option func(*Character)

func WithTuning(t Tuning) Option {
	return func(c *Character) { c.tuning = t.withDefaults() }
}

func WithRand(r Rand) Option {
	return func(c *Character) {
		if r != nil {
			c.rng = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Character) {
		if now != nil {
			c.now = now
		}
	}
}

// Character composites the five layers of an atlas into one frame and drives
// the idle loops, random blinking and timed speaking.
type Character struct {
	tuning Tuning
	rng    Rand
	now    func() time.Time

	layers  map[regions.LayerID]*component.Animation
	offsets map[regions.LayerID]regions.Offset
	canvas  *image.RGBA

	blinkTimer float64
	blinkNext  float64
	blinkSeq   []int
	blinkIdx   int
	blinkClock float64

	speaking bool
	speakEnd time.Time
}

// New slices every layer's frames out of a and builds the character.
func New(a *atlas.Atlas, set *regions.RegionSet, opts ...Option) (*Character, error) {
	c := &Character{
		tuning:  DefaultTuning(),
		rng:     globalRand{},
		now:     time.Now,
		layers:  make(map[regions.LayerID]*component.Animation, len(regions.Layers)),
		offsets: make(map[regions.LayerID]regions.Offset),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, id := range regions.Layers {
		var frames []image.Image
		for _, r := range set.Regions(id) {
			if img := a.Slice(r.Rect()); img != nil {
				frames = append(frames, img)
			}
		}
		lt := c.tuning.Layers[id]
		c.layers[id] = component.NewAnimation(frames, lt.FPS, lt.Loop)
		if off, ok := set.Offsets[id]; ok {
			c.offsets[id] = off
		}
	}

	base := c.layers[regions.Base]
	if base.Empty() {
		return nil, fmt.Errorf("character: new %s: %w", a.Path, ErrNoBaseFrames)
	}
	c.layers[regions.Mouths].Stop()

	w, h := base.Size()
	c.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	c.blinkNext = c.uniform(c.tuning.FirstBlinkMin, c.tuning.FirstBlinkMax)
	c.compose()

	return c, nil
}

func (c *Character) uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// Layer returns the animation for id, or nil for an unknown layer.
func (c *Character) Layer(id regions.LayerID) *component.Animation {
	return c.layers[id]
}

func (c *Character) Speaking() bool { return c.speaking }
func (c *Character) Blinking() bool { return c.blinkSeq != nil }

// Tuning returns the effective tuning.
func (c *Character) Tuning() Tuning { return c.tuning }

// BlinkNow starts a blink, restarting one already in progress.
func (c *Character) BlinkNow() {
	eyes := c.layers[regions.Eyes]
	if eyes.Empty() {
		return
	}
	seq := c.tuning.BlinkSequence
	if eyes.Len() < 3 {
		seq = c.tuning.ShortBlinkSequence
	}
	c.blinkSeq = seq
	c.blinkIdx = 0
	c.blinkClock = 0
}

// SpeakFor animates the mouth for the given number of seconds.
func (c *Character) SpeakFor(seconds float64) {
	mouth := c.layers[regions.Mouths]
	if mouth.Empty() {
		return
	}
	c.speaking = true
	mouth.Play()
	c.speakEnd = c.now().Add(time.Duration(seconds * float64(time.Second)))
}

// SpeakText animates the mouth for as long as text takes to say at the tuned
// words per minute.
func (c *Character) SpeakText(text string) {
	c.SpeakTextWPM(text, c.tuning.WordsPerMinute)
}

func (c *Character) SpeakTextWPM(text string, wpm float64) {
	if wpm <= 0 {
		wpm = c.tuning.WordsPerMinute
	}
	c.SpeakFor(SpeechDuration(text, wpm))
}

// SpeechDuration estimates how long text takes to say, counting at least one
// word.
func SpeechDuration(text string, wpm float64) float64 {
	words := max(1, len(strings.Fields(text)))
	return float64(words) * 60 / wpm
}

// Update advances every layer by dt seconds and recomposes the frame.
func (c *Character) Update(dt float64) {
	c.layers[regions.Hands].Update(dt)
	c.layers[regions.Glow].Update(dt)

	c.updateBlink(dt)
	c.updateSpeech(dt)

	c.compose()
}

func (c *Character) updateBlink(dt float64) {
	c.blinkTimer += dt
	if c.blinkSeq != nil {
		c.blinkClock += dt
		if c.blinkClock >= c.tuning.BlinkStep {
			c.blinkClock = 0
			c.blinkIdx++
			eyes := c.layers[regions.Eyes]
			if c.blinkIdx >= len(c.blinkSeq) {
				c.blinkSeq = nil
				eyes.SetFrame(0)
			} else {
				eyes.SetFrame(c.blinkSeq[c.blinkIdx])
			}
		}
		return
	}
	if c.blinkTimer >= c.blinkNext {
		c.blinkTimer = 0
		c.blinkNext = c.uniform(c.tuning.BlinkMin, c.tuning.BlinkMax)
		c.BlinkNow()
	}
}

func (c *Character) updateSpeech(dt float64) {
	mouth := c.layers[regions.Mouths]
	if c.speaking && !c.now().Before(c.speakEnd) {
		c.speaking = false
		mouth.Stop()
		mouth.SetFrame(0)
	}
	if c.speaking {
		mouth.Update(dt)
	}
}

var composeOrder = []regions.LayerID{regions.Glow, regions.Hands, regions.Eyes, regions.Mouths}

func (c *Character) compose() {
	base, _ := c.layers[regions.Base].Current()
	draw.Draw(c.canvas, c.canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.blit(base, c.offsets[regions.Base], draw.Src)
	for _, id := range composeOrder {
		img, ok := c.layers[id].Current()
		if !ok {
			continue
		}
		c.blit(img, c.offsets[id], draw.Over)
	}
}

func (c *Character) blit(img image.Image, off regions.Offset, op draw.Op) {
	b := img.Bounds()
	dst := image.Rect(off.DX, off.DY, off.DX+b.Dx(), off.DY+b.Dy())
	draw.Draw(c.canvas, dst, img, b.Min, op)
}

// Frame returns the current composite. The image is reused between updates.
func (c *Character) Frame() *image.RGBA {
	return c.canvas
}

// Size is the composite's size, taken from the first base frame.
func (c *Character) Size() (int, int) {
	b := c.canvas.Bounds()
	return b.Dx(), b.Dy()
}
