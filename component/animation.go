package component

import (
	"image"
)

// stepEpsilon absorbs float drift so 1.0s at 10fps is exactly ten steps.
const stepEpsilon = 1e-9

// FrameCallback runs when Update lands on a registered frame.
type FrameCallback func(anim *Animation, frame int)

// Animation is a timed frame cycler over pre-sliced frames. It is driven by
// elapsed seconds rather than ticks, so a stalled update advances several
// frames instead of dropping them.
type Animation struct {
	Loop bool

	frames      []image.Image
	fps         float64
	playing     bool
	current     int
	accumulator float64

	callbacks map[int][]FrameCallback
}

// NewAnimation creates an Animation over frames. `fps` is frames per second
// (0 means the animation only moves via SetFrame). `loop` controls whether the
// animation wraps or stops on its last frame. The animation starts playing.
func NewAnimation(frames []image.Image, fps float64, loop bool) *Animation {
	a := &Animation{Loop: loop, fps: fps, playing: true}
	a.SetFrames(frames)
	return a
}

// SetFrames replaces the frames and rewinds to frame 0.
func (a *Animation) SetFrames(frames []image.Image) {
	a.frames = append([]image.Image(nil), frames...)
	a.current = 0
	a.accumulator = 0
}

func (a *Animation) Empty() bool { return a == nil || len(a.frames) == 0 }

func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.frames)
}

func (a *Animation) Index() int    { return a.current }
func (a *Animation) FPS() float64  { return a.fps }
func (a *Animation) Playing() bool { return a.playing }

// Play resumes advancing at the current fps.
func (a *Animation) Play() {
	a.playing = true
}

// PlayAt resumes advancing at a new fps.
func (a *Animation) PlayAt(fps float64) {
	a.fps = fps
	a.playing = true
}

func (a *Animation) Stop() {
	a.playing = false
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.Empty() || !a.playing || a.fps <= 0 {
		return
	}
	a.accumulator += dt
	step := 1.0 / a.fps
	for a.accumulator+stepEpsilon >= step {
		a.accumulator = max(a.accumulator-step, 0)
		a.current++
		if a.current >= len(a.frames) {
			if a.Loop {
				a.current = 0
			} else {
				a.current = len(a.frames) - 1
				a.playing = false
				a.accumulator = 0
				a.fire(a.current)
				return
			}
		}
		a.fire(a.current)
	}
}

// SetFrame jumps to frame i (clamped into range) and clears the accumulated
// time.
func (a *Animation) SetFrame(i int) {
	if a.Empty() {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	a.current = i
	a.accumulator = 0
}

// Current returns the frame at the current index. ok is false when the
// animation has no frames.
func (a *Animation) Current() (img image.Image, ok bool) {
	if a.Empty() {
		return nil, false
	}
	return a.frames[a.current], true
}

// Size returns the current frame's width/height, or zeros when empty.
func (a *Animation) Size() (int, int) {
	img, ok := a.Current()
	if !ok {
		return 0, 0
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// AddFrameCallback registers fn to run whenever Update lands on frame.
func (a *Animation) AddFrameCallback(frame int, fn FrameCallback) {
	if a == nil || fn == nil || frame < 0 {
		return
	}
	if a.callbacks == nil {
		a.callbacks = make(map[int][]FrameCallback)
	}
	a.callbacks[frame] = append(a.callbacks[frame], fn)
}

func (a *Animation) fire(frame int) {
	for _, fn := range a.callbacks[frame] {
		fn(a, frame)
	}
}
