package sprites

import (
	"fmt"

	"github.com/cbodonnell/ldengine/pkg/surface"
)

// Animation steps through a contiguous range of spritesheet frames.
type Animation struct {
	// sheet is the spritesheet containing the animation frames.
	sheet *Spritesheet
	// firstFrame is the index of the first frame in the animation.
	firstFrame int
	// frameCount is the number of frames in the animation.
	frameCount int
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int
	// loop indicates whether the animation wraps around.
	loop bool

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index within the animation.
	frameIndex int
}

type NewAnimationOptions struct {
	Sheet      *Spritesheet
	FirstFrame int
	FrameCount int
	FrameSpeed int
	Loop       bool
}

func NewAnimation(opts NewAnimationOptions) (*Animation, error) {
	if opts.Sheet == nil {
		return nil, fmt.Errorf("animation requires a spritesheet")
	}
	if opts.FrameCount < 1 {
		return nil, fmt.Errorf("animation requires at least one frame")
	}
	if opts.FirstFrame+opts.FrameCount > opts.Sheet.FrameCount() {
		return nil, fmt.Errorf("animation frames [%d, %d) exceed sheet frame count %d",
			opts.FirstFrame, opts.FirstFrame+opts.FrameCount, opts.Sheet.FrameCount())
	}
	speed := opts.FrameSpeed
	if speed < 1 {
		speed = 1
	}
	return &Animation{
		sheet:      opts.Sheet,
		firstFrame: opts.FirstFrame,
		frameCount: opts.FrameCount,
		frameSpeed: speed,
		loop:       opts.Loop,
	}, nil
}

func (a *Animation) Update() {
	a.updateCount++
	idx := a.updateCount / a.frameSpeed
	if a.loop {
		a.frameIndex = idx % a.frameCount
		return
	}
	if idx >= a.frameCount {
		idx = a.frameCount - 1
	}
	a.frameIndex = idx
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

// Finished reports whether a non-looping animation is on its last frame.
func (a *Animation) Finished() bool {
	return !a.loop && a.frameIndex == a.frameCount-1
}

// FrameIndex returns the current frame index within the animation.
func (a *Animation) FrameIndex() int {
	return a.frameIndex
}

// Draw draws the current frame onto the surface.
func (a *Animation) Draw(dst *surface.Surface, opts DrawOptions) error {
	return a.sheet.Draw(dst, a.firstFrame+a.frameIndex, opts)
}
