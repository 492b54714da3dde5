package engine

import (
	"context"
	"fmt"

	"github.com/cbodonnell/ldengine/pkg/sound"
	"github.com/cbodonnell/ldengine/pkg/storage"
	"github.com/cbodonnell/ldengine/pkg/surface"
)

// baseRemPx is the pixel size of 1rem before device scaling.
const baseRemPx = 16.0

// Context gives states access to the frame clock, the surface, audio, and
// persistent save data.
type Context struct {
	deltaTime float64
	remToPx   float64
	surface   *surface.Surface
	audio     *sound.Context

	repo     storage.Repository
	saveKey  string
	saveData []byte
}

type ContextOptions struct {
	Surface    *surface.Surface
	Audio      *sound.Context
	Repository storage.Repository
	SaveKey    string
	// DeltaTime is the fixed tick delta in seconds. The engine loop
	// overwrites it every tick with the measured delta.
	DeltaTime float64
}

// NewContext creates a context outside the engine loop, mainly for tests
// and tools. Run builds its own.
func NewContext(opts ContextOptions) *Context {
	key := opts.SaveKey
	if key == "" {
		key = storage.DefaultKey
	}
	return &Context{
		deltaTime: opts.DeltaTime,
		remToPx:   baseRemPx,
		surface:   opts.Surface,
		audio:     opts.Audio,
		repo:      opts.Repository,
		saveKey:   key,
	}
}

// DeltaTime returns the seconds elapsed since the previous tick.
func (c *Context) DeltaTime() float64 {
	return c.deltaTime
}

// Rem converts a rem-based size to pixels, following the device scale.
func (c *Context) Rem(rem float64) float64 {
	return rem * c.remToPx
}

// Surface returns the draw surface. It is only bound to a frame during Draw.
func (c *Context) Surface() *surface.Surface {
	return c.surface
}

// Audio returns the audio context.
func (c *Context) Audio() *sound.Context {
	return c.audio
}

// LoadData unmarshals the game's save data into v. Returns
// storage.ErrNotFound when nothing has been saved yet.
func (c *Context) LoadData(v interface{}) error {
	if c.saveData == nil {
		return storage.ErrNotFound
	}
	if err := jsonUnmarshal(c.saveData, v); err != nil {
		return fmt.Errorf("failed to unmarshal save data: %v", err)
	}
	return nil
}

// SetData persists v as the game's save data.
func (c *Context) SetData(v interface{}) error {
	data, err := jsonMarshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %v", err)
	}
	if c.repo != nil {
		if err := c.repo.Save(context.Background(), c.saveKey, data); err != nil {
			return fmt.Errorf("failed to persist save data: %v", err)
		}
	}
	c.saveData = data
	return nil
}
