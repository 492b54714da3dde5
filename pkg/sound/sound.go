package sound

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	// DefaultSampleRate is the sample rate of the audio context.
	DefaultSampleRate = 44100
)

// Context owns the audio device and a master volume applied to every sound.
// Only one Context may exist per process; the underlying audio device cannot
// be reopened at a different sample rate.
type Context struct {
	ctx    *audio.Context
	volume float64
}

// NewContext creates an audio context at the default sample rate.
func NewContext() *Context {
	return &Context{
		ctx:    audio.NewContext(DefaultSampleRate),
		volume: 1.0,
	}
}

// SetVolume sets the master volume in [0, 1].
func (c *Context) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.volume = v
}

// Volume returns the master volume.
func (c *Context) Volume() float64 {
	return c.volume
}

// LoadSound decodes a wav or ogg/vorbis file into a playable sound.
func (c *Context) LoadSound(data []byte) (*Sound, error) {
	var stream io.Reader
	switch {
	case bytes.HasPrefix(data, []byte("RIFF")):
		s, err := wav.DecodeWithSampleRate(DefaultSampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav: %v", err)
		}
		stream = s
	case bytes.HasPrefix(data, []byte("OggS")):
		s, err := vorbis.DecodeWithSampleRate(DefaultSampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode vorbis: %v", err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format")
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %v", err)
	}

	return &Sound{
		ctx:    c,
		pcm:    pcm,
		volume: 1.0,
	}, nil
}

// LoadSoundFromURL fetches and decodes a sound over HTTP.
func (c *Context) LoadSoundFromURL(url string) (*Sound, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sound: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch sound: status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound body: %v", err)
	}

	return c.LoadSound(data)
}

// NewSoundFromPCM wraps raw PCM samples (16-bit little endian, stereo, at
// the context sample rate) in a playable sound.
func (c *Context) NewSoundFromPCM(pcm []byte) *Sound {
	return &Sound{
		ctx:    c,
		pcm:    pcm,
		volume: 1.0,
	}
}

// Sound is a decoded audio clip. Play is fire-and-forget and overlapping
// plays are allowed.
type Sound struct {
	ctx    *Context
	pcm    []byte
	volume float64
}

// SetVolume sets the per-sound volume in [0, 1], applied on top of the
// context's master volume.
func (s *Sound) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.volume = v
}

// Volume returns the per-sound volume.
func (s *Sound) Volume() float64 {
	return s.volume
}

// Play starts playback from the beginning. Each call plays independently.
func (s *Sound) Play() {
	p := s.ctx.ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(s.volume * s.ctx.volume)
	p.Play()
}

// Player is the subset of Sound used by consumers that only trigger
// playback. It exists so UI code can be tested without an audio device.
type Player interface {
	Play()
}
