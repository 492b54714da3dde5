package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/sound"
	"github.com/cbodonnell/ldengine/pkg/sprites"
	"github.com/hajimehoshi/ebiten/v2"
)

// demoSave is the demo's persisted save data.
type demoSave struct {
	Name      string `json:"name"`
	HighScore int    `json:"highScore"`
}

// DemoGame exercises the engine: menu, play and game-over states, generated
// sprites and sounds, noise terrain, and persisted high scores.
type DemoGame struct {
	clickSound *sound.Sound
	hoverSound *sound.Sound
	jumpSound  *sound.Sound
	sheet      *sprites.Spritesheet
}

func NewDemoGame() *DemoGame {
	return &DemoGame{}
}

func (g *DemoGame) Load(res engine.Resources) (engine.State, error) {
	g.clickSound = res.Audio.NewSoundFromPCM(beepPCM(880, 0.05))
	g.hoverSound = res.Audio.NewSoundFromPCM(beepPCM(440, 0.03))
	g.jumpSound = res.Audio.NewSoundFromPCM(beepPCM(660, 0.08))

	sheet, err := sprites.NewSpritesheet(makePlayerImage(), playerSize, playerSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build player spritesheet: %v", err)
	}
	g.sheet = sheet

	return newMenuState(g), nil
}

const playerSize = 16

// makePlayerImage builds a 4-frame placeholder sheet so the demo needs no
// binary assets.
func makePlayerImage() *ebiten.Image {
	img := ebiten.NewImage(4*playerSize, playerSize)
	frames := []color.NRGBA{
		{R: 230, G: 90, B: 80, A: 255},
		{R: 240, G: 130, B: 70, A: 255},
		{R: 230, G: 90, B: 80, A: 255},
		{R: 200, G: 70, B: 100, A: 255},
	}
	for i, clr := range frames {
		sub := img.SubImage(image.Rect(i*playerSize, 0, (i+1)*playerSize, playerSize)).(*ebiten.Image)
		sub.Fill(clr)
	}
	return img
}

// beepPCM synthesizes a square-wave blip as 16-bit stereo PCM at the audio
// context sample rate.
func beepPCM(freq float64, seconds float64) []byte {
	n := int(float64(sound.DefaultSampleRate) * seconds)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sound.DefaultSampleRate)
		v := int16(6000)
		if math.Mod(t*freq, 1) >= 0.5 {
			v = -v
		}
		// Fade out to avoid a click at the end.
		v = int16(float64(v) * (1 - float64(i)/float64(n)))
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return pcm
}
