package sprites

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"net/http"

	"github.com/cbodonnell/ldengine/pkg/surface"
	"github.com/cbodonnell/ldengine/pkg/vec"
	"github.com/hajimehoshi/ebiten/v2"
)

// Spritesheet is an image divided into a uniform grid of frames, numbered
// left to right, top to bottom.
type Spritesheet struct {
	image       *ebiten.Image
	frameWidth  int
	frameHeight int
	columns     int
	rows        int
}

// NewSpritesheet creates a spritesheet over an existing image.
func NewSpritesheet(img *ebiten.Image, frameWidth, frameHeight int) (*Spritesheet, error) {
	b := img.Bounds()
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", frameWidth, frameHeight)
	}
	if b.Dx()%frameWidth != 0 || b.Dy()%frameHeight != 0 {
		return nil, fmt.Errorf("image size %dx%d is not a multiple of frame size %dx%d", b.Dx(), b.Dy(), frameWidth, frameHeight)
	}
	return &Spritesheet{
		image:       img,
		frameWidth:  frameWidth,
		frameHeight: frameHeight,
		columns:     b.Dx() / frameWidth,
		rows:        b.Dy() / frameHeight,
	}, nil
}

// LoadSpritesheet decodes an image (png) into a spritesheet.
func LoadSpritesheet(data []byte, frameWidth, frameHeight int) (*Spritesheet, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return NewSpritesheet(ebiten.NewImageFromImage(img), frameWidth, frameHeight)
}

// LoadSpritesheetFromURL fetches and decodes a spritesheet over HTTP.
func LoadSpritesheetFromURL(url string, frameWidth, frameHeight int) (*Spritesheet, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spritesheet: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch spritesheet: status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read spritesheet body: %v", err)
	}

	return LoadSpritesheet(data, frameWidth, frameHeight)
}

// FrameCount returns the number of frames in the sheet.
func (s *Spritesheet) FrameCount() int {
	return s.columns * s.rows
}

// FrameSize returns the size of a single frame.
func (s *Spritesheet) FrameSize() (int, int) {
	return s.frameWidth, s.frameHeight
}

// Frame returns the sub-image for frame n.
func (s *Spritesheet) Frame(n int) (*ebiten.Image, error) {
	if n < 0 || n >= s.FrameCount() {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", n, s.FrameCount())
	}
	x := (n % s.columns) * s.frameWidth
	y := (n / s.columns) * s.frameHeight
	r := image.Rect(x, y, x+s.frameWidth, y+s.frameHeight)
	return s.image.SubImage(r).(*ebiten.Image), nil
}

// DrawOptions control how a frame is drawn.
type DrawOptions struct {
	// Pos is the position of the frame center in surface coordinates.
	Pos vec.V2
	// Scale is the scale factor. Zero means 1.
	Scale float64
	// Rotation is the rotation about the frame center in radians.
	Rotation float64
	// FlipH mirrors the frame horizontally.
	FlipH bool
}

// Draw draws frame n onto the surface.
func (s *Spritesheet) Draw(dst *surface.Surface, n int, opts DrawOptions) error {
	frame, err := s.Frame(n)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(s.frameWidth)/2, -float64(s.frameHeight)/2)
	if opts.FlipH {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(opts.Rotation)
	x, y := dst.Abs(opts.Pos)
	op.GeoM.Translate(x, y)
	dst.Screen().DrawImage(frame, op)
	return nil
}
