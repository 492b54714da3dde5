package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 72

var (
	// TTFNormalFont is the default proportional face.
	TTFNormalFont font.Face
	// TTFSmallFont is a smaller proportional face for overlays.
	TTFSmallFont font.Face
	// TTFLargeFont is a larger proportional face for titles.
	TTFLargeFont font.Face

	monoFont *truetype.Font

	monoFaces     = map[float64]font.Face{}
	monoFacesLock sync.Mutex
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

func loadFonts() error {
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	TTFSmallFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	TTFNormalFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	TTFLargeFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    48,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	monoFont, err = truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse mono font: %v", err)
	}

	return nil
}

// MonoFace returns a monospace face at the given size in pixels.
// Faces are cached per size.
func MonoFace(size float64) font.Face {
	monoFacesLock.Lock()
	defer monoFacesLock.Unlock()
	if face, ok := monoFaces[size]; ok {
		return face
	}
	face := truetype.NewFace(monoFont, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	monoFaces[size] = face
	return face
}
