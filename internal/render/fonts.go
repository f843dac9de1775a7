package render

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var (
	fontsOnce sync.Once
	fonts     *fontSet
	fontsErr  error
)

// loadFonts parses the embedded faces once. Every caller waits on the same
// one-shot gate and sees the same result.
func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parsing regular font: %w", err)
			return
		}
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parsing bold font: %w", err)
			return
		}
		fonts = &fontSet{regular: regular, bold: bold}
	})
	return fonts, fontsErr
}

// FontsReady blocks until the embedded fonts are parsed
func FontsReady() error {
	_, err := loadFonts()
	return err
}

type faceKey struct {
	bold bool
	size int // quarter pixels
}

// faceCache hands out sized faces for one rasterization. Faces are not
// safe for concurrent use, so each canvas owns its cache.
type faceCache struct {
	set   *fontSet
	faces map[faceKey]font.Face
}

func newFaceCache(set *fontSet) *faceCache {
	return &faceCache{set: set, faces: make(map[faceKey]font.Face)}
}

func (fc *faceCache) face(bold bool, size float64) (font.Face, error) {
	key := faceKey{bold: bold, size: max(4, int(math.Round(size*4)))}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	src := fc.set.regular
	if bold {
		src = fc.set.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.size) / 4,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	fc.faces[key] = f
	return f, nil
}

func (fc *faceCache) close() {
	for _, f := range fc.faces {
		_ = f.Close()
	}
}
