package textlayout

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/pdfreplay/font"
)

// Shaped measures text by shaping it with HarfBuzz over the Go font that
// the raster canvas draws with, so cursor advances match the painted
// glyphs. It is safe for concurrent use.
type Shaped struct {
	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	faces  map[string]*gofont.Face

	// fallback measures when a face cannot be loaded
	fallback Layout
}

// maxShapedSize bounds the 26.6 size handed to the shaper so summed
// advances stay within int32.
const maxShapedSize = 1 << 24

// NewShaped creates a shaping layout
func NewShaped() *Shaped {
	return &Shaped{
		faces:    make(map[string]*gofont.Face),
		fallback: Metrics{},
	}
}

func (s *Shaped) face(d font.Descriptor) (*gofont.Face, error) {
	key, ttf := font.SubstituteTTF(d)
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	f, err := gofont.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	s.faces[key] = f
	return f, nil
}

// Advance shapes text left to right as Latin and returns the summed advance
func (s *Shaped) Advance(d font.Descriptor, size float64, text string) float64 {
	if text == "" || size == 0 {
		return 0
	}
	size26 := math.Round(size * 64)
	if !(size26 >= 1 && size26 <= maxShapedSize) {
		return s.fallback.Advance(d, size, text)
	}
	runes := []rune(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	face, err := s.face(d)
	if err != nil {
		return s.fallback.Advance(d, size, text)
	}

	out := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size26),
		Script:    language.Latin,
		Language:  language.DefaultLanguage(),
	})
	return float64(out.Advance) / 64
}
