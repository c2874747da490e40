package gotext

import (
	"bytes"
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/crossglyph/crossglyph/engine"
)

var _ engine.Fallback = (*Fallback)(nil)

// Fallback maps characters onto substitute faces through the fontscan
// font map.
type Fallback struct {
	// The font map keeps per-query state, so calls are serialized.
	mu      sync.Mutex
	fontMap *fontscan.FontMap
}

// addFont registers a user font file with the map.
func (f *Fallback) addFont(uf userFont) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fontMap.AddFont(bytes.NewReader(uf.data), uf.id, ""); err != nil {
		return fmt.Errorf("gotext: registering font for fallback: %w", err)
	}
	return nil
}

// MapCharacter implements engine.Fallback. Resolution is driven by glyph
// coverage and script data; the run's locale and direction do not steer
// it. The collection argument is unused, the font map carries its own
// index.
func (f *Fallback) MapCharacter(run engine.TextRun, _ engine.Collection, hints engine.MatchHints) (engine.Face, bool) {
	runes := utf16.Decode(run.Text)
	if len(runes) == 0 {
		return nil, false
	}
	r := runes[0]

	f.mu.Lock()
	var families []string
	if hints.FamilyName != "" {
		families = []string{hints.FamilyName}
	}
	f.fontMap.SetQuery(fontscan.Query{Families: families, Aspect: hints.Aspect})
	face := f.fontMap.ResolveFace(r)
	var family string
	var aspect font.Aspect
	if face != nil {
		family, aspect = f.fontMap.FontMetadata(face.Font)
	}
	f.mu.Unlock()

	if face == nil {
		return nil, false
	}
	return newResolvedFace(face, family, aspect), true
}
