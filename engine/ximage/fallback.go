package ximage

import (
	"unicode/utf16"

	"github.com/go-text/typesetting/font"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/internal/match"
)

var _ engine.Fallback = (*Fallback)(nil)

// Fallback resolves characters by scanning registered faces for cmap
// coverage. The hinted family is consulted first, then every face in
// registration order.
type Fallback struct {
	col *Collection
}

// MapCharacter implements engine.Fallback. The run's locale and
// direction do not influence the scan.
func (fb *Fallback) MapCharacter(run engine.TextRun, collection engine.Collection, hints engine.MatchHints) (engine.Face, bool) {
	runes := utf16.Decode(run.Text)
	if len(runes) == 0 {
		return nil, false
	}
	r := runes[0]

	col := fb.col
	if c, ok := collection.(*Collection); ok && c != nil {
		col = c
	}

	if hints.FamilyName != "" {
		if fam, ok := col.FamilyByName(hints.FamilyName); ok {
			if face, ok := closestCovering(fam.(*Family).members(), hints, r); ok {
				return face, true
			}
		}
	}
	for _, face := range col.faces() {
		if face.GlyphIndex(r) != engine.MissingGlyphIndex {
			return face, true
		}
	}
	return nil, false
}

// closestCovering picks the aspect-closest face among those covering r.
func closestCovering(faces []*Face, hints engine.MatchHints, r rune) (*Face, bool) {
	var covering []*Face
	for _, face := range faces {
		if face.GlyphIndex(r) != engine.MissingGlyphIndex {
			covering = append(covering, face)
		}
	}
	if len(covering) == 0 {
		return nil, false
	}
	aspects := make([]font.Aspect, len(covering))
	for i, face := range covering {
		aspects[i] = face.aspect
	}
	return covering[match.Best(hints.Aspect, aspects)], true
}
