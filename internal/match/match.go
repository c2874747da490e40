// Package match scores font faces against a requested aspect.
package match

import (
	"math"

	"github.com/go-text/typesetting/font"
)

// Style mismatches outweigh any weight distance, and stretch sits between
// the two, following the usual style > stretch > weight selection order.
const (
	stylePenalty   = 1e6
	stretchPenalty = 1e3
)

// normalize fills unset aspect fields with their normal values.
func normalize(a font.Aspect) font.Aspect {
	if a.Style == 0 {
		a.Style = font.StyleNormal
	}
	if a.Weight == 0 {
		a.Weight = font.WeightNormal
	}
	if a.Stretch == 0 {
		a.Stretch = font.StretchNormal
	}
	return a
}

// Score returns the distance from the requested aspect to a candidate
// aspect. Lower is closer; an exact match scores zero. Unset fields on
// either side count as normal.
func Score(want, candidate font.Aspect) float64 {
	want = normalize(want)
	candidate = normalize(candidate)

	var score float64
	if want.Style != candidate.Style {
		score += stylePenalty
	}
	score += stretchPenalty * math.Abs(float64(want.Stretch)-float64(candidate.Stretch))
	score += math.Abs(float64(want.Weight) - float64(candidate.Weight))
	return score
}

// Best returns the index of the candidate closest to the requested
// aspect, or -1 when there are no candidates. Ties keep the earliest
// candidate.
func Best(want font.Aspect, candidates []font.Aspect) int {
	best := -1
	bestScore := math.Inf(1)
	for i, c := range candidates {
		if s := Score(want, c); s < bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}
