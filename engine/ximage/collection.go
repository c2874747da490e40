package ximage

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/internal/match"
)

var (
	_ engine.Collection = (*Collection)(nil)
	_ engine.Family     = (*Family)(nil)
)

// Collection groups registered faces by family. Unlike the gotext
// engine every face is parsed and resident; there is nothing to load
// lazily.
type Collection struct {
	mu       sync.RWMutex
	families map[string]*Family
	ordered  []*Face // registration order, scanned by fallback
}

func newCollection() *Collection {
	return &Collection{families: make(map[string]*Family)}
}

// FamilyByName implements engine.Collection. Lookup is case and space
// insensitive.
func (c *Collection) FamilyByName(name string) (engine.Family, bool) {
	c.mu.RLock()
	fam, ok := c.families[font.NormalizeFamily(name)]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fam, true
}

func (c *Collection) add(face *Face) {
	key := font.NormalizeFamily(face.family)
	c.mu.Lock()
	fam := c.families[key]
	if fam == nil {
		fam = &Family{name: key}
		c.families[key] = fam
	}
	c.ordered = append(c.ordered, face)
	c.mu.Unlock()
	fam.add(face)
}

// faces returns the registered faces in registration order.
func (c *Collection) faces() []*Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Face, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Family is a set of faces sharing a normalized family name.
type Family struct {
	name string

	mu    sync.RWMutex
	faces []*Face
}

// Name implements engine.Family.
func (f *Family) Name() string { return f.name }

func (f *Family) add(face *Face) {
	f.mu.Lock()
	f.faces = append(f.faces, face)
	f.mu.Unlock()
}

// members returns the family's faces.
func (f *Family) members() []*Face {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Face, len(f.faces))
	copy(out, f.faces)
	return out
}

// BestMatch implements engine.Family.
func (f *Family) BestMatch(aspect font.Aspect) (engine.Face, error) {
	faces := f.members()
	aspects := make([]font.Aspect, len(faces))
	for i, face := range faces {
		aspects[i] = face.aspect
	}
	i := match.Best(aspect, aspects)
	if i < 0 {
		return nil, fmt.Errorf("ximage: family %q has no faces", f.name)
	}
	return faces[i], nil
}

// Faces implements engine.Family.
func (f *Family) Faces() ([]engine.Face, error) {
	faces := f.members()
	out := make([]engine.Face, len(faces))
	for i, face := range faces {
		out[i] = face
	}
	return out, nil
}
