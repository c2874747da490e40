package gotext

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/internal/match"
)

var (
	_ engine.Collection = (*Collection)(nil)
	_ engine.Family     = (*Family)(nil)
)

// Collection indexes families by normalized name. System faces stay on
// disk until a family resolves them; registered faces are held loaded.
type Collection struct {
	mu       sync.RWMutex
	families map[string]*Family
}

func newCollection() *Collection {
	return &Collection{families: make(map[string]*Family)}
}

// FamilyByName implements engine.Collection.
func (c *Collection) FamilyByName(name string) (engine.Family, bool) {
	c.mu.RLock()
	fam, ok := c.families[font.NormalizeFamily(name)]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fam, true
}

func (c *Collection) addFootprints(footprints []fontscan.Footprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range footprints {
		fp := &footprints[i]
		c.family(fp.Family).add(faceEntry{fp: fp})
	}
}

func (c *Collection) addFaces(faces []*Face) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range faces {
		c.family(font.NormalizeFamily(f.family)).add(faceEntry{face: f})
	}
}

// family returns the named family, creating it if needed. Called with
// c.mu held.
func (c *Collection) family(normalized string) *Family {
	fam, ok := c.families[normalized]
	if !ok {
		fam = &Family{name: normalized}
		c.families[normalized] = fam
	}
	return fam
}

// faceEntry is one face of a family: a system footprint loaded on demand,
// or an already loaded registered face.
type faceEntry struct {
	fp   *fontscan.Footprint
	face *Face
}

func (fe *faceEntry) aspect() font.Aspect {
	if fe.face != nil {
		return fe.face.aspect
	}
	return fe.fp.Aspect
}

// Family is a group of faces sharing a normalized family name.
type Family struct {
	name string

	mu      sync.Mutex
	entries []faceEntry
}

// Name implements engine.Family. The name is normalized: lower case with
// spacing folded, the way the font index stores it.
func (f *Family) Name() string { return f.name }

func (f *Family) add(fe faceEntry) {
	f.mu.Lock()
	f.entries = append(f.entries, fe)
	f.mu.Unlock()
}

// BestMatch implements engine.Family.
func (f *Family) BestMatch(aspect font.Aspect) (engine.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	aspects := make([]font.Aspect, len(f.entries))
	for i := range f.entries {
		aspects[i] = f.entries[i].aspect()
	}
	best := match.Best(aspect, aspects)
	if best < 0 {
		return nil, fmt.Errorf("gotext: family %q has no faces", f.name)
	}
	return f.load(best)
}

// Faces implements engine.Family. Faces that fail to load are skipped;
// loading fails only when no face of the family is usable.
func (f *Family) Faces() ([]engine.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var (
		faces   []engine.Face
		lastErr error
	)
	for i := range f.entries {
		face, err := f.load(i)
		if err != nil {
			lastErr = err
			continue
		}
		faces = append(faces, face)
	}
	if len(faces) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return faces, nil
}

// load resolves entry i, reading it from disk on first use. Called with
// f.mu held.
func (f *Family) load(i int) (*Face, error) {
	fe := &f.entries[i]
	if fe.face == nil {
		face, err := loadFaceFromDisk(fe.fp)
		if err != nil {
			return nil, err
		}
		fe.face = face
	}
	return fe.face, nil
}

// loadFaceFromDisk opens the footprint's font file and loads the face it
// points at.
func loadFaceFromDisk(fp *fontscan.Footprint) (*Face, error) {
	location := fp.Location

	file, err := os.Open(location.File)
	if err != nil {
		return nil, fmt.Errorf("gotext: opening font file: %w", err)
	}
	defer file.Close()

	loaders, err := ot.NewLoaders(file)
	if err != nil {
		return nil, fmt.Errorf("gotext: parsing %s: %w", location.File, err)
	}
	if index := int(location.Index); index >= len(loaders) {
		return nil, fmt.Errorf("gotext: %s: face index %d out of range (%d faces)",
			location.File, index, len(loaders))
	}

	ld := loaders[location.Index]
	desc, _ := font.Describe(ld, nil)
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("gotext: reading %s: %w", location.File, err)
	}
	return newFace(ft, ld, desc.Family, desc.Aspect), nil
}
