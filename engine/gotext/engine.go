package gotext

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"

	"github.com/crossglyph/crossglyph/engine"
)

// Option configures an Engine.
type Option func(*Engine)

// WithSystemFonts controls whether the engine scans the system font
// directories. It is enabled by default; disabling it restricts the
// engine to fonts registered with AddFont, which keeps tests hermetic.
func WithSystemFonts(enabled bool) Option {
	return func(e *Engine) {
		e.systemFonts = enabled
	}
}

var _ engine.Engine = (*Engine)(nil)

// Engine is a text engine backed by go-text/typesetting. The system font
// collection and the fallback index are built lazily on first use and
// cached for the engine's lifetime.
type Engine struct {
	log         atomic.Pointer[slog.Logger]
	systemFonts bool

	mu         sync.Mutex
	user       []userFont
	userSeq    int
	collection *Collection
	collErr    error
	fallback   *Fallback
}

// userFont is one font file registered with AddFont.
type userFont struct {
	id    string
	data  []byte
	faces []*Face
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{systemFonts: true}
	e.log.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	shared     *Engine
	sharedOnce sync.Once
)

// Shared returns the process-wide engine, creating it on first use.
// Sharing one engine amortizes the system font scan across callers.
func Shared() *Engine {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "gotext" }

// SetLogger sets the logger for the engine's diagnostics. Pass nil to
// silence it.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	e.log.Store(l)
}

func (e *Engine) logger() *slog.Logger { return e.log.Load() }

// AddFont registers the faces of an OpenType font file (TTF, OTF or TTC)
// with the engine, making them available to both the collection and
// fallback mapping.
func (e *Engine) AddFont(data []byte) error {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gotext: parsing font: %w", err)
	}

	uf := userFont{data: data}
	for _, ld := range loaders {
		desc, _ := font.Describe(ld, nil)
		ft, err := font.NewFont(ld)
		if err != nil {
			return fmt.Errorf("gotext: reading font %q: %w", desc.Family, err)
		}
		uf.faces = append(uf.faces, newFace(ft, ld, desc.Family, desc.Aspect))
	}
	if len(uf.faces) == 0 {
		return fmt.Errorf("gotext: font file contains no faces")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.userSeq++
	uf.id = fmt.Sprintf("user:%d", e.userSeq)
	e.user = append(e.user, uf)

	// Extend the structures that are already built; the rest pick the
	// font up when they are.
	if e.collection != nil {
		e.collection.addFaces(uf.faces)
	}
	if e.fallback != nil {
		if err := e.fallback.addFont(uf); err != nil {
			return err
		}
	}
	return nil
}

// SystemCollection implements engine.Engine.
func (e *Engine) SystemCollection() (engine.Collection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.collection == nil && e.collErr == nil {
		e.collection, e.collErr = e.buildCollection()
	}
	if e.collErr != nil {
		return nil, e.collErr
	}
	return e.collection, nil
}

// buildCollection scans the system fonts once and folds in the fonts
// registered so far. Called with e.mu held.
func (e *Engine) buildCollection() (*Collection, error) {
	col := newCollection()

	if e.systemFonts {
		footprints, err := fontscan.SystemFonts(scanLogger{e.logger()}, fontCacheDir(e.logger()))
		if err != nil {
			if len(e.user) == 0 {
				return nil, fmt.Errorf("gotext: scanning system fonts: %w", err)
			}
			e.logger().Warn("system font scan failed, using registered fonts only", "error", err)
		}
		col.addFootprints(footprints)
		e.logger().Debug("system fonts scanned", "fonts", len(footprints))
	}
	for _, uf := range e.user {
		col.addFaces(uf.faces)
	}
	return col, nil
}

// SystemFallback implements engine.Engine.
func (e *Engine) SystemFallback() (engine.Fallback, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.fallback == nil {
		fm := fontscan.NewFontMap(scanLogger{e.logger()})
		if e.systemFonts {
			if err := fm.UseSystemFonts(fontCacheDir(e.logger())); err != nil {
				e.logger().Warn("fallback index unavailable", "error", err)
			}
		}
		e.fallback = &Fallback{fontMap: fm}
		for _, uf := range e.user {
			if err := e.fallback.addFont(uf); err != nil {
				e.logger().Warn("registering font for fallback", "error", err)
			}
		}
	}
	return e.fallback, true
}

// fontCacheDir returns the directory for the font index cache, or the
// empty string when the platform has none.
func fontCacheDir(log *slog.Logger) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Warn("resolving font cache dir", "error", err)
		return ""
	}
	return dir
}

// scanLogger adapts the engine logger to fontscan's Printf logger.
type scanLogger struct {
	log *slog.Logger
}

func (l scanLogger) Printf(format string, args ...any) {
	l.log.Debug("fontscan: " + fmt.Sprintf(format, args...))
}
