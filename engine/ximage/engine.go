package ximage

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/crossglyph/crossglyph/engine"
)

var _ engine.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithBuiltinFonts controls whether the collection is seeded with the
// embedded Go fonts. Defaults to true.
func WithBuiltinFonts(enabled bool) Option {
	return func(e *Engine) { e.builtin = enabled }
}

// Engine rasterizes fonts with golang.org/x/image/font/sfnt. It carries
// no system font scanner; fonts are registered explicitly through
// AddFont, AddFontFile and AddFontByName on top of the embedded Go
// fonts.
type Engine struct {
	log     atomic.Pointer[slog.Logger]
	builtin bool

	mu         sync.Mutex
	collection *Collection
	collErr    error
	fallback   *Fallback
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{builtin: true}
	e.log.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	sharedOnce sync.Once
	shared     *Engine
)

// Shared returns a process wide Engine with default options.
func Shared() *Engine {
	sharedOnce.Do(func() { shared = New() })
	return shared
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "ximage" }

// SetLogger routes the engine's diagnostics to log. A nil logger
// silences them.
func (e *Engine) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e.log.Store(log)
}

func (e *Engine) logger() *slog.Logger { return e.log.Load() }

// AddFont registers every font contained in an OpenType font or
// collection blob.
func (e *Engine) AddFont(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	col, err := e.ensureLocked()
	if err != nil {
		return err
	}
	return e.addLocked(col, data)
}

// AddFontFile registers every font contained in the file at path.
func (e *Engine) AddFontFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ximage: %w", err)
	}
	return e.AddFont(data)
}

// AddFontByName searches the platform font directories for a font file
// with the given name, like "DejaVuSansMono.ttf", and registers it.
func (e *Engine) AddFontByName(name string) error {
	path, err := findfont.Find(name)
	if err != nil {
		return fmt.Errorf("ximage: find font %q: %w", name, err)
	}
	e.logger().Debug("ximage: found font file", "name", name, "path", path)
	return e.AddFontFile(path)
}

// SystemCollection implements engine.Engine.
func (e *Engine) SystemCollection() (engine.Collection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	col, err := e.ensureLocked()
	if err != nil {
		return nil, err
	}
	return col, nil
}

// SystemFallback implements engine.Engine.
func (e *Engine) SystemFallback() (engine.Fallback, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.ensureLocked(); err != nil {
		return nil, false
	}
	return e.fallback, true
}

// ensureLocked builds the collection on first use, seeding it with the
// embedded Go fonts unless disabled. Callers hold e.mu.
func (e *Engine) ensureLocked() (*Collection, error) {
	if e.collection != nil || e.collErr != nil {
		return e.collection, e.collErr
	}

	col := newCollection()
	if e.builtin {
		for _, data := range [][]byte{
			goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF, gomono.TTF,
		} {
			if err := e.addLocked(col, data); err != nil {
				e.collErr = fmt.Errorf("ximage: builtin font: %w", err)
				return nil, e.collErr
			}
		}
	}
	e.collection = col
	e.fallback = &Fallback{col: col}
	return col, nil
}

// addLocked parses a blob and registers its faces, all or nothing.
func (e *Engine) addLocked(col *Collection, data []byte) error {
	sc, err := sfnt.ParseCollection(data)
	if err != nil {
		return fmt.Errorf("ximage: parse font: %w", err)
	}
	n := sc.NumFonts()
	faces := make([]*Face, 0, n)
	for i := 0; i < n; i++ {
		ft, err := sc.Font(i)
		if err != nil {
			return fmt.Errorf("ximage: font %d of %d: %w", i, n, err)
		}
		face, err := newFace(ft, data, i)
		if err != nil {
			return fmt.Errorf("ximage: font %d of %d: %w", i, n, err)
		}
		faces = append(faces, face)
	}
	for _, face := range faces {
		col.add(face)
		e.logger().Debug("ximage: registered face",
			"family", face.family, "face", face.subfamily)
	}
	return nil
}
