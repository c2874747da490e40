package crossglyph

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/crossglyph/crossglyph/engine"
	"github.com/crossglyph/crossglyph/engine/gotext"
	"github.com/crossglyph/crossglyph/engine/ximage"
)

// defaultEngineName is the engine used when no option overrides it.
const defaultEngineName = "gotext"

// engineRegistry maps engine names to openers. The built-in openers
// return process-shared instances so the expensive system font scan
// happens at most once per process.
var (
	enginesMu      sync.Mutex
	engineRegistry = map[string]func() engine.Engine{
		"gotext": func() engine.Engine { return gotext.Shared() },
		"ximage": func() engine.Engine { return ximage.Shared() },
	}
	openedEngines []engine.Engine
)

// RegisterEngine registers a custom engine opener under name, replacing
// any existing registration. Call it from an init function, before
// rasterizers referencing the name are created.
func RegisterEngine(name string, opener func() engine.Engine) {
	enginesMu.Lock()
	engineRegistry[name] = opener
	enginesMu.Unlock()
}

// openEngine resolves a registry name to an engine instance.
func openEngine(name string) (engine.Engine, error) {
	enginesMu.Lock()
	opener, ok := engineRegistry[name]
	enginesMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("crossglyph: unknown engine %q", name)
	}
	eng := opener()
	trackEngine(eng)
	return eng, nil
}

// trackEngine remembers an engine so SetLogger reaches it later, and
// hands it the current logger.
func trackEngine(eng engine.Engine) {
	if eng == nil {
		return
	}
	enginesMu.Lock()
	known := false
	for _, e := range openedEngines {
		if e == eng {
			known = true
			break
		}
	}
	if !known {
		openedEngines = append(openedEngines, eng)
	}
	enginesMu.Unlock()
	propagateLogger(eng, Logger())
}

// loggerSetter is implemented by engines that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to an engine if it implements the
// loggerSetter interface. Called from both SetLogger and trackEngine so
// engines always see the current logger.
func propagateLogger(eng engine.Engine, l *slog.Logger) {
	if ls, ok := eng.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
