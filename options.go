package crossglyph

import "github.com/crossglyph/crossglyph/engine"

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Default engine, grayscale rendering
//	r, err := crossglyph.New()
//
//	// Embedded-font engine with subpixel rendering
//	r, err := crossglyph.New(
//	    crossglyph.WithEngineName("ximage"),
//	    crossglyph.WithRenderingMode(crossglyph.RenderingSubpixel),
//	)
type Option func(*config)

// config holds optional configuration for Rasterizer creation.
type config struct {
	engine      engine.Engine
	engineName  string
	mode        RenderingMode
	gridFitting bool
}

// defaultConfig returns the default rasterizer configuration.
func defaultConfig() config {
	return config{
		engineName: defaultEngineName,
		mode:       RenderingGrayscale,
	}
}

// WithEngine injects a specific engine instance, bypassing the registry.
// Use this for dependency injection of custom or fake engines.
func WithEngine(eng engine.Engine) Option {
	return func(c *config) {
		c.engine = eng
	}
}

// WithEngineName selects a registered engine by name. See RegisterEngine
// for the registry; "gotext" and "ximage" are built in.
func WithEngineName(name string) Option {
	return func(c *config) {
		c.engineName = name
	}
}

// WithRenderingMode sets the initial rendering mode. The default is
// RenderingGrayscale; SetRenderingMode changes it later.
func WithRenderingMode(mode RenderingMode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithGridFitting sets the initial grid fitting state. The default is
// off; SetGridFitting changes it later.
func WithGridFitting(enabled bool) Option {
	return func(c *config) {
		c.gridFitting = enabled
	}
}
