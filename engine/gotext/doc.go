// Package gotext implements the crossglyph text engine on top of
// go-text/typesetting. It is the default engine on every platform.
//
// The system font collection comes from fontscan's font directory scan,
// cached in the user cache directory. Faces load lazily: a family keeps
// footprints until a face is actually requested. Fallback mapping runs on
// a fontscan font map queried per character.
//
// Fonts can also be registered directly:
//
//	eng := gotext.New()
//	if err := eng.AddFont(fontBytes); err != nil {
//	    log.Fatal(err)
//	}
//
// Registered fonts join both the collection and the fallback index, and
// engines built with WithSystemFonts(false) see only them, which keeps
// tests independent of the host's fonts.
package gotext
