// Package ximage implements the engine contract on top of
// golang.org/x/image/font/sfnt.
//
// The engine has no system font scanner. Its collection starts out with
// the embedded Go fonts (families "Go" and "Go Mono") and grows through
// explicit registration:
//
//	eng := ximage.New()
//	err := eng.AddFontFile("/usr/share/fonts/dejavu/DejaVuSansMono.ttf")
//
// AddFontByName searches the platform font directories for a file name,
// so known system fonts can be pulled in without hardcoded paths.
//
// Everything is resident in memory, which makes the engine a good fit
// for tests and for deployments that ship their fonts. For discovery of
// arbitrary installed families use the gotext engine instead.
package ximage
