// Package fuzztests holds fuzz targets for the input boundaries of the
// pipeline: the type comment parser and the raw tree dump decoder.
// Targets assert absence of panics and hangs, not output shape.
package fuzztests
