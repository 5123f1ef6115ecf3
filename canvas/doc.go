// Package canvas provides drawing surfaces for the fractal renderer and the
// loader for background images.
//
// [Raster] draws with fogleman/gg and encodes to PNG. [Vector] streams SVG
// through ajstarks/svgo. Both follow 2D canvas semantics: path calls
// accumulate until the next BeginPath, and Stroke and Fill leave the path in
// place so a triangle can be outlined and then filled.
package canvas
