// The fract subpackage defines the fixed point types used at the
// boundary between font data and the layout engine.
//
// Font rasterizers report most metrics in one of two fixed point
// formats:
//  - [Unit], a 26.6 value (64ths of a pixel). Kerning, bearings and
//    outline coordinates use it. The internal representation is
//    compatible with [golang.org/x/image/math/fixed.Int26_6].
//  - [Fixed16], a 16.16 value (65536ths of a pixel). Glyph advances
//    are reported with it, like FreeType's glyph advance vectors.
//
// Additionally, the subpackage defines the [Point] and [Rect] helper
// types used by mask rasterizers.
package fract
