// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into 8-bit coverage masks, and provides a default
// implementation built on top of [golang.org/x/image/vector].
//
// Font faces extract glyphs as outlines (sets of lines and curves) and
// hand them to a rasterizer, which draws them into an [image.Alpha]
// positioned relative to the glyph origin: y = 0 is the baseline, y < 0
// corresponds to the ascending portions and y > 0 to the descending ones.
package mask
