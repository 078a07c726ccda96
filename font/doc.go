// The font subpackage defines the [Face] capability consumed by the glyph
// cache and the layout engine, and provides an implementation on top of
// [golang.org/x/image/font/sfnt] together with a small [Library] to keep
// loaded faces accessible by path.
package font
