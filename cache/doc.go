// The cache subpackage provides the [GlyphCache], which rasterizes
// glyphs on demand and keeps their textures alive for the lifetime
// of the cache.
//
// Glyph rasterization and texture uploads are expensive, so every
// (face, pixel size, character) triple is rendered at most once.
// Entries are never evicted: the set of faces, sizes and characters
// used by a waveform viewer is small and stable, and [GlyphCache.Stats]
// can be used to keep an eye on growth.
package cache
