package cache

import "fmt"

import "github.com/golang/glog"

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/gfx"

// Printable ASCII characters, useful with [GlyphCache.Preload]().
const ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Cache counters, as returned by [GlyphCache.Stats]().
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
	TextureBytes uint64 // approximate
}

// The glyph cache maps (face, size, character) keys to rasterized
// glyphs, creating them on first use. Glyph textures are owned by the
// cache and released on [GlyphCache.Dispose]().
//
// The cache is not safe for concurrent use.
type GlyphCache struct {
	device gfx.Device
	glyphs map[entryKey]*Glyph
	hits   uint64
	misses uint64
	textureBytes uint64
}

// Creates an empty cache that uploads glyph textures to the given device.
func New(device gfx.Device) *GlyphCache {
	return &GlyphCache{
		device: device,
		glyphs: make(map[entryKey]*Glyph, 128),
	}
}

// Returns the glyph for the given key, rasterizing it if it's not
// cached yet. On failure nothing is cached and the error is returned.
//
// Since the pixel size is shared state of the face, it's applied
// again on every miss before asking the face for anything. Faces
// implementing [font.RasterizerSigner] get separate entries for
// each rasterizer signature.
func (self *GlyphCache) Get(key Key) (*Glyph, error) {
	entry := key.entry()
	glyph, found := self.glyphs[entry]
	if found {
		self.hits += 1
		return glyph, nil
	}

	glyph, err := self.load(key)
	if err != nil { return nil, err }
	self.misses += 1
	self.glyphs[entry] = glyph
	self.textureBytes += glyph.byteSize()
	if glog.V(2) {
		glog.Infof("cache: miss %q size %d (index %d, %dx%d), %d entries",
			key.Char, key.Size, glyph.index, glyph.width, glyph.height, len(self.glyphs))
	}
	return glyph, nil
}

func (self *GlyphCache) load(key Key) (*Glyph, error) {
	err := key.Face.SetPixelSize(key.Size)
	if err != nil { return nil, fmt.Errorf("cache: set pixel size %d: %w", key.Size, err) }

	index, err := key.Face.CharIndex(key.Char)
	if err != nil { return nil, fmt.Errorf("cache: char %q: %w", key.Char, err) }

	raster, err := key.Face.LoadAndRenderGlyph(index)
	if err != nil { return nil, fmt.Errorf("cache: render %q: %w", key.Char, err) }

	alpha, err := bitmapToAlpha(&raster.Bitmap)
	if err != nil { return nil, fmt.Errorf("cache: glyph %q: %w", key.Char, err) }

	glyph := &Glyph{
		index:    index,
		left:     raster.Left,
		top:      raster.Top,
		advanceX: raster.AdvanceX.ToFloat32(),
		advanceY: raster.AdvanceY.ToFloat32(),
	}
	if alpha == nil { return glyph, nil } // spaces and empty glyphs

	glyph.texture, err = self.device.NewAlphaTexture(alpha)
	if err != nil { return nil, fmt.Errorf("cache: upload %q: %w", key.Char, err) }
	glyph.width  = raster.Bitmap.Width
	glyph.height = raster.Bitmap.Rows
	return glyph, nil
}

// Rasterizes all the given characters for the face at the given size.
// Characters already cached are skipped.
func (self *GlyphCache) Preload(face font.Face, size int, chars string) error {
	for _, char := range chars {
		_, err := self.Get(Key{ Face: face, Size: size, Char: char })
		if err != nil { return err }
	}
	return nil
}

// Returns the number of cached glyphs.
func (self *GlyphCache) Len() int { return len(self.glyphs) }

// Returns the cache counters.
func (self *GlyphCache) Stats() Stats {
	return Stats{
		Hits: self.hits,
		Misses: self.misses,
		Entries: len(self.glyphs),
		TextureBytes: self.textureBytes,
	}
}

// Removes every glyph cached for the given face, releasing their
// textures. Returns the number of glyphs removed.
func (self *GlyphCache) Purge(face font.Face) int {
	var removed int
	for entry, glyph := range self.glyphs {
		if entry.Face != face { continue }
		if glyph.texture != nil {
			glyph.texture.Dispose()
			self.textureBytes -= glyph.byteSize()
		}
		delete(self.glyphs, entry)
		removed += 1
	}
	return removed
}

// Releases every glyph texture and empties the cache. Glyphs obtained
// before must not be used afterwards. The cache can still be used.
func (self *GlyphCache) Dispose() {
	for key, glyph := range self.glyphs {
		if glyph.texture != nil { glyph.texture.Dispose() }
		delete(self.glyphs, key)
	}
	self.textureBytes = 0
}
