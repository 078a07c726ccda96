package cache

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/gfx"

// Identifies a cached glyph. Faces are compared by identity, so the
// same font loaded twice produces distinct keys.
type Key struct {
	Face font.Face
	Size int
	Char rune
}

// The key glyphs are stored under. Faces implementing
// [font.RasterizerSigner] add their current rasterizer signature.
type entryKey struct {
	Key
	signature uint64
}

func (self Key) entry() entryKey {
	var signature uint64
	signer, ok := self.Face.(font.RasterizerSigner)
	if ok { signature = signer.RasterizerSignature() }
	return entryKey{ Key: self, signature: signature }
}

// A rasterized glyph and its metrics, in pixels. Glyphs are shared
// between every user of the cache and must not be modified.
type Glyph struct {
	index    font.GlyphIndex
	width    int
	height   int
	left     int
	top      int
	advanceX float32
	advanceY float32
	texture  gfx.Texture
}

// The glyph index the character resolved to. Index 0 means the
// face doesn't define the character.
func (self *Glyph) Index() font.GlyphIndex { return self.index }

// Bitmap dimensions. Both are zero for empty glyphs like spaces.
func (self *Glyph) Width() int  { return self.width  }
func (self *Glyph) Height() int { return self.height }

// Horizontal offset from the pen position to the bitmap's left edge.
func (self *Glyph) Left() int { return self.left }

// Vertical offset from the baseline to the bitmap's top edge,
// positive upwards.
func (self *Glyph) Top() int { return self.top }

func (self *Glyph) AdvanceX() float32 { return self.advanceX }
func (self *Glyph) AdvanceY() float32 { return self.advanceY }

// The glyph coverage texture, or nil if the bitmap is empty.
func (self *Glyph) Texture() gfx.Texture { return self.texture }

// Based on Ebitengine internals: RGBA texels plus some image
// bookkeeping per texture.
const constTextureSizeFactor = 192

// Returns an approximation of the bytes used by the glyph texture.
func (self *Glyph) byteSize() uint64 {
	if self.texture == nil { return 0 }
	return uint64(self.width*self.height)*4 + constTextureSizeFactor
}
