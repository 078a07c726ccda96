package genesis

import "fmt"

import "github.com/golang/glog"

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/gfx"
import "github.com/andrewrk/genesis/mask"
import "github.com/andrewrk/genesis/cache"

// The [TextRenderer] owns everything labels share: the device, the
// glyph cache, the compiled programs and the library of loaded faces.
// It holds no per-label state.
type TextRenderer struct {
	device gfx.Device
	cache *cache.GlyphCache
	library *font.Library
	rasterizer mask.Rasterizer // nil for each face's default
	glyphProgram gfx.Program
	textureProgram gfx.Program
}

// Creates a text renderer drawing through the given device. Both
// fragment programs are compiled immediately.
func NewTextRenderer(device gfx.Device) (*TextRenderer, error) {
	glyphProgram, err := device.CompileProgram(gfx.ProgramGlyph)
	if err != nil { return nil, fmt.Errorf("genesis: %w", err) }
	textureProgram, err := device.CompileProgram(gfx.ProgramTexture)
	if err != nil {
		glyphProgram.Dispose()
		return nil, fmt.Errorf("genesis: %w", err)
	}

	return &TextRenderer{
		device: device,
		cache: cache.New(device),
		library: font.NewLibrary(),
		glyphProgram: glyphProgram,
		textureProgram: textureProgram,
	}, nil
}

// Loads the first face of the font file at the given path. Loading the
// same path again returns the same face, sharing its cached glyphs.
func (self *TextRenderer) LoadFace(path string) (font.Face, error) {
	return self.LoadFaceIndex(path, 0)
}

// Like [TextRenderer.LoadFace](), but for a specific face of a font
// collection (.ttc, .otc).
func (self *TextRenderer) LoadFaceIndex(path string, index int) (font.Face, error) {
	face, err := self.library.Load(path, index)
	if err != nil { return nil, err }
	if self.rasterizer != nil { face.SetRasterizer(self.rasterizer) }
	return face, nil
}

// Loads a face from raw font bytes. The name identifies the font in
// the renderer library, so the same name returns the same face.
func (self *TextRenderer) LoadFaceFromBytes(name string, fontBytes []byte) (font.Face, error) {
	face, err := self.library.LoadFromBytes(name, fontBytes, 0)
	if err != nil { return nil, err }
	if self.rasterizer != nil { face.SetRasterizer(self.rasterizer) }
	return face, nil
}

// Removes the face from the renderer library and releases its cached
// glyphs. Labels still using the face keep working, but rasterize its
// glyphs again. Returns false if the face wasn't loaded through the
// renderer.
func (self *TextRenderer) UnloadFace(face font.Face) bool {
	var key string
	var found bool
	_ = self.library.EachFace(func(faceKey string, loaded *font.SFNTFace) error {
		if font.Face(loaded) != face { return nil }
		key, found = faceKey, true
		return font.ErrBreakEach
	})
	if !found { return false }

	self.library.Remove(key)
	purged := self.cache.Purge(face)
	if glog.V(1) {
		glog.Infof("unloaded face %q, %d glyphs released", key, purged)
	}
	return true
}

// Sets the rasterizer used by every face loaded through the renderer,
// including faces loaded later. A nil rasterizer restores the default.
// Glyphs cached under the previous rasterizer are kept.
//
// Rasterizers are shared between faces, so they can't be used by
// more than one renderer concurrently.
func (self *TextRenderer) SetRasterizer(rasterizer mask.Rasterizer) {
	self.rasterizer = rasterizer
	_ = self.library.EachFace(func(_ string, face *font.SFNTFace) error {
		face.SetRasterizer(rasterizer)
		return nil
	})
}

// Creates a label with the default text, size and color.
func (self *TextRenderer) CreateLabel(face font.Face) *Label {
	return newLabel(self, face)
}

// Rasterizes printable ASCII for the given face and size in advance.
func (self *TextRenderer) Preload(face font.Face, size int) error {
	return self.cache.Preload(face, size, cache.ASCII)
}

func (self *TextRenderer) Cache() *cache.GlyphCache { return self.cache }
func (self *TextRenderer) Device() gfx.Device { return self.device }
func (self *TextRenderer) Library() *font.Library { return self.library }

// Releases the glyph textures and the programs. Labels created by
// the renderer must not be updated or drawn afterwards.
func (self *TextRenderer) Dispose() {
	self.cache.Dispose()
	self.glyphProgram.Dispose()
	self.textureProgram.Dispose()
}
