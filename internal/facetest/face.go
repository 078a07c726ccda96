// Package facetest provides a scriptable [font.Face] with simple box
// glyphs, so cache and layout behavior can be tested without relying
// on the metrics of a real font.
package facetest

import "errors"

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/fract"

// A box glyph description, in pixels. Pitch 0 means pitch = width.
type Glyph struct {
	Left, Top     int
	Width, Rows   int
	Pitch         int
	Advance       float64
	Mode          font.PixelMode
	Coverage      uint8
}

// A fake face. Characters present in Glyphs map to their code point as
// glyph index, everything else maps to index 0 and renders Notdef.
type Face struct {
	Glyphs map[rune]Glyph
	Notdef Glyph
	Kerns  map[[2]rune]float64

	// When set, returned by LoadAndRenderGlyph.
	RenderErr error

	// Reported as the rasterizer signature.
	Signature uint64

	size int

	// Call counters and the size active on each render.
	SizeCalls     int
	IndexCalls    int
	RenderCalls   int
	RenderedSizes []int
}

var _ font.Face = (*Face)(nil)
var _ font.RasterizerSigner = (*Face)(nil)

var ErrStub = errors.New("facetest: stub failure")

// Creates a face where printable ASCII characters are boxes of
// 8x10 pixels sitting on the baseline with an advance of 8, except
// 'g', 'p', 'q', 'y' and 'j', which descend 3 pixels, and ' ', which
// is empty. No pixel size is set.
func New() *Face {
	face := &Face{
		Glyphs: make(map[rune]Glyph, 95),
		Kerns:  make(map[[2]rune]float64),
		Notdef: Glyph{ Top: 10, Width: 8, Rows: 10, Advance: 9, Mode: font.PixelModeGray, Coverage: 255 },
	}
	for char := rune(33); char < 127; char++ {
		glyph := Glyph{ Top: 10, Width: 8, Rows: 10, Advance: 8, Mode: font.PixelModeGray, Coverage: 255 }
		switch char {
		case 'g', 'p', 'q', 'y', 'j':
			glyph.Top = 7
		}
		face.Glyphs[char] = glyph
	}
	face.Glyphs[' '] = Glyph{ Advance: 4, Mode: font.PixelModeGray }
	return face
}

func (self *Face) SetPixelSize(size int) error {
	self.SizeCalls += 1
	if size <= 0 { return font.ErrInvalidSize }
	self.size = size
	return nil
}

func (self *Face) PixelSize() int { return self.size }

func (self *Face) CharIndex(codePoint rune) (font.GlyphIndex, error) {
	self.IndexCalls += 1
	if codePoint > 0xFFFF { return 0, nil }
	_, found := self.Glyphs[codePoint]
	if !found { return 0, nil }
	return font.GlyphIndex(codePoint), nil
}

func (self *Face) LoadAndRenderGlyph(index font.GlyphIndex) (*font.RasterGlyph, error) {
	self.RenderCalls += 1
	self.RenderedSizes = append(self.RenderedSizes, self.size)
	if self.RenderErr != nil { return nil, self.RenderErr }
	if self.size == 0 { return nil, font.ErrSizeNotSet }

	glyph, found := self.Glyphs[rune(index)]
	if index == 0 || !found { glyph = self.Notdef }

	pitch := glyph.Pitch
	if pitch == 0 { pitch = glyph.Width }
	bufferLen := pitch*glyph.Rows
	if bufferLen < 0 { bufferLen = -bufferLen }
	buffer := make([]byte, bufferLen)
	for row := 0; row < glyph.Rows; row++ {
		start := row*pitch
		if start < 0 { start = -start }
		for x := 0; x < glyph.Width && start + x < len(buffer); x++ {
			buffer[start + x] = glyph.Coverage
		}
	}

	return &font.RasterGlyph{
		Left: glyph.Left,
		Top:  glyph.Top,
		AdvanceX: fract.FromFloat64Up(glyph.Advance).ToFixed16(),
		Bitmap: font.Bitmap{
			Width: glyph.Width,
			Rows:  glyph.Rows,
			Pitch: pitch,
			Mode:  glyph.Mode,
			Buffer: buffer,
		},
	}, nil
}

func (self *Face) RasterizerSignature() uint64 { return self.Signature }

func (self *Face) Kerning(prev, curr font.GlyphIndex) (fract.Unit, fract.Unit, error) {
	if self.size == 0 { return 0, 0, font.ErrSizeNotSet }
	kern := self.Kerns[[2]rune{rune(prev), rune(curr)}]
	return fract.FromFloat64Up(kern), 0, nil
}
