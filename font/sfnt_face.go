package font

import "fmt"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/andrewrk/genesis/fract"
import "github.com/andrewrk/genesis/mask"

var _ Face = (*SFNTFace)(nil)
var _ RasterizerSigner = (*SFNTFace)(nil)

// A [Face] backed by an [sfnt.Font]. Outlines are rasterized with
// a [mask.Rasterizer], the [mask.DefaultRasterizer] unless changed.
type SFNTFace struct {
	font *sfnt.Font
	name string
	buffer sfnt.Buffer
	rasterizer mask.Rasterizer
	size int
	ppem fixed.Int26_6
}

// Wraps an already parsed font. The pixel size starts unset.
func NewFace(font *sfnt.Font, name string) *SFNTFace {
	return &SFNTFace{
		font: font,
		name: name,
		rasterizer: &mask.DefaultRasterizer{},
	}
}

// Returns the full name of the font, or the name given on creation.
func (self *SFNTFace) Name() string { return self.name }

// Returns the underlying sfnt font.
func (self *SFNTFace) Font() *sfnt.Font { return self.font }

// Sets the rasterizer used by LoadAndRenderGlyph. A nil rasterizer
// restores the [mask.DefaultRasterizer].
func (self *SFNTFace) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { rasterizer = &mask.DefaultRasterizer{} }
	self.rasterizer = rasterizer
}

// Returns the signature of the current rasterizer. See
// [mask.Rasterizer].Signature().
func (self *SFNTFace) RasterizerSignature() uint64 {
	return self.rasterizer.Signature()
}

// Sets the size in pixels per em. Equivalent to a character size
// of size*64 in 26.6 points at 72 dpi.
func (self *SFNTFace) SetPixelSize(size int) error {
	if size <= 0 { return fmt.Errorf("%w (got %d)", ErrInvalidSize, size) }
	self.size = size
	self.ppem = fixed.I(size)
	return nil
}

func (self *SFNTFace) PixelSize() int { return self.size }

func (self *SFNTFace) CharIndex(codePoint rune) (GlyphIndex, error) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil {
		return 0, fmt.Errorf("font: glyph index for %q: %w", codePoint, err)
	}
	return index, nil
}

func (self *SFNTFace) LoadAndRenderGlyph(index GlyphIndex) (*RasterGlyph, error) {
	if self.size == 0 { return nil, ErrSizeNotSet }

	advance, err := self.font.GlyphAdvance(&self.buffer, index, self.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font: advance for glyph %d: %w", index, err)
	}

	segments, err := self.font.LoadGlyph(&self.buffer, index, self.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("font: load glyph %d: %w", index, err)
	}

	alpha, err := mask.Rasterize(segments, self.rasterizer, fract.Point{})
	if err != nil {
		return nil, fmt.Errorf("font: rasterize glyph %d: %w", index, err)
	}

	glyph := &RasterGlyph{
		AdvanceX: fract.Unit(advance).ToFixed16(),
		Bitmap: Bitmap{ Mode: PixelModeGray },
	}
	if alpha == nil { return glyph, nil } // spaces and empty glyphs

	glyph.Left = alpha.Rect.Min.X
	glyph.Top  = -alpha.Rect.Min.Y
	glyph.Bitmap.Width  = alpha.Rect.Dx()
	glyph.Bitmap.Rows   = alpha.Rect.Dy()
	glyph.Bitmap.Pitch  = alpha.Stride
	glyph.Bitmap.Buffer = alpha.Pix
	return glyph, nil
}

func (self *SFNTFace) Kerning(prev, curr GlyphIndex) (fract.Unit, fract.Unit, error) {
	if self.size == 0 { return 0, 0, ErrSizeNotSet }
	kern, err := self.font.Kern(&self.buffer, prev, curr, self.ppem, xfont.HintingNone)
	if err == sfnt.ErrNotFound { return 0, 0, nil }
	if err != nil {
		return 0, 0, fmt.Errorf("font: kerning between glyphs %d and %d: %w", prev, curr, err)
	}
	return fract.Unit(kern), 0, nil
}

// Returns the ascent, descent and line height of the face at its
// current pixel size, as positive 26.6 values.
func (self *SFNTFace) Metrics() (ascent, descent, lineHeight fract.Unit, err error) {
	if self.size == 0 { return 0, 0, 0, ErrSizeNotSet }
	metrics, err := self.font.Metrics(&self.buffer, self.ppem, xfont.HintingNone)
	if err != nil { return 0, 0, 0, fmt.Errorf("font: metrics: %w", err) }
	return fract.Unit(metrics.Ascent), fract.Unit(metrics.Descent), fract.Unit(metrics.Height), nil
}
