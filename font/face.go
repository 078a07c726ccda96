package font

import "errors"

import "golang.org/x/image/font/sfnt"
import "github.com/andrewrk/genesis/fract"

// Index of a glyph within a face. Index 0 is the ".notdef" glyph,
// which faces use for characters they don't define.
type GlyphIndex = sfnt.GlyphIndex

// Pixel layout of a rasterized glyph [Bitmap].
type PixelMode uint8

const (
	PixelModeNone PixelMode = iota
	PixelModeMono  // 1 bit per pixel
	PixelModeGray  // 8 bits of coverage per pixel
	PixelModeBGRA  // color glyphs
)

func (self PixelMode) String() string {
	switch self {
	case PixelModeNone: return "none"
	case PixelModeMono: return "mono"
	case PixelModeGray: return "gray"
	case PixelModeBGRA: return "bgra"
	default:
		return "unknown"
	}
}

// A rasterized glyph bitmap. Rows are Pitch bytes apart; a negative
// pitch means the rows flow upwards (the first row in Buffer is the
// bottom one).
type Bitmap struct {
	Width  int
	Rows   int
	Pitch  int
	Mode   PixelMode
	Buffer []byte
}

// The result of rendering a glyph at the face's current pixel size.
type RasterGlyph struct {
	// Offsets from the pen origin to the top-left corner of the
	// bitmap. Top is positive above the baseline.
	Left int
	Top  int

	// Pen displacement after drawing the glyph.
	AdvanceX fract.Fixed16
	AdvanceY fract.Fixed16

	Bitmap Bitmap
}

// Face is a loaded font capable of producing glyphs at a given pixel
// size. The pixel size is face-global state: SetPixelSize must be applied
// before glyph metrics are requested, and is idempotent.
//
// Faces are compared by identity, so implementations must be pointer
// types. Faces can't be used concurrently.
type Face interface {
	SetPixelSize(size int) error
	PixelSize() int

	// Resolves a character through the face's character map. Missing
	// characters resolve to index 0 without error.
	CharIndex(codePoint rune) (GlyphIndex, error)

	// Rasterizes the given glyph at the current pixel size.
	LoadAndRenderGlyph(index GlyphIndex) (*RasterGlyph, error)

	// Returns the kerning adjustment between two glyphs at the
	// current pixel size, in 26.6 pixels.
	Kerning(prev, curr GlyphIndex) (dx, dy fract.Unit, err error)
}

// Implemented by faces whose glyph masks depend on a configurable
// rasterizer. Glyph caches must keep masks produced under different
// signatures apart.
type RasterizerSigner interface {
	RasterizerSignature() uint64
}

var ErrInvalidSize = errors.New("font: pixel size must be positive")
var ErrSizeNotSet  = errors.New("font: pixel size not set")
