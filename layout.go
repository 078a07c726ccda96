package genesis

import "fmt"

import "github.com/chewxy/math32"
import ml "github.com/go-gl/mathgl/mgl32"

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/cache"

// The source of glyphs used for layout. Implemented by [*cache.GlyphCache].
type GlyphSource interface {
	Get(key cache.Key) (*cache.Glyph, error)
}

var _ GlyphSource = (*cache.GlyphCache)(nil)

// The position of a single glyph within a [Layout].
type Placement struct {
	Glyph *cache.Glyph

	// Pen position before drawing the glyph, relative to the
	// starting point on the baseline. Y grows upwards.
	Pen ml.Vec2

	// Top-left corner of the glyph bitmap in the layout box, which
	// has its origin at the top-left and grows downwards.
	Min ml.Vec2
}

// Bottom-right corner of the glyph bitmap in the layout box.
func (self *Placement) Max() ml.Vec2 {
	size := ml.Vec2{ float32(self.Glyph.Width()), float32(self.Glyph.Height()) }
	return self.Min.Add(size)
}

// The result of laying out a string. Both measuring and drawing
// text consume layouts, so they can't disagree with each other.
type Layout struct {
	Placements []Placement

	// Box size in whole pixels.
	Width  int
	Height int

	// Extents above and below the baseline, as the maximum of all
	// the glyphs in the string. Height = ceil(Above + Below).
	Above float32
	Below float32
}

// Baseline position within the layout box, from its top.
func (self *Layout) Baseline() float32 { return self.Above }

// Lays out the given text in a single line, from left to right.
//
// Glyphs are fetched from the given source with keys for the given
// face and size. The face is set to the given size before anything
// else, which is also necessary for the kerning queries.
//
// If some glyph extends to the left of the starting pen position,
// the whole layout is shifted right so every glyph fits in the box.
func Measure(glyphs GlyphSource, face font.Face, size int, text string) (*Layout, error) {
	err := face.SetPixelSize(size)
	if err != nil { return nil, fmt.Errorf("genesis: measure: %w", err) }

	layout := &Layout{}
	if text == "" { return layout, nil }

	var penX, penY float32
	var extent, minLeft float32
	var prevIndex font.GlyphIndex
	first := true
	for _, char := range text {
		glyph, err := glyphs.Get(cache.Key{ Face: face, Size: size, Char: char })
		if err != nil { return nil, fmt.Errorf("genesis: measure: %w", err) }

		// vertical kerning doesn't apply to horizontal text
		if !first {
			dx, _, err := face.Kerning(prevIndex, glyph.Index())
			if err != nil { return nil, fmt.Errorf("genesis: measure kerning: %w", err) }
			penX += dx.ToFloat32()
		}
		first = false
		prevIndex = glyph.Index()

		left := penX + float32(glyph.Left())
		minLeft = math32.Min(minLeft, left)
		extent  = math32.Max(extent, math32.Ceil(left + float32(glyph.Width())))
		above := penY + float32(glyph.Top())
		layout.Above = math32.Max(layout.Above, above)
		layout.Below = math32.Max(layout.Below, float32(glyph.Height()) - above)

		layout.Placements = append(layout.Placements, Placement{
			Glyph: glyph,
			Pen: ml.Vec2{ penX, penY },
			Min: ml.Vec2{ left, above }, // y fixed below, once Above is known
		})

		penX += glyph.AdvanceX()
		penY += glyph.AdvanceY()
	}

	shift := -math32.Floor(minLeft)
	for i := range layout.Placements {
		placement := &layout.Placements[i]
		placement.Min[0] += shift
		placement.Min[1]  = layout.Above - placement.Min[1]
	}
	layout.Width  = int(extent + shift)
	layout.Height = int(math32.Ceil(layout.Above + layout.Below))
	return layout, nil
}
