package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/andrewrk/genesis/fract"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, allowing faces
// to be configured with custom rasterizers.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63 (= 0.984375)).
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// The signature returns a uint64 that can be used to tell rasterizers
	// apart. Faces configured with rasterizers of different signatures
	// produce different glyph masks.
	Signature() uint64
}

type vectorTracer interface {
	MoveTo(fract.Point)
	LineTo(fract.Point)
	QuadTo(fract.Point, fract.Point)
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the given fractional position by default.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(toPoint(segment.Args[0].X, segment.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(toPoint(segment.Args[0].X, segment.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(
				toPoint(segment.Args[0].X, segment.Args[0].Y),
				toPoint(segment.Args[1].X, segment.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				toPoint(segment.Args[0].X, segment.Args[0].Y),
				toPoint(segment.Args[1].X, segment.Args[1].Y),
				toPoint(segment.Args[2].X, segment.Args[2].Y),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
