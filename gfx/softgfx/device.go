// Package softgfx implements gfx.Device on CPU images. It supports
// affine textured triangles, which is everything the text renderer
// draws, and is used for headless snapshots and tests.
package softgfx

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/andrewrk/genesis/gfx"
)

// ErrDisposed is returned when drawing from or to a disposed texture.
var ErrDisposed = errors.New("softgfx: texture disposed")

// Texture is a premultiplied RGBA image.
type Texture struct {
	image *image.RGBA
}

// Image returns the texture pixels, or nil after Dispose.
func (t *Texture) Image() *image.RGBA { return t.image }

// Size implements gfx.Target.
func (t *Texture) Size() (int, int) {
	if t.image == nil {
		return 0, 0
	}
	size := t.image.Rect.Size()
	return size.X, size.Y
}

// Dispose implements gfx.Texture.
func (t *Texture) Dispose() { t.image = nil }

type program struct {
	kind gfx.ProgramKind
}

func (p *program) Kind() gfx.ProgramKind { return p.kind }
func (p *program) Dispose()              {}

// Device is a software gfx.Device.
type Device struct{}

var _ gfx.Device = (*Device)(nil)

// New creates a software device.
func New() *Device { return &Device{} }

// NewAlphaTexture stores the coverage replicated on all four channels,
// which is the premultiplied form of white at that coverage.
func (d *Device) NewAlphaTexture(mask *image.Alpha) (gfx.Texture, error) {
	if mask == nil || mask.Rect.Empty() {
		return nil, gfx.ErrEmptyTexture
	}
	size := mask.Rect.Size()
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+size.X]
		out := rgba.Pix[y*rgba.Stride:]
		for x, value := range row {
			out[x*4+0] = value
			out[x*4+1] = value
			out[x*4+2] = value
			out[x*4+3] = value
		}
	}
	return &Texture{image: rgba}, nil
}

// NewRenderTexture implements gfx.Device.
func (d *Device) NewRenderTexture(width, height int) (gfx.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (%dx%d)", gfx.ErrEmptyTexture, width, height)
	}
	return &Texture{image: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// CompileProgram implements gfx.Device.
func (d *Device) CompileProgram(kind gfx.ProgramKind) (gfx.Program, error) {
	switch kind {
	case gfx.ProgramGlyph, gfx.ProgramTexture:
		return &program{kind: kind}, nil
	}
	return nil, fmt.Errorf("softgfx: unknown program kind %d", kind)
}

// Clear implements gfx.Device.
func (d *Device) Clear(target gfx.Target) error {
	dst, err := asTexture(target)
	if err != nil {
		return err
	}
	draw.Draw(dst.image, dst.image.Rect, image.Transparent, image.Point{}, draw.Src)
	return nil
}

// Draw implements gfx.Device.
func (d *Device) Draw(target gfx.Target, call *gfx.DrawCall) error {
	dst, err := asTexture(target)
	if err != nil {
		return err
	}
	src, err := asTexture(call.Texture)
	if err != nil {
		return err
	}
	prog, ok := call.Program.(*program)
	if !ok {
		return fmt.Errorf("softgfx: foreign program %T", call.Program)
	}

	var source image.Image = src.image
	if prog.kind == gfx.ProgramGlyph {
		source = tint(src.image, call.Color)
	}
	op := draw.Over
	if call.Blend == gfx.BlendCopy {
		op = draw.Src
	}

	sw, sh := src.Size()
	dw, dh := dst.Size()

	// consecutive triangles sharing a transform (quads) are drawn as one
	var current *f64.Aff3
	var bounds image.Rectangle
	for i := 0; i+2 < len(call.Indices); i += 3 {
		var tri [3]gfx.Vertex
		for j := range tri {
			index := int(call.Indices[i+j])
			if index >= len(call.Vertices) {
				return fmt.Errorf("softgfx: vertex index %d out of range", index)
			}
			tri[j] = call.Vertices[index]
		}
		aff, ok := triangleAffine(tri, call, sw, sh, dw, dh)
		if !ok {
			continue
		}
		sr := uvBounds(tri, sw, sh)
		if current != nil && affEqual(*current, aff) {
			bounds = bounds.Union(sr)
			continue
		}
		if current != nil {
			blit(dst.image, *current, source, bounds, op)
		}
		current, bounds = &aff, sr
	}
	if current != nil {
		blit(dst.image, *current, source, bounds, op)
	}
	return nil
}

func asTexture(target gfx.Target) (*Texture, error) {
	texture, ok := target.(*Texture)
	if !ok {
		return nil, fmt.Errorf("%w: %T", gfx.ErrUnsupportedTexture, target)
	}
	if texture.image == nil {
		return nil, ErrDisposed
	}
	return texture, nil
}

// tint returns color * coverage for every texel of the mask.
func tint(mask *image.RGBA, color [4]float32) *image.RGBA {
	out := image.NewRGBA(mask.Rect)
	for i := 3; i < len(mask.Pix); i += 4 {
		coverage := float32(mask.Pix[i]) / 255
		if coverage == 0 {
			continue
		}
		for c := 0; c < 4; c++ {
			out.Pix[i-3+c] = uint8(color[c]*coverage*255 + 0.5)
		}
	}
	return out
}

// triangleAffine solves the affine transform mapping the triangle's
// texel coordinates to target pixels.
func triangleAffine(tri [3]gfx.Vertex, call *gfx.DrawCall, sw, sh, dw, dh int) (f64.Aff3, bool) {
	var sx, sy, dx, dy [3]float64
	for i, v := range tri {
		sx[i] = float64(v.U) * float64(sw)
		sy[i] = float64(v.V) * float64(sh)
		px, py := gfx.ToPixel(call.MVP, v.X, v.Y, dw, dh)
		dx[i], dy[i] = float64(px), float64(py)
	}

	// columns of the source and destination edge matrices
	s00, s01 := sx[1]-sx[0], sx[2]-sx[0]
	s10, s11 := sy[1]-sy[0], sy[2]-sy[0]
	det := s00*s11 - s01*s10
	if math.Abs(det) < 1e-9 {
		return f64.Aff3{}, false
	}
	i00, i01 := s11/det, -s01/det
	i10, i11 := -s10/det, s00/det

	d00, d01 := dx[1]-dx[0], dx[2]-dx[0]
	d10, d11 := dy[1]-dy[0], dy[2]-dy[0]
	a00 := d00*i00 + d01*i10
	a01 := d00*i01 + d01*i11
	a10 := d10*i00 + d11*i10
	a11 := d10*i01 + d11*i11
	return f64.Aff3{
		a00, a01, dx[0] - a00*sx[0] - a01*sy[0],
		a10, a11, dy[0] - a10*sx[0] - a11*sy[0],
	}, true
}

func uvBounds(tri [3]gfx.Vertex, sw, sh int) image.Rectangle {
	minU, maxU := tri[0].U, tri[0].U
	minV, maxV := tri[0].V, tri[0].V
	for _, v := range tri[1:] {
		if v.U < minU {
			minU = v.U
		}
		if v.U > maxU {
			maxU = v.U
		}
		if v.V < minV {
			minV = v.V
		}
		if v.V > maxV {
			maxV = v.V
		}
	}
	rect := image.Rect(
		int(math.Floor(float64(minU)*float64(sw)+1e-4)),
		int(math.Floor(float64(minV)*float64(sh)+1e-4)),
		int(math.Ceil(float64(maxU)*float64(sw)-1e-4)),
		int(math.Ceil(float64(maxV)*float64(sh)-1e-4)),
	)
	return rect.Intersect(image.Rect(0, 0, sw, sh))
}

const affEpsilon = 1e-3

func affEqual(a, b f64.Aff3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > affEpsilon {
			return false
		}
	}
	return true
}

// blit draws with an exact copy when the transform is a whole pixel
// translation, and with bilinear filtering otherwise.
func blit(dst *image.RGBA, aff f64.Aff3, src image.Image, sr image.Rectangle, op draw.Op) {
	if sr.Empty() {
		return
	}
	tx, ty := math.Round(aff[2]), math.Round(aff[5])
	isTranslation := math.Abs(aff[0]-1) < affEpsilon && math.Abs(aff[1]) < affEpsilon &&
		math.Abs(aff[3]) < affEpsilon && math.Abs(aff[4]-1) < affEpsilon &&
		math.Abs(aff[2]-tx) < affEpsilon && math.Abs(aff[5]-ty) < affEpsilon
	if isTranslation {
		dp := sr.Min.Add(image.Pt(int(tx), int(ty)))
		draw.Copy(dst, dp, src, sr, op, nil)
		return
	}
	draw.BiLinear.Transform(dst, aff, src, sr, op, nil)
}
