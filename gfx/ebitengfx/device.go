// Package ebitengfx implements gfx.Device with Ebitengine images
// and Kage shaders.
package ebitengfx

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/andrewrk/genesis/gfx"
)

// Texture wraps an ebiten.Image.
type Texture struct {
	image *ebiten.Image
	owned bool
}

// Screen wraps an image the device doesn't own, typically the
// screen passed to ebiten.Game.Draw. Disposing it is a no-op.
func Screen(image *ebiten.Image) *Texture {
	return &Texture{image: image}
}

// Image returns the underlying ebiten image.
func (t *Texture) Image() *ebiten.Image { return t.image }

// Size implements gfx.Target.
func (t *Texture) Size() (int, int) { return t.image.Size() }

// Dispose implements gfx.Texture.
func (t *Texture) Dispose() {
	if t.owned {
		t.image.Dispose()
	}
}

type program struct {
	kind   gfx.ProgramKind
	shader *ebiten.Shader
}

func (p *program) Kind() gfx.ProgramKind { return p.kind }
func (p *program) Dispose()              { p.shader.Dispose() }

// Device is an Ebitengine gfx.Device. It must be used from the
// game loop goroutine.
type Device struct {
	vertices []ebiten.Vertex
}

var _ gfx.Device = (*Device)(nil)

// New creates an Ebitengine device.
func New() *Device { return &Device{} }

// NewAlphaTexture implements gfx.Device.
func (d *Device) NewAlphaTexture(mask *image.Alpha) (gfx.Texture, error) {
	if mask == nil || mask.Rect.Empty() {
		return nil, gfx.ErrEmptyTexture
	}
	size := mask.Rect.Size()
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	index := 0
	for y := 0; y < size.Y; y++ {
		for _, value := range mask.Pix[y*mask.Stride : y*mask.Stride+size.X] {
			rgba.Pix[index+0] = value
			rgba.Pix[index+1] = value
			rgba.Pix[index+2] = value
			rgba.Pix[index+3] = value
			index += 4
		}
	}
	return &Texture{image: ebiten.NewImageFromImage(rgba), owned: true}, nil
}

// NewRenderTexture implements gfx.Device.
func (d *Device) NewRenderTexture(width, height int) (gfx.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (%dx%d)", gfx.ErrEmptyTexture, width, height)
	}
	return &Texture{image: ebiten.NewImage(width, height), owned: true}, nil
}

// CompileProgram implements gfx.Device.
func (d *Device) CompileProgram(kind gfx.ProgramKind) (gfx.Program, error) {
	src, ok := shaderSources[kind]
	if !ok {
		return nil, fmt.Errorf("ebitengfx: unknown program kind %d", kind)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("ebitengfx: compile %s program: %w", kind, err)
	}
	return &program{kind: kind, shader: shader}, nil
}

// Clear implements gfx.Device.
func (d *Device) Clear(target gfx.Target) error {
	dst, ok := target.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", gfx.ErrUnsupportedTexture, target)
	}
	dst.image.Clear()
	return nil
}

// Draw implements gfx.Device. Vertex positions are transformed by the
// MVP on the CPU since Ebitengine expects target pixel coordinates.
func (d *Device) Draw(target gfx.Target, call *gfx.DrawCall) error {
	dst, ok := target.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", gfx.ErrUnsupportedTexture, target)
	}
	src, ok := call.Texture.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", gfx.ErrUnsupportedTexture, call.Texture)
	}
	prog, ok := call.Program.(*program)
	if !ok {
		return fmt.Errorf("ebitengfx: foreign program %T", call.Program)
	}

	dw, dh := dst.Size()
	sw, sh := src.Size()
	d.vertices = d.vertices[:0]
	for _, v := range call.Vertices {
		x, y := gfx.ToPixel(call.MVP, v.X, v.Y, dw, dh)
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: v.U * float32(sw), SrcY: v.V * float32(sh),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}

	opts := &ebiten.DrawTrianglesShaderOptions{
		CompositeMode: ebiten.CompositeModeSourceOver,
	}
	if call.Blend == gfx.BlendCopy {
		opts.CompositeMode = ebiten.CompositeModeCopy
	}
	opts.Images[0] = src.image
	if prog.kind == gfx.ProgramGlyph {
		opts.Uniforms = map[string]interface{}{
			"Color": call.Color[:],
		}
	}
	dst.image.DrawTrianglesShader(d.vertices, call.Indices, prog.shader, opts)
	return nil
}
