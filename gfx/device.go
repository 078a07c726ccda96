package gfx

import (
	"errors"
	"image"
	"image/color"

	ml "github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnsupportedTexture is returned when a texture or target
	// created by a different backend is passed to a device.
	ErrUnsupportedTexture = errors.New("gfx: unsupported texture")

	// ErrEmptyTexture is returned when creating a texture with a zero
	// or negative dimension.
	ErrEmptyTexture = errors.New("gfx: empty texture")
)

// ProgramKind identifies one of the fragment programs a backend
// knows how to compile.
type ProgramKind int

const (
	// ProgramGlyph outputs the call color modulated by the texture's
	// coverage (alpha channel).
	ProgramGlyph ProgramKind = iota

	// ProgramTexture outputs the texture texels unchanged.
	ProgramTexture
)

func (k ProgramKind) String() string {
	switch k {
	case ProgramGlyph:
		return "glyph"
	case ProgramTexture:
		return "texture"
	}
	return "unknown"
}

// Blend selects how the fragment output is composed with the target.
// Colors are premultiplied.
type Blend int

const (
	BlendSourceOver Blend = iota
	BlendCopy
)

// Target is anything that can be drawn to.
type Target interface {
	Size() (width, height int)
}

// Texture is a device image. Textures can also be used as targets.
type Texture interface {
	Target
	Dispose()
}

// Program is a compiled fragment program.
type Program interface {
	Kind() ProgramKind
	Dispose()
}

// Vertex is a point in object space with its normalized texture
// coordinates, (0, 0) being the top-left corner of the texture.
type Vertex struct {
	X, Y float32
	U, V float32
}

// DrawCall describes a set of textured triangles.
type DrawCall struct {
	Vertices []Vertex
	Indices  []uint16
	Program  Program
	Texture  Texture
	MVP      ml.Mat4
	Color    [4]float32 // premultiplied, used by ProgramGlyph
	Blend    Blend
}

// Device creates textures and programs and executes draw calls.
// Devices are used from the main loop only.
type Device interface {
	// NewAlphaTexture uploads a coverage mask. The mask bounds
	// are not preserved: the texture origin is the mask's Rect.Min.
	NewAlphaTexture(mask *image.Alpha) (Texture, error)

	// NewRenderTexture allocates a texture that can be drawn to.
	// Its initial content is undefined until cleared.
	NewRenderTexture(width, height int) (Texture, error)

	CompileProgram(kind ProgramKind) (Program, error)

	// Clear sets every pixel of the target to transparent.
	Clear(target Target) error

	Draw(target Target, call *DrawCall) error
}

// PremultipliedColor converts any color to premultiplied
// float32 components in [0, 1].
func PremultipliedColor(c color.Color) [4]float32 {
	r, g, b, a := c.RGBA()
	return [4]float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}
}
