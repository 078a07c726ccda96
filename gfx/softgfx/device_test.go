package softgfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewrk/genesis/gfx"
)

func solidMask(w, h int, value uint8) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = value
	}
	return mask
}

func newTarget(t *testing.T, d *Device, w, h int) *Texture {
	t.Helper()
	target, err := d.NewRenderTexture(w, h)
	require.NoError(t, err)
	require.NoError(t, d.Clear(target))
	return target.(*Texture)
}

func TestEmptyTextures(t *testing.T) {
	d := New()
	_, err := d.NewRenderTexture(0, 5)
	assert.ErrorIs(t, err, gfx.ErrEmptyTexture)
	_, err = d.NewAlphaTexture(image.NewAlpha(image.Rect(0, 0, 3, 0)))
	assert.ErrorIs(t, err, gfx.ErrEmptyTexture)
}

func TestAlphaTextureIgnoresBoundsOrigin(t *testing.T) {
	d := New()
	mask := image.NewAlpha(image.Rect(-2, -3, 1, 0))
	mask.SetAlpha(-2, -3, color.Alpha{A: 200})
	texture, err := d.NewAlphaTexture(mask)
	require.NoError(t, err)

	w, h := texture.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, color.RGBA{200, 200, 200, 200}, texture.(*Texture).Image().RGBAAt(0, 0))
}

func TestGlyphProgramModulatesColor(t *testing.T) {
	d := New()
	glyph, err := d.CompileProgram(gfx.ProgramGlyph)
	require.NoError(t, err)
	mask, err := d.NewAlphaTexture(solidMask(2, 2, 255))
	require.NoError(t, err)
	target := newTarget(t, d, 4, 4)

	vertices, indices := gfx.Quad(2, 2)
	err = d.Draw(target, &gfx.DrawCall{
		Vertices: vertices,
		Indices:  indices,
		Program:  glyph,
		Texture:  mask,
		MVP:      gfx.PixelMVP(4, 4, 1, 1),
		Color:    gfx.PremultipliedColor(color.RGBA{255, 0, 0, 255}),
		Blend:    gfx.BlendSourceOver,
	})
	require.NoError(t, err)

	img := target.Image()
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 3))
}

func TestGlyphProgramPartialCoverage(t *testing.T) {
	d := New()
	glyph, err := d.CompileProgram(gfx.ProgramGlyph)
	require.NoError(t, err)
	mask, err := d.NewAlphaTexture(solidMask(1, 1, 128))
	require.NoError(t, err)
	target := newTarget(t, d, 1, 1)

	vertices, indices := gfx.Quad(1, 1)
	err = d.Draw(target, &gfx.DrawCall{
		Vertices: vertices,
		Indices:  indices,
		Program:  glyph,
		Texture:  mask,
		MVP:      gfx.Ortho(1, 1),
		Color:    [4]float32{1, 1, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 128}, target.Image().RGBAAt(0, 0))
}

func TestTextureProgramCopy(t *testing.T) {
	d := New()
	textured, err := d.CompileProgram(gfx.ProgramTexture)
	require.NoError(t, err)
	source := newTarget(t, d, 2, 1)
	source.Image().SetRGBA(0, 0, color.RGBA{0, 40, 0, 40})
	source.Image().SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})

	target := newTarget(t, d, 2, 1)
	target.Image().SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})

	vertices, indices := gfx.Quad(2, 1)
	err = d.Draw(target, &gfx.DrawCall{
		Vertices: vertices,
		Indices:  indices,
		Program:  textured,
		Texture:  source,
		MVP:      gfx.Ortho(2, 1),
		Blend:    gfx.BlendCopy,
	})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 40, 0, 40}, target.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, target.Image().RGBAAt(1, 0))
}

func TestScaledDraw(t *testing.T) {
	d := New()
	textured, err := d.CompileProgram(gfx.ProgramTexture)
	require.NoError(t, err)
	source := newTarget(t, d, 1, 1)
	source.Image().SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	target := newTarget(t, d, 8, 8)

	vertices, indices := gfx.Quad(4, 4)
	err = d.Draw(target, &gfx.DrawCall{
		Vertices: vertices,
		Indices:  indices,
		Program:  textured,
		Texture:  source,
		MVP:      gfx.PixelMVP(8, 8, 2, 2),
	})
	require.NoError(t, err)

	center := target.Image().RGBAAt(4, 4)
	assert.InDelta(t, 255, int(center.R), 1)
	assert.InDelta(t, 255, int(center.A), 1)
	assert.Equal(t, color.RGBA{}, target.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, target.Image().RGBAAt(7, 7))
}

type foreignTexture struct{}

func (foreignTexture) Size() (int, int) { return 1, 1 }
func (foreignTexture) Dispose()         {}

func TestForeignAndDisposedTextures(t *testing.T) {
	d := New()
	textured, err := d.CompileProgram(gfx.ProgramTexture)
	require.NoError(t, err)
	target := newTarget(t, d, 2, 2)
	vertices, indices := gfx.Quad(2, 2)

	call := &gfx.DrawCall{
		Vertices: vertices,
		Indices:  indices,
		Program:  textured,
		Texture:  foreignTexture{},
		MVP:      gfx.Ortho(2, 2),
	}
	assert.ErrorIs(t, d.Draw(target, call), gfx.ErrUnsupportedTexture)
	assert.ErrorIs(t, d.Clear(foreignTexture{}), gfx.ErrUnsupportedTexture)

	source := newTarget(t, d, 2, 2)
	source.Dispose()
	call.Texture = source
	assert.ErrorIs(t, d.Draw(target, call), ErrDisposed)
	w, h := source.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}
