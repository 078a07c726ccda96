package genesis

import "fmt"
import "image/color"

import "github.com/golang/glog"
import ml "github.com/go-gl/mathgl/mgl32"
import "golang.org/x/text/unicode/norm"

import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/gfx"

const (
	DefaultLabelText = "label"
	DefaultLabelSize = 16
)

// A Label is a single line of text with its own backing texture.
//
// Setters only record the new properties and mark the label as stale.
// [Label.Update]() must be called afterwards to lay out the text and
// redraw the backing texture before the changes become visible on
// [Label.Draw]().
//
// Labels are created with [TextRenderer.CreateLabel]() and are not
// safe for concurrent use.
type Label struct {
	renderer *TextRenderer
	face font.Face
	text string
	size int
	color color.Color

	texture gfx.Texture
	vertices []gfx.Vertex
	indices []uint16
	width int
	height int
	stale bool
}

func newLabel(renderer *TextRenderer, face font.Face) *Label {
	return &Label{
		renderer: renderer,
		face: face,
		text: DefaultLabelText,
		size: DefaultLabelSize,
		color: color.White,
		stale: true,
	}
}

// Sets the label text. The text is normalized to NFC, so precomposed
// characters are used whenever the face may have them.
func (self *Label) SetText(text string) {
	self.text = norm.NFC.String(text)
	self.stale = true
}

// Sets the font size, in pixels.
func (self *Label) SetFontSize(size int) {
	self.size = size
	self.stale = true
}

func (self *Label) SetFace(face font.Face) {
	self.face = face
	self.stale = true
}

// Sets the text color. The color is baked into the backing texture,
// so this also requires an update.
func (self *Label) SetColor(textColor color.Color) {
	self.color = textColor
	self.stale = true
}

func (self *Label) Text() string { return self.text }
func (self *Label) FontSize() int { return self.size }
func (self *Label) Face() font.Face { return self.face }
func (self *Label) Color() color.Color { return self.color }

// Returns the label box size, as computed on the last update.
func (self *Label) Width() int  { return self.width  }
func (self *Label) Height() int { return self.height }

// Returns whether the label properties have changed since the
// last successful update.
func (self *Label) Stale() bool { return self.stale }

// Lays out the text and redraws the backing texture. On failure,
// the label remains stale.
func (self *Label) Update() error {
	layout, err := Measure(self.renderer.cache, self.face, self.size, self.text)
	if err != nil { return fmt.Errorf("genesis: label update: %w", err) }

	self.releaseTexture()
	self.width, self.height = layout.Width, layout.Height
	if layout.Width == 0 || layout.Height == 0 {
		self.stale = false
		return nil
	}

	device := self.renderer.device
	texture, err := device.NewRenderTexture(layout.Width, layout.Height)
	if err != nil { return fmt.Errorf("genesis: label update: %w", err) }
	err = device.Clear(texture)
	if err != nil {
		texture.Dispose()
		return fmt.Errorf("genesis: label update: %w", err)
	}

	projection := gfx.Ortho(layout.Width, layout.Height)
	textColor  := gfx.PremultipliedColor(self.color)
	for i := range layout.Placements {
		placement := &layout.Placements[i]
		glyphTexture := placement.Glyph.Texture()
		if glyphTexture == nil { continue }

		vertices, indices := gfx.Quad(float32(placement.Glyph.Width()), float32(placement.Glyph.Height()))
		err = device.Draw(texture, &gfx.DrawCall{
			Vertices: vertices,
			Indices: indices,
			Program: self.renderer.glyphProgram,
			Texture: glyphTexture,
			MVP: projection.Mul4(ml.Translate3D(placement.Min.X(), placement.Min.Y(), 0)),
			Color: textColor,
			Blend: gfx.BlendSourceOver,
		})
		if err != nil {
			texture.Dispose()
			return fmt.Errorf("genesis: label update: %w", err)
		}
	}

	self.texture = texture
	self.vertices, self.indices = gfx.Quad(float32(layout.Width), float32(layout.Height))
	self.stale = false
	if glog.V(2) {
		glog.Infof("label %q updated: %dx%d, %d glyphs", self.text, self.width, self.height, len(layout.Placements))
	}
	return nil
}

// Draws the label box from (0, 0) to (width, height) transformed by
// the given MVP. Labels that were never updated or have an empty box
// draw nothing.
func (self *Label) Draw(target gfx.Target, mvp ml.Mat4) error {
	if self.texture == nil { return nil }
	return self.renderer.device.Draw(target, &gfx.DrawCall{
		Vertices: self.vertices,
		Indices: self.indices,
		Program: self.renderer.textureProgram,
		Texture: self.texture,
		MVP: mvp,
		Blend: gfx.BlendSourceOver,
	})
}

// Releases the backing texture. The label can still be updated
// and drawn again afterwards.
func (self *Label) Dispose() {
	self.releaseTexture()
	self.stale = true
}

func (self *Label) releaseTexture() {
	if self.texture == nil { return }
	self.texture.Dispose()
	self.texture = nil
	self.vertices, self.indices = nil, nil
}
