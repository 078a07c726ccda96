// genesis is the text layer of a desktop audio waveform viewer: it lays
// out strings with kerning and baseline metrics, composites cached glyph
// textures into per-label backing textures and draws those labels
// through a [gfx.Device].
//
// Common usage only needs a couple types. First, create a [TextRenderer]
// and load a face:
//   renderer, err := genesis.NewTextRenderer(ebitengfx.New())
//   if err != nil { ... }
//   face, err := renderer.LoadFace("path/to/font.ttf")
//   if err != nil { ... }
//
// Then create a label, update it after changing its properties and
// draw it wherever needed:
//   label := renderer.CreateLabel(face)
//   label.SetText("Loading...")
//   err = label.Update()
//   if err != nil { ... }
//   err = label.Draw(ebitengfx.Screen(screen), gfx.PixelMVP(w, h, 16, 16))
//
// Measuring text without drawing it is done with [Measure].
package genesis
