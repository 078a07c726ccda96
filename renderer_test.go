package genesis

import "os"
import "errors"
import "testing"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"

import "github.com/andrewrk/genesis/gfx"
import "github.com/andrewrk/genesis/font"
import "github.com/andrewrk/genesis/mask"
import "github.com/andrewrk/genesis/cache"
import "github.com/andrewrk/genesis/gfx/softgfx"
import "github.com/andrewrk/genesis/internal/facetest"

var errNoShaders = errors.New("no shaders here")

type noShaderDevice struct {
	*softgfx.Device
}

func (noShaderDevice) CompileProgram(gfx.ProgramKind) (gfx.Program, error) {
	return nil, errNoShaders
}

func TestNewTextRendererError(t *testing.T) {
	_, err := NewTextRenderer(noShaderDevice{ softgfx.New() })
	if !errors.Is(err, errNoShaders) { t.Fatalf("expected errNoShaders, got %v", err) }
}

func TestLoadFace(t *testing.T) {
	renderer, _ := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }

	face, err := renderer.LoadFace(path)
	if err != nil { t.Fatal(err) }
	again, err := renderer.LoadFace(path)
	if err != nil { t.Fatal(err) }
	if face != again { t.Fatal("expected the same face for the same path") }

	_, err = renderer.LoadFace(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil { t.Fatal("expected error for a missing font") }

	embedded, err := renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	if err != nil { t.Fatal(err) }
	if embedded == face { t.Fatal("expected distinct faces for distinct sources") }
	if renderer.Library().Size() != 2 {
		t.Fatalf("expected 2 faces in the library, got %d", renderer.Library().Size())
	}
}

func TestRendererLabelWithRealFace(t *testing.T) {
	renderer, device := newTestRenderer(t)
	face, err := renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	if err != nil { t.Fatal(err) }
	err = renderer.Preload(face, 16)
	if err != nil { t.Fatal(err) }
	preloaded := renderer.Cache().Len()

	label := renderer.CreateLabel(face)
	label.SetText("Reading...")
	err = label.Update()
	if err != nil { t.Fatal(err) }
	if renderer.Cache().Len() != preloaded {
		t.Fatal("expected ASCII label glyphs to be preloaded")
	}
	if label.Height() < 12 || label.Width() < label.Height() {
		t.Fatalf("unexpected label box %dx%d", label.Width(), label.Height())
	}

	target := newTestTarget(t, device, 200, 50)
	err = label.Draw(target, gfx.PixelMVP(200, 50, 4, 4))
	if err != nil { t.Fatal(err) }
	if isTransparent(target) { t.Fatal("expected label pixels on the target") }

	renderer.Dispose()
	if renderer.Cache().Len() != 0 { t.Fatal("expected empty cache after Dispose") }
	if renderer.Device() != gfx.Device(device) { t.Fatal("unexpected device") }
}

func TestUnloadFace(t *testing.T) {
	renderer, _ := newTestRenderer(t)
	face, err := renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	if err != nil { t.Fatal(err) }
	other, err := renderer.LoadFaceFromBytes("gomono", gomono.TTF)
	if err != nil { t.Fatal(err) }
	err = renderer.Preload(face, 16)
	if err != nil { t.Fatal(err) }
	_, err = renderer.Cache().Get(cache.Key{ Face: other, Size: 16, Char: 'x' })
	if err != nil { t.Fatal(err) }

	label := renderer.CreateLabel(face)
	label.SetText("gone")
	err = label.Update()
	if err != nil { t.Fatal(err) }

	if !renderer.UnloadFace(face) { t.Fatal("failed to unload face") }
	if renderer.Cache().Len() != 1 {
		t.Fatalf("expected only the other face's glyph cached, got %d", renderer.Cache().Len())
	}
	if renderer.Library().Size() != 1 {
		t.Fatalf("expected 1 face in the library, got %d", renderer.Library().Size())
	}
	if renderer.UnloadFace(face) { t.Fatal("unloaded the same face twice") }
	if renderer.UnloadFace(facetest.New()) { t.Fatal("unloaded a face the renderer never loaded") }

	// the label still works, rasterizing again on demand
	label.SetText("gone!")
	err = label.Update()
	if err != nil { t.Fatal(err) }
	if renderer.Cache().Len() != 1 + 5 {
		t.Fatalf("expected 6 cached glyphs, got %d", renderer.Cache().Len())
	}

	again, err := renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	if err != nil { t.Fatal(err) }
	if again == face { t.Fatal("expected a fresh face after unloading") }
}

type signedRasterizer struct {
	mask.DefaultRasterizer
	signature uint64
}

func (self *signedRasterizer) Signature() uint64 { return self.signature }

func TestSetRasterizer(t *testing.T) {
	renderer, _ := newTestRenderer(t)
	face, err := renderer.LoadFaceFromBytes("goregular", goregular.TTF)
	if err != nil { t.Fatal(err) }
	key := cache.Key{ Face: face, Size: 16, Char: 'a' }
	plain, err := renderer.Cache().Get(key)
	if err != nil { t.Fatal(err) }

	renderer.SetRasterizer(&signedRasterizer{ signature: 7 })
	signed, err := renderer.Cache().Get(key)
	if err != nil { t.Fatal(err) }
	if signed == plain { t.Fatal("rasterizer change reused the old glyph") }

	later, err := renderer.LoadFaceFromBytes("gomono", gomono.TTF)
	if err != nil { t.Fatal(err) }
	signer, ok := later.(font.RasterizerSigner)
	if !ok { t.Fatal("expected loaded faces to report their rasterizer") }
	if signer.RasterizerSignature() != 7 {
		t.Fatalf("expected signature 7 on a face loaded later, got %d", signer.RasterizerSignature())
	}

	renderer.SetRasterizer(nil)
	restored, err := renderer.Cache().Get(key)
	if err != nil { t.Fatal(err) }
	if restored != plain { t.Fatal("expected the default rasterizer glyph back") }
	if renderer.Cache().Len() != 2 {
		t.Fatalf("expected 2 cached glyphs, got %d", renderer.Cache().Len())
	}
}
