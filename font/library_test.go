package font

import "os"
import "errors"
import "testing"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("fonts/readme.txt", 0)
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.ttf"), 0)
	if err == nil { t.Fatal("expected error for missing file") }
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadFromBytesErrors(t *testing.T) {
	_, err := LoadFromBytes([]byte("not a font"), 0)
	if err == nil { t.Fatal("expected parse error") }
	_, err = LoadFromBytes(goregular.TTF, 1)
	if err == nil { t.Fatal("expected out of range index error") }
}

func TestLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }

	lib := NewLibrary()
	if lib.Size() != 0 { t.Fatalf("expected empty library, got %d faces", lib.Size()) }

	face, err := lib.Load(path, 0)
	if err != nil { t.Fatal(err) }
	again, err := lib.Load(path, 0)
	if err != nil { t.Fatal(err) }
	if face != again { t.Fatal("expected the same face for the same path") }

	other, err := lib.LoadFromBytes("embedded", goregular.TTF, 0)
	if err != nil { t.Fatal(err) }
	if other == face { t.Fatal("expected a distinct face for a distinct key") }
	if lib.Size() != 2 { t.Fatalf("expected 2 faces, got %d", lib.Size()) }

	var count int
	err = lib.EachFace(func(key string, face *SFNTFace) error {
		count += 1
		return ErrBreakEach
	})
	if err != nil { t.Fatal(err) }
	if count != 1 { t.Fatalf("expected early break after 1 face, got %d", count) }

	if !lib.Remove(path) { t.Fatal("failed to remove face") }
	if lib.Remove(path) { t.Fatal("removed face twice") }
	err = lib.EachFace(func(key string, loaded *SFNTFace) error {
		if loaded == face { t.Fatalf("face still present under %q after removal", key) }
		return nil
	})
	if err != nil { t.Fatal(err) }
	if lib.Size() != 1 { t.Fatalf("expected 1 face, got %d", lib.Size()) }
}
