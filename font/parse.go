package font

import "os"
import "fmt"
import "errors"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

var ErrInvalidPath = errors.New("font: invalid font path")

// Loads the font at the given index of the font file at the given path.
// Supported formats are .ttf, .otf and their collection variants .ttc
// and .otc. Plain font files only have index 0.
func Load(path string, index int) (*SFNTFace, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil { return nil, fmt.Errorf("font: %w", err) }
	return LoadFromBytes(fontBytes, index)
}

// Same as [Load](), but for raw font bytes. The bytes must not be
// modified while the face is in use.
func LoadFromBytes(fontBytes []byte, index int) (*SFNTFace, error) {
	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil { return nil, fmt.Errorf("font: parse: %w", err) }
	if index < 0 || index >= collection.NumFonts() {
		return nil, fmt.Errorf("font: index %d out of range [0, %d)", index, collection.NumFonts())
	}

	parsed, err := collection.Font(index)
	if err != nil { return nil, fmt.Errorf("font: parse index %d: %w", index, err) }
	return NewFace(parsed, fullName(parsed)), nil
}

func fullName(font *sfnt.Font) string {
	var buffer sfnt.Buffer
	name, err := font.Name(&buffer, sfnt.NameIDFull)
	if err == nil && name != "" { return name }
	name, err = font.Name(&buffer, sfnt.NameIDFamily)
	if err == nil { return name }
	return ""
}

func hasValidFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}
