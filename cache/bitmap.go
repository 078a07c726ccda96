package cache

import "fmt"
import "image"
import "errors"

import "github.com/andrewrk/genesis/font"

var ErrUnsupportedPixelMode = errors.New("cache: unsupported bitmap pixel mode")
var ErrUnsupportedPitch = errors.New("cache: unsupported bitmap pitch")

// Validates a rasterized bitmap and copies it to an alpha image,
// row by row when the pitch includes padding. Empty bitmaps return
// a nil image and are accepted regardless of their pixel mode.
func bitmapToAlpha(bitmap *font.Bitmap) (*image.Alpha, error) {
	if bitmap.Width == 0 || bitmap.Rows == 0 { return nil, nil }
	if bitmap.Mode != font.PixelModeGray {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPixelMode, bitmap.Mode)
	}
	if bitmap.Pitch < 0 {
		return nil, fmt.Errorf("%w: negative pitch %d", ErrUnsupportedPitch, bitmap.Pitch)
	}
	if bitmap.Pitch < bitmap.Width {
		return nil, fmt.Errorf("%w: pitch %d < width %d", ErrUnsupportedPitch, bitmap.Pitch, bitmap.Width)
	}
	required := bitmap.Pitch*(bitmap.Rows - 1) + bitmap.Width
	if len(bitmap.Buffer) < required {
		return nil, fmt.Errorf("cache: bitmap buffer has %d bytes, expected at least %d", len(bitmap.Buffer), required)
	}

	alpha := image.NewAlpha(image.Rect(0, 0, bitmap.Width, bitmap.Rows))
	if bitmap.Pitch == bitmap.Width {
		copy(alpha.Pix, bitmap.Buffer[:bitmap.Width*bitmap.Rows])
		return alpha, nil
	}
	for row := 0; row < bitmap.Rows; row++ {
		src := bitmap.Buffer[row*bitmap.Pitch : row*bitmap.Pitch + bitmap.Width]
		copy(alpha.Pix[row*alpha.Stride:], src)
	}
	return alpha, nil
}
