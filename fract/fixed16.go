package fract

// A 16.16 fixed point value. Glyph advances are reported in
// this format: 65536 means one pixel.
type Fixed16 int32

// Converts a 26.6 [Unit] to 16.16 without loss of precision.
// Values beyond ±32767 pixels overflow.
func (self Unit) ToFixed16() Fixed16 {
	return Fixed16(int32(self) << 10)
}

// Converts the value to float32 pixels, dividing by 65536.
func (self Fixed16) ToFloat32() float32 {
	return float32(self)/65536.0
}

func (self Fixed16) ToFloat64() float64 {
	return float64(self)/65536.0
}
