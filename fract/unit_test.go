package fract

import "testing"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in  Unit
		out float64
	}{
		{0, 0}, {64, 1}, {32, 0.5}, {-32, -0.5},
		{1, 1.0/64.0}, {-2, -2.0/64.0}, {63, 63.0/64.0}, {96, 1.5},
	}

	for i, test := range tests {
		out := test.in.ToFloat64()
		if out != test.out {
			str := "test #%d: in %d expected out %f, but got %f"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		in    Unit
		floor int
		ceil  int
	}{
		{0, 0, 0}, {1, 0, 1}, {63, 0, 1}, {64, 1, 1}, {65, 1, 2},
		{-1, -1, 0}, {-64, -1, -1}, {-65, -2, -1},
	}

	for i, test := range tests {
		if test.in.ToIntFloor() != test.floor {
			t.Fatalf("test #%d: floor(%d) expected %d, got %d", i, test.in, test.floor, test.in.ToIntFloor())
		}
		if test.in.ToIntCeil() != test.ceil {
			t.Fatalf("test #%d: ceil(%d) expected %d, got %d", i, test.in, test.ceil, test.in.ToIntCeil())
		}
		if test.in.Floor() != FromInt(test.floor) {
			t.Fatalf("test #%d: Floor(%d) mismatch", i, test.in)
		}
		if test.in.Ceil() != FromInt(test.ceil) {
			t.Fatalf("test #%d: Ceil(%d) mismatch", i, test.in)
		}
	}
}

func TestFromFloat64Up(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{0, 0}, {1, 64}, {0.5, 32}, {16, 1024},
		{Delta/2, 1}, {-Delta/2, 0}, {1.0 + Delta*0.49, 64},
	}

	for i, test := range tests {
		out := FromFloat64Up(test.in)
		if out != test.out {
			t.Fatalf("test #%d: in %f expected %d, got %d", i, test.in, test.out, out)
		}
	}
}

func TestFixed16(t *testing.T) {
	if got := FromInt(3).ToFixed16(); got != 3*65536 {
		t.Fatalf("expected %d, got %d", 3*65536, got)
	}
	if got := Unit(32).ToFixed16().ToFloat32(); got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
	if got := Fixed16(-65536*2).ToFloat64(); got != -2 {
		t.Fatalf("expected -2, got %f", got)
	}
}

func TestRectImageRect(t *testing.T) {
	rect := UnitsToRect(-1, 63, 65, 128)
	got := rect.ImageRect()
	if got.Min.X != -1 || got.Min.Y != 0 || got.Max.X != 2 || got.Max.Y != 2 {
		t.Fatalf("unexpected image rect %v", got)
	}
	if rect.Empty() { t.Fatal("rect shouldn't be empty") }
	if !UnitsToRect(5, 5, 5, 10).Empty() { t.Fatal("expected empty rect") }
}
