package board

import (
	"errors"
	"math"
	"testing"
)

func newTestLED(t *testing.T) (*LED, *fakeBackend) {
	t.Helper()
	fb := newFakeBackend()
	b := newTestBoard(t, fb, Options{LEDs: []int{0}})
	l, err := b.LED(0)
	if err != nil {
		t.Fatal(err)
	}
	return l, fb
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearRGB(got [3]float64, r, g, b float64) bool {
	return near(got[0], r) && near(got[1], g) && near(got[2], b)
}

func TestLEDSetHSVPushesRGB(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetHSV(0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := fb.lastLED(0); !nearRGB(got, 1, 0, 0) {
		t.Errorf("backend RGB = %v, want red", got)
	}

	if err := l.SetHSV(2.0/3.0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := fb.lastLED(0); !nearRGB(got, 0, 0, 1) {
		t.Errorf("backend RGB = %v, want blue", got)
	}
}

func TestLEDHueWraps(t *testing.T) {
	l, _ := newTestLED(t)
	tests := []struct {
		in   float64
		want float64
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.75, 0.25},
		{3.0, 0.0},
		{-6.0, 0.0},
	}
	for _, tt := range tests {
		if err := l.SetHSV(tt.in, 1, 1); err != nil {
			t.Fatal(err)
		}
		h, _, _ := l.GetHSV()
		if !near(h, tt.want) {
			t.Errorf("hue after SetHSV(%v) = %v, want %v", tt.in, h, tt.want)
		}
	}
}

func TestLEDSaturationValueClamped(t *testing.T) {
	l, _ := newTestLED(t)
	if err := l.SetHSV(0.5, 1.5, -0.5); err != nil {
		t.Fatal(err)
	}
	_, s, v := l.GetHSV()
	if s != 1.0 || v != 0.0 {
		t.Errorf("GetHSV() s, v = %v, %v, want clamped 1, 0", s, v)
	}
}

func TestLEDRGBRoundTrip(t *testing.T) {
	// With neutral modifiers the pre-compositing RGB getter returns what
	// was set, within floating tolerance.
	tests := [][3]float64{
		{0.2, 0.4, 0.6},
		{1, 0, 0},
		{0, 0, 0},
		{1, 1, 1},
		{0.8, 0.1, 0.3},
	}
	for _, tt := range tests {
		l, _ := newTestLED(t)
		if err := l.SetRGB(tt[0], tt[1], tt[2]); err != nil {
			t.Fatal(err)
		}
		r, g, b := l.GetRGB()
		if !near(r, tt[0]) || !near(g, tt[1]) || !near(b, tt[2]) {
			t.Errorf("GetRGB() after SetRGB(%v) = (%v, %v, %v)", tt, r, g, b)
		}
	}
}

func TestLEDGetRGBIgnoresCompositing(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetRGB(0.5, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := l.SetBrightness(0.2); err != nil {
		t.Fatal(err)
	}
	if err := l.SetGamma(2.2); err != nil {
		t.Fatal(err)
	}

	r, g, b := l.GetRGB()
	if !near(r, 0.5) || !near(g, 0.5) || !near(b, 0.5) {
		t.Errorf("GetRGB() = (%v, %v, %v), want stored colour unaffected by modifiers", r, g, b)
	}
	// But the backend sees the composited colour.
	want := math.Pow(0.5*0.2, 2.2)
	if got := fb.lastLED(0); !nearRGB(got, want, want, want) {
		t.Errorf("backend RGB = %v, want composited %v", got, want)
	}
}

func TestLEDBrightnessScalesValue(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetHSV(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.SetBrightness(0.25); err != nil {
		t.Fatal(err)
	}
	if got := fb.lastLED(0); !nearRGB(got, 0.25, 0.25, 0.25) {
		t.Errorf("backend RGB = %v, want scaled by brightness", got)
	}
}

func TestLEDSaturationExponent(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetHSV(0, 0.25, 1); err != nil {
		t.Fatal(err)
	}
	// Exponent 2 shapes saturation as s^(1/2).
	if err := l.SetSaturationExponent(2); err != nil {
		t.Fatal(err)
	}
	got := fb.lastLED(0)
	if !near(got[0], 1.0) || !near(got[1], 0.5) || !near(got[2], 0.5) {
		t.Errorf("backend RGB = %v, want (1, 0.5, 0.5) for shaped saturation", got)
	}

	// Exponent 0 forces zero saturation: pure grayscale output.
	if err := l.SetSaturationExponent(0); err != nil {
		t.Fatal(err)
	}
	got = fb.lastLED(0)
	if !near(got[0], 1.0) || !near(got[1], 1.0) || !near(got[2], 1.0) {
		t.Errorf("backend RGB = %v, want grayscale with exponent 0", got)
	}
}

func TestLEDGammaPerComponent(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetRGB(0.5, 0.25, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.SetGamma(2); err != nil {
		t.Fatal(err)
	}
	if got := fb.lastLED(0); !nearRGB(got, 0.25, 0.0625, 1) {
		t.Errorf("backend RGB = %v, want components squared", got)
	}
}

func TestLEDNamedColors(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetNamed("red"); err != nil {
		t.Fatal(err)
	}
	if got := fb.lastLED(0); !nearRGB(got, 1, 0, 0) {
		t.Errorf("backend RGB = %v, want red", got)
	}
	h, s, v := l.GetHSV()
	if !near(h, 0) || !near(s, 1) || !near(v, 1) {
		t.Errorf("GetHSV() = (%v, %v, %v), want (0, 1, 1)", h, s, v)
	}

	if err := l.SetNamed("White"); err != nil {
		t.Errorf("SetNamed(White) error = %v, want case-insensitive match", err)
	}
}

func TestLEDUnknownNameRejected(t *testing.T) {
	l, fb := newTestLED(t)
	if err := l.SetNamed("not-a-colour"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetNamed error = %v, want ErrInvalidColor", err)
	}
	if len(fb.ledColors[0]) != 0 {
		t.Error("backend received a push for a rejected colour name")
	}
}

func TestLEDModifierClamping(t *testing.T) {
	l, _ := newTestLED(t)
	if err := l.SetBrightness(1.5); err != nil {
		t.Fatal(err)
	}
	if l.Brightness() != 1.0 {
		t.Errorf("Brightness() = %v, want clamped to 1", l.Brightness())
	}
	if err := l.SetGamma(-1); err != nil {
		t.Fatal(err)
	}
	if l.Gamma() != 0.0 {
		t.Errorf("Gamma() = %v, want clamped to 0", l.Gamma())
	}
	if err := l.SetGamma(4.5); err != nil {
		t.Fatal(err)
	}
	if l.Gamma() != 4.5 {
		t.Errorf("Gamma() = %v, want no upper clamp", l.Gamma())
	}
	if err := l.SetSaturationExponent(-2); err != nil {
		t.Fatal(err)
	}
	if l.SaturationExponent() != 0.0 {
		t.Errorf("SaturationExponent() = %v, want clamped to 0", l.SaturationExponent())
	}
}
