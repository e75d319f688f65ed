package board

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/boardkit/internal/colorname"
	"github.com/san-kum/boardkit/internal/units"
)

// LED is a single RGB indicator channel. Colour state is held as HSV; the
// value actually pushed to the backend is recomputed from that state on
// every change by the compositing chain brightness -> saturation exponent
// -> gamma. Getters always return the stored pre-compositing state.
type LED struct {
	index  int
	driver LEDDriver
	log    *slog.Logger

	hue        float64 // [0, 1), wraps
	saturation float64 // [0, 1]
	value      float64 // [0, 1]

	brightness    float64 // [0, 1]
	gamma         float64 // >= 0
	saturationExp float64 // >= 0, 0 forces zero saturation
}

func newLED(index int, driver LEDDriver, log *slog.Logger) *LED {
	return &LED{index: index, driver: driver, log: log, brightness: 1, gamma: 1, saturationExp: 1}
}

// Index returns the channel index.
func (l *LED) Index() int { return l.index }

// SetHSV stores a colour. Hue is a continuous quantity taken mod 1.0, so
// 1.0 is red, as is 0.0, as is 3.0 or -6. Saturation and value are clamped
// to [0, 1] with a warning.
func (l *LED) SetHSV(h, s, v float64) error {
	l.hue = units.WrapUnit(h)
	cs, clamped := units.ClampUnsigned(s)
	if clamped {
		l.log.Warn("led saturation clamped", "led", l.index, "requested", s, "value", cs)
	}
	cv, clamped := units.ClampUnsigned(v)
	if clamped {
		l.log.Warn("led value clamped", "led", l.index, "requested", v, "value", cv)
	}
	l.saturation = cs
	l.value = cv
	l.log.Debug("set led", "led", l.index, "h", l.hue, "s", l.saturation, "v", l.value)
	return l.push()
}

// SetRGB stores a colour supplied as RGB components in [0, 1], clamping
// with a warning and converting to HSV.
func (l *LED) SetRGB(r, g, b float64) error {
	cr, clamped := units.ClampUnsigned(r)
	if clamped {
		l.log.Warn("led red clamped", "led", l.index, "requested", r, "value", cr)
	}
	cg, clamped := units.ClampUnsigned(g)
	if clamped {
		l.log.Warn("led green clamped", "led", l.index, "requested", g, "value", cg)
	}
	cb, clamped := units.ClampUnsigned(b)
	if clamped {
		l.log.Warn("led blue clamped", "led", l.index, "requested", b, "value", cb)
	}
	h, s, v := colorful.Color{R: cr, G: cg, B: cb}.Hsv()
	return l.SetHSV(h/360, s, v)
}

// SetNamed stores a CSS4 named colour. Unknown names are rejected with
// ErrInvalidColor.
func (l *LED) SetNamed(name string) error {
	c, ok := colorname.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: unknown colour name %q", ErrInvalidColor, name)
	}
	h, s, v := c.Hsv()
	return l.SetHSV(h/360, s, v)
}

// GetHSV returns the stored colour before compositing.
func (l *LED) GetHSV() (h, s, v float64) { return l.hue, l.saturation, l.value }

// GetRGB returns the stored colour converted to RGB, without brightness,
// saturation exponent, or gamma applied.
func (l *LED) GetRGB() (r, g, b float64) {
	c := colorful.Hsv(l.hue*360, l.saturation, l.value)
	return c.R, c.G, c.B
}

// Brightness returns the brightness modifier.
func (l *LED) Brightness() float64 { return l.brightness }

// SetBrightness scales the value component of the composited output.
// Clamped to [0, 1] with a warning.
func (l *LED) SetBrightness(brightness float64) error {
	b, clamped := units.ClampUnsigned(brightness)
	if clamped {
		l.log.Warn("led brightness clamped", "led", l.index, "requested", brightness, "value", b)
	}
	l.brightness = b
	return l.push()
}

// Gamma returns the per-component gamma exponent.
func (l *LED) Gamma() float64 { return l.gamma }

// SetGamma sets the per-component gamma exponent applied after HSV to RGB
// conversion. Clamped below at 0 with a warning; there is no upper bound.
func (l *LED) SetGamma(gamma float64) error {
	g, clamped := units.ClampLower(gamma)
	if clamped {
		l.log.Warn("led gamma clamped", "led", l.index, "requested", gamma, "value", g)
	}
	l.gamma = g
	return l.push()
}

// SaturationExponent returns the saturation shaping exponent.
func (l *LED) SaturationExponent() float64 { return l.saturationExp }

// SetSaturationExponent sets the saturation shaping exponent. Clamped
// below at 0 with a warning; a zero exponent forces the composited
// saturation to 0.
func (l *LED) SetSaturationExponent(exp float64) error {
	e, clamped := units.ClampLower(exp)
	if clamped {
		l.log.Warn("led saturation exponent clamped", "led", l.index, "requested", exp, "value", e)
	}
	l.saturationExp = e
	return l.push()
}

// push recomputes the effective colour from the stored state and forwards
// it to the backend.
func (l *LED) push() error {
	v := l.value * l.brightness
	s := 0.0
	if l.saturationExp > 0 {
		s = math.Pow(l.saturation, 1/l.saturationExp)
	}
	c := colorful.Hsv(l.hue*360, s, v)
	r := math.Pow(c.R, l.gamma)
	g := math.Pow(c.G, l.gamma)
	b := math.Pow(c.B, l.gamma)
	if err := l.driver.SetLEDRGB(l.index, r, g, b); err != nil {
		return fmt.Errorf("led %d: %w", l.index, err)
	}
	return nil
}
