package board

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/boardkit/internal/units"
)

// Motor is a single speed-controlled channel. It remembers the last
// commanded pre-transform speed and applies an invert/scale transform on
// the way to the backend.
type Motor struct {
	index  int
	driver MotorDriver
	log    *slog.Logger

	invert bool
	scale  float64

	value    float64
	hasValue bool
}

func newMotor(index int, driver MotorDriver, log *slog.Logger) *Motor {
	return &Motor{index: index, driver: driver, log: log, scale: 1.0}
}

// Index returns the channel index.
func (m *Motor) Index() int { return m.index }

// Set commands a speed in [-1, 1]. Out-of-range speeds are clamped with a
// warning, never rejected. The stored value is the clamped pre-transform
// speed; the backend receives it scaled and optionally negated.
func (m *Motor) Set(speed float64) error {
	v, clamped := units.ClampSigned(speed)
	if clamped {
		m.log.Warn("motor speed clamped", "motor", m.index, "requested", speed, "value", v)
	}
	m.log.Debug("set motor", "motor", m.index, "speed", v)
	m.value = v
	m.hasValue = true
	return m.push()
}

// Get returns the last commanded pre-transform speed. The second return is
// false before the first Set.
func (m *Motor) Get() (float64, bool) { return m.value, m.hasValue }

// Invert reports whether output negation is enabled.
func (m *Motor) Invert() bool { return m.invert }

// SetInvert enables or disables output negation. If a speed was previously
// commanded the backend call is re-issued so the change takes effect
// without a fresh Set.
func (m *Motor) SetInvert(invert bool) error {
	m.invert = invert
	if m.hasValue {
		return m.push()
	}
	return nil
}

// Scale returns the output scale factor.
func (m *Motor) Scale() float64 { return m.scale }

// SetScale sets the output scale factor. Values outside [0, 1] are
// rejected with ErrInvalidConfig. If a speed was previously commanded the
// backend call is re-issued under the new scale.
func (m *Motor) SetScale(scale float64) error {
	if scale < 0 || scale > 1 {
		return fmt.Errorf("%w: motor %d scale %v outside [0, 1]", ErrInvalidConfig, m.index, scale)
	}
	m.scale = scale
	if m.hasValue {
		return m.push()
	}
	return nil
}

func (m *Motor) push() error {
	out := m.value * m.scale
	if m.invert {
		out = -out
	}
	if err := m.driver.SetMotorSpeed(m.index, out); err != nil {
		return fmt.Errorf("motor %d: %w", m.index, err)
	}
	return nil
}
