package board

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/boardkit/internal/units"
)

// Servo pulse width bounds in microseconds. Most PWM drivers refuse widths
// outside this window, so configured bounds are clamped into it.
const (
	PulseFloor = 500
	PulseCeil  = 2500
)

// Servo is a single position-controlled channel. Positions in [-1, 1] map
// linearly onto the configured pulse width range; a disabled servo
// commands width 0.
type Servo struct {
	index  int
	driver ServoDriver
	log    *slog.Logger

	pulseMin int
	pulseMax int

	position float64
	active   bool
}

func newServo(index int, driver ServoDriver, log *slog.Logger) *Servo {
	return &Servo{index: index, driver: driver, log: log, pulseMin: PulseFloor, pulseMax: PulseCeil}
}

// Index returns the channel index.
func (s *Servo) Index() int { return s.index }

// Set commands a position in [-1, 1], clamping out-of-range inputs with a
// warning. Position +1 maps to the maximum pulse width, -1 to the minimum.
func (s *Servo) Set(position float64) error {
	p, clamped := units.ClampSigned(position)
	if clamped {
		s.log.Warn("servo position clamped", "servo", s.index, "requested", position, "value", p)
	}
	s.log.Debug("set servo", "servo", s.index, "position", p)
	s.position = p
	s.active = true
	return s.push()
}

// Disable commands pulse width 0, releasing the servo. Get reports no
// position until the next Set.
func (s *Servo) Disable() error {
	s.log.Debug("disable servo", "servo", s.index)
	s.active = false
	if err := s.driver.SetServoPulse(s.index, 0); err != nil {
		return fmt.Errorf("servo %d: %w", s.index, err)
	}
	return nil
}

// Get returns the last commanded position. The second return is false when
// the servo is disabled or was never set.
func (s *Servo) Get() (float64, bool) {
	if !s.active {
		return 0, false
	}
	return s.position, true
}

// PulseRange returns the configured minimum and maximum pulse widths.
func (s *Servo) PulseRange() (min, max int) { return s.pulseMin, s.pulseMax }

// SetPulseRange updates the pulse width bounds. A zero bound keeps the
// previous value. Each bound is clamped into [PulseFloor, PulseCeil]
// independently, max first; a nonsensical pair can therefore leave
// min > max, which simply inverts the position mapping. Negative bounds
// are rejected with ErrInvalidConfig. If a position is active the backend
// call is re-issued under the new mapping.
func (s *Servo) SetPulseRange(min, max int) error {
	if min < 0 || max < 0 {
		return fmt.Errorf("%w: servo %d pulse bounds (%d, %d) must not be negative",
			ErrInvalidConfig, s.index, min, max)
	}
	if min != 0 {
		s.pulseMin = min
	}
	if max != 0 {
		s.pulseMax = max
	}
	if c := clampPulse(s.pulseMax); c != s.pulseMax {
		s.log.Warn("servo pulse max clamped", "servo", s.index, "requested", s.pulseMax, "value", c)
		s.pulseMax = c
	}
	if c := clampPulse(s.pulseMin); c != s.pulseMin {
		s.log.Warn("servo pulse min clamped", "servo", s.index, "requested", s.pulseMin, "value", c)
		s.pulseMin = c
	}
	if s.active {
		return s.push()
	}
	return nil
}

func (s *Servo) push() error {
	scale := float64(s.pulseMax-s.pulseMin) / 2
	centre := float64(s.pulseMax+s.pulseMin) / 2
	pulse := int(math.Round(centre - scale*(-s.position)))
	if err := s.driver.SetServoPulse(s.index, pulse); err != nil {
		return fmt.Errorf("servo %d: %w", s.index, err)
	}
	return nil
}

func clampPulse(v int) int {
	if v < PulseFloor {
		return PulseFloor
	}
	if v > PulseCeil {
		return PulseCeil
	}
	return v
}
