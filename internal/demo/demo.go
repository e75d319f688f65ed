// Package demo provides a hardware-free backend that records everything a
// board commands and synthesizes ADC readings. It backs the CLI and the
// interactive console, and doubles as an integration fixture.
package demo

import (
	"log/slog"
	"math"
	"time"
)

// RGB is one recorded LED colour push.
type RGB struct {
	R, G, B float64
}

// Backend implements every board primitive in memory.
type Backend struct {
	log   *slog.Logger
	start time.Time

	motorSpeeds map[int]float64
	servoPulses map[int]int
	ledColors   map[int]RGB
	stopped     bool
}

// New creates a demo backend. A nil logger means slog.Default().
func New(log *slog.Logger) *Backend {
	if log == nil {
		log = slog.Default()
	}
	return &Backend{
		log:         log,
		start:       time.Now(),
		motorSpeeds: map[int]float64{},
		servoPulses: map[int]int{},
		ledColors:   map[int]RGB{},
	}
}

func (d *Backend) SetMotorSpeed(index int, speed float64) error {
	d.log.Info("demo motor", "motor", index, "speed", speed)
	d.motorSpeeds[index] = speed
	return nil
}

func (d *Backend) SetServoPulse(index, widthMicros int) error {
	d.log.Info("demo servo", "servo", index, "pulse_us", widthMicros)
	d.servoPulses[index] = widthMicros
	return nil
}

// ReadADCRaw returns a slowly drifting synthetic raw sample, phase-shifted
// per channel so each channel traces its own curve.
func (d *Backend) ReadADCRaw(index int) (float64, error) {
	t := time.Since(d.start).Seconds()
	raw := 12345 * (1 + 0.25*math.Sin(t/3+float64(index)*2))
	d.log.Debug("demo adc", "adc", index, "raw", raw)
	return raw, nil
}

func (d *Backend) SetLEDRGB(index int, r, g, b float64) error {
	d.log.Info("demo led", "led", index, "r", r, "g", g, "b", b)
	d.ledColors[index] = RGB{R: r, G: g, B: b}
	return nil
}

func (d *Backend) Shutdown() error {
	d.log.Info("demo backend shutting down")
	d.stopped = true
	return nil
}

// MotorSpeed returns the last speed pushed to a motor.
func (d *Backend) MotorSpeed(index int) (float64, bool) {
	v, ok := d.motorSpeeds[index]
	return v, ok
}

// ServoPulse returns the last pulse width pushed to a servo.
func (d *Backend) ServoPulse(index int) (int, bool) {
	v, ok := d.servoPulses[index]
	return v, ok
}

// LEDColor returns the last colour pushed to an LED.
func (d *Backend) LEDColor(index int) (RGB, bool) {
	v, ok := d.ledColors[index]
	return v, ok
}

// Stopped reports whether the shutdown hook ran.
func (d *Backend) Stopped() bool { return d.stopped }
