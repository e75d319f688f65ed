// Package board turns the raw primitives of a hardware backend into
// bounded, unit-consistent, individually configurable channels: motors,
// servos, ADC inputs, and RGB LEDs. A Board owns one channel per requested
// index for every kind the backend actually supports, and exposes an
// aggregate configuration view over all of them.
//
// A Board and its channels are not safe for concurrent use; callers that
// share one across goroutines must serialize access themselves.
package board

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Options selects the channel complement for a board. A channel kind is
// activated only when its index list is non-empty and the backend
// implements the matching primitive.
type Options struct {
	Motors []int
	Servos []int
	ADCs   []int
	LEDs   []int

	// ADCDivisor is the initial divisor for every ADC channel.
	// Zero means DefaultADCDivisor.
	ADCDivisor float64

	// Logger receives clamp warnings and operation traces.
	// Nil means slog.Default().
	Logger *slog.Logger

	// Now is the clock used by ADC caching. Nil means time.Now.
	Now func() time.Time
}

// Board is the registry of active channels for one backend instance.
type Board struct {
	backend any
	log     *slog.Logger

	motors map[int]*Motor
	servos map[int]*Servo
	adcs   map[int]*ADC
	leds   map[int]*LED
}

// New composes a board over a backend. Requesting indices for a kind the
// backend does not implement is not an error; that kind simply ends up
// with no channels.
func New(backend any, opts Options) *Board {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	divisor := opts.ADCDivisor
	if divisor == 0 {
		divisor = DefaultADCDivisor
	}

	b := &Board{
		backend: backend,
		log:     log,
		motors:  map[int]*Motor{},
		servos:  map[int]*Servo{},
		adcs:    map[int]*ADC{},
		leds:    map[int]*LED{},
	}

	if driver, ok := backend.(MotorDriver); ok && len(opts.Motors) > 0 {
		for _, index := range opts.Motors {
			b.motors[index] = newMotor(index, driver, log)
		}
	} else if len(opts.Motors) > 0 {
		log.Debug("backend has no motor primitive, motors not activated", "requested", opts.Motors)
	}

	if driver, ok := backend.(ServoDriver); ok && len(opts.Servos) > 0 {
		for _, index := range opts.Servos {
			b.servos[index] = newServo(index, driver, log)
		}
	} else if len(opts.Servos) > 0 {
		log.Debug("backend has no servo primitive, servos not activated", "requested", opts.Servos)
	}

	if driver, ok := backend.(ADCDriver); ok && len(opts.ADCs) > 0 {
		for _, index := range opts.ADCs {
			b.adcs[index] = newADC(index, driver, divisor, now, log)
		}
	} else if len(opts.ADCs) > 0 {
		log.Debug("backend has no adc primitive, adcs not activated", "requested", opts.ADCs)
	}

	if driver, ok := backend.(LEDDriver); ok && len(opts.LEDs) > 0 {
		for _, index := range opts.LEDs {
			b.leds[index] = newLED(index, driver, log)
		}
	} else if len(opts.LEDs) > 0 {
		log.Debug("backend has no led primitive, leds not activated", "requested", opts.LEDs)
	}

	return b
}

// Motor returns the motor channel at index, or ErrUnknownChannel.
func (b *Board) Motor(index int) (*Motor, error) {
	m, ok := b.motors[index]
	if !ok {
		return nil, fmt.Errorf("%w: motor %d not in %v", ErrUnknownChannel, index, b.Motors())
	}
	return m, nil
}

// Servo returns the servo channel at index, or ErrUnknownChannel.
func (b *Board) Servo(index int) (*Servo, error) {
	s, ok := b.servos[index]
	if !ok {
		return nil, fmt.Errorf("%w: servo %d not in %v", ErrUnknownChannel, index, b.Servos())
	}
	return s, nil
}

// ADC returns the ADC channel at index, or ErrUnknownChannel.
func (b *Board) ADC(index int) (*ADC, error) {
	a, ok := b.adcs[index]
	if !ok {
		return nil, fmt.Errorf("%w: adc %d not in %v", ErrUnknownChannel, index, b.ADCs())
	}
	return a, nil
}

// LED returns the LED channel at index, or ErrUnknownChannel.
func (b *Board) LED(index int) (*LED, error) {
	l, ok := b.leds[index]
	if !ok {
		return nil, fmt.Errorf("%w: led %d not in %v", ErrUnknownChannel, index, b.LEDs())
	}
	return l, nil
}

// Motors returns the active motor indices in ascending order.
func (b *Board) Motors() []int { return sortedKeys(b.motors) }

// Servos returns the active servo indices in ascending order.
func (b *Board) Servos() []int { return sortedKeys(b.servos) }

// ADCs returns the active ADC indices in ascending order.
func (b *Board) ADCs() []int { return sortedKeys(b.adcs) }

// LEDs returns the active LED indices in ascending order.
func (b *Board) LEDs() []int { return sortedKeys(b.leds) }

// Stop quiesces the whole board: every motor to speed 0, every servo
// disabled, every LED to black, and finally the backend's optional
// shutdown hook. Failures on one channel do not prevent the remaining
// channels from being attempted; all failures are joined into the
// returned error.
func (b *Board) Stop() error {
	var errs []error
	for _, index := range b.Motors() {
		if err := b.motors[index].Set(0); err != nil {
			errs = append(errs, err)
		}
	}
	for _, index := range b.Servos() {
		if err := b.servos[index].Disable(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, index := range b.LEDs() {
		if err := b.leds[index].SetHSV(0, 0, 0); err != nil {
			errs = append(errs, err)
		}
	}
	if hook, ok := b.backend.(Shutdowner); ok {
		if err := hook.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
