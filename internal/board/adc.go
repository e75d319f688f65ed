package board

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/boardkit/internal/units"
)

// DefaultADCDivisor converts raw samples to volts on the reference boards
// this library grew up on.
const DefaultADCDivisor = 7891

// ADC is a single analog input channel. Raw backend samples are divided by
// a configurable divisor and rounded; an optional cache window suppresses
// re-sampling for a number of seconds.
type ADC struct {
	index  int
	driver ADCDriver
	log    *slog.Logger
	now    func() time.Time

	divisor     float64
	cacheWindow float64 // seconds, 0 disables caching

	sample    float64
	sampledAt time.Time
	hasSample bool
}

func newADC(index int, driver ADCDriver, divisor float64, now func() time.Time, log *slog.Logger) *ADC {
	return &ADC{index: index, driver: driver, log: log, now: now, divisor: divisor}
}

// Index returns the channel index.
func (a *ADC) Index() int { return a.index }

// Read returns the channel voltage rounded to digits decimal places. With
// a non-zero cache window, a read inside the window returns the previously
// sampled value unchanged and does not touch the backend; the digits
// argument only applies when a fresh sample is taken.
func (a *ADC) Read(digits int) (float64, error) {
	if a.cacheWindow > 0 && a.hasSample &&
		a.now().Sub(a.sampledAt).Seconds() < a.cacheWindow {
		return a.sample, nil
	}
	raw, err := a.driver.ReadADCRaw(a.index)
	if err != nil {
		return 0, fmt.Errorf("adc %d: %w", a.index, err)
	}
	v := units.Round(raw/a.divisor, digits)
	a.log.Debug("read adc", "adc", a.index, "raw", raw, "value", v)
	a.sample = v
	a.sampledAt = a.now()
	a.hasSample = true
	return v, nil
}

// Divisor returns the raw-to-voltage divisor.
func (a *ADC) Divisor() float64 { return a.divisor }

// SetDivisor updates the raw-to-voltage divisor. Non-positive divisors are
// rejected with ErrInvalidConfig.
func (a *ADC) SetDivisor(divisor float64) error {
	if divisor <= 0 {
		return fmt.Errorf("%w: adc %d divisor %v must be positive", ErrInvalidConfig, a.index, divisor)
	}
	a.divisor = divisor
	return nil
}

// CacheWindow returns the cache window in seconds.
func (a *ADC) CacheWindow() float64 { return a.cacheWindow }

// SetCacheWindow updates the cache window in seconds. Zero disables
// caching; negative windows are rejected with ErrInvalidConfig.
func (a *ADC) SetCacheWindow(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("%w: adc %d cache window %v must not be negative", ErrInvalidConfig, a.index, seconds)
	}
	a.cacheWindow = seconds
	return nil
}
