package board

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the aggregate configuration of a board: one record per active
// channel, keyed by kind and index. It carries only persisted fields, not
// transient state like commanded speeds or cached samples. Kinds with no
// active channels are omitted entirely.
type Config struct {
	Motors map[int]MotorConfig `yaml:"motors,omitempty"`
	Servos map[int]ServoConfig `yaml:"servos,omitempty"`
	ADCs   map[int]ADCConfig   `yaml:"adcs,omitempty"`
	LEDs   map[int]LEDConfig   `yaml:"leds,omitempty"`
}

type MotorConfig struct {
	Invert bool    `yaml:"invert"`
	Scale  float64 `yaml:"scale"`
}

type ServoConfig struct {
	PulseMin int `yaml:"pulse_min"`
	PulseMax int `yaml:"pulse_max"`
}

type ADCConfig struct {
	Divisor     float64 `yaml:"divisor"`
	CacheWindow float64 `yaml:"cache_window"`
}

type LEDConfig struct {
	Brightness         float64 `yaml:"brightness"`
	Gamma              float64 `yaml:"gamma"`
	SaturationExponent float64 `yaml:"saturation_exponent"`
}

// Config snapshots the persisted configuration of every active channel.
func (b *Board) Config() Config {
	var cfg Config
	if len(b.motors) > 0 {
		cfg.Motors = map[int]MotorConfig{}
		for index, m := range b.motors {
			cfg.Motors[index] = MotorConfig{Invert: m.Invert(), Scale: m.Scale()}
		}
	}
	if len(b.servos) > 0 {
		cfg.Servos = map[int]ServoConfig{}
		for index, s := range b.servos {
			min, max := s.PulseRange()
			cfg.Servos[index] = ServoConfig{PulseMin: min, PulseMax: max}
		}
	}
	if len(b.adcs) > 0 {
		cfg.ADCs = map[int]ADCConfig{}
		for index, a := range b.adcs {
			cfg.ADCs[index] = ADCConfig{Divisor: a.Divisor(), CacheWindow: a.CacheWindow()}
		}
	}
	if len(b.leds) > 0 {
		cfg.LEDs = map[int]LEDConfig{}
		for index, l := range b.leds {
			cfg.LEDs[index] = LEDConfig{
				Brightness:         l.Brightness(),
				Gamma:              l.Gamma(),
				SaturationExponent: l.SaturationExponent(),
			}
		}
	}
	return cfg
}

// Apply distributes a configuration across the active channels.
// Application is best-effort and never fails as a whole: entries for
// inactive kinds or unknown indices are skipped with a warning, as are
// values a channel setter rejects, and every remaining valid entry is
// still applied. Channels with a commanded value re-issue their backend
// call under the new configuration.
func (b *Board) Apply(cfg Config) {
	for index, mc := range cfg.Motors {
		m, ok := b.motors[index]
		if !ok {
			b.log.Warn("config has motor entry for inactive channel", "motor", index)
			continue
		}
		if err := m.SetInvert(mc.Invert); err != nil {
			b.log.Warn("config motor invert not applied", "motor", index, "error", err)
		}
		if err := m.SetScale(mc.Scale); err != nil {
			b.log.Warn("config motor scale not applied", "motor", index, "error", err)
		}
	}
	for index, sc := range cfg.Servos {
		s, ok := b.servos[index]
		if !ok {
			b.log.Warn("config has servo entry for inactive channel", "servo", index)
			continue
		}
		if err := s.SetPulseRange(sc.PulseMin, sc.PulseMax); err != nil {
			b.log.Warn("config servo pulse range not applied", "servo", index, "error", err)
		}
	}
	for index, ac := range cfg.ADCs {
		a, ok := b.adcs[index]
		if !ok {
			b.log.Warn("config has adc entry for inactive channel", "adc", index)
			continue
		}
		if err := a.SetDivisor(ac.Divisor); err != nil {
			b.log.Warn("config adc divisor not applied", "adc", index, "error", err)
		}
		if err := a.SetCacheWindow(ac.CacheWindow); err != nil {
			b.log.Warn("config adc cache window not applied", "adc", index, "error", err)
		}
	}
	for index, lc := range cfg.LEDs {
		l, ok := b.leds[index]
		if !ok {
			b.log.Warn("config has led entry for inactive channel", "led", index)
			continue
		}
		if err := l.SetBrightness(lc.Brightness); err != nil {
			b.log.Warn("config led brightness not applied", "led", index, "error", err)
		}
		if err := l.SetGamma(lc.Gamma); err != nil {
			b.log.Warn("config led gamma not applied", "led", index, "error", err)
		}
		if err := l.SetSaturationExponent(lc.SaturationExponent); err != nil {
			b.log.Warn("config led saturation exponent not applied", "led", index, "error", err)
		}
	}
}

// ConfigYAML serializes the aggregate configuration as a YAML document.
func (b *Board) ConfigYAML() (string, error) {
	data, err := yaml.Marshal(b.Config())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}

// ApplyYAML parses a YAML configuration document and applies it. A
// document that does not parse is rejected with ErrInvalidConfig; a
// parseable document is applied best-effort like Apply.
func (b *Board) ApplyYAML(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: parse config: %v", ErrInvalidConfig, err)
	}
	b.Apply(cfg)
	return nil
}

// ParseConfig decodes a YAML configuration document without applying it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
