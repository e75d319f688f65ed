package board

// A backend is any value implementing some subset of the primitive driver
// interfaces below. Capability is discovered by type assertion at
// composition time: a kind is activated only when the backend implements
// the matching primitive and at least one index was requested for it.
//
// Every primitive is synchronous and side-effects only the named index.
// The board holds a non-owning reference to the backend; the backend must
// outlive the board.

// MotorDriver sets a motor speed in [-1, 1].
type MotorDriver interface {
	SetMotorSpeed(index int, speed float64) error
}

// ServoDriver sets a servo pulse width in microseconds. Width 0 disables
// the servo output.
type ServoDriver interface {
	SetServoPulse(index, widthMicros int) error
}

// ADCDriver reads a raw, undivided sample from an ADC channel.
type ADCDriver interface {
	ReadADCRaw(index int) (float64, error)
}

// LEDDriver pushes an RGB colour with components in [0, 1].
type LEDDriver interface {
	SetLEDRGB(index int, r, g, b float64) error
}

// Shutdowner is an optional hook invoked last during Stop for
// backend-specific teardown.
type Shutdowner interface {
	Shutdown() error
}
