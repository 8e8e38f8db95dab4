package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Drone voicing defaults: unison, fifth and octave over the tonic, three
// partials each, rendered into a two-second loop at low amplitude.
const (
	DefaultDroneSeconds   = 2.0
	DefaultDroneAmplitude = 0.02

	thirdHarmonicGain = 0.3
)

// DefaultDroneIntervals are semitone offsets from the tonic.
var DefaultDroneIntervals = []int{0, 7, 12}

// Errors returned by drone construction.
var (
	ErrEmptyDroneBuffer = errors.New("synth: drone buffer must not be empty")
	ErrNoDroneIntervals = errors.New("synth: drone needs at least one interval")
)

// DroneOption configures RenderDrone.
type DroneOption func(*droneConfig) error

type droneConfig struct {
	seconds   float64
	amplitude float64
	intervals []int
}

// WithDroneSeconds sets the loop buffer length in seconds.
func WithDroneSeconds(seconds float64) DroneOption {
	return func(cfg *droneConfig) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("synth: drone seconds must be > 0 and finite: %f", seconds)
		}
		cfg.seconds = seconds
		return nil
	}
}

// WithDroneAmplitude sets the per-interval amplitude.
func WithDroneAmplitude(amplitude float64) DroneOption {
	return func(cfg *droneConfig) error {
		if amplitude <= 0 || math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
			return fmt.Errorf("synth: drone amplitude must be > 0 and finite: %f", amplitude)
		}
		cfg.amplitude = amplitude
		return nil
	}
}

// WithDroneIntervals sets the semitone offsets mixed over the tonic.
func WithDroneIntervals(intervals []int) DroneOption {
	return func(cfg *droneConfig) error {
		if len(intervals) == 0 {
			return ErrNoDroneIntervals
		}
		cfg.intervals = intervals
		return nil
	}
}

// RenderDrone synthesizes one loop of the drone: for each interval over the
// tonic, a three-partial additive wave sin(θ) + 0.5 sin(2θ) + 0.3 sin(3θ) at
// low amplitude, all intervals summed.
func RenderDrone(tonicHz, sampleRate float64, opts ...DroneOption) ([]float64, error) {
	if tonicHz <= 0 || math.IsNaN(tonicHz) || math.IsInf(tonicHz, 0) {
		return nil, fmt.Errorf("synth: drone tonic must be > 0 and finite: %f", tonicHz)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("synth: sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := droneConfig{
		seconds:   DefaultDroneSeconds,
		amplitude: DefaultDroneAmplitude,
		intervals: DefaultDroneIntervals,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	n := int(math.Round(cfg.seconds * sampleRate))
	if n < 1 {
		n = 1
	}

	out := make([]float64, n)
	partial := make([]float64, n)

	for _, interval := range cfg.intervals {
		freq := tonicHz * math.Pow(2, float64(interval)/12)
		step := 2 * math.Pi * freq / sampleRate
		for i := range partial {
			theta := step * float64(i)
			partial[i] = cfg.amplitude * (math.Sin(theta) +
				secondHarmonicGain*math.Sin(2*theta) +
				thirdHarmonicGain*math.Sin(3*theta))
		}
		vecmath.AddBlockInPlace(out, partial)
	}

	return out, nil
}

// Looper replays a rendered drone buffer indefinitely, block by block. It
// keeps no connection to tracking state.
type Looper struct {
	buf []float64
	pos int
}

// NewLooper wraps a rendered loop buffer without copying.
func NewLooper(buf []float64) (*Looper, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyDroneBuffer
	}
	return &Looper{buf: buf}, nil
}

// NextBlock fills out with the next slice of the loop, wrapping around the
// buffer end as needed.
func (l *Looper) NextBlock(out []float64) {
	filled := 0
	for filled < len(out) {
		n := copy(out[filled:], l.buf[l.pos:])
		filled += n
		l.pos += n
		if l.pos == len(l.buf) {
			l.pos = 0
		}
	}
}

// Len returns the loop length in samples.
func (l *Looper) Len() int {
	return len(l.buf)
}
