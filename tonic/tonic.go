// Package tonic derives a reference Sa frequency from a stream of pitch
// estimates collected during a one-shot calibration window.
package tonic

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultMinVoicedHz is the floor below which an estimate is treated as
// unvoiced and excluded from calibration.
const DefaultMinVoicedHz = 50.0

// ErrNoVoicedPitch is returned when the calibration window contained no
// voiced pitch estimates.
var ErrNoVoicedPitch = errors.New("tonic: no voiced pitch detected")

// Option configures a Calibrator.
type Option func(*Calibrator) error

// WithMinVoicedHz sets the unvoiced-estimate floor in Hz.
func WithMinVoicedHz(hz float64) Option {
	return func(c *Calibrator) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("tonic: min voiced pitch must be > 0 and finite: %f", hz)
		}
		c.minVoicedHz = hz
		return nil
	}
}

// Calibrator collects voiced pitch estimates and reports their median as the
// reference tonic. The median is robust against the transient octave errors
// and noise spikes a pitch estimator produces.
type Calibrator struct {
	minVoicedHz float64
	pitches     []float64
}

// NewCalibrator creates a calibrator with the default voiced-pitch floor.
func NewCalibrator(opts ...Option) (*Calibrator, error) {
	c := &Calibrator{minVoicedHz: DefaultMinVoicedHz}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Feed records one pitch estimate. Estimates at or below the voiced floor
// are discarded.
func (c *Calibrator) Feed(pitchHz float64) {
	if pitchHz > c.minVoicedHz {
		c.pitches = append(c.pitches, pitchHz)
	}
}

// Voiced returns the number of voiced estimates collected so far.
func (c *Calibrator) Voiced() int {
	return len(c.pitches)
}

// Reference returns the median of the collected estimates, or
// ErrNoVoicedPitch if nothing voiced was observed.
func (c *Calibrator) Reference() (float64, error) {
	if len(c.pitches) == 0 {
		return 0, ErrNoVoicedPitch
	}
	return median(c.pitches), nil
}

// Reset discards all collected estimates.
func (c *Calibrator) Reset() {
	c.pitches = c.pitches[:0]
}

// median returns the middle value of values, averaging the two middle values
// for even counts. The input is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
