package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Tone voicing: two harmonics at 30% output gain.
const (
	toneGain           = 0.3
	secondHarmonicGain = 0.5
)

// Oscillator synthesizes the tracked voice. It is owned by the output path
// of a session: SetGlide and ProcessBlock must not race (the session hands
// glide commands over atomically and applies them on the output path).
type Oscillator struct {
	sampleRate float64

	freq      float64 // current instantaneous frequency, Hz
	target    float64 // glide target, Hz
	phase     float64 // radians, wrapped to [0, 2π) per block
	remaining int     // ramp samples left until freq reaches target
}

// NewOscillator creates a silent oscillator (frequency 0) at the given rate.
func NewOscillator(sampleRate float64) (*Oscillator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("synth: sample rate must be > 0 and finite: %f", sampleRate)
	}
	return &Oscillator{sampleRate: sampleRate}, nil
}

// SetGlide schedules a linear frequency ramp from the currently held
// frequency to targetHz over rampSamples output samples. Ramp lengths below
// one sample are clamped to one.
func (o *Oscillator) SetGlide(targetHz float64, rampSamples int) {
	if rampSamples < 1 {
		rampSamples = 1
	}
	o.target = targetHz
	o.remaining = rampSamples
}

// ProcessBlock fills out with the next block of the tone. Frequency moves
// toward the glide target one linear step per sample and holds once the ramp
// is exhausted; phase continues from the previous block.
func (o *Oscillator) ProcessBlock(out []float64) {
	step := 2 * math.Pi / o.sampleRate

	for i := range out {
		if o.remaining > 0 {
			// Closing 1/remaining of the gap per sample traces an
			// exact linear ramp that ends on the target.
			o.freq += (o.target - o.freq) / float64(o.remaining)
			o.remaining--
		}
		o.phase += step * o.freq
		out[i] = math.Sin(o.phase) + secondHarmonicGain*math.Sin(2*o.phase)
	}

	o.phase = math.Mod(o.phase, 2*math.Pi)

	vecmath.ScaleBlockInPlace(out, toneGain)
}

// Frequency returns the currently held instantaneous frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.freq
}

// Phase returns the carried phase accumulator in radians.
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// RampRemaining returns how many ramp samples are left before the frequency
// reaches the glide target.
func (o *Oscillator) RampRemaining() int {
	return o.remaining
}

// Reset silences the oscillator and clears phase and glide state.
func (o *Oscillator) Reset() {
	o.freq = 0
	o.target = 0
	o.phase = 0
	o.remaining = 0
}
