// Package track converts raw pitch estimates into stabilized, raaga-quantized
// note commits. Each commit carries the glide contract for the synthesizer:
// a target frequency and the number of output samples over which to reach it.
package track

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-raaga/raaga"
)

// Defaults for the tracker's stability and glide parameters.
const (
	DefaultWindow           = 6    // pitch-history capacity in blocks
	DefaultHoldBlocks       = 4    // consecutive qualifying blocks before a commit
	DefaultBias             = 0.2  // directional nudge and commit deadband, semitones
	DefaultGlidePerSemitone = 0.08 // glide seconds per semitone of interval
)

// octaveJumpSemitones is the guard above which a candidate move is treated
// as a tracking glitch rather than a real jump.
const octaveJumpSemitones = 12

// Glide is the commit record handed to the synthesizer: ramp linearly to
// TargetHz over exactly RampSamples output samples, then hold.
type Glide struct {
	TargetHz    float64
	RampSamples int
}

// Option configures a Tracker.
type Option func(*Tracker) error

// WithWindow sets the pitch-history capacity in blocks.
func WithWindow(blocks int) Option {
	return func(t *Tracker) error {
		if blocks < 1 {
			return fmt.Errorf("track: window must be >= 1: %d", blocks)
		}
		t.window = blocks
		return nil
	}
}

// WithHoldBlocks sets how many consecutive qualifying blocks a candidate
// must survive before it commits.
func WithHoldBlocks(blocks int) Option {
	return func(t *Tracker) error {
		if blocks < 1 {
			return fmt.Errorf("track: hold blocks must be >= 1: %d", blocks)
		}
		t.hold = blocks
		return nil
	}
}

// WithBias sets the directional nudge applied to the hysteresis comparison
// and the commit deadband, in semitones.
func WithBias(semitones float64) Option {
	return func(t *Tracker) error {
		if semitones < 0 || math.IsNaN(semitones) || math.IsInf(semitones, 0) {
			return fmt.Errorf("track: bias must be >= 0 and finite: %f", semitones)
		}
		t.bias = semitones
		return nil
	}
}

// WithGlidePerSemitone sets the glide duration per semitone of interval.
func WithGlidePerSemitone(seconds float64) Option {
	return func(t *Tracker) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("track: glide per semitone must be > 0 and finite: %f", seconds)
		}
		t.glidePerST = seconds
		return nil
	}
}

// Tracker is the per-input-block note stabilizer. It is owned by the input
// path of a session and is not safe for concurrent use.
type Tracker struct {
	scale      raaga.Scale
	tonicHz    float64
	sampleRate float64

	window     int
	hold       int
	bias       float64
	glidePerST float64

	hist     *history
	lastNote float64
	hasLast  bool
	stable   int
}

// NewTracker creates a tracker quantizing against scale, relative to the
// calibrated tonic.
func NewTracker(scale raaga.Scale, tonicHz, sampleRate float64, opts ...Option) (*Tracker, error) {
	if tonicHz <= 0 || math.IsNaN(tonicHz) || math.IsInf(tonicHz, 0) {
		return nil, fmt.Errorf("track: tonic must be > 0 and finite: %f", tonicHz)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("track: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if len(scale.Offsets()) == 0 {
		return nil, fmt.Errorf("track: scale %q has no offsets", scale.Name())
	}

	t := &Tracker{
		scale:      scale,
		tonicHz:    tonicHz,
		sampleRate: sampleRate,
		window:     DefaultWindow,
		hold:       DefaultHoldBlocks,
		bias:       DefaultBias,
		glidePerST: DefaultGlidePerSemitone,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.hist = newHistory(t.window)

	return t, nil
}

// Process consumes one raw pitch estimate and reports whether it produced a
// committed note change. Non-positive estimates and octave-jump glitches are
// skipped without error; silence is a normal part of vocal input.
func (t *Tracker) Process(pitchHz float64) (Glide, bool) {
	if pitchHz <= 0 {
		return Glide{}, false
	}

	semitones := 12 * math.Log2(pitchHz/t.tonicHz)
	snapped := t.scale.Snap(int(math.Round(semitones)))
	t.hist.push(snapped)

	candidate := float64(t.hist.median())
	trend := t.hist.trend()

	// A candidate more than an octave from the committed note is a
	// tracking glitch, not a melodic move.
	if t.hasLast && math.Abs(candidate-t.lastNote) > octaveJumpSemitones {
		return Glide{}, false
	}

	// The directional nudge only shifts the hysteresis comparison; the
	// committed pitch stays on the unbiased candidate.
	biased := candidate
	if trend != 0 && t.hasLast {
		biased += float64(trend) * t.bias
	}

	if t.hasLast && math.Abs(biased-t.lastNote) <= t.bias {
		t.stable = 0
		return Glide{}, false
	}

	t.stable++
	if t.stable < t.hold {
		return Glide{}, false
	}

	return t.commit(candidate), true
}

// commit finalizes candidate as the new note and computes its glide contract.
func (t *Tracker) commit(candidate float64) Glide {
	prev := 0.0
	if t.hasLast {
		prev = t.lastNote
	}

	interval := math.Abs(candidate - prev)
	glideTime := t.glidePerST * math.Max(1, interval)
	ramp := int(math.Round(glideTime * t.sampleRate))
	if ramp < 1 {
		ramp = 1
	}

	t.lastNote = candidate
	t.hasLast = true
	t.stable = 0

	return Glide{
		TargetHz:    t.tonicHz * math.Pow(2, candidate/12),
		RampSamples: ramp,
	}
}

// LastNote returns the most recently committed note in semitones relative to
// the tonic, and whether any note has been committed.
func (t *Tracker) LastNote() (float64, bool) {
	return t.lastNote, t.hasLast
}

// Reset clears the history, the committed note and the stability counter.
func (t *Tracker) Reset() {
	t.hist.reset()
	t.lastNote = 0
	t.hasLast = false
	t.stable = 0
}
