// Package engine wires the tracking pipeline into a live session: the
// input-block path runs the pitch estimator and note tracker, the
// output-block path runs the tone oscillator, and committed glide targets
// cross between them through a single atomically-swapped record.
//
// The two block paths are designed for independent periodic schedules (audio
// callbacks): neither locks, and in steady state neither allocates. The only
// allocation on the input path is one small record per committed note, which
// happens at melodic rate, not block rate.
//
// A session starts after two one-time steps: tonic calibration (Calibrate,
// which owns the input stream for its window) and raaga validation
// (NewSession). Runtime stop is an external concern, expressed as context
// cancellation in Run.
package engine
