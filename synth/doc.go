// Package synth produces the audible side of a tracking session: a
// phase-continuous additive tone that glides between committed notes, and a
// looping tanpura-style drone over the tonic.
//
// The oscillator's frequency ramps linearly from its held value to a glide
// target over a scheduled sample count, and its phase accumulator carries
// across block boundaries, so note changes never click.
//
//	osc, _ := synth.NewOscillator(44100)
//	osc.SetGlide(277.18, 14112)
//	block := make([]float64, 1024)
//	osc.ProcessBlock(block)
package synth
