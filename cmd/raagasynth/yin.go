package main

import "math"

// yinEstimator is front-end glue implementing the YIN pitch detector the
// engine expects as a black box: squared difference function, cumulative
// mean normalization, absolute threshold, parabolic refinement, plus an RMS
// gate so silent blocks report no pitch.
type yinEstimator struct {
	sampleRate float64
	threshold  float64
	silenceRMS float64
	diff       []float64
}

func newYINEstimator(sampleRate float64) *yinEstimator {
	return &yinEstimator{
		sampleRate: sampleRate,
		threshold:  0.15,
		silenceRMS: 0.01,
	}
}

// Estimate returns the fundamental frequency of block in Hz, or 0 when the
// block is silent or no period stands out.
func (y *yinEstimator) Estimate(block []float64) float64 {
	n := len(block)
	if n < 4 {
		return 0
	}
	half := n / 2

	var energy float64
	for _, v := range block {
		energy += v * v
	}
	if math.Sqrt(energy/float64(n)) < y.silenceRMS {
		return 0
	}

	if cap(y.diff) < half {
		y.diff = make([]float64, half)
	}
	d := y.diff[:half]

	d[0] = 0
	for tau := 1; tau < half; tau++ {
		var sum float64
		for i := 0; i < half; i++ {
			delta := block[i] - block[i+tau]
			sum += delta * delta
		}
		d[tau] = sum
	}

	// Cumulative mean normalized difference.
	cum := 0.0
	for tau := 1; tau < half; tau++ {
		cum += d[tau]
		d[tau] = d[tau] * float64(tau) / cum
	}

	// First dip under the threshold, extended to its local minimum.
	tau := -1
	for t := 2; t < half; t++ {
		if d[t] < y.threshold {
			for t+1 < half && d[t+1] < d[t] {
				t++
			}
			tau = t
			break
		}
	}
	if tau <= 0 {
		return 0
	}

	period := float64(tau)
	if tau+1 < half {
		s0, s1, s2 := d[tau-1], d[tau], d[tau+1]
		denom := 2*s1 - s2 - s0
		if denom != 0 {
			period += (s2 - s0) / (2 * denom)
		}
	}

	return y.sampleRate / period
}
