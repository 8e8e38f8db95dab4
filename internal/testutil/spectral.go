package testutil

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak in signal. The signal is Hann-windowed, zero-padded to a power of two
// and refined with parabolic interpolation around the peak bin.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("testutil: signal must not be empty")
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("testutil: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := 1
	for fftSize < len(signal) {
		fftSize <<= 1
	}

	in := make([]complex128, fftSize)
	n := float64(len(signal) - 1)
	for i, v := range signal {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/n))
		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, err
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	peak := 1
	peakMag := 0.0
	for k := 1; k <= fftSize/2; k++ {
		mag := math.Hypot(real(out[k]), imag(out[k]))
		if mag > peakMag {
			peak = k
			peakMag = mag
		}
	}

	// Parabolic refinement over the peak and its neighbors.
	delta := 0.0
	if peak > 1 && peak < fftSize/2 {
		left := math.Hypot(real(out[peak-1]), imag(out[peak-1]))
		right := math.Hypot(real(out[peak+1]), imag(out[peak+1]))
		denom := left - 2*peakMag + right
		if denom != 0 {
			delta = 0.5 * (left - right) / denom
		}
	}

	return (float64(peak) + delta) * sampleRate / float64(fftSize), nil
}
