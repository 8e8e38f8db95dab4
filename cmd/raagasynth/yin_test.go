package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-raaga/internal/testutil"
)

func TestYINDetectsSine(t *testing.T) {
	est := newYINEstimator(sampleRate)

	for _, freq := range []float64{110, 220, 330} {
		block := testutil.DeterministicSine(freq, sampleRate, 0.5, blockSize)

		got := est.Estimate(block)
		if math.Abs(got-freq) > freq*0.01 {
			t.Fatalf("Estimate() = %v, want %v ± 1%%", got, freq)
		}
	}
}

func TestYINSilenceReportsNoPitch(t *testing.T) {
	est := newYINEstimator(sampleRate)

	block := make([]float64, blockSize)
	if got := est.Estimate(block); got != 0 {
		t.Fatalf("Estimate(silence) = %v, want 0", got)
	}
}

func TestYINShortBlockReportsNoPitch(t *testing.T) {
	est := newYINEstimator(sampleRate)

	if got := est.Estimate([]float64{1, -1}); got != 0 {
		t.Fatalf("Estimate(short block) = %v, want 0", got)
	}
}
