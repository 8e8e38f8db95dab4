package tonic

import (
	"errors"
	"math"
	"testing"
)

func TestReferenceConstantPitch(t *testing.T) {
	c, err := NewCalibrator()
	if err != nil {
		t.Fatalf("NewCalibrator() error = %v", err)
	}

	// ~3 s of estimates at one per 1024-sample block at 44.1 kHz.
	for range 129 {
		c.Feed(220)
	}

	ref, err := c.Reference()
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	if math.Abs(ref-220) > 1e-9 {
		t.Fatalf("Reference() = %v, want 220", ref)
	}
}

func TestReferenceMedianRejectsOctaveSpikes(t *testing.T) {
	c, _ := NewCalibrator()

	for range 20 {
		c.Feed(220)
	}
	// A few octave errors from the estimator must not move the median.
	c.Feed(440)
	c.Feed(440)
	c.Feed(110.5)

	ref, err := c.Reference()
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	if ref != 220 {
		t.Fatalf("Reference() = %v, want 220", ref)
	}
}

func TestReferenceEvenCountAveragesMiddles(t *testing.T) {
	c, _ := NewCalibrator()
	for _, hz := range []float64{200, 210, 220, 230} {
		c.Feed(hz)
	}

	ref, err := c.Reference()
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	if ref != 215 {
		t.Fatalf("Reference() = %v, want 215", ref)
	}
}

func TestReferenceSilentStreamFails(t *testing.T) {
	c, _ := NewCalibrator()

	// Non-positive and sub-threshold estimates are all unvoiced.
	for _, hz := range []float64{0, -1, 25, 50} {
		c.Feed(hz)
	}

	if c.Voiced() != 0 {
		t.Fatalf("Voiced() = %d, want 0", c.Voiced())
	}
	_, err := c.Reference()
	if !errors.Is(err, ErrNoVoicedPitch) {
		t.Fatalf("Reference() error = %v, want ErrNoVoicedPitch", err)
	}
}

func TestResetDiscardsEstimates(t *testing.T) {
	c, _ := NewCalibrator()
	c.Feed(220)
	c.Reset()

	if _, err := c.Reference(); !errors.Is(err, ErrNoVoicedPitch) {
		t.Fatalf("Reference() after Reset error = %v, want ErrNoVoicedPitch", err)
	}
}

func TestWithMinVoicedHz(t *testing.T) {
	c, err := NewCalibrator(WithMinVoicedHz(100))
	if err != nil {
		t.Fatalf("NewCalibrator() error = %v", err)
	}
	c.Feed(90)
	c.Feed(110)

	if c.Voiced() != 1 {
		t.Fatalf("Voiced() = %d, want 1", c.Voiced())
	}

	if _, err := NewCalibrator(WithMinVoicedHz(0)); err == nil {
		t.Fatal("NewCalibrator(WithMinVoicedHz(0)) did not fail")
	}
}
