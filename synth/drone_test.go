package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-raaga/internal/testutil"
)

func TestRenderDroneLength(t *testing.T) {
	buf, err := RenderDrone(220, testSampleRate)
	if err != nil {
		t.Fatalf("RenderDrone() error = %v", err)
	}
	if want := int(DefaultDroneSeconds * testSampleRate); len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}
	testutil.RequireFinite(t, buf)
}

func TestRenderDroneContainsTonicAndFifth(t *testing.T) {
	// Single-interval renders isolate each component of the mixture.
	tonicOnly, err := RenderDrone(220, testSampleRate, WithDroneIntervals([]int{0}))
	if err != nil {
		t.Fatalf("RenderDrone() error = %v", err)
	}
	got, err := testutil.DominantFrequency(tonicOnly[:8192], testSampleRate)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	binHz := testSampleRate / 8192
	testutil.RequireInDelta(t, got, 220, binHz)

	fifthOnly, _ := RenderDrone(220, testSampleRate, WithDroneIntervals([]int{7}))
	got, err = testutil.DominantFrequency(fifthOnly[:8192], testSampleRate)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	want := 220 * math.Pow(2, 7.0/12)
	testutil.RequireInDelta(t, got, want, binHz)
}

func TestRenderDroneAmplitude(t *testing.T) {
	buf, _ := RenderDrone(220, testSampleRate)

	// Three intervals at 0.02 each over three partials (1 + 0.5 + 0.3)
	// bound the mix well below 0.11 peak.
	for i, v := range buf {
		if math.Abs(v) > 3*DefaultDroneAmplitude*1.8 {
			t.Fatalf("sample %d: |%v| exceeds mixture bound", i, v)
		}
	}
}

func TestRenderDroneValidation(t *testing.T) {
	if _, err := RenderDrone(0, testSampleRate); err == nil {
		t.Fatal("RenderDrone(tonic=0) did not fail")
	}
	if _, err := RenderDrone(220, 0); err == nil {
		t.Fatal("RenderDrone(sampleRate=0) did not fail")
	}
	if _, err := RenderDrone(220, testSampleRate, WithDroneSeconds(0)); err == nil {
		t.Fatal("WithDroneSeconds(0) did not fail")
	}
	if _, err := RenderDrone(220, testSampleRate, WithDroneAmplitude(0)); err == nil {
		t.Fatal("WithDroneAmplitude(0) did not fail")
	}
	if _, err := RenderDrone(220, testSampleRate, WithDroneIntervals(nil)); err == nil {
		t.Fatal("WithDroneIntervals(nil) did not fail")
	}
}

func TestLooperIsPeriodic(t *testing.T) {
	buf, _ := RenderDrone(220, testSampleRate, WithDroneSeconds(0.1))
	l, err := NewLooper(buf)
	if err != nil {
		t.Fatalf("NewLooper() error = %v", err)
	}

	// Reading exactly one loop length reproduces the buffer; reading it
	// again reproduces it again.
	first := make([]float64, l.Len())
	l.NextBlock(first)
	testutil.RequireSliceNearlyEqual(t, first, buf, 0)

	second := make([]float64, l.Len())
	l.NextBlock(second)
	testutil.RequireSliceNearlyEqual(t, second, buf, 0)
}

func TestLooperWrapsMidBlock(t *testing.T) {
	buf := []float64{1, 2, 3}
	l, _ := NewLooper(buf)

	out := make([]float64, 8)
	l.NextBlock(out)

	want := []float64{1, 2, 3, 1, 2, 3, 1, 2}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestNewLooperEmpty(t *testing.T) {
	if _, err := NewLooper(nil); err == nil {
		t.Fatal("NewLooper(nil) did not fail")
	}
}
