// Package pitch defines the contract between the tracking engine and an
// external pitch estimator. Estimation itself (YIN, autocorrelation, ...)
// lives outside this module; the engine only requires a function from an
// audio block to a frequency.
package pitch

// Estimator maps a mono audio block to a fundamental frequency estimate in
// Hz. A non-positive return value means no pitch was detected (silence or
// an unvoiced frame).
type Estimator interface {
	Estimate(block []float64) float64
}

// EstimatorFunc adapts a plain function to the Estimator interface.
type EstimatorFunc func(block []float64) float64

// Estimate calls f.
func (f EstimatorFunc) Estimate(block []float64) float64 {
	return f(block)
}
