package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-raaga/pitch"
	"github.com/cwbudde/algo-raaga/tonic"
)

// Calibrate owns the input stream for the given duration, feeding every
// block's pitch estimate to a tonic calibrator, and returns the detected
// reference Sa. A window with no voiced pitch fails with
// tonic.ErrNoVoicedPitch; calibration is never retried here.
func Calibrate(ctx context.Context, src BlockSource, est pitch.Estimator, duration time.Duration, opts ...Option) (float64, error) {
	if src == nil {
		return 0, fmt.Errorf("engine: calibrate requires a source")
	}
	if est == nil {
		return 0, ErrNilEstimator
	}
	if duration <= 0 {
		return 0, fmt.Errorf("engine: calibration duration must be > 0: %v", duration)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return 0, err
	}

	cal, err := tonic.NewCalibrator()
	if err != nil {
		return 0, err
	}

	blocks := int(math.Ceil(duration.Seconds() * cfg.SampleRate / float64(cfg.BlockSize)))
	if blocks < 1 {
		blocks = 1
	}

	buf := make([]float64, cfg.BlockSize)
	for range blocks {
		if err := src.ReadBlock(ctx, buf); err != nil {
			return 0, err
		}
		cal.Feed(est.Estimate(buf))
	}

	return cal.Reference()
}
