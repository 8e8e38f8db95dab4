package engine

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-raaga/track"
)

// Transport defaults matching the reference CLI: 1024-sample mono blocks at
// 44.1 kHz (~23 ms per block).
const (
	DefaultSampleRate = 44100.0
	DefaultBlockSize  = 1024
)

// Config holds the session's transport-facing settings.
type Config struct {
	SampleRate float64
	BlockSize  int

	trackerOpts []track.Option
}

func defaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// Option mutates a Config.
type Option func(*Config) error

// WithSampleRate sets the transport sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("engine: sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.SampleRate = sampleRate
		return nil
	}
}

// WithBlockSize sets the transport block length in samples.
func WithBlockSize(blockSize int) Option {
	return func(cfg *Config) error {
		if blockSize < 1 {
			return fmt.Errorf("engine: block size must be >= 1: %d", blockSize)
		}
		cfg.BlockSize = blockSize
		return nil
	}
}

// WithTrackerOptions forwards options to the session's note tracker.
func WithTrackerOptions(opts ...track.Option) Option {
	return func(cfg *Config) error {
		cfg.trackerOpts = append(cfg.trackerOpts, opts...)
		return nil
	}
}

func applyOptions(opts []Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
