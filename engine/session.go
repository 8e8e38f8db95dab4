package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-raaga/pitch"
	"github.com/cwbudde/algo-raaga/raaga"
	"github.com/cwbudde/algo-raaga/synth"
	"github.com/cwbudde/algo-raaga/track"
)

// Errors returned by session construction.
var (
	ErrNilRegistry  = errors.New("engine: registry must not be nil")
	ErrNilEstimator = errors.New("engine: pitch estimator must not be nil")
)

// Session is a live pitch-to-performance run over one raaga and one
// calibrated tonic. ProcessInputBlock and ProduceOutputBlock may be called
// from independent periodic schedules; all other methods belong to setup and
// teardown.
type Session struct {
	cfg     Config
	est     pitch.Estimator
	tracker *track.Tracker
	osc     *synth.Oscillator
	drone   *synth.Looper

	// pending is the single-writer/single-reader glide handoff: the input
	// path publishes a commit as one record, the output path consumes it
	// with a swap. Target frequency and ramp length are never observed
	// separately.
	pending atomic.Pointer[track.Glide]
}

// NewSession validates the raaga and reference frequency and builds the
// tracking and synthesis state.
func NewSession(reg *raaga.Registry, raagaName string, referenceHz float64, est pitch.Estimator, opts ...Option) (*Session, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if est == nil {
		return nil, ErrNilEstimator
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	scale, err := reg.Scale(raagaName)
	if err != nil {
		return nil, err
	}

	tracker, err := track.NewTracker(scale, referenceHz, cfg.SampleRate, cfg.trackerOpts...)
	if err != nil {
		return nil, err
	}

	osc, err := synth.NewOscillator(cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	droneBuf, err := synth.RenderDrone(referenceHz, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	drone, err := synth.NewLooper(droneBuf)
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:     cfg,
		est:     est,
		tracker: tracker,
		osc:     osc,
		drone:   drone,
	}, nil
}

// Config returns the session's transport settings.
func (s *Session) Config() Config {
	return s.cfg
}

// ProcessInputBlock runs the estimator and tracker over one input block and,
// on a committed note change, publishes the glide target for the output
// path. Silent or implausible blocks leave all state untouched.
func (s *Session) ProcessInputBlock(samples []float64) {
	if len(samples) == 0 {
		return
	}

	g, ok := s.tracker.Process(s.est.Estimate(samples))
	if !ok {
		return
	}

	s.pending.Store(&g)
}

// ProduceOutputBlock synthesizes the next tone block, first applying any
// glide commit published since the previous block.
func (s *Session) ProduceOutputBlock(out []float64) {
	if g := s.pending.Swap(nil); g != nil {
		s.osc.SetGlide(g.TargetHz, g.RampSamples)
	}
	s.osc.ProcessBlock(out)
}

// ProduceDroneBlock fills out with the next slice of the drone loop. The
// drone runs independently of tracking state.
func (s *Session) ProduceDroneBlock(out []float64) {
	s.drone.NextBlock(out)
}

// LastNote reports the most recently committed note in semitones relative to
// the tonic.
func (s *Session) LastNote() (float64, bool) {
	return s.tracker.LastNote()
}

// Run pumps the session until ctx is cancelled: one loop reading input
// blocks from src, one writing tone blocks to tone, and, when drone is not
// nil, one writing drone blocks. The first transport error stops all loops;
// plain cancellation returns nil.
func (s *Session) Run(ctx context.Context, src BlockSource, tone, drone BlockSink) error {
	if src == nil || tone == nil {
		return fmt.Errorf("engine: run requires a source and a tone sink")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		cancel()
	}

	loop := func(body func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				if err := body(); err != nil {
					if !errors.Is(err, context.Canceled) {
						fail(err)
					}
					return
				}
			}
		}()
	}

	// One scratch block per loop, allocated before the schedules start.
	inBuf := make([]float64, s.cfg.BlockSize)
	toneBuf := make([]float64, s.cfg.BlockSize)

	loop(func() error {
		if err := src.ReadBlock(ctx, inBuf); err != nil {
			return err
		}
		s.ProcessInputBlock(inBuf)
		return nil
	})

	loop(func() error {
		s.ProduceOutputBlock(toneBuf)
		return tone.WriteBlock(ctx, toneBuf)
	})

	if drone != nil {
		droneBuf := make([]float64, s.cfg.BlockSize)
		loop(func() error {
			s.ProduceDroneBlock(droneBuf)
			return drone.WriteBlock(ctx, droneBuf)
		})
	}

	wg.Wait()
	return firstErr
}
