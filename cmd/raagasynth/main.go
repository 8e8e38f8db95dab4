// Command raagasynth tracks a singer's pitch on the default input device and
// performs it as a gliding tone within a chosen raaga, over a tanpura drone.
//
// The session runs in two phases: a blocking calibration window that detects
// the reference Sa from the singer's voice, then live tracking until SIGINT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/cwbudde/algo-raaga/engine"
	"github.com/cwbudde/algo-raaga/raaga"
)

const (
	sampleRate = 44100
	blockSize  = 1024
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("raagasynth: ")

	raagName := flag.String("raag", "", "raaga to perform in (see -list)")
	calibrateSec := flag.Float64("calibrate", 3, "calibration window in seconds")
	list := flag.Bool("list", false, "list known raagas and exit")
	flag.Parse()

	reg := raaga.NewRegistry()

	if *list {
		fmt.Println(strings.Join(reg.Names(), "\n"))
		return
	}
	if *raagName == "" {
		log.Fatal("missing -raag (use -list to see known raagas)")
	}

	if err := run(reg, *raagName, *calibrateSec); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(reg *raaga.Registry, raagName string, calibrateSec float64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer portaudio.Terminate()

	in, err := openInput()
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	est := newYINEstimator(sampleRate)

	log.Printf("listening for reference Sa, sing steadily for %.0f s", calibrateSec)
	ref, err := engine.Calibrate(ctx, in, est, time.Duration(calibrateSec*float64(time.Second)))
	if err != nil {
		return err
	}
	log.Printf("detected Sa ~ %.2f Hz", ref)

	session, err := engine.NewSession(reg, raagName, ref, est)
	if err != nil {
		return err
	}

	tone, err := openOutput()
	if err != nil {
		return fmt.Errorf("open tone output: %w", err)
	}
	defer tone.Close()

	drone, err := openOutput()
	if err != nil {
		return fmt.Errorf("open drone output: %w", err)
	}
	defer drone.Close()

	log.Printf("live tracking started in raaga %s, sing swaras (Ctrl+C to stop)", raagName)
	return session.Run(ctx, in, tone, drone)
}
