package main

import (
	"context"

	"github.com/gordonklaus/portaudio"
)

// paInput adapts a blocking PortAudio capture stream to engine.BlockSource.
type paInput struct {
	stream *portaudio.Stream
	buf    []float32
}

func openInput() (*paInput, error) {
	buf := make([]float32, blockSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, blockSize, buf)
	if err != nil {
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, err
	}
	return &paInput{stream: stream, buf: buf}, nil
}

func (p *paInput) ReadBlock(ctx context.Context, dst []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.stream.Read(); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = float64(p.buf[i])
	}
	return nil
}

func (p *paInput) Close() error {
	p.stream.Stop()
	return p.stream.Close()
}

// paOutput adapts a blocking PortAudio playback stream to engine.BlockSink.
type paOutput struct {
	stream *portaudio.Stream
	buf    []float32
}

func openOutput() (*paOutput, error) {
	buf := make([]float32, blockSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, blockSize, buf)
	if err != nil {
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, err
	}
	return &paOutput{stream: stream, buf: buf}, nil
}

func (p *paOutput) WriteBlock(ctx context.Context, src []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i := range p.buf {
		p.buf[i] = float32(src[i])
	}
	return p.stream.Write()
}

func (p *paOutput) Close() error {
	p.stream.Stop()
	return p.stream.Close()
}
