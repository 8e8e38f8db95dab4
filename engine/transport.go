package engine

import "context"

// BlockSource delivers fixed-size mono input blocks from the audio
// transport. ReadBlock blocks until dst is filled or ctx is done.
type BlockSource interface {
	ReadBlock(ctx context.Context, dst []float64) error
}

// BlockSink consumes fixed-size mono output blocks. WriteBlock blocks until
// src is accepted or ctx is done.
type BlockSink interface {
	WriteBlock(ctx context.Context, src []float64) error
}
