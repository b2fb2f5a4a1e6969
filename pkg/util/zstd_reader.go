package util

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type zstdReadCloser struct {
	*zstd.Decoder

	underlying io.ReadCloser
}

// NewZstdReadCloser wraps a reader, decompressing its contents using
// Zstandard. Closing the returned reader releases the decoder and
// closes the underlying reader.
func NewZstdReadCloser(underlying io.ReadCloser, options ...zstd.DOption) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(underlying, options...)
	if err != nil {
		underlying.Close()
		return nil, StatusWrap(err, "Failed to create Zstandard decoder")
	}
	return &zstdReadCloser{
		Decoder:    decoder,
		underlying: underlying,
	}, nil
}

func (r *zstdReadCloser) Close() error {
	r.Decoder.Close()
	return r.underlying.Close()
}
