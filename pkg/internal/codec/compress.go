package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// ParseCompression maps a name to a Compression. The empty string means none.
func ParseCompression(name string) (types.Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return types.CompressNone, nil
	case "deflate", "gzip":
		return types.CompressDeflate, nil
	case "snappy":
		return types.CompressSnappy, nil
	case "zstd":
		return types.CompressZstd, nil
	case "brotli", "br":
		return types.CompressBrotli, nil
	case "lz4":
		return types.CompressLZ4, nil
	default:
		return types.CompressNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// NewCompressedWriter wraps w in the chosen compressor. Closing the result
// flushes the compressor; it never closes w.
func NewCompressedWriter(w io.Writer, c types.Compression) (io.WriteCloser, error) {
	switch c {
	case types.CompressNone:
		return nopWriteCloser{w}, nil
	case types.CompressDeflate:
		return gzip.NewWriter(w), nil
	case types.CompressSnappy:
		return snappy.NewBufferedWriter(w), nil
	case types.CompressZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case types.CompressBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case types.CompressLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, int(c))
	}
}

// NewCompressedReader wraps r in the matching decompressor. Closing the result
// releases decoder resources; it never closes r.
func NewCompressedReader(r io.Reader, c types.Compression) (io.ReadCloser, error) {
	switch c {
	case types.CompressNone:
		return io.NopCloser(r), nil
	case types.CompressDeflate:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case types.CompressSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case types.CompressZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case types.CompressBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case types.CompressLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, int(c))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
