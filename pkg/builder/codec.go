package builder

import (
	"io"

	"github.com/joeydtaylor/epicycle/pkg/internal/codec"
	"github.com/joeydtaylor/epicycle/pkg/internal/pointsource"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type Compression = types.Compression

type FrameWriter = codec.FrameWriter

const (
	CompressNone    = types.CompressNone
	CompressDeflate = types.CompressDeflate
	CompressSnappy  = types.CompressSnappy
	CompressZstd    = types.CompressZstd
	CompressBrotli  = types.CompressBrotli
	CompressLZ4     = types.CompressLZ4
)

var (
	ErrMalformedPoint     = codec.ErrMalformedPoint
	ErrTruncatedFrame     = codec.ErrTruncatedFrame
	ErrUnknownCompression = codec.ErrUnknownCompression
	ErrUnknownShape       = pointsource.ErrUnknownShape
)

// NewPointJSONDecoder reads a JSON array of {"x","y"} objects or [x, y] pairs.
func NewPointJSONDecoder() types.Decoder[[]Point] {
	return codec.NewPointJSONDecoder()
}

// NewPointLineDecoder reads one "x,y" or "x y" point per line.
func NewPointLineDecoder() types.Decoder[[]Point] {
	return codec.NewPointLineDecoder()
}

// NewFrameJSONEncoder writes frames as newline delimited JSON.
func NewFrameJSONEncoder() types.Encoder[Frame] {
	return codec.NewFrameJSONEncoder()
}

// NewFrameBinaryEncoder writes frames as little-endian binary records.
func NewFrameBinaryEncoder() types.Encoder[Frame] {
	return codec.NewFrameBinaryEncoder()
}

// NewFrameBinaryDecoder reads frames written by NewFrameBinaryEncoder.
func NewFrameBinaryDecoder() types.Decoder[Frame] {
	return codec.NewFrameBinaryDecoder()
}

// NewFrameWriter layers compression and a frame encoder over dst.
func NewFrameWriter(dst io.Writer, enc types.Encoder[Frame], c Compression) (*FrameWriter, error) {
	return codec.NewFrameWriter(dst, enc, c)
}

// NewCompressedReader wraps r in the decompressor for c.
func NewCompressedReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	return codec.NewCompressedReader(r, c)
}

// ParseCompression maps a name such as "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	return codec.ParseCompression(name)
}

// Shape builds a named sample path with about n points.
func Shape(name string, n int) ([]Point, error) {
	return pointsource.ByName(name, n)
}

// ShapeNames lists the names Shape accepts.
func ShapeNames() []string {
	return pointsource.Names()
}
