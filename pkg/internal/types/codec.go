package types

import "io"

// Decoder deserializes one value from r.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder serializes one value to w.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}

// Frame is one reconstruction handed to a rendering driver: the time parameter
// and the flat x0,y0,x1,y1,... epicycle chain.
type Frame struct {
	T      float64   `json:"t"`
	Points []float64 `json:"points"`
}

// Compression selects the stream compression applied to encoded frames.
type Compression int

const (
	CompressNone Compression = iota
	CompressDeflate
	CompressSnappy
	CompressZstd
	CompressBrotli
	CompressLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressDeflate:
		return "deflate"
	case CompressSnappy:
		return "snappy"
	case CompressZstd:
		return "zstd"
	case CompressBrotli:
		return "brotli"
	case CompressLZ4:
		return "lz4"
	default:
		return "none"
	}
}
