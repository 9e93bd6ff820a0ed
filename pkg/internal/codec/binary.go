package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// MaxFrameValues bounds the value count a binary frame header may declare.
const MaxFrameValues = 1 << 24

const frameHeaderSize = 8 + 4

// FrameBinaryEncoder writes frames as little-endian float64 t, uint32 count,
// then count float64 values.
type FrameBinaryEncoder struct{}

// FrameBinaryDecoder reads frames written by FrameBinaryEncoder.
type FrameBinaryDecoder struct{}

func NewFrameBinaryEncoder() types.Encoder[types.Frame] {
	return &FrameBinaryEncoder{}
}

func NewFrameBinaryDecoder() types.Decoder[types.Frame] {
	return &FrameBinaryDecoder{}
}

func (e *FrameBinaryEncoder) Encode(w io.Writer, frame types.Frame) error {
	if len(frame.Points) > MaxFrameValues {
		return fmt.Errorf("%w: %d values", ErrFrameTooLarge, len(frame.Points))
	}

	buf := make([]byte, 0, frameHeaderSize+8*len(frame.Points))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(frame.T))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(frame.Points)))
	for _, v := range frame.Points {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write frame t=%v: %w", frame.T, err)
	}
	return nil
}

// Decode reads one frame. A stream that ends cleanly between frames returns io.EOF.
func (d *FrameBinaryDecoder) Decode(r io.Reader) (types.Frame, error) {
	var header [frameHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return types.Frame{}, io.EOF
		}
		return types.Frame{}, truncated(err)
	}

	count := binary.LittleEndian.Uint32(header[8:])
	if count > MaxFrameValues {
		return types.Frame{}, fmt.Errorf("%w: header declares %d values", ErrFrameTooLarge, count)
	}

	body := make([]byte, 8*int(count))
	if _, err := io.ReadFull(r, body); err != nil {
		return types.Frame{}, truncated(err)
	}

	frame := types.Frame{
		T:      math.Float64frombits(binary.LittleEndian.Uint64(header[:8])),
		Points: make([]float64, count),
	}
	for i := range frame.Points {
		frame.Points[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[8*i:]))
	}
	return frame, nil
}

func truncated(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrTruncatedFrame
	}
	return fmt.Errorf("read frame: %w", err)
}
