package codec

import (
	"fmt"
	"io"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"go.uber.org/multierr"
)

// FrameWriter encodes frames into a compressed stream on top of dst.
type FrameWriter struct {
	enc    types.Encoder[types.Frame]
	stream io.WriteCloser
	dst    io.Writer
	frames int
}

// NewFrameWriter layers compression c and encoder enc over dst. If dst is an
// io.Closer it is closed by Close.
func NewFrameWriter(dst io.Writer, enc types.Encoder[types.Frame], c types.Compression) (*FrameWriter, error) {
	stream, err := NewCompressedWriter(dst, c)
	if err != nil {
		return nil, err
	}
	return &FrameWriter{enc: enc, stream: stream, dst: dst}, nil
}

// Write encodes one frame.
func (fw *FrameWriter) Write(frame types.Frame) error {
	if err := fw.enc.Encode(fw.stream, frame); err != nil {
		return err
	}
	fw.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (fw *FrameWriter) Frames() int {
	return fw.frames
}

// Close flushes the compressor and closes dst when it can be closed. Both
// errors are reported.
func (fw *FrameWriter) Close() error {
	err := fw.stream.Close()
	if err != nil {
		err = fmt.Errorf("flush stream: %w", err)
	}
	if c, ok := fw.dst.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	return err
}
