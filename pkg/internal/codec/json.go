package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// PointJSONDecoder reads a JSON array of points. Each element is either an
// object {"x": .., "y": ..} or a two element array [x, y].
type PointJSONDecoder struct{}

// FrameJSONEncoder writes one JSON object per frame, newline terminated.
type FrameJSONEncoder struct{}

// FrameJSONDecoder reads frames written by FrameJSONEncoder.
type FrameJSONDecoder struct {
	dec *json.Decoder
	src io.Reader
}

func NewPointJSONDecoder() types.Decoder[[]types.Point] {
	return &PointJSONDecoder{}
}

func NewFrameJSONEncoder() types.Encoder[types.Frame] {
	return &FrameJSONEncoder{}
}

func NewFrameJSONDecoder() types.Decoder[types.Frame] {
	return &FrameJSONDecoder{}
}

// Decode reads the whole array from r.
func (d *PointJSONDecoder) Decode(r io.Reader) ([]types.Point, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}

	points := make([]types.Point, len(raw))
	for i, msg := range raw {
		p, err := decodeJSONPoint(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedPoint, i, err)
		}
		points[i] = p
	}
	return points, nil
}

func decodeJSONPoint(msg json.RawMessage) (types.Point, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return types.Point{}, err
		}
		if len(pair) != 2 {
			return types.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(pair))
		}
		return checkFinite(types.Pt(pair[0], pair[1]))
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return types.Point{}, err
	}
	if obj.X == nil || obj.Y == nil {
		return types.Point{}, fmt.Errorf("missing x or y")
	}
	return checkFinite(types.Pt(*obj.X, *obj.Y))
}

func checkFinite(p types.Point) (types.Point, error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return types.Point{}, fmt.Errorf("non-finite coordinate %v", p)
	}
	return p, nil
}

// Encode writes frame as a single line of JSON. Non-finite values fail, as
// JSON has no representation for them.
func (e *FrameJSONEncoder) Encode(w io.Writer, frame types.Frame) error {
	if err := json.NewEncoder(w).Encode(frame); err != nil {
		return fmt.Errorf("encode frame t=%v: %w", frame.T, err)
	}
	return nil
}

// Decode reads the next frame. The decoder keeps buffered input between calls,
// so it must be used with a single reader; io.EOF marks the end of the stream.
func (d *FrameJSONDecoder) Decode(r io.Reader) (types.Frame, error) {
	if d.dec == nil || d.src != r {
		d.dec = json.NewDecoder(r)
		d.src = r
	}

	var frame types.Frame
	if err := d.dec.Decode(&frame); err != nil {
		if err == io.EOF {
			return types.Frame{}, io.EOF
		}
		return types.Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return frame, nil
}
