package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// PointLineDecoder reads one point per line as "x,y" or "x y". Text after '#'
// and blank lines are ignored.
type PointLineDecoder struct{}

func NewPointLineDecoder() types.Decoder[[]types.Point] {
	return &PointLineDecoder{}
}

// Decode reads r to the end.
func (d *PointLineDecoder) Decode(r io.Reader) ([]types.Point, error) {
	points := make([]types.Point, 0)
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 values, got %d", ErrMalformedPoint, line, len(fields))
		}

		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedPoint, line, strings.TrimSpace(text))
		}
		p, err := checkFinite(types.Pt(x, y))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedPoint, line, err)
		}
		points = append(points, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return points, nil
}
