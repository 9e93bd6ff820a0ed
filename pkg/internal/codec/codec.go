// Package codec reads sample paths and writes reconstructed frames for an
// external rendering driver, optionally through a compressed stream.
package codec

import "errors"

var (
	// ErrMalformedPoint reports a point source entry that is not a finite x, y pair.
	ErrMalformedPoint = errors.New("codec: malformed point")
	// ErrTruncatedFrame reports a binary frame cut off before its declared end.
	ErrTruncatedFrame = errors.New("codec: truncated frame")
	// ErrFrameTooLarge reports a binary frame header above MaxFrameValues.
	ErrFrameTooLarge = errors.New("codec: frame too large")
	// ErrUnknownCompression reports an unrecognised compression name.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)
