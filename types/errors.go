package types

import "errors"

// Construction and wire-level validation errors.
var (
	ErrFieldTooLong   = errors.New("types: field exceeds its length prefix width")
	ErrTrailingData   = errors.New("types: trailing data after last schema field")
	ErrChannelOutOfMask = errors.New("types: channel not contained in channel mask")
)
