// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	// ErrUnknownFormat is returned when a file extension maps to no
	// known decoder.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrNotValid is returned when a decoder rejects the input as not
	// being of its format.
	ErrNotValid = errors.New("not a valid audio file")

	// ErrUnsupportedDepth is returned for PCM bit depths the samplers
	// cannot scale.
	ErrUnsupportedDepth = errors.New("unsupported bit depth")

	// ErrInvalidDstSize is returned when a destination buffer is not a
	// multiple of the channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
