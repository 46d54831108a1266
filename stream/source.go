// SPDX-License-Identifier: EPL-2.0

package stream

// Source is a stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the
	// number of float32 values written. io.EOF marks the end of the
	// stream, possibly alongside a final short read.
	ReadSamples(dst []float32) (int, error)
	// Close releases any resources held by the decoder.
	Close() error
}
