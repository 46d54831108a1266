// SPDX-License-Identifier: EPL-2.0

package stream

import "io"

// memSource serves a fixed slice of interleaved samples.
type memSource struct {
	rate     int
	channels int
	samples  []float32
	off      int
	closed   bool
}

func (s *memSource) SampleRate() int { return s.rate }
func (s *memSource) Channels() int   { return s.channels }

func (s *memSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.off:])
	s.off += n
	if s.off >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}

func (s *memSource) Close() error {
	s.closed = true
	return nil
}

// constSource builds a memSource holding frames of constant value v.
func constSource(rate, channels, frames int, v float32) *memSource {
	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = v
	}
	return &memSource{rate: rate, channels: channels, samples: samples}
}

// drain reads src to exhaustion in chunks and returns all samples.
func drain(src Source, chunk int) ([]float32, error) {
	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}
