// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	"github.com/snd-tools/audioroute/utils"
)

// NewRate resamples src to the given rate using cubic interpolation
// over a four-frame window. The channel count is preserved. When the
// rates already match, src is returned unchanged.
func NewRate(src Source, rate int) Source {
	if src.SampleRate() == rate {
		return src
	}
	r := &resampler{
		src:      src,
		rate:     rate,
		channels: src.Channels(),
		step:     float64(src.SampleRate()) / float64(rate),
	}
	for i := range r.win {
		r.win[i] = make([]float32, r.channels)
	}
	return r
}

// resampler interpolates between win[1] and win[2]; win[0] and win[3]
// supply the outer cubic support points.
type resampler struct {
	src      Source
	rate     int
	channels int
	step     float64

	win    [4][]float32
	pos    float64
	primed bool
	eof    bool
	pad    int
}

func (r *resampler) SampleRate() int { return r.rate }
func (r *resampler) Channels() int   { return r.channels }

func (r *resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame fills dst with exactly one source frame, zero-padding a
// partial trailing frame.
func (r *resampler) readFrame(dst []float32) error {
	got := 0
	for got < len(dst) {
		n, err := r.src.ReadSamples(dst[got:])
		got += n
		if err == io.EOF || (err == nil && n == 0) {
			if got == 0 {
				return io.EOF
			}
			break
		}
		if err != nil {
			return err
		}
	}
	for i := got; i < len(dst); i++ {
		dst[i] = 0
	}
	return nil
}

// prime loads the initial window: the first frame doubled at the left
// edge, then two more frames.
func (r *resampler) prime() error {
	if err := r.readFrame(r.win[1]); err != nil {
		return err
	}
	copy(r.win[0], r.win[1])
	for i := 2; i < 4; i++ {
		if err := r.readFrame(r.win[i]); err != nil {
			if err != io.EOF {
				return err
			}
			r.eof = true
			copy(r.win[i], r.win[i-1])
			r.pad++
		}
	}
	r.primed = true
	return nil
}

// advance shifts the window left by one frame, duplicating the last
// real frame once the source is exhausted. It reports io.EOF when both
// interpolation anchors are padding.
func (r *resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	if r.eof {
		r.pad++
		copy(r.win[3], r.win[2])
		if r.pad > 2 {
			return io.EOF
		}
		return nil
	}
	err := r.readFrame(r.win[3])
	if err == io.EOF {
		r.eof = true
		r.pad++
		copy(r.win[3], r.win[2])
		return nil
	}
	return err
}

func (r *resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels
	for written < frames {
		for r.pos >= 1.0 {
			r.pos--
			if err := r.advance(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}
		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}
