// SPDX-License-Identifier: EPL-2.0

package stream

// Remix adapts src to the given channel count: a mono source is
// duplicated across all output channels, a multichannel source feeding
// a mono sink is averaged, and any other combination maps output
// channel c to source channel c modulo the source count. The sample
// rate is preserved. When the counts already match, src is returned
// unchanged.
func Remix(src Source, channels int) Source {
	if src.Channels() == channels {
		return src
	}
	return &remixer{src: src, channels: channels}
}

type remixer struct {
	src      Source
	channels int
	tmp      []float32
}

func (m *remixer) SampleRate() int { return m.src.SampleRate() }
func (m *remixer) Channels() int   { return m.channels }
func (m *remixer) Close() error    { return m.src.Close() }

func (m *remixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	srcCh := m.src.Channels()
	frames := len(dst) / m.channels
	need := frames * srcCh
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / srcCh

	switch {
	case srcCh == 1:
		for f := 0; f < got; f++ {
			v := m.tmp[f]
			base := f * m.channels
			for c := 0; c < m.channels; c++ {
				dst[base+c] = v
			}
		}
	case m.channels == 1:
		inv := 1.0 / float32(srcCh)
		for f := 0; f < got; f++ {
			sum := float32(0)
			base := f * srcCh
			for c := 0; c < srcCh; c++ {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	default:
		for f := 0; f < got; f++ {
			in := f * srcCh
			out := f * m.channels
			for c := 0; c < m.channels; c++ {
				dst[out+c] = m.tmp[in+c%srcCh]
			}
		}
	}
	return got * m.channels, err
}
