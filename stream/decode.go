// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// OpenFile opens path with the decoder matching its extension. Closing
// the returned source closes the file.
func OpenFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	var src Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		src, err = NewWAVSource(f)
	case ".aif", ".aiff":
		src, err = NewAIFFSource(f)
	case ".mp3":
		src, err = NewMP3Source(f)
	case ".ogg", ".oga":
		src, err = NewVorbisSource(f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileSource{Source: src, f: f}, nil
}

type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// pcmDecoder is the shared surface of the go-audio WAV and AIFF
// decoders.
type pcmDecoder interface {
	PCMBuffer(*goaudio.IntBuffer) (int, error)
}

// pcmSource adapts a go-audio decoder; samples arrive as ints at the
// file's bit depth and are scaled to float32.
type pcmSource struct {
	dec        pcmDecoder
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
}

// NewWAVSource decodes a RIFF/WAVE stream.
func NewWAVSource(rs io.ReadSeeker) (Source, error) {
	d := wav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: wav", ErrNotValid)
	}
	return newPCMSource(d, int(d.SampleRate), int(d.NumChans), int(d.BitDepth))
}

// NewAIFFSource decodes an AIFF stream.
func NewAIFFSource(rs io.ReadSeeker) (Source, error) {
	d := aiff.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: aiff", ErrNotValid)
	}
	return newPCMSource(d, int(d.SampleRate), int(d.NumChans), int(d.BitDepth))
}

func newPCMSource(dec pcmDecoder, rate, channels, depth int) (Source, error) {
	var scale float32
	switch depth {
	case 8:
		scale = 1 << 7
	case 16:
		scale = 1 << 15
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	return &pcmSource{
		dec:        dec,
		sampleRate: rate,
		channels:   channels,
		scale:      scale,
	}, nil
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("decoding pcm: %w", err)
		}
		return 0, io.EOF
	}
	for i := 0; i < n; i++ {
		dst[i] = float32(s.buf.Data[i]) / s.scale
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding pcm: %w", err)
	}
	return n, err
}

// mp3Source adapts the go-mp3 decoder, which always yields stereo
// 16-bit little-endian PCM.
type mp3Source struct {
	dec        io.Reader
	sampleRate int
	buf        []byte
}

// NewMP3Source decodes an MP3 stream.
func NewMP3Source(r io.Reader) (Source, error) {
	d, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: mp3: %v", ErrNotValid, err)
	}
	return &mp3Source{dec: d, sampleRate: d.SampleRate()}, nil
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return 2 }
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("decoding mp3: %w", err)
		}
		return 0, io.EOF
	}
	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}
	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	return samples, err
}

// vorbisSource adapts the oggvorbis reader, which already produces
// float32 samples.
type vorbisSource struct {
	dec        *oggvorbis.Reader
	sampleRate int
	channels   int
}

// NewVorbisSource decodes an Ogg Vorbis stream.
func NewVorbisSource(r io.Reader) (Source, error) {
	d, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: ogg vorbis: %v", ErrNotValid, err)
	}
	return &vorbisSource{dec: d, sampleRate: d.SampleRate(), channels: d.Channels()}, nil
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	n, err := s.dec.Read(dst)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("decoding vorbis: %w", err)
		}
		return 0, io.EOF
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}
