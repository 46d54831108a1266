// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// buildWAV assembles a canonical 44-byte-header PCM16 WAV in memory.
func buildWAV(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	byteRate := uint32(sampleRate) * uint32(numChannels) * 2
	blockAlign := numChannels * 2
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestNewWAVSource(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767}
	src, err := NewWAVSource(bytes.NewReader(buildWAV(8000, 1, samples)))
	if err != nil {
		t.Fatalf("NewWAVSource() failed: %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	out, err := drain(src, 16)
	if err != nil {
		t.Fatalf("drain() failed: %v", err)
	}
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	if len(out) != len(want) {
		t.Fatalf("got %d samples, want %d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 0.0001 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestNewWAVSource_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	src, err := NewWAVSource(bytes.NewReader(buildWAV(44100, 2, samples)))
	if err != nil {
		t.Fatalf("NewWAVSource() failed: %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestNewWAVSource_NotWAV(t *testing.T) {
	t.Parallel()

	_, err := NewWAVSource(bytes.NewReader([]byte("definitely not a riff stream")))
	if !errors.Is(err, ErrNotValid) {
		t.Errorf("NewWAVSource() error = %v, want ErrNotValid", err)
	}
}

func TestNewWAVSource_EOFAfterDrain(t *testing.T) {
	t.Parallel()

	src, err := NewWAVSource(bytes.NewReader(buildWAV(8000, 1, []int16{1, 2})))
	if err != nil {
		t.Fatalf("NewWAVSource() failed: %v", err)
	}
	defer src.Close()

	if _, err := drain(src, 8); err != nil {
		t.Fatalf("drain() failed: %v", err)
	}
	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after drain = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestNewMP3Source_NotMP3(t *testing.T) {
	t.Parallel()

	_, err := NewMP3Source(bytes.NewReader([]byte("not an mpeg frame at all")))
	if !errors.Is(err, ErrNotValid) {
		t.Errorf("NewMP3Source() error = %v, want ErrNotValid", err)
	}
}

func TestNewVorbisSource_NotOgg(t *testing.T) {
	t.Parallel()

	_, err := NewVorbisSource(bytes.NewReader([]byte("not an ogg capture pattern")))
	if !errors.Is(err, ErrNotValid) {
		t.Errorf("NewVorbisSource() error = %v, want ErrNotValid", err)
	}
}

func TestOpenFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.flac")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := OpenFile(path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("OpenFile() error = %v, want ErrUnknownFormat", err)
	}
}

func TestOpenFile_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, buildWAV(8000, 1, []int16{1, 2, 3}), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("OpenFile() layout = %d Hz %d ch, want 8000 Hz 1 ch",
			src.SampleRate(), src.Channels())
	}
}
