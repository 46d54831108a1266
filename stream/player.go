// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/snd-tools/audioroute/alsa"
	"github.com/snd-tools/audioroute/utils"
)

// USB cards can take a moment to register their device nodes after
// plugging in.
const (
	usbFindTries = 5
	usbFindDelay = 20 * time.Millisecond
)

// WaitForUSBCard polls for a USB audio card, returning the first card
// number found or the last discovery error.
func WaitForUSBCard() (uint, error) {
	var err error
	for try := 0; try < usbFindTries; try++ {
		if try > 0 {
			time.Sleep(usbFindDelay)
		}
		var card uint
		card, err = alsa.FindUSBCard()
		if err == nil {
			return card, nil
		}
	}
	return 0, err
}

// frameWriter is the device seam of the player.
type frameWriter interface {
	WriteFrames(samples []int16) (int, error)
}

// Player streams decoded audio to a playback device in period-sized
// interleaved S16_LE writes.
type Player struct {
	dev    frameWriter
	closer io.Closer
	cfg    alsa.PlaybackConfig
}

// OpenPlayer opens the playback device of the given card at the highest
// sample rate it supports, falling back to the default layout when the
// rate query fails.
func OpenPlayer(card, device uint) (*Player, error) {
	cfg := alsa.DefaultPlayback
	if rate, err := alsa.MaxRate(card, device); err == nil {
		cfg.Rate = rate
	}
	pcm, err := alsa.OpenPlayback(card, device, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening playback device %d:%d: %w", card, device, err)
	}
	slog.Debug("playback device open", "card", card, "device", device,
		"rate", cfg.Rate, "channels", cfg.Channels)
	return &Player{dev: pcm, closer: pcm, cfg: cfg}, nil
}

// NewPlayer builds a player over an already-open frame sink with the
// given layout. It is the seam for tests and custom backends.
func NewPlayer(dev frameWriter, cfg alsa.PlaybackConfig) *Player {
	return &Player{dev: dev, cfg: cfg}
}

// Config returns the stream layout the player writes.
func (p *Player) Config() alsa.PlaybackConfig { return p.cfg }

// Play streams src to the device until it is exhausted, adapting its
// channel count and sample rate to the device layout. The source is not
// closed.
func (p *Player) Play(src Source) error {
	s := NewRate(Remix(src, p.cfg.Channels), p.cfg.Rate)

	buf := make([]float32, p.cfg.PeriodSize*p.cfg.Channels)
	pcm := make([]int16, len(buf))
	for {
		n, err := s.ReadSamples(buf)
		if n > 0 {
			n -= n % p.cfg.Channels
			utils.Float32ToInt16Buf(pcm[:n], buf[:n])
			if _, werr := p.dev.WriteFrames(pcm[:n]); werr != nil {
				return werr
			}
		}
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		case n == 0:
			return nil
		}
	}
}

// Close releases the playback device, if the player owns one.
func (p *Player) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// PlayFile decodes path and plays it through the card's first playback
// device.
func PlayFile(card uint, path string) error {
	src, err := OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	p, err := OpenPlayer(card, 0)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Play(src)
}
