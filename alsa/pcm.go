// SPDX-License-Identifier: EPL-2.0

//go:build linux && (amd64 || arm64)

package alsa

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PlaybackConfig describes the stream layout requested from a playback
// device. All samples are interleaved signed 16-bit little endian.
type PlaybackConfig struct {
	Channels   int
	Rate       int
	PeriodSize int
	Periods    int
}

// DefaultPlayback is the stream layout used when the caller has no
// constraints of its own.
var DefaultPlayback = PlaybackConfig{
	Channels:   2,
	Rate:       44100,
	PeriodSize: 1024,
	Periods:    4,
}

// PCM is an open playback device.
type PCM struct {
	fd  int
	cfg PlaybackConfig
}

// MaxRate queries the highest sample rate the playback device supports,
// without configuring it.
func MaxRate(card, device uint) (int, error) {
	fd, err := openPlaybackDev(card, device)
	if err != nil {
		return 0, err
	}
	defer unix.Close(fd)

	var p sndPCMHwParams
	p.init()
	if err := ioctl(fd, sndrvPCMIoctlHwRefine, unsafe.Pointer(&p)); err != nil {
		return 0, fmt.Errorf("refining hw params: %w", err)
	}
	_, maxRate := p.getInterval(sndrvPCMHwParamRate)
	if maxRate == 0 || maxRate == 0xFFFFFFFF {
		return 0, ErrNoRate
	}
	return int(maxRate), nil
}

// OpenPlayback opens playback device <device> of <card>, configures the
// requested layout and prepares the stream for writing.
func OpenPlayback(card, device uint, cfg PlaybackConfig) (*PCM, error) {
	fd, err := openPlaybackDev(card, device)
	if err != nil {
		return nil, err
	}

	var p sndPCMHwParams
	p.init()
	p.setMask(sndrvPCMHwParamAccess, sndrvPCMAccessRwInterleaved)
	p.setMask(sndrvPCMHwParamFormat, sndrvPCMFormatS16LE)
	p.setMask(sndrvPCMHwParamSubformat, 0)
	p.setInterval(sndrvPCMHwParamChannels, uint32(cfg.Channels))
	p.setInterval(sndrvPCMHwParamRate, uint32(cfg.Rate))
	p.setInterval(sndrvPCMHwParamPeriodSize, uint32(cfg.PeriodSize))
	p.setInterval(sndrvPCMHwParamPeriods, uint32(cfg.Periods))

	if err := ioctl(fd, sndrvPCMIoctlHwParams, unsafe.Pointer(&p)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("setting hw params: %w", err)
	}

	pcm := &PCM{fd: fd, cfg: cfg}
	if err := pcm.prepare(); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return pcm, nil
}

func openPlaybackDev(card, device uint) (int, error) {
	path := fmt.Sprintf("/dev/snd/pcmC%dD%dp", card, device)
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return -1, fmt.Errorf("opening %s: %w", path, err)
	}
	return fd, nil
}

// Config returns the layout the device was opened with.
func (p *PCM) Config() PlaybackConfig { return p.cfg }

func (p *PCM) prepare() error {
	if err := ioctl(p.fd, sndrvPCMIoctlPrepare, nil); err != nil {
		return fmt.Errorf("preparing stream: %w", err)
	}
	return nil
}

// WriteFrames writes interleaved samples to the device and returns the
// number of frames consumed. len(samples) must be a multiple of the
// channel count. An underrun is recovered by re-preparing the stream and
// retrying the write once.
func (p *PCM) WriteFrames(samples []int16) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	frames := len(samples) / p.cfg.Channels

	xfer := sndXferI{
		buf:    uint64(uintptr(unsafe.Pointer(&samples[0]))),
		frames: uint64(frames),
	}
	err := ioctl(p.fd, sndrvPCMIoctlWriteiFrames, unsafe.Pointer(&xfer))
	if err == unix.EPIPE {
		if err = p.prepare(); err != nil {
			return 0, err
		}
		xfer.result = 0
		err = ioctl(p.fd, sndrvPCMIoctlWriteiFrames, unsafe.Pointer(&xfer))
	}
	if err != nil {
		return 0, fmt.Errorf("writing %d frames: %w", frames, err)
	}
	return int(xfer.result), nil
}

// Close releases the playback device.
func (p *PCM) Close() error { return unix.Close(p.fd) }
