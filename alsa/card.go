// SPDX-License-Identifier: EPL-2.0

//go:build linux && (amd64 || arm64)

package alsa

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

const devSndDir = "/dev/snd"

// FindUSBCard scans the sound device directory for playback devices and
// returns the number of the first card whose driver identifies itself
// as USB audio. It returns ErrNoUSBCard when none is connected.
func FindUSBCard() (uint, error) {
	entries, err := os.ReadDir(devSndDir)
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", devSndDir, err)
	}

	for _, e := range entries {
		var card uint
		if n, _ := fmt.Sscanf(e.Name(), "pcmC%dD0p", &card); n != 1 {
			continue
		}
		usb, err := isUSBPlayback(card)
		if err != nil {
			continue
		}
		if usb {
			return card, nil
		}
	}
	return 0, ErrNoUSBCard
}

func isUSBPlayback(card uint) (bool, error) {
	fd, err := openPlaybackDev(card, 0)
	if err != nil {
		return false, err
	}
	defer unix.Close(fd)

	var info sndPCMInfo
	if err := ioctl(fd, sndrvPCMIoctlInfo, unsafe.Pointer(&info)); err != nil {
		return false, fmt.Errorf("reading pcm info of card %d: %w", card, err)
	}
	return strings.Contains(cstr(info.id[:]), "USB Audio"), nil
}
