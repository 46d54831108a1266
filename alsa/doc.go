// SPDX-License-Identifier: EPL-2.0

// Package alsa talks to the Linux sound layer directly through the
// /dev/snd character devices, without cgo or an ALSA userspace library.
//
// Two endpoints are exposed. Mixer wraps a card's control device and
// enumerates its elements as Ctl values supporting typed reads and
// writes, including enum label resolution. PCM wraps a playback device
// and supports interleaved signed 16-bit writes with automatic recovery
// from underruns.
//
// The kernel structures are mirrored byte for byte for the 64-bit ABI,
// so the package builds only on linux/amd64 and linux/arm64.
package alsa
