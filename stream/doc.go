// SPDX-License-Identifier: EPL-2.0

// Package stream plays audio files through a card's playback device.
//
// Decoders for WAV, AIFF, MP3 and Ogg Vorbis expose a common Source of
// interleaved float32 samples. Remix and NewRate adapt a source's
// channel count and sample rate to whatever the device negotiated, and
// Player drives the period-sized write loop, converting to signed
// 16-bit PCM on the way out.
//
// USB devices may need a moment to register after plugging in;
// WaitForUSBCard polls for one with a short retry loop.
package stream
