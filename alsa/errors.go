// SPDX-License-Identifier: EPL-2.0

package alsa

import "errors"

var (
	// ErrNoUSBCard is returned by FindUSBCard when no connected card
	// identifies itself as a USB audio device.
	ErrNoUSBCard = errors.New("no usb audio card present")

	// ErrBadSlot is returned when a per-channel slot index is out of
	// range for the control.
	ErrBadSlot = errors.New("slot index out of range")

	// ErrNotEnum is returned when an enum operation is attempted on a
	// control of another type.
	ErrNotEnum = errors.New("control is not enumerated")

	// ErrBadEnumItem is returned when an enum item index or label does
	// not exist on the control.
	ErrBadEnumItem = errors.New("no such enum item")

	// ErrNoRate is returned when a playback device reports no usable
	// sample rate.
	ErrNoRate = errors.New("no supported sample rate")
)
