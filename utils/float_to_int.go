// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts one sample from [-1, 1] to signed 16-bit PCM,
// clamping out-of-range input.
func Float32ToInt16(x float32) int16 {
	if x >= 1 {
		return math.MaxInt16
	}
	if x <= -1 {
		return math.MinInt16
	}
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts one signed 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16Buf converts src into dst sample by sample. dst must be
// at least as long as src.
func Float32ToInt16Buf(dst []int16, src []float32) {
	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}
}
