// Copyright 2025 go-softfloat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sf32

import "math"

// RoundToInt rounds a to an integral value, ties to even, and returns it
// as a binary32 pattern. Zeros, infinities and values that are already
// integral (exponent >= 2^23) are returned unchanged; a NaN is returned
// quieted.
//
// The rounding works on the pattern directly: half a unit of the last
// integral bit is added and the fraction bits below it are cleared.
func RoundToInt(a uint32) uint32 {
	exp := expOf(a)
	if exp <= 0x7E {
		// |a| < 1
		if a<<1 == 0 {
			return a
		}
		z := a & signMask
		if exp == 0x7E && fracOf(a) != 0 {
			// 0.5 < |a| < 1 rounds to 1; exactly 0.5 is a tie and rounds to 0.
			z |= packRaw(0, expBias, 0)
		}
		return z
	}
	if exp >= 0x96 {
		if exp == expSpecial && fracOf(a) != 0 {
			return propagateNaN(a, 0)
		}
		return a
	}
	lastBitMask := uint32(1) << uint(0x96-exp)
	roundBitsMask := lastBitMask - 1
	z := a + lastBitMask>>1
	if z&roundBitsMask == 0 {
		z &^= lastBitMask
	}
	return z &^ roundBitsMask
}

// ToInt32 converts a to int32, rounding to nearest, ties to even.
// Out-of-range values saturate: NaN and values >= 2^31 give
// math.MaxInt32, values < -2^31 give math.MinInt32.
func ToInt32(a uint32) int32 {
	z := RoundToInt(a)
	sign, exp, frac := signOf(z), expOf(z), fracOf(z)
	switch {
	case exp == expSpecial && frac != 0:
		return math.MaxInt32
	case exp < expBias:
		// Rounding left nothing but a zero.
		return 0
	case exp-expBias >= 31:
		// Includes the infinities. -2^31 itself is representable.
		if sign != 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	shift := exp - expBias
	mag := frac | implicitBit
	if shift >= fracBits {
		mag <<= uint(shift - fracBits)
	} else {
		mag >>= uint(fracBits - shift)
	}
	if sign != 0 {
		return -int32(mag)
	}
	return int32(mag)
}

// FromInt32 converts n to binary32, rounding to nearest, ties to even,
// when |n| needs more than 24 significant bits.
func FromInt32(n int32) uint32 {
	sign := uint32(n) >> 31
	if n&math.MaxInt32 == 0 {
		if sign != 0 {
			// -2^31 has no positive counterpart to negate into.
			return packRaw(1, 0x9E, 0)
		}
		return Zero
	}
	mag := uint32(n)
	if sign != 0 {
		mag = -mag
	}
	// 0x9C places bit 30 of mag at 2^30: the biased exponent of 2^30,
	// minus one for the implicit-bit carry.
	return normRoundPack(sign, 0x9C, mag)
}
