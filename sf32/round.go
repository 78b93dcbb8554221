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

// RoundingMode selects how inexact results are rounded.
type RoundingMode uint8

const (
	// RoundNearestEven rounds to the nearest representable value and breaks
	// exact ties toward the value with an even last bit.
	RoundNearestEven RoundingMode = iota
)

// String returns a human-readable name for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundNearestEven:
		return "nearest-even"
	default:
		return "unknown"
	}
}

// TininessMode selects when a result is considered tiny for underflow.
type TininessMode uint8

const (
	// TininessAfterRounding detects tininess on the rounded result.
	TininessAfterRounding TininessMode = iota
)

// String returns a human-readable name for the tininess mode.
func (m TininessMode) String() string {
	switch m {
	case TininessAfterRounding:
		return "after-rounding"
	default:
		return "unknown"
	}
}

// The rounding policy used by every operation in this package. It is fixed
// at compile time; a multi-mode implementation would take it as an explicit
// parameter instead.
const (
	Rounding RoundingMode = RoundNearestEven
	Tininess TininessMode = TininessAfterRounding
)

const (
	// roundIncrement is half the range of the 7 extra low bits carried by a
	// working significand.
	roundIncrement = 0x40
	roundMask      = 0x7F
)

// packSig packs a rounded significand whose implicit bit, if present, sits
// at bit 23. The implicit bit (or a rounding carry into bit 24) is added to
// the exponent explicitly so the final combination is a plain OR of
// disjoint fields.
func packSig(sign uint32, exp int32, sig uint32) uint32 {
	return packRaw(sign, exp+int32(sig>>fracBits), sig&fracMask)
}

// roundPack rounds the working triple (sign, exp, sig) to binary32 and
// packs it.
//
// sig holds the significand with its leading bit at bit 30 (for normal
// results) and 7 extra low bits; exp is the biased exponent minus one. exp
// may be negative (the result underflows to a subnormal or zero) or larger
// than 0xFD (the result overflows to infinity).
func roundPack(sign uint32, exp int32, sig uint32) uint32 {
	roundBits := sig & roundMask
	if uint32(exp) >= 0xFD {
		if exp < 0 {
			sig = shiftRightJam32(sig, uint32(-exp))
			exp = 0
			roundBits = sig & roundMask
		} else if exp > 0xFD || sig+roundIncrement >= 0x80000000 {
			return packRaw(sign, expSpecial, 0)
		}
	}
	sig = (sig + roundIncrement) >> 7
	if Rounding == RoundNearestEven && roundBits == roundIncrement {
		// Exactly halfway: round to even.
		sig &^= 1
	}
	if sig == 0 {
		exp = 0
	}
	return packSig(sign, exp, sig)
}

// normRoundPack is roundPack for significands that may have lost leading
// bits to cancellation. It shifts the leading one back to bit 30 first;
// when the shift is large enough that no extra bits remain, the result is
// exact and is packed without rounding.
func normRoundPack(sign uint32, exp int32, sig uint32) uint32 {
	shift := countLeadingZeros32(sig) - 1
	exp -= int32(shift)
	if shift >= 7 && uint32(exp) < 0xFD {
		if sig == 0 {
			exp = 0
		}
		return packSig(sign, exp, sig<<uint(shift-7))
	}
	return roundPack(sign, exp, sig<<uint(shift))
}
