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

// Fields holds the three bit fields of a binary32 pattern.
type Fields struct {
	Sign uint32 // 0 or 1
	Exp  int32  // biased exponent, 0..255
	Frac uint32 // 23-bit fraction, without the implicit bit
}

// Unpack splits bits into its sign, biased exponent and fraction.
func Unpack(bits uint32) Fields {
	return Fields{Sign: signOf(bits), Exp: expOf(bits), Frac: fracOf(bits)}
}

// Pack combines sign, exponent and fraction into a bit pattern. The sign is
// masked to 1 bit, the exponent to 8 bits and the fraction to 23 bits, so
// out-of-range intermediates never spill into a neighboring field.
func Pack(sign uint32, exp int32, frac uint32) uint32 {
	return (sign&1)<<31 | (uint32(exp)&expSpecial)<<fracBits | frac&fracMask
}

// packRaw combines fields with bitwise OR. The caller guarantees the
// fields are disjoint: sign is 0 or 1, 0 <= exp <= 0xFF, frac < 2^23.
func packRaw(sign uint32, exp int32, frac uint32) uint32 {
	return sign<<31 | uint32(exp)<<fracBits | frac
}

func signOf(bits uint32) uint32 { return bits >> 31 }
func expOf(bits uint32) int32   { return int32(bits>>fracBits) & expSpecial }
func fracOf(bits uint32) uint32 { return bits & fracMask }

// IsNaN reports whether bits encodes a NaN (quiet or signaling).
func IsNaN(bits uint32) bool {
	return bits&expMask == expMask && bits&fracMask != 0
}

// IsSignaling reports whether bits encodes a signaling NaN: all-ones
// exponent, quiet bit clear and a nonzero remaining fraction.
func IsSignaling(bits uint32) bool {
	return bits&(expMask|quietBit) == expMask && bits&(fracMask&^quietBit) != 0
}

// IsInf reports whether bits encodes positive or negative infinity.
func IsInf(bits uint32) bool {
	return bits&^signMask == expMask
}

// IsZero reports whether bits encodes positive or negative zero.
func IsZero(bits uint32) bool {
	return bits<<1 == 0
}

// IsSubnormal reports whether bits encodes a subnormal number.
func IsSubnormal(bits uint32) bool {
	return bits&expMask == 0 && bits&fracMask != 0
}

// IsNegative reports whether the sign bit is set. NaNs and zeros carry a
// sign too.
func IsNegative(bits uint32) bool {
	return bits&signMask != 0
}

// Class is the IEEE 754 category of a bit pattern.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassQuietNaN
	ClassSignalingNaN
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "inf"
	case ClassQuietNaN:
		return "qnan"
	case ClassSignalingNaN:
		return "snan"
	default:
		return "unknown"
	}
}

// Classify returns the category of bits, decided from the exponent and
// fraction fields alone.
func Classify(bits uint32) Class {
	exp, frac := expOf(bits), fracOf(bits)
	switch {
	case exp == 0 && frac == 0:
		return ClassZero
	case exp == 0:
		return ClassSubnormal
	case exp != expSpecial:
		return ClassNormal
	case frac == 0:
		return ClassInf
	case frac&quietBit != 0:
		return ClassQuietNaN
	default:
		return ClassSignalingNaN
	}
}
