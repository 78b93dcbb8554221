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

// Add returns a + b.
//
// Operands of opposite sign are handed to the magnitude subtraction path,
// since adding a negative number subtracts its magnitude.
func Add(a, b uint32) uint32 {
	if signOf(a^b) != 0 {
		return subMags(a, b)
	}
	return addMags(a, b)
}

// Sub returns a - b.
//
// Operands of opposite sign are handed to the magnitude addition path,
// since subtracting a negative number adds its magnitude.
func Sub(a, b uint32) uint32 {
	if signOf(a^b) != 0 {
		return addMags(a, b)
	}
	return subMags(a, b)
}

// addMags adds the magnitudes of a and b. The result takes the sign of a.
func addMags(a, b uint32) uint32 {
	expA, sigA := expOf(a), fracOf(a)
	expB, sigB := expOf(b), fracOf(b)
	sign := signOf(a)
	expDiff := expA - expB

	var exp int32
	var sig uint32
	if expDiff == 0 {
		switch expA {
		case 0:
			// Subnormal + subnormal is exact; a carry out of the fraction
			// makes the sum the smallest normal exponent.
			return packSig(sign, 0, sigA+sigB)
		case expSpecial:
			if sigA|sigB != 0 {
				return propagateNaN(a, b)
			}
			return a
		}
		exp = expA
		sig = 2*implicitBit + sigA + sigB
		if sig&1 == 0 && exp < 0xFE {
			// The sum fits in 24 bits: exact, no rounding needed.
			return packSig(sign, exp, sig>>1)
		}
		sig <<= 6
	} else {
		sigA <<= 6
		sigB <<= 6
		if expDiff < 0 {
			if expB == expSpecial {
				if sigB != 0 {
					return propagateNaN(a, b)
				}
				return packRaw(sign, expSpecial, 0)
			}
			exp = expB
			if expA != 0 {
				sigA += 0x20000000
			} else {
				sigA += sigA
			}
			sigA = shiftRightJam32(sigA, uint32(-expDiff))
		} else {
			if expA == expSpecial {
				if sigA != 0 {
					return propagateNaN(a, b)
				}
				return a
			}
			exp = expA
			if expB != 0 {
				sigB += 0x20000000
			} else {
				sigB += sigB
			}
			sigB = shiftRightJam32(sigB, uint32(expDiff))
		}
		sig = 0x20000000 + sigA + sigB
		if sig < 0x40000000 {
			exp--
			sig <<= 1
		}
	}
	return roundPack(sign, exp, sig)
}

// subMags subtracts the magnitude of b from the magnitude of a. The result
// takes the sign of a, flipped when |b| > |a|.
func subMags(a, b uint32) uint32 {
	expA, sigA := expOf(a), fracOf(a)
	expB, sigB := expOf(b), fracOf(b)
	sign := signOf(a)
	expDiff := expA - expB

	if expDiff == 0 {
		if expA == expSpecial {
			if sigA|sigB != 0 {
				return propagateNaN(a, b)
			}
			// Inf - Inf
			return DefaultNaN
		}
		if sigA == sigB {
			return Zero
		}
		// The implicit bits cancel; what is left is exact.
		if expA != 0 {
			expA--
		}
		var sigDiff uint32
		if sigA > sigB {
			sigDiff = sigA - sigB
		} else {
			sign ^= 1
			sigDiff = sigB - sigA
		}
		shift := int32(countLeadingZeros32(sigDiff) - 8)
		exp := expA - shift
		if exp < 0 {
			shift = expA
			exp = 0
		}
		return packSig(sign, exp, sigDiff<<uint(shift))
	}

	sigA <<= 7
	sigB <<= 7
	var exp int32
	var sigX, sigY uint32
	if expDiff < 0 {
		sign ^= 1
		if expB == expSpecial {
			if sigB != 0 {
				return propagateNaN(a, b)
			}
			return packRaw(sign, expSpecial, 0)
		}
		exp = expB - 1
		sigX = sigB | 0x40000000
		if expA != 0 {
			sigY = sigA + 0x40000000
		} else {
			sigY = sigA + sigA
		}
		expDiff = -expDiff
	} else {
		if expA == expSpecial {
			if sigA != 0 {
				return propagateNaN(a, b)
			}
			return a
		}
		exp = expA - 1
		sigX = sigA | 0x40000000
		if expB != 0 {
			sigY = sigB + 0x40000000
		} else {
			sigY = sigB + sigB
		}
	}
	return normRoundPack(sign, exp, sigX-shiftRightJam32(sigY, uint32(expDiff)))
}
