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

// Div returns a / b.
func Div(a, b uint32) uint32 {
	expA, sigA := expOf(a), fracOf(a)
	expB, sigB := expOf(b), fracOf(b)
	sign := signOf(a ^ b)

	if expA == expSpecial {
		if sigA != 0 {
			return propagateNaN(a, b)
		}
		if expB == expSpecial {
			if sigB != 0 {
				return propagateNaN(a, b)
			}
			// Inf / Inf
			return DefaultNaN
		}
		return packRaw(sign, expSpecial, 0)
	}
	if expB == expSpecial {
		if sigB != 0 {
			return propagateNaN(a, b)
		}
		return packRaw(sign, 0, 0)
	}

	if expB == 0 {
		if sigB == 0 {
			if uint32(expA)|sigA == 0 {
				// 0 / 0
				return DefaultNaN
			}
			return packRaw(sign, expSpecial, 0)
		}
		expB, sigB = normSubnormal(sigB)
	}
	if expA == 0 {
		if sigA == 0 {
			return packRaw(sign, 0, 0)
		}
		expA, sigA = normSubnormal(sigA)
	}

	exp := expA - expB + 0x7E
	sigA |= implicitBit
	sigB |= implicitBit
	if sigA < sigB {
		exp--
		sigA <<= 8
	} else {
		sigA <<= 7
	}
	sigB <<= 8
	return roundPack(sign, exp, divSig(sigA, sigB))
}

// divSig returns the quotient significand sigA * 2^31 / sigB with its
// leading bit at bit 30 and a sticky low bit. sigB has bit 31 set and
// sigA/sigB is in [0.5, 1).
//
// The estimate from approxRecip32 may be a little low; when it lands close
// enough to a rounding boundary to matter, the remainder of the division
// is computed exactly and the estimate corrected.
func divSig(sigA, sigB uint32) uint32 {
	sig := uint32((uint64(sigA) * uint64(approxRecip32(sigB))) >> 32)
	sig += 2
	if sig&0x3F < 2 {
		sig &^= 3
		rem := uint64(sigA)<<31 - uint64(sig)*uint64(sigB)
		if rem&0x8000000000000000 != 0 {
			sig -= 4
		} else if rem != 0 {
			sig |= 1
		}
	}
	return sig
}

// divSigExact computes the same quotient as divSig with a 64-bit integer
// division instead of the reciprocal approximation.
func divSigExact(sigA, sigB uint32) uint32 {
	num := uint64(sigA) << 31
	sig := num / uint64(sigB)
	if sig&0x3F == 0 && sig*uint64(sigB) != num {
		sig |= 1
	}
	return uint32(sig)
}
