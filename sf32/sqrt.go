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

// Sqrt returns the square root of a. The square root of -0 is -0; the
// square root of any other negative number is DefaultNaN.
func Sqrt(a uint32) uint32 {
	sign, exp, sig := signOf(a), expOf(a), fracOf(a)

	if exp == expSpecial {
		if sig != 0 {
			return propagateNaN(a, 0)
		}
		if sign == 0 {
			return a
		}
		return DefaultNaN
	}
	if sign != 0 {
		if uint32(exp)|sig == 0 {
			return a
		}
		return DefaultNaN
	}
	if exp == 0 {
		if sig == 0 {
			return a
		}
		exp, sig = normSubnormal(sig)
	}

	// Halving the unbiased exponent; an odd biased exponent means an even
	// unbiased one.
	expZ := (exp-expBias)>>1 + 0x7E
	oddExp := uint32(exp & 1)
	sig = (sig | implicitBit) << 8
	sigZ := uint32((uint64(sig) * uint64(approxRecipSqrt32(oddExp, sig))) >> 32)
	if oddExp != 0 {
		sigZ >>= 1
	}
	sigZ += 2
	if sigZ&0x3F < 2 {
		// Near a rounding boundary: settle it with the sign of
		// sigZ^2 - a, computed modulo 2^32.
		shifted := sigZ >> 2
		negRem := shifted * shifted
		sigZ &^= 3
		if negRem&0x80000000 != 0 {
			sigZ |= 1
		} else if negRem != 0 {
			sigZ--
		}
	}
	return roundPack(0, expZ, sigZ)
}
