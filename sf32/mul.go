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

// Mul returns a * b.
func Mul(a, b uint32) uint32 {
	expA, sigA := expOf(a), fracOf(a)
	expB, sigB := expOf(b), fracOf(b)
	sign := signOf(a ^ b)

	if expA == expSpecial {
		if sigA != 0 || (expB == expSpecial && sigB != 0) {
			return propagateNaN(a, b)
		}
		if uint32(expB)|sigB == 0 {
			// Inf * 0
			return DefaultNaN
		}
		return packRaw(sign, expSpecial, 0)
	}
	if expB == expSpecial {
		if sigB != 0 {
			return propagateNaN(a, b)
		}
		if uint32(expA)|sigA == 0 {
			return DefaultNaN
		}
		return packRaw(sign, expSpecial, 0)
	}

	if expA == 0 {
		if sigA == 0 {
			return packRaw(sign, 0, 0)
		}
		expA, sigA = normSubnormal(sigA)
	}
	if expB == 0 {
		if sigB == 0 {
			return packRaw(sign, 0, 0)
		}
		expB, sigB = normSubnormal(sigB)
	}

	exp := expA + expB - expBias
	sigA = (sigA | implicitBit) << 7
	sigB = (sigB | implicitBit) << 8
	sig := shortShiftRightJam64(uint64(sigA)*uint64(sigB), 32)
	if sig < 0x40000000 {
		exp--
		sig <<= 1
	}
	return roundPack(sign, exp, sig)
}
