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

// Quiet returns bits with the quiet bit set if bits is a NaN, and bits
// unchanged otherwise.
func Quiet(bits uint32) uint32 {
	if IsNaN(bits) {
		return bits | quietBit
	}
	return bits
}

// propagateNaN selects the NaN result of an operation on a and b, at least
// one of which is a NaN.
//
// If exactly one input is a signaling NaN, that input wins. Otherwise the
// input with the larger magnitude wins. Two NaNs share the all-ones
// exponent, so this compares their fractions; against a non-NaN operand
// (Inf included) the NaN always has the larger magnitude. On equal
// magnitudes the numerically smaller quieted pattern wins. The winner is
// returned quieted.
func propagateNaN(a, b uint32) uint32 {
	sigA, sigB := IsSignaling(a), IsSignaling(b)
	qa, qb := a|quietBit, b|quietBit
	if sigA != sigB {
		if sigA {
			return qa
		}
		return qb
	}
	magA, magB := a&^signMask, b&^signMask
	switch {
	case magA < magB:
		return qb
	case magB < magA:
		return qa
	case qa < qb:
		return qa
	default:
		return qb
	}
}
