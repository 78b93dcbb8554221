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

// This file provides the shift and normalization primitives shared by the
// operators: sticky ("jamming") right shifts, leading-zero counting and
// subnormal normalization.

// leadingZeros8 holds the number of leading zero bits of each byte value.
// Entries 0x80..0xFF are zero and left implicit.
var leadingZeros8 = [256]uint8{
	8, 7, 6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// countLeadingZeros32 returns the number of leading zero bits in a, 32 for
// a == 0.
func countLeadingZeros32(a uint32) int {
	count := 0
	if a < 0x10000 {
		count = 16
		a <<= 16
	}
	if a < 0x1000000 {
		count += 8
		a <<= 8
	}
	return count + int(leadingZeros8[a>>24])
}

// shiftRightJam32 shifts a right by dist bits. If any nonzero bit is
// shifted out, the least significant bit of the result is set, which keeps
// enough information to round correctly afterwards.
func shiftRightJam32(a uint32, dist uint32) uint32 {
	if dist == 0 {
		return a
	}
	if dist < 31 {
		z := a >> dist
		if a<<(32-dist) != 0 {
			z |= 1
		}
		return z
	}
	if a != 0 {
		return 1
	}
	return 0
}

// shortShiftRightJam64 returns the low 32 bits of a>>dist, jamming any
// nonzero discarded bit into bit 0. dist must be in [1, 63].
func shortShiftRightJam64(a uint64, dist uint) uint32 {
	z := a >> dist
	if a&(uint64(1)<<dist-1) != 0 {
		z |= 1
	}
	return uint32(z)
}

// normSubnormal normalizes the fraction of a subnormal number so that its
// leading one sits at the implicit-bit position (bit 23). It returns the
// exponent the value would have as a normal number, 1 - shift, which is
// zero or negative. frac must be nonzero.
func normSubnormal(frac uint32) (exp int32, sig uint32) {
	shift := countLeadingZeros32(frac) - 8
	return int32(1 - shift), frac << uint(shift)
}
