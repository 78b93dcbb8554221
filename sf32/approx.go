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

// This file provides the table-seeded Newton-Raphson approximations used by
// Div and Sqrt. Each is accurate to within a few units of 2^-32; the callers
// finish with an exact remainder check, so the final rounding matches exact
// division and exact square root.

// Piecewise-linear seeds for 1/A over 16 equal subintervals of [1, 2):
// r0 = k0 - k1*eps, with eps the position inside the subinterval.
var (
	approxRecipK0 = [16]uint16{
		0xFFC4, 0xF0BE, 0xE363, 0xD76F, 0xCCAD, 0xC2F0, 0xBA16, 0xB201,
		0xAA97, 0xA3C6, 0x9D7A, 0x97A6, 0x923C, 0x8D32, 0x887E, 0x8417,
	}
	approxRecipK1 = [16]uint16{
		0xF0F1, 0xD62C, 0xBFA1, 0xAC77, 0x9C0A, 0x8DDB, 0x8185, 0x76BA,
		0x6D3B, 0x64D4, 0x5D5C, 0x56B1, 0x50B6, 0x4B55, 0x4679, 0x4211,
	}
)

// Piecewise-linear seeds for 1/sqrt(A). Even indices cover 2A (even
// unbiased exponent adjustments), odd indices cover A; each half splits
// [1, 2) into 8 subintervals.
var (
	approxRecipSqrtK0 = [16]uint16{
		0xB4C9, 0xFFAB, 0xAA7D, 0xF11C, 0xA1C5, 0xE4C7, 0x9A43, 0xDA29,
		0x93B5, 0xD0E5, 0x8DED, 0xC8B7, 0x88C6, 0xC16D, 0x8424, 0xBAE1,
	}
	approxRecipSqrtK1 = [16]uint16{
		0xA5A5, 0xEA42, 0x8C21, 0xC62D, 0x788F, 0xAA7F, 0x6928, 0x94B6,
		0x5CC7, 0x8335, 0x52A6, 0x74E2, 0x4A3E, 0x68FE, 0x432B, 0x5EFD,
	}
)

// approxRecip32 approximates the reciprocal of a, read as a fixed-point
// number A in [1, 2) with 31 fraction bits (bit 31 must be set). The result
// is a pure fraction with 32 fraction bits, i.e. about 2^63 / a.
func approxRecip32(a uint32) uint32 {
	index := a >> 27 & 0xF
	eps := uint32(uint16(a >> 11))
	r0 := uint32(approxRecipK0[index]) - (uint32(approxRecipK1[index])*eps)>>20
	sigma0 := ^uint32((uint64(r0) * uint64(a)) >> 7)
	r := r0<<16 + uint32((uint64(r0)*uint64(sigma0))>>24)
	sqrSigma0 := uint32((uint64(sigma0) * uint64(sigma0)) >> 32)
	r += uint32((uint64(r) * uint64(sqrSigma0)) >> 48)
	return r
}

// approxRecipSqrt32 approximates the reciprocal square root of a, read as
// a fixed-point number A in [1, 2) with 31 fraction bits (bit 31 must be
// set). oddExp is the low bit of the operand's biased exponent: when it is
// 0 the result approximates 1/sqrt(2A) instead of 1/sqrt(A). The result has
// 32 fraction bits and is always at least 0.5.
func approxRecipSqrt32(oddExp uint32, a uint32) uint32 {
	index := (a >> 27 & 0xE) + oddExp
	eps := uint32(uint16(a >> 12))
	r0 := uint32(approxRecipSqrtK0[index]) - (uint32(approxRecipSqrtK1[index])*eps)>>20
	eSqrR0 := r0 * r0
	if oddExp == 0 {
		eSqrR0 <<= 1
	}
	sigma0 := ^uint32((uint64(eSqrR0) * uint64(a)) >> 23)
	r := r0<<16 + uint32((uint64(r0)*uint64(sigma0))>>25)
	sqrSigma0 := uint32((uint64(sigma0) * uint64(sigma0)) >> 32)
	r += uint32((uint64(r>>1+r>>3-r0<<14) * uint64(sqrSigma0)) >> 48)
	if r&0x80000000 == 0 {
		r = 0x80000000
	}
	return r
}
