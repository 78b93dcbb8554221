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

// Package sf32 implements IEEE 754 binary32 (single precision) arithmetic
// in software, operating on raw 32-bit patterns only.
//
// No function in this package converts to a host float32 or float64, so
// results are bit-identical on every platform, with or without an FPU.
// That makes the package suitable for CPU and VM emulators, FPU-less
// targets and reproducible numeric engines.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-softfloat/sf32"
//
//	sum := sf32.Add(0x3DCCCCCD, 0x3E4CCCCD) // 0.1 + 0.2 = 0x3E99999A
//	q := sf32.Div(sum, sf32.FromInt32(3))
//	n := sf32.ToInt32(sf32.Mul(q, 0x42C80000)) // round(q * 100)
//
// Every function is pure and total over all 2^32 inputs: there are no
// error returns and no exception flags. Invalid operations return
// DefaultNaN, overflow returns a signed infinity and underflow returns a
// signed zero or subnormal. Rounding is always round-to-nearest-even with
// tininess detected after rounding; see Rounding and Tininess.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Fraction (23 bits)
//
//	S | EEEEEEEE | FFFFFFFFFFFFFFFFFFFFFFF
package sf32

// Field layout and bias of the binary32 interchange format.
const (
	signMask    = 0x80000000
	expMask     = 0x7F800000
	fracMask    = 0x007FFFFF
	quietBit    = 0x00400000
	implicitBit = 0x00800000
	fracBits    = 23
	expSpecial  = 0xFF
	expBias     = 0x7F
)

// Bit patterns for special values. The constants are untyped so they can
// be passed both as uint32 patterns and as Float32 values.
const (
	Zero      = 0x00000000 // +0
	NegZero   = 0x80000000 // -0
	One       = 0x3F800000 // 1.0
	NegOne    = 0xBF800000 // -1.0
	MaxValue  = 0x7F7FFFFF // 3.4028235e38 (max finite value)
	MinNormal = 0x00800000 // 2^-126 (~1.18e-38, smallest normal)
	MinValue  = 0x00000001 // 2^-149 (smallest subnormal)
	Inf       = 0x7F800000 // +Inf
	NegInf    = 0xFF800000 // -Inf

	// DefaultNaN is the quiet NaN returned by invalid operations such as
	// 0/0, Inf-Inf, Inf*0 and the square root of a negative number.
	DefaultNaN = 0x7FC00000
)
