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

import "fmt"

// Float32 is a binary32 value held as its raw bit pattern. It wraps uint32
// for storage and exposes the package functions as methods; each method is
// a direct call with no logic of its own, so Float32 and the uint32
// functions always agree.
//
// Use the untyped pattern constants (One, Inf, DefaultNaN, ...) directly as
// Float32 values.
type Float32 uint32

// FromBits creates a Float32 from a raw bit pattern.
func FromBits(bits uint32) Float32 {
	return Float32(bits)
}

// Bits returns the raw uint32 representation.
func (f Float32) Bits() uint32 {
	return uint32(f)
}

// FromInt creates a Float32 from an integer.
func FromInt(n int32) Float32 {
	return Float32(FromInt32(n))
}

// Add returns f + g.
func (f Float32) Add(g Float32) Float32 { return Float32(Add(uint32(f), uint32(g))) }

// Sub returns f - g.
func (f Float32) Sub(g Float32) Float32 { return Float32(Sub(uint32(f), uint32(g))) }

// Mul returns f * g.
func (f Float32) Mul(g Float32) Float32 { return Float32(Mul(uint32(f), uint32(g))) }

// Div returns f / g.
func (f Float32) Div(g Float32) Float32 { return Float32(Div(uint32(f), uint32(g))) }

// Sqrt returns the square root of f.
func (f Float32) Sqrt() Float32 { return Float32(Sqrt(uint32(f))) }

// RoundToInt rounds f to an integral value, ties to even.
func (f Float32) RoundToInt() Float32 { return Float32(RoundToInt(uint32(f))) }

// Int32 converts f to int32, rounding to nearest even and saturating.
func (f Float32) Int32() int32 { return ToInt32(uint32(f)) }

// Eq reports whether f == g.
func (f Float32) Eq(g Float32) bool { return Eq(uint32(f), uint32(g)) }

// Ne reports whether f != g. It is false when either is NaN.
func (f Float32) Ne(g Float32) bool { return Ne(uint32(f), uint32(g)) }

// Lt reports whether f < g.
func (f Float32) Lt(g Float32) bool { return Lt(uint32(f), uint32(g)) }

// Le reports whether f <= g.
func (f Float32) Le(g Float32) bool { return Le(uint32(f), uint32(g)) }

// Gt reports whether f > g.
func (f Float32) Gt(g Float32) bool { return Gt(uint32(f), uint32(g)) }

// Ge reports whether f >= g.
func (f Float32) Ge(g Float32) bool { return Ge(uint32(f), uint32(g)) }

// Compare returns -1, 0 or +1 ordering f against g; ordered is false when
// either is NaN.
func (f Float32) Compare(g Float32) (cmp int, ordered bool) { return Compare(uint32(f), uint32(g)) }

// IsNaN returns true if f is a NaN value.
func (f Float32) IsNaN() bool { return IsNaN(uint32(f)) }

// IsInf returns true if f is positive or negative infinity.
func (f Float32) IsInf() bool { return IsInf(uint32(f)) }

// IsZero returns true if f is positive or negative zero.
func (f Float32) IsZero() bool { return IsZero(uint32(f)) }

// IsNegative returns true if the sign bit is set.
func (f Float32) IsNegative() bool { return IsNegative(uint32(f)) }

// IsSubnormal returns true if f is a subnormal number.
func (f Float32) IsSubnormal() bool { return IsSubnormal(uint32(f)) }

// Class returns the IEEE 754 category of f.
func (f Float32) Class() Class { return Classify(uint32(f)) }

// String formats the bit pattern as 0xXXXXXXXX.
func (f Float32) String() string {
	return fmt.Sprintf("0x%08X", uint32(f))
}
