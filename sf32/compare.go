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

// This file provides the relational comparisons. Every relation is false
// when either operand is NaN, Ne included: a NaN is neither equal nor
// unequal to anything.

// Eq reports whether a == b. +0 and -0 compare equal.
func Eq(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return a == b || (a|b)<<1 == 0
}

// Ne reports whether a != b. It returns false when either operand is NaN.
func Ne(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return !Eq(a, b)
}

// Lt reports whether a < b.
func Lt(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	signA, signB := signOf(a), signOf(b)
	if signA != signB {
		// The negative operand is smaller unless both are zeros.
		return signA != 0 && (a|b)<<1 != 0
	}
	// Same sign: patterns order like magnitudes, reversed for negatives.
	return a != b && (signA != 0) != (a < b)
}

// Le reports whether a <= b.
func Le(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	signA, signB := signOf(a), signOf(b)
	if signA != signB {
		return signA != 0 || (a|b)<<1 == 0
	}
	return a == b || (signA != 0) != (a < b)
}

// Gt reports whether a > b.
func Gt(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return !Le(a, b)
}

// Ge reports whether a >= b.
func Ge(a, b uint32) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	return !Lt(a, b)
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. ordered is false, and cmp is 0, when either operand is NaN.
func Compare(a, b uint32) (cmp int, ordered bool) {
	switch {
	case IsNaN(a) || IsNaN(b):
		return 0, false
	case Lt(a, b):
		return -1, true
	case Eq(a, b):
		return 0, true
	default:
		return +1, true
	}
}
