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

import (
	"math"
	"math/rand/v2"
	"testing"
)

// The host FPU computes every binary32 operation with round-to-nearest-even,
// so it serves as the reference. Only the class of a NaN result is compared:
// hardware NaN payloads differ between architectures.

func hostAdd(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) + math.Float32frombits(b))
}

func hostSub(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) - math.Float32frombits(b))
}

func hostMul(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) * math.Float32frombits(b))
}

func hostDiv(a, b uint32) uint32 {
	return math.Float32bits(math.Float32frombits(a) / math.Float32frombits(b))
}

// hostSqrt rounds the float64 square root, which is exact enough that the
// second rounding never changes the binary32 result.
func hostSqrt(a uint32) uint32 {
	return math.Float32bits(float32(math.Sqrt(float64(math.Float32frombits(a)))))
}

func hostToInt32(a uint32) int32 {
	f := float64(math.Float32frombits(a))
	switch {
	case math.IsNaN(f):
		return math.MaxInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(math.RoundToEven(f))
}

// sameResult reports whether got matches want, treating any two NaNs as equal.
func sameResult(got, want uint32) bool {
	if IsNaN(got) || IsNaN(want) {
		return IsNaN(got) && IsNaN(want)
	}
	return got == want
}

var specialPatterns = []uint32{
	Zero, NegZero, One, NegOne, MaxValue, MaxValue | signMask,
	MinNormal, MinNormal | signMask, MinValue, MinValue | signMask,
	0x007FFFFF, 0x807FFFFF, // largest subnormals
	0x3F800001, 0x3F7FFFFF, // around one
	0x4B000000, 0x4AFFFFFF, // 2^23 and just below
	0x34000000, 0x33800000, // 2^-23 and 2^-24
	Inf, NegInf, DefaultNaN, 0xFFC00000, 0x7F800001, 0xFFBFFFFF, 0xFFFFFFFF,
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5F3759DF, 0x1EEE754))
}

// randomPattern draws a bit pattern biased toward special values,
// subnormals and exponents near the bias.
func randomPattern(r *rand.Rand) uint32 {
	switch r.IntN(8) {
	case 0:
		return specialPatterns[r.IntN(len(specialPatterns))]
	case 1:
		return r.Uint32() & (signMask | fracMask)
	case 2:
		return r.Uint32()&(signMask|fracMask) | uint32(0x70+r.IntN(0x20))<<fracBits
	default:
		return r.Uint32()
	}
}

// randomPair draws two patterns; a quarter of the time b gets an exponent
// within 15 of a's and often shares its fraction bits, which drives the
// cancellation paths of Sub and the tie cases of rounding.
func randomPair(r *rand.Rand) (a, b uint32) {
	a = randomPattern(r)
	if r.IntN(4) != 0 {
		return a, randomPattern(r)
	}
	exp := min(max(expOf(a)+int32(r.IntN(31))-15, 0), 0xFE)
	b = r.Uint32()&(signMask|fracMask) | uint32(exp)<<fracBits
	if r.IntN(2) == 0 {
		b = b&^fracMask | (a^r.Uint32()&0xF)&fracMask
	}
	return a, b
}

const oracleIterations = 200_000

// checkBinaryOracle compares op against host over random operand pairs.
func checkBinaryOracle(t *testing.T, name string, op, host func(a, b uint32) uint32) {
	t.Helper()
	r := newTestRand()
	failures := 0
	for range oracleIterations {
		a, b := randomPair(r)
		got, want := op(a, b), host(a, b)
		if !sameResult(got, want) {
			t.Errorf("%s(0x%08X, 0x%08X): got 0x%08X, want 0x%08X", name, a, b, got, want)
			failures++
			if failures >= 20 {
				t.Fatal("too many failures")
			}
		}
	}
}

// checkBinaryTable runs op over every pair of specialPatterns.
func checkBinaryTable(t *testing.T, name string, op, host func(a, b uint32) uint32) {
	t.Helper()
	for _, a := range specialPatterns {
		for _, b := range specialPatterns {
			got, want := op(a, b), host(a, b)
			if !sameResult(got, want) {
				t.Errorf("%s(0x%08X, 0x%08X): got 0x%08X, want 0x%08X", name, a, b, got, want)
			}
		}
	}
}

type binaryCase struct {
	name string
	a, b uint32
	want uint32
}

func runBinaryCases(t *testing.T, name string, op func(a, b uint32) uint32, tests []binaryCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := op(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("%s(0x%08X, 0x%08X): got 0x%08X, want 0x%08X", name, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

type unaryCase struct {
	name string
	a    uint32
	want uint32
}

func runUnaryCases(t *testing.T, name string, op func(a uint32) uint32, tests []unaryCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := op(tt.a)
			if got != tt.want {
				t.Errorf("%s(0x%08X): got 0x%08X, want 0x%08X", name, tt.a, got, tt.want)
			}
		})
	}
}
