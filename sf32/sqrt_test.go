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

import "testing"

func TestSqrt(t *testing.T) {
	runUnaryCases(t, "Sqrt", Sqrt, []unaryCase{
		{"Four", 0x40800000, 0x40000000},
		{"Hundredth", 0x3C23D70A, 0x3DCCCCCD},
		{"One", One, One},
		{"Two", 0x40000000, 0x3FB504F3},
		{"Nine", 0x41100000, 0x40400000},
		{"Zero", Zero, Zero},
		{"NegZero", NegZero, NegZero},
		{"Inf", Inf, Inf},
		{"NegInf", NegInf, DefaultNaN},
		{"NegOne", NegOne, DefaultNaN},
		{"NegSubnormal", MinValue | signMask, DefaultNaN},
		{"MinValue", MinValue, 0x1A3504F3}, // 2^-74.5
		{"MinNormal", MinNormal, 0x20000000},
		{"MaxValue", MaxValue, 0x5F7FFFFF},
		{"QuietNaN", 0xFFC00001, 0xFFC00001},
		{"SignalingNaN", 0x7F800001, 0x7FC00001},
	})
}

func TestSqrtMatchesHardware(t *testing.T) {
	for _, a := range specialPatterns {
		if got, want := Sqrt(a), hostSqrt(a); !sameResult(got, want) {
			t.Errorf("Sqrt(0x%08X): got 0x%08X, want 0x%08X", a, got, want)
		}
	}
	r := newTestRand()
	failures := 0
	for range oracleIterations {
		a := randomPattern(r) &^ signMask
		if got, want := Sqrt(a), hostSqrt(a); !sameResult(got, want) {
			t.Errorf("Sqrt(0x%08X): got 0x%08X, want 0x%08X", a, got, want)
			failures++
			if failures >= 20 {
				t.Fatal("too many failures")
			}
		}
	}
}

// TestSqrtPerfectSquares checks that the square of every small integer
// has an exact root.
func TestSqrtPerfectSquares(t *testing.T) {
	for n := int32(1); n <= 4096; n++ {
		square, root := FromInt32(n*n), FromInt32(n)
		if got := Sqrt(square); got != root {
			t.Fatalf("Sqrt(%d^2): got 0x%08X, want 0x%08X", n, got, root)
		}
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := uint32(0x40000000)
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = Sqrt(x)
	}
	_ = sink
}
