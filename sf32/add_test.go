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

func TestAdd(t *testing.T) {
	runBinaryCases(t, "Add", Add, []binaryCase{
		{"Tenths", 0x3DCCCCCD, 0x3E4CCCCD, 0x3E99999A},
		{"NegTenths", 0xBDCCCCCD, 0xBE4CCCCD, 0xBE99999A},
		{"Integers", 0x4640E400, 0x47849900, 0x479CB580}, // 12345 + 67890
		{"NegIntegers", 0xC640E400, 0xC7849900, 0xC79CB580},
		{"EqualOperands", 0x3B03126F, 0x3B03126F, 0x3B83126F},
		{"NegEqualOperands", 0xBB03126F, 0xBB03126F, 0xBB83126F},
		{"MixedSignsPositive", 0xBDCCCCCD, 0x3E4CCCCD, 0x3DCCCCCD},
		{"MixedSignsNegative", 0x3DCCCCCD, 0xBE4CCCCD, 0xBDCCCCCD},
		{"OverflowToInf", 0x7F7FFFFF, 0x7F000001, Inf},
		{"MaxPlusHalfUlp", 0x7F7FFFFF, 0x73000000, Inf},
		{"MaxPlusQuarterUlp", 0x7F7FFFFF, 0x72800000, 0x7F7FFFFF},
		{"InfPlusOne", Inf, One, Inf},
		{"NegInfPlusOne", NegInf, One, NegInf},
		{"OnePlusInf", One, Inf, Inf},
		{"InfPlusInf", Inf, Inf, Inf},
		{"InfMinusInf", NegInf, Inf, DefaultNaN},
		{"ZeroPlusZero", Zero, Zero, Zero},
		{"NegZeroPlusNegZero", NegZero, NegZero, NegZero},
		{"NegZeroPlusZero", NegZero, Zero, Zero},
		{"Cancellation", One, NegOne, Zero},
		{"SubnormalSum", 0x00000001, 0x00000001, 0x00000002},
		{"SubnormalCarryToNormal", 0x00400000, 0x00400000, MinNormal},
		{"TieToEven", One, 0x33800000, One}, // 1 + 2^-24
		{"TieToEvenUp", 0x3F800001, 0x33800000, 0x3F800002},
		{"AboveTie", One, 0x33800001, 0x3F800001},
		{"QuietNaNPassesThrough", 0xFFFFFFFF, One, 0xFFFFFFFF},
		{"SignalingNaNQuieted", 0x7F800001, One, 0x7FC00001},
	})
}

func TestAddIsNaN(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
	}{
		{"NegInfPlusInf", NegInf, Inf},
		{"NaNPlusOne", 0xFFFFFFFF, One},
		{"NaNPlusInf", 0xFFFFFFFF, Inf},
		{"NaNPlusNegInf", 0xFFFFFFFF, NegInf},
		{"OnePlusNaN", One, DefaultNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); !IsNaN(got) {
				t.Errorf("Add(0x%08X, 0x%08X): got 0x%08X, want NaN", tt.a, tt.b, got)
			}
		})
	}
}

func TestSub(t *testing.T) {
	runBinaryCases(t, "Sub", Sub, []binaryCase{
		{"Tenths", 0x3E99999A, 0x3E4CCCCD, 0x3DCCCCCE},
		{"NegativeResult", 0x3E4CCCCD, 0x3E99999A, 0xBDCCCCCE},
		{"Integers", 0x479CB580, 0x47849900, 0x4640E400}, // 80235 - 67890
		{"SameValue", 0x3B83126F, 0x3B83126F, Zero},
		{"SameNegValue", 0xBB83126F, 0xBB83126F, Zero},
		{"ZeroMinusValue", Zero, 0x3DCCCCCE, 0xBDCCCCCE},
		{"ZeroMinusNegValue", Zero, 0xBDCCCCCE, 0x3DCCCCCE},
		{"ZeroMinusZero", Zero, Zero, Zero},
		{"ZeroMinusNegZero", Zero, NegZero, Zero},
		{"NegZeroMinusZero", NegZero, Zero, NegZero},
		{"InfMinusInf", Inf, Inf, DefaultNaN},
		{"NegInfMinusNegInf", NegInf, NegInf, DefaultNaN},
		{"InfMinusNegInf", Inf, NegInf, Inf},
		{"OneMinusInf", One, Inf, NegInf},
		{"NegOneMinusOne", NegOne, One, 0xC0000000},
		{"CancelToSubnormal", MinNormal | 1, MinNormal, MinValue},
		{"NormalMinusSubnormal", MinNormal, MinValue, 0x007FFFFF},
		{"OneMinusUlp", One, 0x33800000, 0x3F7FFFFF},
		{"OneMinusHalfUlpBelow", One, 0x33000000, One}, // tie: 1 - 2^-25 rounds to even
		{"LargeMinusTiny", 0x4B800000, One, 0x4B7FFFFF},
	})
}

func TestAddMatchesHardware(t *testing.T) {
	checkBinaryTable(t, "Add", Add, hostAdd)
	checkBinaryOracle(t, "Add", Add, hostAdd)
}

func TestSubMatchesHardware(t *testing.T) {
	checkBinaryTable(t, "Sub", Sub, hostSub)
	checkBinaryOracle(t, "Sub", Sub, hostSub)
}

func BenchmarkAdd(b *testing.B) {
	x, y := uint32(0x3DCCCCCD), uint32(0x3E4CCCCD)
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = Add(x, y)
	}
	_ = sink
}

func BenchmarkSubCancellation(b *testing.B) {
	x, y := uint32(0x3F800001), uint32(One)
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = Sub(x, y)
	}
	_ = sink
}
