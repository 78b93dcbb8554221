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

func TestMul(t *testing.T) {
	runBinaryCases(t, "Mul", Mul, []binaryCase{
		{"Tenths", 0x3DCCCCCD, 0x3E4CCCCD, 0x3CA3D70B},
		{"NegTenths", 0xBDCCCCCD, 0xBE4CCCCD, 0x3CA3D70B},
		{"Integers", 0x4640E400, 0x47849900, 0x4E47D1B1}, // 12345 * 67890, rounded
		{"NegIntegers", 0xC640E400, 0xC7849900, 0x4E47D1B1},
		{"MixedSigns", 0xBDCCCCCD, 0x3E4CCCCD, 0xBCA3D70B},
		{"MixedSignsSwapped", 0x3DCCCCCD, 0xBE4CCCCD, 0xBCA3D70B},
		{"ByOne", 0x3DCCCCCD, One, 0x3DCCCCCD},
		{"ByNegOne", 0x3DCCCCCD, NegOne, 0xBDCCCCCD},
		{"ZeroTimesValue", Zero, 0x3DCCCCCD, Zero},
		{"NegZeroTimesValue", NegZero, 0x3DCCCCCD, NegZero},
		{"ZeroTimesNegValue", Zero, 0xBDCCCCCD, NegZero},
		{"InfTimesOne", Inf, One, Inf},
		{"NegInfTimesOne", NegInf, One, NegInf},
		{"NegInfTimesInf", NegInf, Inf, NegInf},
		{"InfTimesNegOne", Inf, NegOne, NegInf},
		{"NegInfTimesNegOne", NegInf, NegOne, Inf},
		{"InfTimesZero", Inf, Zero, DefaultNaN},
		{"ZeroTimesNegInf", Zero, NegInf, DefaultNaN},
		{"Overflow", MaxValue, 0x40000000, Inf},
		{"NegOverflow", MaxValue, 0xC0000000, NegInf},
		{"SubnormalTimesOne", MinValue, One, MinValue},
		{"SubnormalTimesTwo", 0x00400000, 0x40000000, MinNormal},
		{"NormalToSubnormal", MinNormal, 0x3F000000, 0x00400000},
		{"UnderflowToZero", MinValue, 0x3E800000, Zero},    // 2^-149 / 4
		{"UnderflowTieToEven", MinValue, 0x3F000000, Zero}, // 2^-150 is a tie
		{"UnderflowAboveTie", MinValue, 0x3F000001, MinValue},
		{"NaNPayload", 0x7FC12345, One, 0x7FC12345},
		{"SignalingNaNQuieted", One, 0xFF800123, 0xFFC00123},
	})
}

func TestMulMatchesHardware(t *testing.T) {
	checkBinaryTable(t, "Mul", Mul, hostMul)
	checkBinaryOracle(t, "Mul", Mul, hostMul)
}

func BenchmarkMul(b *testing.B) {
	x, y := uint32(0x3DCCCCCD), uint32(0x3E4CCCCD)
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = Mul(x, y)
	}
	_ = sink
}
