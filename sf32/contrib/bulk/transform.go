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

// Package bulk applies softfloat operations lane by lane over slices of
// binary32 bit patterns, optionally spread over a worker pool.
//
// Every function processes min(len(inputs...), len(output)) lanes and
// leaves the rest of output untouched.
//
// Example usage:
//
//	out := make([]uint32, len(a))
//	bulk.AddSlices(a, b, out)
//	bulk.Transform(out, out, func(x uint32) uint32 { return sf32.Mul(x, x) })
package bulk

import (
	"github.com/ajroetker/go-softfloat/sf32"
	"github.com/ajroetker/go-softfloat/sf32/contrib/workerpool"
)

type (
	// UnaryOp is an operation on one bit pattern, such as sf32.Sqrt.
	UnaryOp func(a uint32) uint32

	// BinaryOp is an operation on two bit patterns, such as sf32.Add.
	BinaryOp func(a, b uint32) uint32
)

// Transform applies op to each element of input, storing results in output.
func Transform(input, output []uint32, op UnaryOp) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = op(input[i])
	}
}

// Transform2 applies op to each pair a[i], b[i], storing results in output.
func Transform2(a, b, output []uint32, op BinaryOp) {
	n := min(len(a), len(b), len(output))
	for i := 0; i < n; i++ {
		output[i] = op(a[i], b[i])
	}
}

// ParallelTransform2 is Transform2 with the lanes split over pool.
func ParallelTransform2(pool *workerpool.Pool, a, b, output []uint32, op BinaryOp) {
	n := min(len(a), len(b), len(output))
	pool.ParallelFor(n, func(start, end int) {
		Transform2(a[start:end], b[start:end], output[start:end], op)
	})
}

// ParallelTransform is Transform with the lanes split over pool.
func ParallelTransform(pool *workerpool.Pool, input, output []uint32, op UnaryOp) {
	n := min(len(input), len(output))
	pool.ParallelFor(n, func(start, end int) {
		Transform(input[start:end], output[start:end], op)
	})
}

// AddSlices computes output[i] = a[i] + b[i].
func AddSlices(a, b, output []uint32) {
	Transform2(a, b, output, sf32.Add)
}

// SubSlices computes output[i] = a[i] - b[i].
func SubSlices(a, b, output []uint32) {
	Transform2(a, b, output, sf32.Sub)
}

// MulSlices computes output[i] = a[i] * b[i].
func MulSlices(a, b, output []uint32) {
	Transform2(a, b, output, sf32.Mul)
}

// DivSlices computes output[i] = a[i] / b[i].
func DivSlices(a, b, output []uint32) {
	Transform2(a, b, output, sf32.Div)
}

// SqrtSlice computes output[i] = sqrt(input[i]).
func SqrtSlice(input, output []uint32) {
	Transform(input, output, sf32.Sqrt)
}

// FromInt32Slice converts each integer to its nearest binary32 pattern.
func FromInt32Slice(input []int32, output []uint32) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = sf32.FromInt32(input[i])
	}
}

// ToInt32Slice converts each pattern to int32, rounding to nearest even
// and saturating.
func ToInt32Slice(input []uint32, output []int32) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = sf32.ToInt32(input[i])
	}
}
