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

package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/go-softfloat/sf32"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// op pairs a softfloat operation with the same operation on the host FPU.
// Unary operations ignore their second operand. Results are carried as
// uint32 bit patterns; to-int32 results are int32 values reinterpreted and
// comparator results are 1 for true and 0 for false.
type op struct {
	name  string
	arity int
	soft  func(a, b uint32) uint32
	host  func(a, b uint32) uint32

	intOperand bool // operands are int32 values, not bit patterns
	intResult  bool // results are int32 values, not bit patterns
	boolResult bool // results are 0 or 1
}

var ops = map[string]op{
	"add":        {arity: 2, soft: sf32.Add, host: hostAdd},
	"sub":        {arity: 2, soft: sf32.Sub, host: hostSub},
	"mul":        {arity: 2, soft: sf32.Mul, host: hostMul},
	"div":        {arity: 2, soft: sf32.Div, host: hostDiv},
	"sqrt":       {arity: 1, soft: unary(sf32.Sqrt), host: hostSqrt},
	"round":      {arity: 1, soft: unary(sf32.RoundToInt), host: hostRound},
	"to-int32":   {arity: 1, soft: softToInt32, host: hostToInt32, intResult: true},
	"from-int32": {arity: 1, soft: softFromInt32, host: hostFromInt32, intOperand: true},

	"eq": {arity: 2, soft: relation(sf32.Eq), host: hostRelation(hostEq), boolResult: true},
	"ne": {arity: 2, soft: relation(sf32.Ne), host: hostRelation(hostNe), boolResult: true},
	"lt": {arity: 2, soft: relation(sf32.Lt), host: hostRelation(hostLt), boolResult: true},
	"le": {arity: 2, soft: relation(sf32.Le), host: hostRelation(hostLe), boolResult: true},
	"gt": {arity: 2, soft: relation(sf32.Gt), host: hostRelation(hostGt), boolResult: true},
	"ge": {arity: 2, soft: relation(sf32.Ge), host: hostRelation(hostGe), boolResult: true},
}

func init() {
	for name, o := range ops {
		o.name = name
		ops[name] = o
	}
}

func unary(fn func(uint32) uint32) func(a, _ uint32) uint32 {
	return func(a, _ uint32) uint32 { return fn(a) }
}

func relation(fn func(a, b uint32) bool) func(a, b uint32) uint32 {
	return func(a, b uint32) uint32 { return bit(fn(a, b)) }
}

func bit(b bool) uint32 { return lo.Ternary[uint32](b, 1, 0) }

func softToInt32(a, _ uint32) uint32   { return uint32(sf32.ToInt32(a)) }
func softFromInt32(a, _ uint32) uint32 { return sf32.FromInt32(int32(a)) }

func f32(bits uint32) float32 { return math.Float32frombits(bits) }

func hostAdd(a, b uint32) uint32 { return math.Float32bits(f32(a) + f32(b)) }
func hostSub(a, b uint32) uint32 { return math.Float32bits(f32(a) - f32(b)) }
func hostMul(a, b uint32) uint32 { return math.Float32bits(f32(a) * f32(b)) }
func hostDiv(a, b uint32) uint32 { return math.Float32bits(f32(a) / f32(b)) }

func hostRelation(fn func(x, y float32) bool) func(a, b uint32) uint32 {
	return func(a, b uint32) uint32 { return bit(fn(f32(a), f32(b))) }
}

func hostEq(x, y float32) bool { return x == y }
func hostLt(x, y float32) bool { return x < y }
func hostLe(x, y float32) bool { return x <= y }
func hostGt(x, y float32) bool { return x > y }
func hostGe(x, y float32) bool { return x >= y }

// hostNe is the host's != except that it is false when either operand is
// NaN, matching sf32.Ne.
func hostNe(x, y float32) bool {
	if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
		return false
	}
	return x != y
}

func hostSqrt(a, _ uint32) uint32 {
	return math.Float32bits(float32(math.Sqrt(float64(f32(a)))))
}

func hostRound(a, _ uint32) uint32 {
	return math.Float32bits(float32(math.RoundToEven(float64(f32(a)))))
}

func hostToInt32(a, _ uint32) uint32 {
	f := float64(f32(a))
	switch {
	case math.IsNaN(f), f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return 1 << 31
	}
	return uint32(int32(math.RoundToEven(f)))
}

func hostFromInt32(a, _ uint32) uint32 { return math.Float32bits(float32(int32(a))) }

// opNames returns the names of all operations in sorted order.
func opNames() []string {
	names := lo.Keys(ops)
	slices.Sort(names)
	return names
}

func lookupOp(name string) (op, error) {
	o, ok := ops[name]
	if !ok {
		return op{}, errors.Newf("unknown op %q (want one of %s)", name, strings.Join(opNames(), ", "))
	}
	return o, nil
}

// same reports whether a softfloat result matches the host result. Any two
// NaNs match: hardware NaN payloads differ between architectures.
func (o op) same(got, want uint32) bool {
	if o.intResult || o.boolResult {
		return got == want
	}
	if sf32.IsNaN(got) || sf32.IsNaN(want) {
		return sf32.IsNaN(got) && sf32.IsNaN(want)
	}
	return got == want
}

func (o op) formatOperand(v uint32) string {
	if o.intOperand {
		return strconv.Itoa(int(int32(v)))
	}
	return fmt.Sprintf("0x%08X", v)
}

func (o op) formatResult(v uint32) string {
	if o.boolResult {
		return strconv.FormatBool(v != 0)
	}
	if o.intResult {
		return strconv.Itoa(int(int32(v)))
	}
	return fmt.Sprintf("0x%08X (%s, %g)", v, sf32.Classify(v), f32(v))
}

// parseOperand reads an operand. Bit patterns are given as integers in any
// Go base ("0x3F800000", "1065353216") or as decimal floats ("1.0", "-inf",
// "nan"), which are converted to their nearest binary32 pattern.
func (o op) parseOperand(s string) (uint32, error) {
	if o.intOperand {
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "parse int32 operand %q", s)
		}
		return uint32(int32(n)), nil
	}
	if bits, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(bits), nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse operand %q", s)
	}
	return math.Float32bits(float32(f)), nil
}
