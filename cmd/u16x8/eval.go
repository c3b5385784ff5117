// Copyright 2025 go-highway Authors
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
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/simd128/hwy"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errLaneCount = errors.New("lane list must have 1 or 8 values")
)

// operation is one evaluable kernel. Exactly one of the function fields is
// set; it determines the arguments eval expects.
type operation struct {
	binary    func(a, b hwy.Vector128) hwy.Vector128
	unary     func(v hwy.Vector128) hwy.Vector128
	shift     func(v hwy.Vector128, count int) hwy.Vector128
	ternary   func(m, a, b hwy.Vector128) hwy.Vector128
	predicate func(v hwy.Vector128) string
}

func (op operation) arity() int {
	switch {
	case op.binary != nil, op.shift != nil:
		return 2
	case op.ternary != nil:
		return 3
	default:
		return 1
	}
}

var operations = map[string]operation{
	"min":    {binary: hwy.MinUint16x8},
	"max":    {binary: hwy.MaxUint16x8},
	"lt":     {binary: hwy.LessThanUint16x8},
	"le":     {binary: hwy.LessThanOrEqualUint16x8},
	"gt":     {binary: hwy.GreaterThanUint16x8},
	"ge":     {binary: hwy.GreaterThanOrEqualUint16x8},
	"eq":     {binary: hwy.EqualUint16x8},
	"ne":     {binary: hwy.NotEqualUint16x8},
	"add":    {binary: hwy.AddUint16x8},
	"sub":    {binary: hwy.SubUint16x8},
	"addsat": {binary: hwy.AddSaturateUint16x8},
	"subsat": {binary: hwy.SubSaturateUint16x8},
	"and":    {binary: hwy.AndUint16x8},
	"or":     {binary: hwy.OrUint16x8},
	"xor":    {binary: hwy.XorUint16x8},
	"shr":    {shift: hwy.ShiftRightByScalarUint16x8},
	"shl":    {shift: hwy.ShiftLeftByScalarUint16x8},
	"not":    {unary: hwy.NotUint16x8},
	"flip":   {unary: hwy.FlipSign},
	"select": {ternary: hwy.SelectUint16x8},
	"bitmask": {predicate: func(v hwy.Vector128) string {
		return fmt.Sprintf("0x%02x", hwy.BitmaskUint16x8(v))
	}},
	"alltrue": {predicate: func(v hwy.Vector128) string {
		return strconv.FormatBool(hwy.AllTrueUint16x8(v))
	}},
	"anytrue": {predicate: func(v hwy.Vector128) string {
		return strconv.FormatBool(hwy.AnyTrueUint16x8(v))
	}},
}

func operationNames() []string {
	names := lo.Keys(operations)
	slices.Sort(names)
	return names
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <a> [b|count] [c]",
		Short: "Evaluate one operation on lane lists",
		Long: "Evaluate one operation on comma-separated lane lists. Lanes are decimal " +
			"or 0x-prefixed hex; a single value fills all eight lanes. Put negative " +
			"shift counts after \"--\", as in: u16x8 eval shr 0xffff -- -1\n\n" +
			"Operations: " + strings.Join(operationNames(), ", "),
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd.OutOrStdout(), args, opts.hex)
		},
	}
}

func evaluate(w io.Writer, args []string, hex bool) error {
	op, ok := operations[args[0]]
	if !ok {
		return fmt.Errorf("%w %q (have %s)", errUnknownOp, args[0], strings.Join(operationNames(), ", "))
	}
	operands := args[1:]
	if len(operands) != op.arity() {
		return fmt.Errorf("%s takes %d operands, got %d", args[0], op.arity(), len(operands))
	}

	if op.shift != nil {
		v, err := parseVector(operands[0])
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(operands[1])
		if err != nil {
			return fmt.Errorf("invalid shift count %q: %w", operands[1], err)
		}
		_, err = fmt.Fprintln(w, formatVector(op.shift(v, count), hex))
		return err
	}

	vs := make([]hwy.Vector128, len(operands))
	for i, s := range operands {
		v, err := parseVector(s)
		if err != nil {
			return err
		}
		vs[i] = v
	}

	var out string
	switch {
	case op.binary != nil:
		out = formatVector(op.binary(vs[0], vs[1]), hex)
	case op.ternary != nil:
		out = formatVector(op.ternary(vs[0], vs[1], vs[2]), hex)
	case op.unary != nil:
		out = formatVector(op.unary(vs[0]), hex)
	default:
		out = op.predicate(vs[0])
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// parseVector reads "x" or "x0,x1,...,x7".
func parseVector(s string) (hwy.Vector128, error) {
	fields := lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	})
	if len(fields) != 1 && len(fields) != hwy.Uint16x8LaneCount {
		return hwy.Vector128{}, fmt.Errorf("%w: %q has %d", errLaneCount, s, len(fields))
	}

	var lanes hwy.Uint16x8Lanes
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 0, 16)
		if err != nil {
			return hwy.Vector128{}, fmt.Errorf("invalid lane %d in %q: %w", i, s, err)
		}
		lanes[i] = uint16(x)
	}
	if len(fields) == 1 {
		return hwy.SplatUint16x8(lanes[0]), nil
	}
	return hwy.FromUint16Lanes(lanes), nil
}

func formatVector(v hwy.Vector128, hex bool) string {
	lanes := v.Uint16Lanes()
	return strings.Join(lo.Map(lanes[:], func(x uint16, _ int) string {
		if hex {
			return fmt.Sprintf("0x%04x", x)
		}
		return strconv.FormatUint(uint64(x), 10)
	}), ",")
}
