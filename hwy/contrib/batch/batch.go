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

// Package batch applies Uint16x8 operations across slices of vectors, and
// across uint16 slices read eight lanes at a time.
//
// Work is split over a Pool when the input is large enough. A nil *Pool runs
// on the calling goroutine.
package batch

import (
	"errors"
	"fmt"

	"github.com/ajroetker/simd128/hwy"
)

// ErrLengthMismatch is returned when destination and source slices differ
// in length.
var ErrLengthMismatch = errors.New("batch: slice lengths differ")

// SequentialThreshold is the number of vectors below which a call does not
// split work across the pool.
const SequentialThreshold = 1024

// BinaryOp is any lane-wise operation on two vectors, such as
// hwy.MinUint16x8 or hwy.AddSaturateUint16x8.
type BinaryOp func(a, b hwy.Vector128) hwy.Vector128

// ShiftOp is a shift-by-scalar operation, such as
// hwy.ShiftRightByScalarUint16x8.
type ShiftOp func(v hwy.Vector128, count int) hwy.Vector128

// Binary stores op(a[i], b[i]) into dst[i] for every i.
// dst may alias a or b.
func Binary(pool *Pool, dst, a, b []hwy.Vector128, op BinaryOp) error {
	if len(a) != len(dst) || len(b) != len(dst) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}
	pool.ParallelFor(len(dst), SequentialThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = op(a[i], b[i])
		}
	})
	return nil
}

// Shift stores op(v[i], count) into dst[i] for every i.
func Shift(pool *Pool, dst, v []hwy.Vector128, count int, op ShiftOp) error {
	if len(v) != len(dst) {
		return fmt.Errorf("%w: dst=%d v=%d", ErrLengthMismatch, len(dst), len(v))
	}
	pool.ParallelFor(len(dst), SequentialThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = op(v[i], count)
		}
	})
	return nil
}

// Reduce folds op over vs, starting from init. op must be associative and
// commutative, as hwy.MinUint16x8 and hwy.MaxUint16x8 are. Each worker
// folds its own range starting from init, so init must also be an identity
// of op.
func Reduce(pool *Pool, vs []hwy.Vector128, init hwy.Vector128, op BinaryOp) hwy.Vector128 {
	// ParallelFor never runs more ranges than there are workers.
	chunks := make(chan hwy.Vector128, pool.NumWorkers())
	pool.ParallelFor(len(vs), SequentialThreshold, func(start, end int) {
		acc := init
		for _, v := range vs[start:end] {
			acc = op(acc, v)
		}
		chunks <- acc
	})
	close(chunks)
	acc := init
	for p := range chunks {
		acc = op(acc, p)
	}
	return acc
}

// Uint16 applies op to dst, a and b viewed as runs of eight lanes. A final
// partial group is zero-padded before op runs and only the valid lanes are
// written back.
func Uint16(pool *Pool, dst, a, b []uint16, op BinaryOp) error {
	if len(a) != len(dst) || len(b) != len(dst) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}
	groups := (len(dst) + hwy.Uint16x8LaneCount - 1) / hwy.Uint16x8LaneCount
	pool.ParallelFor(groups, SequentialThreshold, func(start, end int) {
		for g := start; g < end; g++ {
			lo := g * hwy.Uint16x8LaneCount
			hi := min(lo+hwy.Uint16x8LaneCount, len(dst))
			r := op(load(a[lo:hi]), load(b[lo:hi])).Uint16Lanes()
			copy(dst[lo:hi], r[:hi-lo])
		}
	})
	return nil
}

func load(s []uint16) hwy.Vector128 {
	var lanes hwy.Uint16x8Lanes
	copy(lanes[:], s)
	return hwy.FromUint16Lanes(lanes)
}
