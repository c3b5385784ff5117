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

package hwy

import (
	"errors"
	"fmt"
)

// This file provides the Uint16x8 operations: a Vector128 viewed as eight
// unsigned 16-bit lanes. All operations are pure and safe for concurrent use.
// Comparisons return lane masks: 0xFFFF where the relation holds, 0x0000
// elsewhere.

// Uint16x8LaneCount is the number of uint16 lanes in a Vector128.
const Uint16x8LaneCount = 8

// ErrLaneIndex is returned by lane accessors for an index outside [0, 8).
var ErrLaneIndex = errors.New("hwy: lane index out of range")

// NewUint16x8 builds a vector whose lane i is xi. Values are stored bit for
// bit; there is no range checking.
func NewUint16x8(x0, x1, x2, x3, x4, x5, x6, x7 uint16) Vector128 {
	return FromUint16Lanes(Uint16x8Lanes{x0, x1, x2, x3, x4, x5, x6, x7})
}

// SplatUint16x8 builds a vector with every lane set to x.
func SplatUint16x8(x uint16) Vector128 {
	return NewUint16x8(x, x, x, x, x, x, x, x)
}

// ExtractLaneUint16x8 returns lane i of v.
func ExtractLaneUint16x8(v Vector128, i int) (uint16, error) {
	if i < 0 || i >= Uint16x8LaneCount {
		return 0, fmt.Errorf("%w: %d", ErrLaneIndex, i)
	}
	return v.Uint16Lanes()[i], nil
}

// ReplaceLaneUint16x8 returns a copy of v with lane i set to x.
func ReplaceLaneUint16x8(v Vector128, i int, x uint16) (Vector128, error) {
	if i < 0 || i >= Uint16x8LaneCount {
		return v, fmt.Errorf("%w: %d", ErrLaneIndex, i)
	}
	lanes := v.Uint16Lanes()
	lanes[i] = x
	return FromUint16Lanes(lanes), nil
}

// MinUint16x8 returns the unsigned minimum of each lane pair.
func MinUint16x8(a, b Vector128) Vector128 {
	return viaSignedRestore(a, b, active().minInt16)
}

// MaxUint16x8 returns the unsigned maximum of each lane pair.
func MaxUint16x8(a, b Vector128) Vector128 {
	return viaSignedRestore(a, b, active().maxInt16)
}

// LessThanUint16x8 returns the lane mask of a < b, unsigned.
func LessThanUint16x8(a, b Vector128) Vector128 {
	return viaSigned(a, b, active().lessInt16)
}

// LessThanOrEqualUint16x8 returns the lane mask of a <= b, unsigned.
//
// Equality holds before and after the sign flip, so both masks are computed
// on the flipped operands.
func LessThanOrEqualUint16x8(a, b Vector128) Vector128 {
	kk := active()
	return viaSigned(a, b, func(x, y Vector128) Vector128 {
		return OrUint16x8(kk.lessInt16(x, y), kk.equalInt16(x, y))
	})
}

// GreaterThanUint16x8 returns the lane mask of a > b, unsigned.
func GreaterThanUint16x8(a, b Vector128) Vector128 {
	return LessThanUint16x8(b, a)
}

// GreaterThanOrEqualUint16x8 returns the lane mask of a >= b, unsigned.
func GreaterThanOrEqualUint16x8(a, b Vector128) Vector128 {
	return LessThanOrEqualUint16x8(b, a)
}

// EqualUint16x8 returns the lane mask of a == b.
func EqualUint16x8(a, b Vector128) Vector128 {
	return active().equalInt16(a, b)
}

// NotEqualUint16x8 returns the lane mask of a != b.
func NotEqualUint16x8(a, b Vector128) Vector128 {
	return NotUint16x8(EqualUint16x8(a, b))
}

// ShiftRightByScalarUint16x8 shifts every lane right by count bits, filling
// with zeros.
//
// A count of 16 or more shifts every bit out and yields the zero vector.
// Negative counts are read as unsigned and therefore also yield zero.
func ShiftRightByScalarUint16x8(v Vector128, count int) Vector128 {
	if uint(count) >= 16 {
		return Vector128{}
	}
	return active().shiftRightUint16(v, uint(count))
}

// ShiftLeftByScalarUint16x8 shifts every lane left by count bits, filling
// with zeros. Counts follow the same rule as ShiftRightByScalarUint16x8.
func ShiftLeftByScalarUint16x8(v Vector128, count int) Vector128 {
	if uint(count) >= 16 {
		return Vector128{}
	}
	return active().shiftLeftUint16(v, uint(count))
}

// AddUint16x8 adds lane pairs modulo 2^16.
func AddUint16x8(a, b Vector128) Vector128 {
	return active().add(a, b)
}

// SubUint16x8 subtracts lane pairs modulo 2^16.
func SubUint16x8(a, b Vector128) Vector128 {
	return active().sub(a, b)
}

// AddSaturateUint16x8 adds lane pairs, clamping at 0xFFFF.
// For example: 0xFFFF + 1 = 0xFFFF (not 0).
func AddSaturateUint16x8(a, b Vector128) Vector128 {
	return active().addSatUint16(a, b)
}

// SubSaturateUint16x8 subtracts lane pairs, clamping at 0.
// For example: 0 - 1 = 0 (not 0xFFFF).
func SubSaturateUint16x8(a, b Vector128) Vector128 {
	return active().subSatUint16(a, b)
}

// Bitwise operations are lane-agnostic and work on the two 64-bit halves.

// AndUint16x8 returns a & b.
func AndUint16x8(a, b Vector128) Vector128 {
	alo, ahi := a.Halves()
	blo, bhi := b.Halves()
	return Vector128FromHalves(alo&blo, ahi&bhi)
}

// OrUint16x8 returns a | b.
func OrUint16x8(a, b Vector128) Vector128 {
	alo, ahi := a.Halves()
	blo, bhi := b.Halves()
	return Vector128FromHalves(alo|blo, ahi|bhi)
}

// XorUint16x8 returns a ^ b.
func XorUint16x8(a, b Vector128) Vector128 {
	alo, ahi := a.Halves()
	blo, bhi := b.Halves()
	return Vector128FromHalves(alo^blo, ahi^bhi)
}

// NotUint16x8 returns ^v.
func NotUint16x8(v Vector128) Vector128 {
	lo, hi := v.Halves()
	return Vector128FromHalves(^lo, ^hi)
}

// SelectUint16x8 takes bits from a where mask is set and from b elsewhere.
// With a lane mask this selects whole lanes.
func SelectUint16x8(mask, a, b Vector128) Vector128 {
	mlo, mhi := mask.Halves()
	alo, ahi := a.Halves()
	blo, bhi := b.Halves()
	return Vector128FromHalves(alo&mlo|blo&^mlo, ahi&mhi|bhi&^mhi)
}

// BitmaskUint16x8 packs bit 15 of every lane into bit i of the result.
func BitmaskUint16x8(mask Vector128) uint8 {
	var m uint8
	for i, x := range mask.Uint16Lanes() {
		m |= uint8(x>>15) << i
	}
	return m
}

// AllTrueUint16x8 reports whether every lane of v is non-zero.
func AllTrueUint16x8(v Vector128) bool {
	for _, x := range v.Uint16Lanes() {
		if x == 0 {
			return false
		}
	}
	return true
}

// AnyTrueUint16x8 reports whether any bit of v is set.
func AnyTrueUint16x8(v Vector128) bool {
	lo, hi := v.Halves()
	return lo|hi != 0
}
