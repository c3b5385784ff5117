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

import "math"

// This file provides the pure Go backend. It mirrors the primitive set of a
// 128-bit integer unit: signed min/max/compare, unsigned saturating add/sub
// and logical shifts. It is used when no hardware backend is compiled in or
// HWY_NO_SIMD is set.

var portableKernel = kernel{
	name: "portable",

	minInt16: func(a, b Vector128) Vector128 {
		return lanewiseInt16(a, b, func(x, y int16) int16 { return min(x, y) })
	},
	maxInt16: func(a, b Vector128) Vector128 {
		return lanewiseInt16(a, b, func(x, y int16) int16 { return max(x, y) })
	},
	lessInt16: func(a, b Vector128) Vector128 {
		return lanewiseInt16(a, b, func(x, y int16) int16 { return int16(laneMask(x < y)) })
	},
	equalInt16: func(a, b Vector128) Vector128 {
		return lanewiseUint16(a, b, func(x, y uint16) uint16 { return laneMask(x == y) })
	},

	add: func(a, b Vector128) Vector128 {
		return lanewiseUint16(a, b, func(x, y uint16) uint16 { return x + y })
	},
	sub: func(a, b Vector128) Vector128 {
		return lanewiseUint16(a, b, func(x, y uint16) uint16 { return x - y })
	},
	addSatUint16: func(a, b Vector128) Vector128 {
		return lanewiseUint16(a, b, func(x, y uint16) uint16 {
			return uint16(min(uint32(x)+uint32(y), math.MaxUint16))
		})
	},
	subSatUint16: func(a, b Vector128) Vector128 {
		return lanewiseUint16(a, b, func(x, y uint16) uint16 {
			return uint16(max(int32(x)-int32(y), 0))
		})
	},

	shiftRightUint16: func(v Vector128, count uint) Vector128 {
		lanes := v.Uint16Lanes()
		for i := range lanes {
			lanes[i] >>= count
		}
		return FromUint16Lanes(lanes)
	},
	shiftLeftUint16: func(v Vector128, count uint) Vector128 {
		lanes := v.Uint16Lanes()
		for i := range lanes {
			lanes[i] <<= count
		}
		return FromUint16Lanes(lanes)
	},
}

func lanewiseUint16(a, b Vector128, op func(x, y uint16) uint16) Vector128 {
	la, lb := a.Uint16Lanes(), b.Uint16Lanes()
	var out Uint16x8Lanes
	for i := range out {
		out[i] = op(la[i], lb[i])
	}
	return FromUint16Lanes(out)
}

// lanewiseInt16 reads each lane's bit pattern as int16; no value conversion
// takes place.
func lanewiseInt16(a, b Vector128, op func(x, y int16) int16) Vector128 {
	return lanewiseUint16(a, b, func(x, y uint16) uint16 {
		return uint16(op(int16(x), int16(y)))
	})
}

// laneMask returns the all-ones lane for true and zero for false.
func laneMask(b bool) uint16 {
	if b {
		return math.MaxUint16
	}
	return 0
}
