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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
	"unsafe"
)

// This file provides the AVX backend on top of archsimd 128-bit types.
// archsimd emits the VEX-encoded forms (VPMINSW, VPCMPGTW, VPADDUSW, VPSRLW
// and the loads/stores), so the backend requires AVX even though every
// operation fits in an XMM register. Unsigned min/max use the sign-flip path.

var avxKernel = kernel{
	name: "archsimd-avx",

	minInt16: func(a, b Vector128) Vector128 {
		return fromInt16x8(toInt16x8(a).Min(toInt16x8(b)))
	},
	maxInt16: func(a, b Vector128) Vector128 {
		return fromInt16x8(toInt16x8(a).Max(toInt16x8(b)))
	},
	lessInt16: func(a, b Vector128) Vector128 {
		return fromInt16x8(toInt16x8(a).Less(toInt16x8(b)).ToInt16x8())
	},
	equalInt16: func(a, b Vector128) Vector128 {
		return fromInt16x8(toInt16x8(a).Equal(toInt16x8(b)).ToInt16x8())
	},

	add: func(a, b Vector128) Vector128 {
		return fromUint16x8(toUint16x8(a).Add(toUint16x8(b)))
	},
	sub: func(a, b Vector128) Vector128 {
		return fromUint16x8(toUint16x8(a).Sub(toUint16x8(b)))
	},
	addSatUint16: func(a, b Vector128) Vector128 {
		return fromUint16x8(toUint16x8(a).AddSaturated(toUint16x8(b)))
	},
	subSatUint16: func(a, b Vector128) Vector128 {
		return fromUint16x8(toUint16x8(a).SubSaturated(toUint16x8(b)))
	},

	shiftRightUint16: func(v Vector128, count uint) Vector128 {
		return fromUint16x8(toUint16x8(v).ShiftAllRight(uint64(count)))
	},
	shiftLeftUint16: func(v Vector128, count uint) Vector128 {
		return fromUint16x8(toUint16x8(v).ShiftAllLeft(uint64(count)))
	},
}

// hardwareKernel returns the archsimd backend when the CPU supports AVX.
// SSE2-only CPUs run the portable backend.
func hardwareKernel(level DispatchLevel) *kernel {
	switch level {
	case DispatchSSE2, DispatchAVX2, DispatchAVX512:
		if hasAVX() {
			return &avxKernel
		}
		return nil
	default:
		return nil
	}
}

// hasAVX is a variable so tests can simulate CPUs without AVX.
var hasAVX = func() bool { return archsimd.X86.AVX() }

// amd64 is little-endian, so the memory image of a Vector128 is the lane
// array archsimd loads and stores.

func toUint16x8(v Vector128) archsimd.Uint16x8 {
	return archsimd.LoadUint16x8((*[8]uint16)(unsafe.Pointer(&v)))
}

func fromUint16x8(x archsimd.Uint16x8) Vector128 {
	var v Vector128
	x.Store((*[8]uint16)(unsafe.Pointer(&v)))
	return v
}

func toInt16x8(v Vector128) archsimd.Int16x8 {
	return archsimd.LoadInt16x8((*[8]int16)(unsafe.Pointer(&v)))
}

func fromInt16x8(x archsimd.Int16x8) Vector128 {
	var v Vector128
	x.Store((*[8]int16)(unsafe.Pointer(&v)))
	return v
}
