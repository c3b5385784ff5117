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

// Package hwy provides 128-bit SIMD values and the Uint16x8 operations a
// language runtime needs for its SIMD value type.
//
// A Vector128 is an opaque 16-byte value. The Uint16x8 functions view it as
// eight unsigned 16-bit lanes in little-endian order and return new vectors
// without side effects:
//
//	a := hwy.NewUint16x8(0, 1, 2, 3, 4, 5, 6, 7)
//	b := hwy.NewUint16x8(7, 6, 5, 4, 3, 2, 1, 0)
//	lo := hwy.MinUint16x8(a, b)      // 0 1 2 3 3 2 1 0
//	lt := hwy.LessThanUint16x8(a, b) // 0xFFFF in lanes 0-3, 0 elsewhere
//
// Unsigned min, max and comparisons are computed from signed 16-bit
// primitives after flipping bit 15 of every lane (see FlipSign), which is
// what 128-bit integer units provide natively.
//
// The backend is chosen at startup from the detected dispatch level: an
// archsimd AVX backend on amd64 built with GOEXPERIMENT=simd when the CPU
// has AVX, and a portable pure Go backend everywhere else or when
// HWY_NO_SIMD is set.
// Results are bit-identical across backends.
package hwy
