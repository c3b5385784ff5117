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
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel, currentWidth and currentName are set once by init() in the
// dispatch_*.go file for the target architecture.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest SIMD register in bytes: 16 for SSE2/NEON,
// 32 for AVX2, 64 for AVX-512. Uint16x8 operations always use 16 bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected SIMD target.
func CurrentName() string {
	return currentName
}

// DispatchInfo is a snapshot of the runtime selection.
type DispatchInfo struct {
	Level  DispatchLevel
	Width  int
	Name   string
	Kernel string
	NoSimd bool
}

// Dispatch returns the current runtime selection.
func Dispatch() DispatchInfo {
	return DispatchInfo{
		Level:  currentLevel,
		Width:  currentWidth,
		Name:   currentName,
		Kernel: KernelName(),
		NoSimd: NoSimdEnv(),
	}
}

// NoSimdEnv reports whether HWY_NO_SIMD requests the scalar backend.
// Values accepted by strconv.ParseBool are honored; any other non-empty
// value counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
