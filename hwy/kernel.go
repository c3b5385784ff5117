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

import "sync/atomic"

// kernel is the set of 16-bit lane primitives a backend provides. The
// unsigned Uint16x8 operations are composed from these.
//
// Shift functions are only called with count < 16.
type kernel struct {
	name string

	minInt16   func(a, b Vector128) Vector128
	maxInt16   func(a, b Vector128) Vector128
	lessInt16  func(a, b Vector128) Vector128
	equalInt16 func(a, b Vector128) Vector128

	add          func(a, b Vector128) Vector128
	sub          func(a, b Vector128) Vector128
	addSatUint16 func(a, b Vector128) Vector128
	subSatUint16 func(a, b Vector128) Vector128

	shiftRightUint16 func(v Vector128, count uint) Vector128
	shiftLeftUint16  func(v Vector128, count uint) Vector128
}

// activeKernel is written by selectKernel during package init and by
// ForceScalar.
var activeKernel atomic.Pointer[kernel]

func active() *kernel {
	if kk := activeKernel.Load(); kk != nil {
		return kk
	}
	return &portableKernel
}

// selectKernel installs the best backend for the detected dispatch level.
// Called at the end of every dispatch init.
func selectKernel() {
	if hw := hardwareKernel(currentLevel); hw != nil {
		activeKernel.Store(hw)
		return
	}
	activeKernel.Store(&portableKernel)
}

// KernelName returns the name of the backend executing Uint16x8 operations,
// for example "portable" or "archsimd-avx".
func KernelName() string {
	return active().name
}

// ForceScalar switches Uint16x8 operations to the portable backend and
// returns a function restoring the previous backend:
//
//	defer hwy.ForceScalar()()
//
// It is intended for tests and diagnostics. Results never depend on the
// backend, only speed does.
func ForceScalar() func() {
	prev := active()
	activeKernel.Store(&portableKernel)
	Logger().Debug("hwy: uint16x8 backend forced", "from", prev.name, "to", portableKernel.name)
	return func() {
		activeKernel.Store(prev)
		Logger().Debug("hwy: uint16x8 backend restored", "backend", prev.name)
	}
}

// compiledKernels returns every backend built into this binary that can run
// on this CPU, portable first.
func compiledKernels() []*kernel {
	ks := []*kernel{&portableKernel}
	if hw := hardwareKernel(currentLevel); hw != nil {
		ks = append(ks, hw)
	}
	return ks
}
