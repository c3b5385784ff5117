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

//go:build !(386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm)

package hwy

import "encoding/binary"

// Big-endian targets keep the little-endian lane order of the memory image,
// so each lane is read with an explicit byte order.

func vectorToLanes(v Vector128) Uint16x8Lanes {
	var lanes Uint16x8Lanes
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint16(v[2*i:])
	}
	return lanes
}

func lanesToVector(lanes Uint16x8Lanes) Vector128 {
	var v Vector128
	for i, x := range lanes {
		binary.LittleEndian.PutUint16(v[2*i:], x)
	}
	return v
}
