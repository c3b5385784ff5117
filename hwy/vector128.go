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
	"encoding/binary"
	"fmt"
	"strings"
)

// Vector128 is an opaque 128-bit SIMD value.
//
// The bytes are laid out exactly as a 128-bit register stored to memory on a
// little-endian machine: when viewed as eight uint16 lanes, lane 0 occupies
// bytes 0-1 and lane 7 occupies bytes 14-15. Any bit pattern is a valid
// Vector128.
//
// Vector128 is a value type. Every operation returns a new vector; none
// mutates its operands.
type Vector128 [16]byte

// Uint16x8Lanes is the lane view of a Vector128 holding eight uint16 lanes.
type Uint16x8Lanes [8]uint16

// Vector128FromBytes returns the vector whose memory image is b.
func Vector128FromBytes(b [16]byte) Vector128 {
	return Vector128(b)
}

// Vector128FromSlice returns the vector whose memory image is the first 16
// bytes of b. It panics if len(b) < 16.
func Vector128FromSlice(b []byte) Vector128 {
	return Vector128([16]byte(b))
}

// Bytes returns the 16-byte memory image of v.
func (v Vector128) Bytes() [16]byte {
	return [16]byte(v)
}

// Vector128FromHalves builds a vector from its low and high 64-bit halves,
// each interpreted little-endian. This matches runtimes that box a v128 as
// a pair of uint64 words.
func Vector128FromHalves(lo, hi uint64) Vector128 {
	var v Vector128
	binary.LittleEndian.PutUint64(v[0:8], lo)
	binary.LittleEndian.PutUint64(v[8:16], hi)
	return v
}

// Halves returns the low and high 64-bit halves of v.
func (v Vector128) Halves() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(v[0:8]), binary.LittleEndian.Uint64(v[8:16])
}

// FromUint16Lanes reinterprets eight uint16 lanes as a Vector128.
func FromUint16Lanes(lanes Uint16x8Lanes) Vector128 {
	return lanesToVector(lanes)
}

// Uint16Lanes reinterprets v as eight uint16 lanes.
func (v Vector128) Uint16Lanes() Uint16x8Lanes {
	return vectorToLanes(v)
}

// String formats v as its eight uint16 lanes in hexadecimal, lane 0 first.
func (v Vector128) String() string {
	lanes := v.Uint16Lanes()
	var sb strings.Builder
	sb.WriteString("u16x8(")
	for i, x := range lanes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%04x", x)
	}
	sb.WriteByte(')')
	return sb.String()
}
