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

// Most 128-bit integer units only provide signed 16-bit min, max and
// compare. XOR with 0x8000 maps [0, 65535] onto [-32768, 32767] in the same
// order, so a signed primitive applied to sign-flipped operands yields the
// unsigned answer.

// SignFlipMask has every uint16 lane set to 0x8000.
var SignFlipMask = SplatUint16x8(0x8000)

// FlipSign toggles bit 15 of every uint16 lane. It is its own inverse.
func FlipSign(v Vector128) Vector128 {
	return XorUint16x8(v, SignFlipMask)
}

// viaSigned applies a signed 16-bit primitive to sign-flipped operands.
// Use it for ops whose result is a lane mask.
func viaSigned(a, b Vector128, op func(a, b Vector128) Vector128) Vector128 {
	return op(FlipSign(a), FlipSign(b))
}

// viaSignedRestore is viaSigned followed by flipping the result back. Use it
// for ops that return one of their operand lanes (min, max).
func viaSignedRestore(a, b Vector128, op func(a, b Vector128) Vector128) Vector128 {
	return FlipSign(viaSigned(a, b, op))
}
