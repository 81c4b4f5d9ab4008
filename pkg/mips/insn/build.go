// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package insn

// R constructs a register-register instruction "funct rd, rs, rt".
func R(funct uint8, rd, rs, rt uint8) *RForm {
	return &RForm{OP_SPECIAL, funct, rs, rt, rd, 0}
}

// Shift constructs a shift instruction "funct rd, rs, shamt".  Register rt is
// unused and left as zero.
func Shift(funct uint8, rd, rs, shamt uint8) *RForm {
	return &RForm{OP_SPECIAL, funct, rs, 0, rd, shamt}
}

// I constructs an immediate instruction.  The immediate is truncated to 16
// bits and sign-extended, exactly as it would be after decoding.
func I(op uint8, rt, rs uint8, imm int32) *IForm {
	return &IForm{op, rs, rt, int32(int16(imm))}
}

// J constructs a jump instruction to a given (byte) address.  Only bits 27..2
// of the address are retained.
func J(op uint8, address uint32) *JForm {
	return &JForm{op, (address >> 2) & 0x03ffffff}
}

// Encode a sequence of instructions into machine words.
func Encode(insns ...Instruction) []uint32 {
	var words = make([]uint32, len(insns))
	//
	for i, insn := range insns {
		words[i] = insn.Encode()
	}
	//
	return words
}
