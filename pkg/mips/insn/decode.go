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

import (
	"errors"
	"fmt"
)

// HALT is the instruction word which terminates a simulation.  Although this
// would encode "sll $zero, $zero, 0" on a real machine, here it signals the end
// of the program.
const HALT uint32 = 0

// ErrHalt is returned when decoding the HALT word.  This is not a failure, but
// signals that execution should stop cleanly.
var ErrHalt = errors.New("halt")

// DecodeError is returned when an instruction word has an unknown opcode or,
// for opcode zero, an unknown function code.
type DecodeError struct {
	// Instruction word being decoded
	Word uint32
	// Opcode of the word (bits 31-26)
	Opcode uint8
	// Function code of the word (bits 5-0), only meaningful for opcode zero.
	Funct uint8
}

func (p *DecodeError) Error() string {
	if p.Opcode == OP_SPECIAL {
		return fmt.Sprintf("unknown function code 0x%02x in instruction 0x%08x", p.Funct, p.Word)
	}
	//
	return fmt.Sprintf("unknown opcode 0x%02x in instruction 0x%08x", p.Opcode, p.Word)
}

// Decode a given instruction word into an instruction.  The opcode determines
// the form of the instruction and, hence, how the remaining bits are split into
// fields.  Decoding HALT returns ErrHalt, whilst an unknown opcode (or function
// code) returns a *DecodeError.
func Decode(word uint32) (Instruction, error) {
	var (
		op    = uint8(bits(word, 31, 26))
		rs    = uint8(bits(word, 25, 21))
		rt    = uint8(bits(word, 20, 16))
		funct = uint8(bits(word, 5, 0))
	)
	//
	if word == HALT {
		return nil, ErrHalt
	}
	//
	form, ok := opcodeForms[op]
	//
	switch {
	case !ok:
		return nil, &DecodeError{word, op, funct}
	case form == R_FORM:
		if _, ok := functMnemonics[funct]; !ok {
			return nil, &DecodeError{word, op, funct}
		}
		//
		rd := uint8(bits(word, 15, 11))
		shamt := uint8(bits(word, 10, 6))
		//
		return &RForm{op, funct, rs, rt, rd, shamt}, nil
	case form == I_FORM:
		// sign extend
		imm := int32(int16(bits(word, 15, 0)))
		//
		return &IForm{op, rs, rt, imm}, nil
	default:
		return &JForm{op, bits(word, 25, 0)}, nil
	}
}

// Extract bits hi..lo (inclusive) from a given word.
func bits(word uint32, hi uint, lo uint) uint32 {
	var width = hi - lo + 1
	//
	return (word >> lo) & ((1 << width) - 1)
}
