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
	"github.com/consensys/go-mipsim/pkg/mips/register"
)

//go:generate go run ./internal/generator

// Form identifies one of the three instruction encodings.
type Form uint8

// R_FORM is the register encoding, used for register-register operations.
const R_FORM Form = 0

// I_FORM is the immediate encoding, used for immediate operations, loads,
// stores and branches.
const I_FORM Form = 1

// J_FORM is the jump encoding, used for unconditional jumps.
const J_FORM Form = 2

func (p Form) String() string {
	switch p {
	case R_FORM:
		return "R"
	case I_FORM:
		return "I"
	case J_FORM:
		return "J"
	default:
		return "?"
	}
}

// Instruction provides an abstract notion of a decoded "machine instruction".
// This is a closed sum type, whose only implementations are *RForm, *IForm and
// *JForm.  Consumers are expected to switch over these three cases.
type Instruction interface {
	// Opcode returns the primary opcode of this instruction.
	Opcode() uint8
	// Form returns the encoding used for this instruction.
	Form() Form
	// Mnemonic returns the assembly language name for this instruction.
	Mnemonic() string
	// Encode this instruction back into a 32bit machine word.
	Encode() uint32
	// Uses returns the set of registers used (i.e. read) by this instruction.
	Uses() []register.Id
	// Definitions returns the set of registers defined (i.e. written) by this
	// instruction.
	Definitions() []register.Id
	// Provide human readable (i.e. assembly language) form of instruction.
	String() string
	// Prevent implementations outside this package.
	sealed()
}

func regs(indices ...uint8) []register.Id {
	var ids = make([]register.Id, len(indices))
	//
	for i, index := range indices {
		ids[i] = register.NewId(uint(index))
	}
	//
	return ids
}
