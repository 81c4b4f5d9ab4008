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
package machine

import (
	"fmt"

	"github.com/consensys/go-mipsim/pkg/mips/insn"
)

// NextPC determines the program counter following a given instruction, which
// was executed at pc and produced the given value.  The default is always
// pc+4, which is then overridden by jumps and taken branches.  Branch offsets
// are relative to pc+4.  There are no delay slots.
func NextPC(pc uint32, instruction insn.Instruction, s Snapshot, value int32) uint32 {
	var next = pc + 4
	//
	switch i := instruction.(type) {
	case *insn.RForm:
		if i.Funct == insn.FN_JR {
			return uint32(value)
		}
	case *insn.IForm:
		if taken(i, s) {
			return next + uint32(i.Immediate<<2)
		}
	case *insn.JForm:
		return jumpTarget(pc, i)
	default:
		panic(fmt.Sprintf("unknown instruction form %T", instruction))
	}
	//
	return next
}

// Determine whether a branch is taken.  This is false for any non-branch
// instruction.
func taken(i *insn.IForm, s Snapshot) bool {
	switch i.Op {
	case insn.OP_BEQ:
		return s.Rs == s.Rt
	case insn.OP_BNE:
		return s.Rs != s.Rt
	default:
		return false
	}
}

// Jump targets retain the upper four bits of pc+4.
func jumpTarget(pc uint32, i *insn.JForm) uint32 {
	return ((pc + 4) & 0xf0000000) | (i.Target << 2)
}
