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

// Execute computes the value of a given instruction from its register snapshot.
// Depending on the instruction, this is either an ALU result, an effective
// address (for loads and stores), a link value (for jal) or a jump target.
// Branches produce zero, since their comparison is made when updating the
// program counter.  All arithmetic is on 32bit two's complement values, and
// silently wraps on overflow.  This has no side effects.
func Execute(pc uint32, instruction insn.Instruction, s Snapshot) int32 {
	switch i := instruction.(type) {
	case *insn.RForm:
		return executeR(i, s)
	case *insn.IForm:
		return executeI(i, s)
	case *insn.JForm:
		return executeJ(pc, i)
	default:
		panic(fmt.Sprintf("unknown instruction form %T", instruction))
	}
}

func executeR(i *insn.RForm, s Snapshot) int32 {
	switch i.Funct {
	case insn.FN_ADDU:
		return s.Rs + s.Rt
	case insn.FN_SUBU:
		return s.Rs - s.Rt
	case insn.FN_SLL:
		return s.Rs << i.Shamt
	case insn.FN_SRL:
		return int32(uint32(s.Rs) >> i.Shamt)
	case insn.FN_AND:
		return s.Rs & s.Rt
	case insn.FN_OR:
		return s.Rs | s.Rt
	case insn.FN_SLT:
		if s.Rs < s.Rt {
			return 1
		}
		//
		return 0
	case insn.FN_JR:
		return s.Rs
	default:
		panic(fmt.Sprintf("unknown function code 0x%02x", i.Funct))
	}
}

func executeI(i *insn.IForm, s Snapshot) int32 {
	switch i.Op {
	case insn.OP_ADDIU, insn.OP_LW, insn.OP_SW:
		return s.Rs + i.Immediate
	case insn.OP_ANDI:
		return s.Rs & int32(i.Unsigned())
	case insn.OP_ORI:
		return s.Rs | int32(i.Unsigned())
	case insn.OP_LUI:
		return int32(i.Unsigned() << 16)
	case insn.OP_BEQ, insn.OP_BNE:
		return 0
	default:
		panic(fmt.Sprintf("unknown opcode 0x%02x", i.Op))
	}
}

func executeJ(pc uint32, i *insn.JForm) int32 {
	switch i.Op {
	case insn.OP_JAL:
		return int32(pc + 4)
	case insn.OP_J:
		return int32(jumpTarget(pc, i))
	default:
		panic(fmt.Sprintf("unknown opcode 0x%02x", i.Op))
	}
}
