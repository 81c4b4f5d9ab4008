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
	"github.com/consensys/go-mipsim/pkg/mips/register"
)

// Writeback commits a given value to the destination register of an
// instruction (if it has one), and returns the register written.  If nothing
// was written then register.NONE is returned.  This includes writes to a
// hardwired zero register, which are discarded.
func (p *Machine) Writeback(instruction insn.Instruction, value int32) register.Id {
	var target = register.NONE
	//
	switch i := instruction.(type) {
	case *insn.RForm:
		if i.Funct != insn.FN_JR {
			target = register.NewId(uint(i.Rd))
		}
	case *insn.IForm:
		if i.Op != insn.OP_SW && i.Op != insn.OP_BEQ && i.Op != insn.OP_BNE {
			target = register.NewId(uint(i.Rt))
		}
	case *insn.JForm:
		if i.Op == insn.OP_JAL {
			target = register.NewId(register.RA)
		}
	default:
		panic(fmt.Sprintf("unknown instruction form %T", instruction))
	}
	//
	if !target.IsUsed() || !p.registers.Write(target.Unwrap(), value) {
		return register.NONE
	}
	//
	return target
}
