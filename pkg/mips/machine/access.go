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
	"github.com/consensys/go-mipsim/pkg/mips/insn"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
)

// Access performs the memory access (if any) required by a given instruction,
// where value is the effective address computed by Execute.  A store writes
// register rt and reports the address written.  A load returns the word read
// as the new value.  For all other instructions, the value passes through
// unchanged.  If the address is invalid, then an *memory.AccessError is
// returned and memory is unchanged.
func (p *Machine) Access(instruction insn.Instruction, value int32) (int32, uint32, error) {
	var i, ok = instruction.(*insn.IForm)
	//
	switch {
	case !ok:
		return value, memory.NONE, nil
	case i.Op == insn.OP_LW:
		word, err := p.memory.Read(uint32(value))
		//
		return int32(word), memory.NONE, err
	case i.Op == insn.OP_SW:
		var (
			address = uint32(value)
			word    = uint32(p.registers.Read(uint(i.Rt)))
		)
		//
		if err := p.memory.Write(address, word); err != nil {
			return value, memory.NONE, err
		}
		//
		return value, address, nil
	default:
		return value, memory.NONE, nil
	}
}
