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

// Snapshot holds the values of the source registers of an instruction, as read
// from the register file at decode.  Later stages use these rather than
// reading the register file again.  Unused fields are zero.
type Snapshot struct {
	Rs int32
	Rt int32
	Rd int32
}

// Fetch the instruction word at the current program counter.  This fails if
// the program counter has left memory.
func (p *Machine) Fetch() (uint32, error) {
	return p.memory.Read(p.registers.PC())
}

// Decode a given instruction word, and snapshot the registers it references.
func (p *Machine) Decode(word uint32) (insn.Instruction, Snapshot, error) {
	var (
		regs     = p.registers
		snapshot Snapshot
	)
	//
	instruction, err := insn.Decode(word)
	if err != nil {
		return nil, snapshot, err
	}
	//
	switch i := instruction.(type) {
	case *insn.RForm:
		snapshot = Snapshot{regs.Read(uint(i.Rs)), regs.Read(uint(i.Rt)), regs.Read(uint(i.Rd))}
	case *insn.IForm:
		snapshot = Snapshot{regs.Read(uint(i.Rs)), regs.Read(uint(i.Rt)), 0}
	case *insn.JForm:
		// no registers read
	default:
		panic(fmt.Sprintf("unknown instruction form %T", instruction))
	}
	//
	return instruction, snapshot, nil
}
