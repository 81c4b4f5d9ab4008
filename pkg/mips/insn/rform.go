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
	"fmt"

	"github.com/consensys/go-mipsim/pkg/mips/register"
)

// RForm represents a register-register instruction of the following form:
//
// | op (6) | rs (5) | rt (5) | rd (5) | shamt (5) | funct (6) |
//
// Here, the opcode is always zero and the operation is determined by the
// function code.  For example, "addu $t0, $t1, $t2" assigns rd ($t0) the sum of
// rs ($t1) and rt ($t2).  For the shifts, the operand is rs and the amount is
// given by shamt.  Finally, "jr" jumps to the address held in rs.
type RForm struct {
	Op    uint8
	Funct uint8
	Rs    uint8
	Rt    uint8
	Rd    uint8
	Shamt uint8
}

// Opcode implementation for Instruction interface.
func (p *RForm) Opcode() uint8 {
	return p.Op
}

// Form implementation for Instruction interface.
func (p *RForm) Form() Form {
	return R_FORM
}

// Mnemonic implementation for Instruction interface.
func (p *RForm) Mnemonic() string {
	if m, ok := functMnemonics[p.Funct]; ok {
		return m
	}
	//
	return fmt.Sprintf("funct(0x%02x)", p.Funct)
}

// Encode implementation for Instruction interface.
func (p *RForm) Encode() uint32 {
	return uint32(p.Op&0x3f)<<26 | uint32(p.Rs&0x1f)<<21 | uint32(p.Rt&0x1f)<<16 |
		uint32(p.Rd&0x1f)<<11 | uint32(p.Shamt&0x1f)<<6 | uint32(p.Funct&0x3f)
}

// Uses implementation for Instruction interface.
func (p *RForm) Uses() []register.Id {
	switch p.Funct {
	case FN_SLL, FN_SRL, FN_JR:
		return regs(p.Rs)
	default:
		return regs(p.Rs, p.Rt)
	}
}

// Definitions implementation for Instruction interface.
func (p *RForm) Definitions() []register.Id {
	if p.Funct == FN_JR {
		return nil
	}
	//
	return regs(p.Rd)
}

func (p *RForm) String() string {
	var (
		rs = register.Name(uint(p.Rs))
		rt = register.Name(uint(p.Rt))
		rd = register.Name(uint(p.Rd))
	)
	//
	switch p.Funct {
	case FN_SLL, FN_SRL:
		return fmt.Sprintf("%s %s, %s, %d", p.Mnemonic(), rd, rs, p.Shamt)
	case FN_JR:
		return fmt.Sprintf("%s %s", p.Mnemonic(), rs)
	default:
		return fmt.Sprintf("%s %s, %s, %s", p.Mnemonic(), rd, rs, rt)
	}
}

func (p *RForm) sealed() {}
