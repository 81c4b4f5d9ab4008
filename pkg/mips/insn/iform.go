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

// IForm represents an immediate instruction of the following form:
//
// | op (6) | rs (5) | rt (5) | immediate (16) |
//
// The immediate is always held sign-extended.  Instructions which treat it as
// unsigned (e.g. andi, ori) should use Unsigned() instead.  Register rt is the
// destination for arithmetic, logical and load instructions, but a source for
// stores and branches.
type IForm struct {
	Op        uint8
	Rs        uint8
	Rt        uint8
	Immediate int32
}

// Unsigned returns the immediate zero-extended, rather than sign-extended.
func (p *IForm) Unsigned() uint32 {
	return uint32(p.Immediate) & 0xffff
}

// Opcode implementation for Instruction interface.
func (p *IForm) Opcode() uint8 {
	return p.Op
}

// Form implementation for Instruction interface.
func (p *IForm) Form() Form {
	return I_FORM
}

// Mnemonic implementation for Instruction interface.
func (p *IForm) Mnemonic() string {
	if m, ok := opcodeMnemonics[p.Op]; ok {
		return m
	}
	//
	return fmt.Sprintf("op(0x%02x)", p.Op)
}

// Encode implementation for Instruction interface.
func (p *IForm) Encode() uint32 {
	return uint32(p.Op&0x3f)<<26 | uint32(p.Rs&0x1f)<<21 | uint32(p.Rt&0x1f)<<16 | p.Unsigned()
}

// Uses implementation for Instruction interface.
func (p *IForm) Uses() []register.Id {
	switch p.Op {
	case OP_LUI:
		return nil
	case OP_SW, OP_BEQ, OP_BNE:
		return regs(p.Rs, p.Rt)
	default:
		return regs(p.Rs)
	}
}

// Definitions implementation for Instruction interface.
func (p *IForm) Definitions() []register.Id {
	switch p.Op {
	case OP_SW, OP_BEQ, OP_BNE:
		return nil
	default:
		return regs(p.Rt)
	}
}

func (p *IForm) String() string {
	var (
		rs = register.Name(uint(p.Rs))
		rt = register.Name(uint(p.Rt))
	)
	//
	switch p.Op {
	case OP_LW, OP_SW:
		return fmt.Sprintf("%s %s, %d(%s)", p.Mnemonic(), rt, p.Immediate, rs)
	case OP_BEQ, OP_BNE:
		return fmt.Sprintf("%s %s, %s, %d", p.Mnemonic(), rs, rt, p.Immediate)
	case OP_LUI:
		return fmt.Sprintf("%s %s, 0x%x", p.Mnemonic(), rt, p.Unsigned())
	case OP_ANDI, OP_ORI:
		return fmt.Sprintf("%s %s, %s, 0x%x", p.Mnemonic(), rt, rs, p.Unsigned())
	default:
		return fmt.Sprintf("%s %s, %s, %d", p.Mnemonic(), rt, rs, p.Immediate)
	}
}

func (p *IForm) sealed() {}
