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

// JForm performs an unconditional jump to a given target, and has the
// following form:
//
// | op (6) | target (26) |
//
// The target is a word index within the current 256MB region, hence the
// destination address is formed from the upper four bits of the program
// counter and target<<2.  A "jal" additionally writes the return address into
// $ra.
type JForm struct {
	Op     uint8
	Target uint32
}

// Opcode implementation for Instruction interface.
func (p *JForm) Opcode() uint8 {
	return p.Op
}

// Form implementation for Instruction interface.
func (p *JForm) Form() Form {
	return J_FORM
}

// Mnemonic implementation for Instruction interface.
func (p *JForm) Mnemonic() string {
	if m, ok := opcodeMnemonics[p.Op]; ok {
		return m
	}
	//
	return fmt.Sprintf("op(0x%02x)", p.Op)
}

// Encode implementation for Instruction interface.
func (p *JForm) Encode() uint32 {
	return uint32(p.Op&0x3f)<<26 | p.Target&0x03ffffff
}

// Uses implementation for Instruction interface.
func (p *JForm) Uses() []register.Id {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *JForm) Definitions() []register.Id {
	if p.Op == OP_JAL {
		return regs(register.RA)
	}
	//
	return nil
}

func (p *JForm) String() string {
	return fmt.Sprintf("%s 0x%08x", p.Mnemonic(), p.Target<<2)
}

func (p *JForm) sealed() {}
