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
package register

// Policy determines how writes to the zero register are handled.
type Policy uint8

// WRITABLE_ZERO treats register 0 like any other register.  That is, it can be
// written and subsequently holds the value written.
const WRITABLE_ZERO Policy = 0

// HARDWIRED_ZERO matches the MIPS32 architecture, where register 0 always
// reads as zero and writes to it are discarded.
const HARDWIRED_ZERO Policy = 1

func (p Policy) String() string {
	switch p {
	case WRITABLE_ZERO:
		return "writable"
	case HARDWIRED_ZERO:
		return "hardwired"
	default:
		return "unknown"
	}
}

// File represents the register file of the machine, consisting of 32 general
// purpose registers (each holding a signed 32bit value) along with the program
// counter.
type File struct {
	// Values held in the general purpose registers
	values [NUM_REGISTERS]int32
	// Program Counter (as a byte address)
	pc uint32
	// Determines treatment of register 0
	policy Policy
}

// NewFile constructs a register file where all registers (and the program
// counter) are initially zero.
func NewFile(policy Policy) *File {
	return &File{policy: policy}
}

// Policy returns the zero register policy in force for this file.
func (p *File) Policy() Policy {
	return p.policy
}

// PC returns the current Program Counter position.
func (p *File) PC() uint32 {
	return p.pc
}

// Goto sets the Program Counter to a given position.
func (p *File) Goto(pc uint32) {
	p.pc = pc
}

// Read the value of the ith register.
func (p *File) Read(reg uint) int32 {
	return p.values[reg]
}

// Write a given value into the ith register, overwriting its previous
// contents.  This returns false if the write was discarded (i.e. because it
// targeted a hardwired zero register).
func (p *File) Write(reg uint, value int32) bool {
	if reg == ZERO && p.policy == HARDWIRED_ZERO {
		return false
	}
	//
	p.values[reg] = value
	//
	return true
}

// Values returns a copy of the current general purpose register values.
func (p *File) Values() []int32 {
	values := make([]int32, NUM_REGISTERS)
	copy(values, p.values[:])
	//
	return values
}
