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
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/register"
)

// Config determines the shape of a machine.
type Config struct {
	// Layout of the address space
	Layout memory.Layout
	// Treatment of register 0
	Zero register.Policy
	// Maximum number of steps to run for (or 0 for no limit)
	Limit uint
}

// DefaultConfig returns the standard configuration: the default layout, a
// writable register 0 and no step limit.
func DefaultConfig() Config {
	return Config{memory.DefaultLayout(), register.WRITABLE_ZERO, 0}
}

// WithLayout returns a config updated with the given layout, but which is
// otherwise identical to before.
func (p Config) WithLayout(layout memory.Layout) Config {
	var config = p
	//
	config.Layout = layout
	//
	return config
}

// WithZero returns a config updated with the given zero register policy, but
// which is otherwise identical to before.
func (p Config) WithZero(policy register.Policy) Config {
	var config = p
	//
	config.Zero = policy
	//
	return config
}

// WithLimit returns a config updated with the given step limit, but which is
// otherwise identical to before.
func (p Config) WithLimit(limit uint) Config {
	var config = p
	//
	config.Limit = limit
	//
	return config
}

// Machine holds the complete state of a simulated processor, namely its memory
// and register file.  A machine is exclusively owned by its caller, and is
// advanced one step at a time.  Each step consists of the following stages:
// fetch, decode, execute, update PC, memory access and, finally, writeback.
type Machine struct {
	config    Config
	memory    memory.Flat
	registers *register.File
	// Set once the halt word has been fetched
	halted bool
}

// New constructs a machine with a given configuration.  Memory and registers
// are initially zero, except for the stack pointer which points to the top of
// the address space.
func New(config Config) (*Machine, error) {
	if err := config.Layout.Validate(); err != nil {
		return nil, err
	}
	//
	m := &Machine{
		config:    config,
		memory:    memory.NewFlat("memory", config.Layout),
		registers: register.NewFile(config.Zero),
	}
	//
	m.registers.Write(register.SP, int32(config.Layout.Limit()))
	m.registers.Goto(config.Layout.Base)
	//
	return m, nil
}

// Load a program image into the text segment of this machine, starting at the
// base address.  The remainder of memory is cleared.  This fails if the
// program does not fit within the text segment.
func (p *Machine) Load(words []uint32) error {
	if n := p.config.Layout.Instructions; uint(len(words)) > n {
		return fmt.Errorf("%w (%d words, capacity %d)", memory.ErrProgramTooLarge, len(words), n)
	}
	//
	return p.memory.Initialise(words)
}

// Boot this machine by resetting the program counter to the start of the
// text segment.  Nothing else is reset.
func (p *Machine) Boot() *Machine {
	p.registers.Goto(p.config.Layout.Base)
	p.halted = false
	//
	return p
}

// Config returns the configuration of this machine.
func (p *Machine) Config() Config {
	return p.config
}

// Layout returns the layout of the address space of this machine.
func (p *Machine) Layout() memory.Layout {
	return p.config.Layout
}

// Memory returns the memory of this machine.
func (p *Machine) Memory() memory.Memory {
	return p.memory
}

// Registers returns the register file of this machine.
func (p *Machine) Registers() *register.File {
	return p.registers
}

// Halted indicates whether or not this machine has fetched the halt word.
func (p *Machine) Halted() bool {
	return p.halted
}

// Step describes the outcome of executing a single instruction.  This provides
// everything needed to report on the step, without inspecting the machine.
type Step struct {
	// Address of the instruction executed
	PC uint32
	// Instruction word fetched
	Word uint32
	// Decoded instruction (nil when halted)
	Instruction insn.Instruction
	// Register values read at decode
	Snapshot Snapshot
	// Value produced by the step (i.e. after memory access)
	Value int32
	// Program counter after the step
	NextPC uint32
	// Register written by the step, or register.NONE
	ChangedReg register.Id
	// Address of memory written by the step, or memory.NONE
	ChangedMem uint32
	// Indicates the halt word was fetched
	Halted bool
}

// Step executes exactly one instruction, returning a report of what changed.
// If the halt word is fetched, then the machine is marked as halted and
// nothing is changed.  Likewise, if the step fails then no state is changed.
// A decode error is fatal, in the sense that execution cannot continue
// meaningfully.  In contrast, an access error is recoverable since the state
// of the machine is left as it was before the step.
func (p *Machine) Step() (Step, error) {
	var (
		pc   = p.registers.PC()
		step = Step{PC: pc, NextPC: pc, ChangedReg: register.NONE, ChangedMem: memory.NONE}
	)
	//
	if p.halted {
		step.Halted = true
		return step, nil
	}
	// Fetch
	word, err := p.Fetch()
	if err != nil {
		return step, err
	}
	//
	step.Word = word
	// Check for termination
	if word == insn.HALT {
		p.halted = true
		step.Halted = true
		//
		return step, nil
	}
	// Decode
	instruction, snapshot, err := p.Decode(word)
	if err != nil {
		return step, err
	}
	// Execute
	value := Execute(pc, instruction, snapshot)
	// Update PC
	next := NextPC(pc, instruction, snapshot, value)
	p.registers.Goto(next)
	// Memory access
	value, changedMem, err := p.Access(instruction, value)
	if err != nil {
		// rollback
		p.registers.Goto(pc)
		return step, err
	}
	// Writeback
	changedReg := p.Writeback(instruction, value)
	//
	step.Instruction = instruction
	step.Snapshot = snapshot
	step.Value = value
	step.NextPC = next
	step.ChangedReg = changedReg
	step.ChangedMem = changedMem
	//
	return step, nil
}

// Execute this machine for the given number of steps, returning the actual
// number of steps executed and an error (if execution failed).  Fewer steps
// are executed if the machine halts.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps {
		if step, err := p.Step(); err != nil {
			return nsteps, err
		} else if step.Halted {
			break
		}
		//
		nsteps++
	}
	//
	return nsteps, nil
}
