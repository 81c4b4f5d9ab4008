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
package trace

import (
	"github.com/consensys/go-mipsim/pkg/mips/machine"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
)

// Indices of the columns recorded for each step.
const (
	PC uint = iota
	INSTRUCTION
	OPCODE
	VALUE
	NEXT_PC
	REG_WRITE
	REG
	REG_VALUE
	MEM_WRITE
	MEM_ADDR
	MEM_VALUE
	NUM_COLUMNS
)

var columnNames = [NUM_COLUMNS]string{
	"PC", "INSTRUCTION", "OPCODE", "VALUE", "NEXT_PC",
	"REG_WRITE", "REG", "REG_VALUE", "MEM_WRITE", "MEM_ADDR", "MEM_VALUE",
}

var columnWidths = [NUM_COLUMNS]uint{32, 32, 6, 32, 32, 1, 5, 32, 1, 32, 32}

// Recorder records the execution trace of a machine, with one row per
// executed instruction.  The step which halts is not recorded.
type Recorder struct {
	columns [NUM_COLUMNS][]uint32
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Height returns the number of rows recorded.
func (p *Recorder) Height() uint {
	return uint(len(p.columns[PC]))
}

// Get the value of a given column on a given row.
func (p *Recorder) Get(column uint, row uint) uint32 {
	return p.columns[column][row]
}

// Report implementation for the machine.Reporter interface.
func (p *Recorder) Report(m *machine.Machine, step machine.Step) {
	var row [NUM_COLUMNS]uint32
	//
	if step.Halted {
		return
	}
	//
	row[PC] = step.PC
	row[INSTRUCTION] = step.Word
	row[OPCODE] = uint32(step.Instruction.Opcode())
	row[VALUE] = uint32(step.Value)
	row[NEXT_PC] = step.NextPC
	//
	if step.ChangedReg.IsUsed() {
		reg := step.ChangedReg.Unwrap()
		row[REG_WRITE] = 1
		row[REG] = uint32(reg)
		row[REG_VALUE] = uint32(m.Registers().Read(reg))
	}
	//
	if step.ChangedMem != memory.NONE {
		// Cannot fail, since address was just written
		value, _ := m.Memory().Read(step.ChangedMem)
		row[MEM_WRITE] = 1
		row[MEM_ADDR] = step.ChangedMem
		row[MEM_VALUE] = value
	}
	//
	for i, v := range row {
		p.columns[i] = append(p.columns[i], v)
	}
}

// Columns returns the recorded columns, in a fixed order.
func (p *Recorder) Columns() []Column {
	var columns = make([]Column, NUM_COLUMNS)
	//
	for i := range columns {
		columns[i] = Column{MODULE, columnNames[i], columnWidths[i], p.columns[i]}
	}
	//
	return columns
}
