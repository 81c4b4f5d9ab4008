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
package report

import (
	"fmt"
	"io"

	"github.com/consensys/go-mipsim/pkg/mips/machine"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/register"
	"github.com/consensys/go-mipsim/pkg/util/termio"
	"github.com/k0kubun/pp/v3"
)

// Config determines what is printed after each step.
type Config struct {
	// Print every register (rather than just that which changed)
	Registers bool
	// Print all nonzero data memory (rather than just that which changed)
	Memory bool
	// Dump the decoded instruction and its operands
	Debug bool
	// Use ANSI escapes to highlight changes
	Colour bool
}

// Printer reports on each step of a simulation in human readable form.
type Printer struct {
	out    io.Writer
	config Config
	dumper *pp.PrettyPrinter
	// First write error encountered
	err error
}

// NewPrinter constructs a printer which writes to a given writer.
func NewPrinter(out io.Writer, config Config) *Printer {
	dumper := pp.New()
	dumper.SetColoringEnabled(config.Colour)
	dumper.SetExportedOnly(true)
	//
	return &Printer{out: out, config: config, dumper: dumper}
}

// Err returns the first error encountered writing output (if any).
func (p *Printer) Err() error {
	return p.err
}

// Report implementation for the machine.Reporter interface.
func (p *Printer) Report(m *machine.Machine, step machine.Step) {
	p.printf("Executing instruction at %08x: %08x\n", step.PC, step.Word)
	//
	if step.Halted {
		p.printf("halt\n")
		return
	}
	//
	p.printf("%s\n", step.Instruction)
	//
	if p.config.Debug {
		p.printf("%s\n", p.dumper.Sprint(debugInfo{step.Instruction, step.Snapshot, step.Value}))
	}
	//
	p.printf("New pc = %08x\n", step.NextPC)
	p.printRegisters(m, step.ChangedReg)
	p.printMemory(m, step.ChangedMem)
}

// Information dumped for debugging.
type debugInfo struct {
	Instruction any
	Snapshot    machine.Snapshot
	Value       int32
}

func (p *Printer) printRegisters(m *machine.Machine, changed register.Id) {
	var regs = m.Registers()
	//
	switch {
	case p.config.Registers:
		p.write(RegisterTable(regs.Values(), changed, p.config.Colour))
	case changed.IsUsed():
		index := changed.Unwrap()
		p.printf("Updated r%02d to %08x\n", index, uint32(regs.Read(index)))
	default:
		p.printf("No register was updated.\n")
	}
}

func (p *Printer) printMemory(m *machine.Machine, changed uint32) {
	switch {
	case p.config.Memory:
		p.printf("Nonzero memory\n")
		p.printf("ADDR\t  CONTENTS\n")
		//
		for _, w := range NonzeroData(m) {
			p.printf("%08x  %08x\n", w.Address, w.Value)
		}
	case changed != memory.NONE:
		// Cannot fail, since address was just written
		value, _ := m.Memory().Read(changed)
		p.printf("Updated memory at address %08x to %08x\n", changed, value)
	default:
		p.printf("No memory location was updated.\n")
	}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.out, format, args...)
	}
}

func (p *Printer) write(table *termio.TablePrinter) {
	if p.err == nil {
		p.err = table.Print(p.out)
	}
}

// Word represents a word of memory at a given address.
type Word struct {
	Address uint32
	Value   uint32
}

// NonzeroData returns all nonzero words in the data segment of a given
// machine, in order of address.
func NonzeroData(m *machine.Machine) []Word {
	var (
		words  []Word
		layout = m.Layout()
		data   = m.Memory().Contents()[layout.Instructions:]
	)
	//
	for i, v := range data {
		if v != 0 {
			words = append(words, Word{layout.DataStart() + uint32(i*memory.WORD_SIZE), v})
		}
	}
	//
	return words
}

// RegisterTable constructs a table of register values, four per row.  The
// register which changed (if any) is highlighted when colour is enabled.
func RegisterTable(values []int32, changed register.Id, colour bool) *termio.TablePrinter {
	var (
		width  = uint(4)
		height = uint(len(values)) / width
		table  = termio.NewTablePrinter(width, height)
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)
	)
	//
	table.SetSeparator("")
	table.AnsiEscapes(colour)
	//
	for i, v := range values {
		col, row := uint(i)%width, uint(i)/width
		table.Set(col, row, fmt.Sprintf("r%02d: %08x ", i, uint32(v)))
		//
		if changed.IsUsed() && changed.Unwrap() == uint(i) {
			table.SetEscape(col, row, escape)
		}
	}
	//
	return table
}
