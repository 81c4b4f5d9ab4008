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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/consensys/go-mipsim/pkg/mips/insn"
	"github.com/consensys/go-mipsim/pkg/mips/machine"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/register"
)

const deltaOutput = `Executing instruction at 00400000: 2408000c
addiu $t0, $zero, 12
New pc = 00400004
Updated r08 to 0000000c
No memory location was updated.
Executing instruction at 00400004: ad280000
sw $t0, 0($t1)
New pc = 00400008
No register was updated.
Updated memory at address 00400010 to 0000000c
Executing instruction at 00400008: 00000000
halt
`

func Test_Printer_01(t *testing.T) {
	if out := run(t, Config{}); out != deltaOutput {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func Test_Printer_02(t *testing.T) {
	out := run(t, Config{Memory: true})
	//
	if !strings.Contains(out, "Nonzero memory\nADDR\t  CONTENTS\n00400010  0000000c\n") {
		t.Errorf("unexpected output:\n%s", out)
	} else if strings.Contains(out, "Updated memory") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func Test_Printer_03(t *testing.T) {
	out := run(t, Config{Registers: true})
	//
	if !strings.Contains(out, "r08: 0000000c") || !strings.Contains(out, "r29: 00400020") {
		t.Errorf("unexpected output:\n%s", out)
	} else if strings.Contains(out, "Updated r08") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func Test_Printer_04(t *testing.T) {
	out := run(t, Config{Debug: true})
	//
	if !strings.Contains(out, "Snapshot") || !strings.Contains(out, "Value") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func Test_Table_01(t *testing.T) {
	var (
		buf    bytes.Buffer
		values = make([]int32, register.NUM_REGISTERS)
	)
	//
	values[31] = -1
	//
	if err := RegisterTable(values, register.NONE, false).Print(&buf); err != nil {
		t.Fatal(err)
	}
	//
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	//
	if len(lines) != 8 {
		t.Errorf("expected 8 lines, got %d", len(lines))
	} else if !strings.HasSuffix(lines[7], "r31: ffffffff ") {
		t.Errorf("unexpected line \"%s\"", lines[7])
	}
}

func run(t *testing.T, config Config) string {
	var (
		buf    bytes.Buffer
		layout = memory.Layout{Base: memory.BASE, Instructions: 4, Data: 4}
	)
	//
	t.Helper()
	//
	m, err := machine.New(machine.DefaultConfig().WithLayout(layout))
	if err != nil {
		t.Fatal(err)
	}
	//
	program := insn.Encode(insn.I(insn.OP_ADDIU, 8, 0, 12), insn.I(insn.OP_SW, 8, 9, 0))
	//
	if err := m.Load(program); err != nil {
		t.Fatal(err)
	}
	//
	m.Registers().Write(9, int32(layout.DataStart()))
	printer := NewPrinter(&buf, config)
	//
	if _, err := m.Run(context.Background(), nil, printer); err != nil {
		t.Fatal(err)
	} else if printer.Err() != nil {
		t.Fatal(printer.Err())
	}
	//
	return buf.String()
}
