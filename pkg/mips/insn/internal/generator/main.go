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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Invoked via "go generate" from the insn package directory.
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-mipsim")
	//
	assertNoError(validate(opcodes), "opcode table")
	assertNoError(validate(functs), "function table")
	//
	assertNoError(bgen.Generate(tables{opcodes, functs}, "insn", "internal/generator/templates",
		bavard.Entry{
			File:      "opcodes.go",
			Templates: []string{"opcodes.go.tmpl"},
		},
	), "generating opcode tables")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "opcodes.go")
}

// Code describes a single primary opcode, or a secondary function code for
// opcode zero.
type Code struct {
	// Mnemonic as used in assembly language
	Mnemonic string
	// Encoded value (6 bits)
	Value uint8
	// Instruction form (R, I or J)
	Form string
}

// Const returns the name of the Go constant generated for this code.
func (c Code) Const(prefix string) string {
	return prefix + strings.ToUpper(c.Mnemonic)
}

type tables struct {
	Opcodes []Code
	Functs  []Code
}

// The reduced instruction set supported by the simulator.  Opcode 0 selects the
// R-form, whose operation is then determined by the function code.
var opcodes = []Code{
	{"special", 0x00, "R"},
	{"j", 0x02, "J"},
	{"jal", 0x03, "J"},
	{"beq", 0x04, "I"},
	{"bne", 0x05, "I"},
	{"addiu", 0x09, "I"},
	{"andi", 0x0c, "I"},
	{"ori", 0x0d, "I"},
	{"lui", 0x0f, "I"},
	{"lw", 0x23, "I"},
	{"sw", 0x2b, "I"},
}

var functs = []Code{
	{"sll", 0x00, "R"},
	{"srl", 0x02, "R"},
	{"jr", 0x08, "R"},
	{"addu", 0x21, "R"},
	{"subu", 0x23, "R"},
	{"and", 0x24, "R"},
	{"or", 0x25, "R"},
	{"slt", 0x2a, "R"},
}

// Sanity check a table has no duplicate values, and all values fit within six
// bits.
func validate(codes []Code) error {
	var seen []uint8
	//
	for _, c := range codes {
		if c.Value >= 64 {
			return fmt.Errorf("code %s (0x%x) exceeds 6 bits", c.Mnemonic, c.Value)
		} else if slices.Contains(seen, c.Value) {
			return fmt.Errorf("duplicate code 0x%02x (%s)", c.Value, c.Mnemonic)
		}
		//
		seen = append(seen, c.Value)
	}
	//
	return nil
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
