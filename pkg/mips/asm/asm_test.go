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
package asm

import (
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-mipsim/pkg/mips/memory"
)

// ============================================================================
// Valid programs
// ============================================================================

func Test_Asm_01(t *testing.T) {
	checkAssemble(t, "addu $t0, $t1, $t2", 0x012a4021)
}

func Test_Asm_02(t *testing.T) {
	checkAssemble(t, "subu $2, $4, $5", 0x00851023)
}

func Test_Asm_03(t *testing.T) {
	checkAssemble(t, "sll $t0, $t1, 4\nsrl $t0, $t1, 31", 0x01204100, 0x012047c2)
}

func Test_Asm_04(t *testing.T) {
	checkAssemble(t, "jr $ra", 0x03e00008)
}

func Test_Asm_05(t *testing.T) {
	checkAssemble(t, "addiu $sp, $sp, -4", 0x27bdfffc)
}

func Test_Asm_06(t *testing.T) {
	checkAssemble(t, "andi $t0, $t1, 0xffff\nori $t0, $t1, 255", 0x3128ffff, 0x352800ff)
}

func Test_Asm_07(t *testing.T) {
	checkAssemble(t, "lui $t0, 0x1234", 0x3c081234)
}

func Test_Asm_08(t *testing.T) {
	checkAssemble(t, "lw $t0, 4($t1)\nsw $t0, -8($sp)\nlw $t0, ($t1)", 0x8d280004, 0xafa8fff8, 0x8d280000)
}

func Test_Asm_09(t *testing.T) {
	checkAssemble(t, "beq $t0, $t0, 8\nbne $t0, $t1, -1", 0x11080008, 0x1509ffff)
}

func Test_Asm_10(t *testing.T) {
	checkAssemble(t, "j 0x00400010\njal 0x00400000", 0x08100004, 0x0c100000)
}

func Test_Asm_11(t *testing.T) {
	// Comments, blank lines and halt
	checkAssemble(t, "# start\n\n  addiu $t0, $zero, 5 # five\nhalt\n", 0x24080005, 0)
}

func Test_Asm_12(t *testing.T) {
	src := `
	      addiu $t0, $zero, 10
	loop: addiu $t0, $t0, -1
	      bne $t0, $zero, loop
	      jal done
	      halt
	done: jr $ra`
	//
	checkAssemble(t, src, 0x2408000a, 0x2508ffff, 0x1500fffe, 0x0c100005, 0, 0x03e00008)
}

func Test_Asm_13(t *testing.T) {
	// Forward branch and label on its own line
	src := "beq $zero, $zero, end\naddiu $t0, $zero, 1\nend:\nhalt"
	checkAssemble(t, src, 0x10000001, 0x24080001, 0)
}

func Test_Asm_14(t *testing.T) {
	src := "lw $t0, 0($zero)\ndata: .word 1, -1, 0xdeadbeef, data"
	checkAssemble(t, src, 0x8c080000, 1, 0xffffffff, 0xdeadbeef, 0x00400004)
}

// ============================================================================
// Invalid programs
// ============================================================================

func Test_AsmInvalid_01(t *testing.T) {
	checkInvalid(t, "add $t0, $t1, $t2", 1)
}

func Test_AsmInvalid_02(t *testing.T) {
	checkInvalid(t, "addu $t0, $t1", 1)
}

func Test_AsmInvalid_03(t *testing.T) {
	checkInvalid(t, "addu $t0, $t1, $x9", 1)
}

func Test_AsmInvalid_04(t *testing.T) {
	checkInvalid(t, "addiu $t0, $t1, 32768", 1)
}

func Test_AsmInvalid_05(t *testing.T) {
	checkInvalid(t, "ori $t0, $t1, -1", 1)
}

func Test_AsmInvalid_06(t *testing.T) {
	checkInvalid(t, "sll $t0, $t1, 32", 1)
}

func Test_AsmInvalid_07(t *testing.T) {
	checkInvalid(t, "j nowhere", 1)
}

func Test_AsmInvalid_08(t *testing.T) {
	checkInvalid(t, "x: halt\nx: halt", 1)
}

func Test_AsmInvalid_09(t *testing.T) {
	checkInvalid(t, "addu $t0, $t1, $t2 @", 1)
}

func Test_AsmInvalid_10(t *testing.T) {
	checkInvalid(t, "j 0x00400002", 1)
}

func Test_AsmInvalid_11(t *testing.T) {
	checkInvalid(t, "lw $t0, $t1", 1)
}

func Test_AsmInvalid_12(t *testing.T) {
	// Errors on multiple lines are all reported
	checkInvalid(t, "foo\nhalt\nbar $t0\n.word", 3)
}

func Test_AsmInvalid_13(t *testing.T) {
	checkInvalid(t, ".word 1,,2", 1)
}

// ============================================================================
// Disassembly
// ============================================================================

func Test_Disasm_01(t *testing.T) {
	lines := Disassemble([]uint32{0x012a4021, 0, 0xfc000000}, memory.BASE)
	expected := []string{
		"00400000: 012a4021  addu $t0, $t1, $t2",
		"00400004: 00000000  halt",
		"00400008: fc000000  .word 0xfc000000",
	}
	//
	for i, line := range lines {
		if line.String() != expected[i] {
			t.Errorf("expected \"%s\", got \"%s\"", expected[i], line.String())
		}
	}
}

func Test_Disasm_02(t *testing.T) {
	words := []uint32{
		0x012a4021, 0x00851023, 0x01204100, 0x012047c2, 0x03e00008, 0x0232802a, 0x012a4024,
		0x012a4025, 0x24080005, 0x27bdfffc, 0x3128ffff, 0x352800ff, 0x3c081234, 0x8d280004,
		0xafa8fff8, 0x11080008, 0x1509ffff, 0x08100004, 0x0c100000, 0x00000000, 0xfc000000,
	}
	// Disassembly can be reassembled
	var text []string
	//
	for _, line := range Disassemble(words, memory.BASE) {
		text = append(text, line.Text)
	}
	//
	checkAssemble(t, strings.Join(text, "\n"), words...)
}

// ============================================================================
// Helpers
// ============================================================================

func checkAssemble(t *testing.T, src string, expected ...uint32) {
	t.Helper()
	//
	words, errs := Assemble("test.s", src, memory.BASE)
	//
	for _, err := range errs {
		t.Error(err.Error())
	}
	//
	if !slices.Equal(words, expected) {
		t.Errorf("expected %08x, got %08x", expected, words)
	}
}

func checkInvalid(t *testing.T, src string, nerrors int) {
	t.Helper()
	//
	words, errs := Assemble("test.s", src, memory.BASE)
	//
	if words != nil {
		t.Errorf("invalid program assembled")
	} else if len(errs) != nerrors {
		t.Errorf("expected %d errors, got %d: %v", nerrors, len(errs), errs)
	}
}
