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
	"errors"
	"reflect"
	"testing"
)

// ============================================================================
// Decoding
// ============================================================================

func Test_Decode_RForm_01(t *testing.T) {
	// addu $t0, $t1, $t2
	checkDecode(t, 0x012a4021, &RForm{OP_SPECIAL, FN_ADDU, 9, 10, 8, 0}, "addu $t0, $t1, $t2")
}

func Test_Decode_RForm_02(t *testing.T) {
	// subu $v0, $a0, $a1
	checkDecode(t, 0x00851023, &RForm{OP_SPECIAL, FN_SUBU, 4, 5, 2, 0}, "subu $v0, $a0, $a1")
}

func Test_Decode_RForm_03(t *testing.T) {
	// sll $t0, $t1, 4
	checkDecode(t, 0x01204100, &RForm{OP_SPECIAL, FN_SLL, 9, 0, 8, 4}, "sll $t0, $t1, 4")
}

func Test_Decode_RForm_04(t *testing.T) {
	// srl $t0, $t1, 31
	checkDecode(t, 0x012047c2, &RForm{OP_SPECIAL, FN_SRL, 9, 0, 8, 31}, "srl $t0, $t1, 31")
}

func Test_Decode_RForm_05(t *testing.T) {
	// jr $ra
	checkDecode(t, 0x03e00008, &RForm{OP_SPECIAL, FN_JR, 31, 0, 0, 0}, "jr $ra")
}

func Test_Decode_RForm_06(t *testing.T) {
	// slt $s0, $s1, $s2
	checkDecode(t, 0x0232802a, &RForm{OP_SPECIAL, FN_SLT, 17, 18, 16, 0}, "slt $s0, $s1, $s2")
}

func Test_Decode_RForm_07(t *testing.T) {
	// and $t0, $t1, $t2
	checkDecode(t, 0x012a4024, &RForm{OP_SPECIAL, FN_AND, 9, 10, 8, 0}, "and $t0, $t1, $t2")
}

func Test_Decode_RForm_08(t *testing.T) {
	// or $t0, $t1, $t2
	checkDecode(t, 0x012a4025, &RForm{OP_SPECIAL, FN_OR, 9, 10, 8, 0}, "or $t0, $t1, $t2")
}

func Test_Decode_IForm_01(t *testing.T) {
	// addiu $t0, $zero, 5
	checkDecode(t, 0x24080005, &IForm{OP_ADDIU, 0, 8, 5}, "addiu $t0, $zero, 5")
}

func Test_Decode_IForm_02(t *testing.T) {
	// addiu $sp, $sp, -4 (sign extension)
	checkDecode(t, 0x27bdfffc, &IForm{OP_ADDIU, 29, 29, -4}, "addiu $sp, $sp, -4")
}

func Test_Decode_IForm_03(t *testing.T) {
	// andi $t0, $t1, 0xffff (stored sign-extended)
	checkDecode(t, 0x3128ffff, &IForm{OP_ANDI, 9, 8, -1}, "andi $t0, $t1, 0xffff")
}

func Test_Decode_IForm_04(t *testing.T) {
	// ori $t0, $t1, 0xff
	checkDecode(t, 0x352800ff, &IForm{OP_ORI, 9, 8, 0xff}, "ori $t0, $t1, 0xff")
}

func Test_Decode_IForm_05(t *testing.T) {
	// lui $t0, 0x1234
	checkDecode(t, 0x3c081234, &IForm{OP_LUI, 0, 8, 0x1234}, "lui $t0, 0x1234")
}

func Test_Decode_IForm_06(t *testing.T) {
	// lw $t0, 4($t1)
	checkDecode(t, 0x8d280004, &IForm{OP_LW, 9, 8, 4}, "lw $t0, 4($t1)")
}

func Test_Decode_IForm_07(t *testing.T) {
	// sw $t0, -8($sp)
	checkDecode(t, 0xafa8fff8, &IForm{OP_SW, 29, 8, -8}, "sw $t0, -8($sp)")
}

func Test_Decode_IForm_08(t *testing.T) {
	// beq $t0, $t0, 8
	checkDecode(t, 0x11080008, &IForm{OP_BEQ, 8, 8, 8}, "beq $t0, $t0, 8")
}

func Test_Decode_IForm_09(t *testing.T) {
	// bne $t0, $t1, -1
	checkDecode(t, 0x1509ffff, &IForm{OP_BNE, 8, 9, -1}, "bne $t0, $t1, -1")
}

func Test_Decode_JForm_01(t *testing.T) {
	// j 0x00400010
	checkDecode(t, 0x08100004, &JForm{OP_J, 0x100004}, "j 0x00400010")
}

func Test_Decode_JForm_02(t *testing.T) {
	// jal 0x00400000
	checkDecode(t, 0x0c100000, &JForm{OP_JAL, 0x100000}, "jal 0x00400000")
}

func Test_Decode_JForm_03(t *testing.T) {
	// maximum target
	checkDecode(t, 0x0bffffff, &JForm{OP_J, 0x3ffffff}, "j 0x0ffffffc")
}

func Test_Decode_Halt_01(t *testing.T) {
	if _, err := Decode(HALT); !errors.Is(err, ErrHalt) {
		t.Errorf("decoding zero word should halt (got %v)", err)
	}
}

func Test_Decode_Invalid_01(t *testing.T) {
	// addi (0x08) is not supported
	checkDecodeError(t, 0x21080001, 0x08)
}

func Test_Decode_Invalid_02(t *testing.T) {
	// opcode 0x3f
	checkDecodeError(t, 0xfc000000, 0x3f)
}

func Test_Decode_Invalid_03(t *testing.T) {
	// add (funct 0x20) is not supported
	checkDecodeError(t, 0x012a4020, OP_SPECIAL)
}

func Test_Decode_Invalid_04(t *testing.T) {
	// sra (funct 0x03) is not supported
	checkDecodeError(t, 0x00094103, OP_SPECIAL)
}

// ============================================================================
// Register usage
// ============================================================================

func Test_Uses_01(t *testing.T) {
	checkUsesDefs(t, &RForm{OP_SPECIAL, FN_ADDU, 9, 10, 8, 0}, []uint{9, 10}, []uint{8})
}

func Test_Uses_02(t *testing.T) {
	checkUsesDefs(t, &RForm{OP_SPECIAL, FN_JR, 31, 0, 0, 0}, []uint{31}, nil)
}

func Test_Uses_03(t *testing.T) {
	checkUsesDefs(t, &IForm{OP_SW, 29, 8, 0}, []uint{29, 8}, nil)
}

func Test_Uses_04(t *testing.T) {
	checkUsesDefs(t, &IForm{OP_LW, 29, 8, 0}, []uint{29}, []uint{8})
}

func Test_Uses_05(t *testing.T) {
	checkUsesDefs(t, &JForm{OP_JAL, 0}, nil, []uint{31})
}

func Test_Uses_07(t *testing.T) {
	checkUsesDefs(t, &RForm{OP_SPECIAL, FN_SLL, 9, 0, 8, 2}, []uint{9}, []uint{8})
}

func Test_Uses_06(t *testing.T) {
	checkUsesDefs(t, &IForm{OP_LUI, 0, 8, 1}, nil, []uint{8})
}

// ============================================================================
// Helpers
// ============================================================================

func checkDecode(t *testing.T, word uint32, expected Instruction, text string) {
	t.Helper()
	t.Parallel()
	//
	actual, err := Decode(word)
	//
	if err != nil {
		t.Fatalf("failed decoding 0x%08x: %s", word, err)
	} else if !reflect.DeepEqual(actual, expected) {
		t.Errorf("decoding 0x%08x gave %#v (expected %#v)", word, actual, expected)
	} else if actual.String() != text {
		t.Errorf("disassembly of 0x%08x gave \"%s\" (expected \"%s\")", word, actual.String(), text)
	}
	// Encoding is the inverse of decoding
	if enc := actual.Encode(); enc != word {
		t.Errorf("re-encoding 0x%08x gave 0x%08x", word, enc)
	}
}

func checkDecodeError(t *testing.T, word uint32, opcode uint8) {
	var derr *DecodeError
	//
	t.Helper()
	t.Parallel()
	//
	if _, err := Decode(word); !errors.As(err, &derr) {
		t.Errorf("decoding 0x%08x should fail (got %v)", word, err)
	} else if derr.Word != word || derr.Opcode != opcode {
		t.Errorf("decoding 0x%08x failed incorrectly: %s", word, derr)
	}
}

func checkUsesDefs(t *testing.T, insn Instruction, uses []uint, defs []uint) {
	t.Helper()
	//
	if actual := unwrap(insn.Uses()); !reflect.DeepEqual(actual, uses) {
		t.Errorf("%s uses %v (expected %v)", insn, actual, uses)
	}
	//
	if actual := unwrap(insn.Definitions()); !reflect.DeepEqual(actual, defs) {
		t.Errorf("%s defines %v (expected %v)", insn, actual, defs)
	}
}

func unwrap[T interface{ Unwrap() uint }](ids []T) []uint {
	var indices []uint
	//
	for _, id := range ids {
		indices = append(indices, id.Unwrap())
	}
	//
	return indices
}
