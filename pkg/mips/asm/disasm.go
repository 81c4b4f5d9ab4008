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
	"errors"
	"fmt"

	"github.com/consensys/go-mipsim/pkg/mips/insn"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
)

// Line is a single line of disassembly.
type Line struct {
	// Address of the word
	Address uint32
	// Word at that address
	Word uint32
	// Assembly language form of the word
	Text string
}

func (p Line) String() string {
	return fmt.Sprintf("%08x: %08x  %s", p.Address, p.Word, p.Text)
}

// Disassemble a sequence of words, where the first is located at the given
// base address.  Words which cannot be decoded are given as literal words, such
// that the resulting text can always be reassembled into the same sequence of
// words.
func Disassemble(words []uint32, base uint32) []Line {
	var lines = make([]Line, len(words))
	//
	for i, word := range words {
		lines[i] = Line{base + uint32(i*memory.WORD_SIZE), word, DisassembleWord(word)}
	}
	//
	return lines
}

// DisassembleWord returns the assembly language form of a single word.
func DisassembleWord(word uint32) string {
	instruction, err := insn.Decode(word)
	//
	switch {
	case errors.Is(err, insn.ErrHalt):
		return HALT_MNEMONIC
	case err != nil:
		return fmt.Sprintf("%s 0x%08x", WORD_DIRECTIVE, word)
	default:
		return instruction.String()
	}
}
