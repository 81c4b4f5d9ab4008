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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/consensys/go-mipsim/pkg/mips/insn"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/register"
	log "github.com/sirupsen/logrus"
)

// HALT_MNEMONIC is a pseudo instruction which assembles to the halt word.
const HALT_MNEMONIC = "halt"

// WORD_DIRECTIVE places one or more literal words into the image.
const WORD_DIRECTIVE = ".word"

// Assemble a given source file into a program image, where the first word is
// placed at the given base address.  Each line holds zero or more labels (e.g.
// "loop:") followed by an optional instruction or directive.  Comments begin
// with '#' and run to the end of the line.  Labels may be used as jump and
// branch targets, or as the values of words.  If any errors arise, then no
// image is produced.
func Assemble(filename string, contents string, base uint32) ([]uint32, []SyntaxError) {
	var (
		p          = assembler{filename: filename, labels: make(map[string]uint32)}
		statements = p.parse(contents, base)
		words      []uint32
	)
	//
	for _, s := range statements {
		words = append(words, p.encode(s)...)
	}
	//
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	//
	log.Debugf("assembled %d words from %s (%d labels)", len(words), filename, len(p.labels))
	//
	return words, nil
}

// statement represents a single instruction (or directive) in the source file.
type statement struct {
	// Line number (counting from 1)
	line int
	// Text of the line
	text []rune
	// Address of the first word produced by this statement
	address uint32
	// Mnemonic of the instruction
	mnemonic Token
	// Operands of the instruction, as comma separated groups of tokens
	operands [][]Token
	// End of line
	end Token
}

func (p *statement) string(token Token) string {
	return string(p.text[token.Span.start:token.Span.end])
}

type assembler struct {
	filename string
	labels   map[string]uint32
	errors   []SyntaxError
}

// Parse all lines in the source file, and allocate each statement an address.
// This resolves the address of every label.
func (p *assembler) parse(contents string, base uint32) []statement {
	var (
		statements []statement
		address    = base
	)
	//
	for i, line := range strings.Split(contents, "\n") {
		var (
			text              = []rune(line)
			tokens, index, ok = NewLexer(text).Collect()
		)
		//
		if !ok {
			p.error(i+1, NewSpan(index, index+1), "unknown character")
			continue
		}
		// Labels
		for len(tokens) > 2 && tokens[0].Kind == IDENTIFIER && tokens[1].Kind == COLON {
			name := string(text[tokens[0].Span.start:tokens[0].Span.end])
			//
			if _, ok := p.labels[name]; ok {
				p.error(i+1, tokens[0].Span, fmt.Sprintf("label \"%s\" already declared", name))
			}
			//
			p.labels[name] = address
			tokens = tokens[2:]
		}
		// Instruction
		if tokens[0].Kind == END_OF {
			continue
		} else if tokens[0].Kind != IDENTIFIER {
			p.error(i+1, tokens[0].Span, "expected instruction")
			continue
		}
		//
		s := statement{i + 1, text, address, tokens[0], split(tokens[1 : len(tokens)-1]), tokens[len(tokens)-1]}
		// .word occupies one word per operand
		if s.string(s.mnemonic) == WORD_DIRECTIVE {
			address += uint32(len(s.operands) * memory.WORD_SIZE)
		} else {
			address += memory.WORD_SIZE
		}
		//
		statements = append(statements, s)
	}
	//
	return statements
}

// Split tokens into comma separated groups.
func split(tokens []Token) [][]Token {
	var (
		groups [][]Token
		start  = 0
	)
	//
	if len(tokens) == 0 {
		return nil
	}
	//
	for i, t := range tokens {
		if t.Kind == COMMA {
			groups = append(groups, tokens[start:i])
			start = i + 1
		}
	}
	//
	return append(groups, tokens[start:])
}

// Encode a given statement into one or more words.  If an error arises, then
// it is recorded and a placeholder word returned, such that subsequent errors
// can still be reported.
func (p *assembler) encode(s statement) []uint32 {
	var (
		name = s.string(s.mnemonic)
		word uint32
		err  *SyntaxError
	)
	//
	if name == WORD_DIRECTIVE {
		return p.encodeWords(s)
	} else if fn, ok := insn.LookupFunct(name); ok {
		word, err = p.encodeR(s, fn)
	} else if op, ok := insn.LookupOpcode(name); ok {
		word, err = p.encodeIJ(s, op)
	} else if name == HALT_MNEMONIC {
		_, err = p.operands(s, 0)
		word = insn.HALT
	} else {
		err = p.syntaxError(s, s.mnemonic.Span, fmt.Sprintf("unknown instruction \"%s\"", name))
	}
	//
	if err != nil {
		p.errors = append(p.errors, *err)
	}
	//
	return []uint32{word}
}

func (p *assembler) encodeWords(s statement) []uint32 {
	var words = make([]uint32, len(s.operands))
	//
	if len(s.operands) == 0 {
		p.errors = append(p.errors, *p.syntaxError(s, s.end.Span, "expected one or more words"))
		return []uint32{0}
	} else if _, err := p.operands(s, len(s.operands)); err != nil {
		p.errors = append(p.errors, *err)
		return words
	}
	//
	for i, operand := range s.operands {
		value, err := p.value(s, operand, math.MinInt32, math.MaxUint32)
		//
		if err != nil {
			p.errors = append(p.errors, *err)
		}
		//
		words[i] = uint32(value)
	}
	//
	return words
}

func (p *assembler) encodeR(s statement, fn uint8) (uint32, *SyntaxError) {
	switch fn {
	case insn.FN_JR:
		ops, err := p.operands(s, 1)
		if err != nil {
			return 0, err
		}
		//
		rs, err := p.register(s, ops[0])
		//
		return (&insn.RForm{Op: insn.OP_SPECIAL, Funct: fn, Rs: rs}).Encode(), err
	case insn.FN_SLL, insn.FN_SRL:
		ops, err := p.operands(s, 3)
		if err != nil {
			return 0, err
		}
		//
		rd, err1 := p.register(s, ops[0])
		rs, err2 := p.register(s, ops[1])
		shamt, err3 := p.number(s, ops[2], 0, 31)
		//
		return insn.Shift(fn, rd, rs, uint8(shamt)).Encode(), first(err1, err2, err3)
	default:
		ops, err := p.operands(s, 3)
		if err != nil {
			return 0, err
		}
		//
		rd, err1 := p.register(s, ops[0])
		rs, err2 := p.register(s, ops[1])
		rt, err3 := p.register(s, ops[2])
		//
		return insn.R(fn, rd, rs, rt).Encode(), first(err1, err2, err3)
	}
}

func (p *assembler) encodeIJ(s statement, op uint8) (uint32, *SyntaxError) {
	switch op {
	case insn.OP_J, insn.OP_JAL:
		return p.encodeJump(s, op)
	case insn.OP_BEQ, insn.OP_BNE:
		return p.encodeBranch(s, op)
	case insn.OP_LW, insn.OP_SW:
		ops, err := p.operands(s, 2)
		if err != nil {
			return 0, err
		}
		//
		rt, err1 := p.register(s, ops[0])
		offset, rs, err2 := p.address(s, ops[1])
		//
		return insn.I(op, rt, rs, offset).Encode(), first(err1, err2)
	case insn.OP_LUI:
		ops, err := p.operands(s, 2)
		if err != nil {
			return 0, err
		}
		//
		rt, err1 := p.register(s, ops[0])
		imm, err2 := p.number(s, ops[1], 0, math.MaxUint16)
		//
		return insn.I(op, rt, 0, int32(imm)).Encode(), first(err1, err2)
	default:
		var lo, hi int64 = math.MinInt16, math.MaxInt16
		// Logical immediates are unsigned
		if op == insn.OP_ANDI || op == insn.OP_ORI {
			lo, hi = 0, math.MaxUint16
		}
		//
		ops, err := p.operands(s, 3)
		if err != nil {
			return 0, err
		}
		//
		rt, err1 := p.register(s, ops[0])
		rs, err2 := p.register(s, ops[1])
		imm, err3 := p.number(s, ops[2], lo, hi)
		//
		return insn.I(op, rt, rs, int32(imm)).Encode(), first(err1, err2, err3)
	}
}

// Encode a jump, whose target is either a label or an absolute address.  The
// target must lie within the same 256MB region as the following instruction.
func (p *assembler) encodeJump(s statement, op uint8) (uint32, *SyntaxError) {
	ops, err := p.operands(s, 1)
	if err != nil {
		return 0, err
	}
	//
	target, err := p.value(s, ops[0], 0, math.MaxUint32)
	//
	switch {
	case err != nil:
		return 0, err
	case target%memory.WORD_SIZE != 0:
		return 0, p.syntaxError(s, ops[0][0].Span, "jump target not word aligned")
	case uint32(target)&0xf0000000 != (s.address+4)&0xf0000000:
		return 0, p.syntaxError(s, ops[0][0].Span, "jump target out of range")
	}
	//
	return insn.J(op, uint32(target)).Encode(), nil
}

// Encode a branch, whose target is either a label or a raw (word) offset
// relative to the following instruction.
func (p *assembler) encodeBranch(s statement, op uint8) (uint32, *SyntaxError) {
	var offset int64
	//
	ops, err := p.operands(s, 3)
	if err != nil {
		return 0, err
	}
	//
	rs, err1 := p.register(s, ops[0])
	rt, err2 := p.register(s, ops[1])
	//
	if len(ops[2]) == 1 && ops[2][0].Kind == IDENTIFIER {
		target, err := p.value(s, ops[2], 0, math.MaxUint32)
		if err != nil {
			return 0, err
		}
		//
		offset = (target - int64(s.address+4)) / memory.WORD_SIZE
		//
		if offset < math.MinInt16 || offset > math.MaxInt16 {
			return 0, p.syntaxError(s, ops[2][0].Span, "branch target out of range")
		}
	} else if offset, err = p.number(s, ops[2], math.MinInt16, math.MaxInt16); err != nil {
		return 0, err
	}
	//
	return insn.I(op, rt, rs, int32(offset)).Encode(), first(err1, err2)
}

// Check the statement has exactly n operands.
func (p *assembler) operands(s statement, n int) ([][]Token, *SyntaxError) {
	if len(s.operands) != n {
		msg := fmt.Sprintf("%s expects %d operand(s), found %d", s.string(s.mnemonic), n, len(s.operands))
		return nil, p.syntaxError(s, s.mnemonic.Span, msg)
	}
	//
	for _, op := range s.operands {
		if len(op) == 0 {
			return nil, p.syntaxError(s, s.end.Span, "missing operand")
		}
	}
	//
	return s.operands, nil
}

func (p *assembler) register(s statement, operand []Token) (uint8, *SyntaxError) {
	if len(operand) != 1 || operand[0].Kind != REGISTER {
		return 0, p.syntaxError(s, operand[0].Span, "expected register")
	}
	//
	name := s.string(operand[0])
	//
	if index, ok := register.Lookup(name); ok {
		return uint8(index), nil
	}
	//
	return 0, p.syntaxError(s, operand[0].Span, fmt.Sprintf("unknown register \"%s\"", name))
}

// Parse a memory operand of the form "offset($rs)", where the offset is
// optional.
func (p *assembler) address(s statement, operand []Token) (int32, uint8, *SyntaxError) {
	var offset int64
	//
	if len(operand) == 4 && operand[0].Kind == NUMBER {
		var err *SyntaxError
		//
		if offset, err = p.number(s, operand[:1], math.MinInt16, math.MaxInt16); err != nil {
			return 0, 0, err
		}
		//
		operand = operand[1:]
	}
	//
	if len(operand) != 3 || operand[0].Kind != LBRACE || operand[2].Kind != RBRACE {
		return 0, 0, p.syntaxError(s, operand[0].Span, "expected address of the form offset($reg)")
	}
	//
	rs, err := p.register(s, operand[1:2])
	//
	return int32(offset), rs, err
}

// Parse a numeric literal within a given (inclusive) range.
func (p *assembler) number(s statement, operand []Token, lo int64, hi int64) (int64, *SyntaxError) {
	if len(operand) != 1 || operand[0].Kind != NUMBER {
		return 0, p.syntaxError(s, operand[0].Span, "expected number")
	}
	//
	text := s.string(operand[0])
	value, err := strconv.ParseInt(text, 0, 64)
	//
	if err != nil {
		return 0, p.syntaxError(s, operand[0].Span, fmt.Sprintf("invalid number \"%s\"", text))
	} else if value < lo || value > hi {
		return 0, p.syntaxError(s, operand[0].Span, fmt.Sprintf("%s out of range (%d..%d)", text, lo, hi))
	}
	//
	return value, nil
}

// Parse either a numeric literal or a label.
func (p *assembler) value(s statement, operand []Token, lo int64, hi int64) (int64, *SyntaxError) {
	if len(operand) == 1 && operand[0].Kind == IDENTIFIER {
		name := s.string(operand[0])
		//
		if address, ok := p.labels[name]; ok {
			return int64(address), nil
		}
		//
		return 0, p.syntaxError(s, operand[0].Span, fmt.Sprintf("unknown label \"%s\"", name))
	}
	//
	return p.number(s, operand, lo, hi)
}

func (p *assembler) error(line int, span Span, msg string) {
	p.errors = append(p.errors, SyntaxError{p.filename, line, span, msg})
}

func (p *assembler) syntaxError(s statement, span Span, msg string) *SyntaxError {
	return &SyntaxError{p.filename, s.line, span, msg}
}

func first(errors ...*SyntaxError) *SyntaxError {
	for _, err := range errors {
		if err != nil {
			return err
		}
	}
	//
	return nil
}
