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
	"unicode"
)

// Token kinds recognised by the lexer.
const (
	END_OF uint = iota
	WHITESPACE
	COMMENT
	IDENTIFIER
	REGISTER
	NUMBER
	COMMA
	COLON
	LBRACE
	RBRACE
)

// Span represents a contiguous slice of a line of assembly, measured in
// characters.
type Span struct {
	// The first character of this span.
	start int
	// One past the final character of this span.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the starting index of this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span.
func (p Span) End() int {
	return p.end
}

// Token associates a kind with a given range of characters in the line being
// scanned.
type Token struct {
	Kind uint
	Span Span
}

// Scanner looks at a given sequence of characters, starting from the
// beginning, and attempts to consume 1 or more of them.  If it cannot consume
// any, then false is returned.
type Scanner interface {
	Scan([]rune) (Token, bool)
}

// Lexer tokenises a single line of assembly.
type Lexer struct {
	items   []rune
	index   int
	scanner Scanner
}

// NewLexer constructs a new lexer for a given line.
func NewLexer(line []rune) *Lexer {
	return &Lexer{line, 0, lineScanner}
}

// Collect all tokens in the line, excluding whitespace and comments.  If an
// unknown character is encountered, then its index is returned along with
// false.
func (p *Lexer) Collect() ([]Token, int, bool) {
	var tokens []Token
	//
	for p.index <= len(p.items) {
		token, ok := p.scanner.Scan(p.items[p.index:])
		//
		if !ok {
			return tokens, p.index, false
		}
		// Shift span into correct position
		token.Span = NewSpan(token.Span.start+p.index, token.Span.end+p.index)
		//
		switch token.Kind {
		case WHITESPACE, COMMENT:
			// skip
		case END_OF:
			return append(tokens, token), p.index, true
		default:
			tokens = append(tokens, token)
		}
		//
		p.index = token.Span.end
	}
	//
	return tokens, p.index, true
}

var lineScanner = Or(
	Many(WHITESPACE, ' ', '\t', '\r'),
	Sequence(COMMENT, is('#'), not('\n')),
	One(COMMA, ','),
	One(COLON, ':'),
	One(LBRACE, '('),
	One(RBRACE, ')'),
	Sequence(REGISTER, is('$'), isAlphaNumeric),
	Sequence(NUMBER, isNumberStart, isAlphaNumeric),
	Sequence(IDENTIFIER, isIdentifierStart, isIdentifierRest),
	Eof(END_OF))

// Eof matches the end of the line.
func Eof(tag uint) Scanner {
	return &eofScanner{tag}
}

// One creates a scanner which matches a single character.
func One(tag uint, item rune) Scanner {
	return &unitScanner{item, tag}
}

// Many creates a scanner which matches one or more characters from a given set.
func Many(tag uint, items ...rune) Scanner {
	return &manyScanner{tag, items}
}

// Sequence creates a scanner which matches a single character accepted by
// first, followed by zero or more characters accepted by rest.
func Sequence(tag uint, first func(rune) bool, rest func(rune) bool) Scanner {
	return &sequenceScanner{tag, first, rest}
}

// Or constructs a scanner which accepts whatever is accepted by the first of
// the given scanners to match.
func Or(scanners ...Scanner) Scanner {
	return &orScanner{scanners}
}

// ============================================================================
// Eof Scanner
// ============================================================================

type eofScanner struct {
	tag uint
}

func (p *eofScanner) Scan(items []rune) (Token, bool) {
	return Token{p.tag, NewSpan(0, 0)}, len(items) == 0
}

// ============================================================================
// Unit Scanner
// ============================================================================

type unitScanner struct {
	item rune
	tag  uint
}

func (p *unitScanner) Scan(items []rune) (Token, bool) {
	return Token{p.tag, NewSpan(0, 1)}, len(items) > 0 && items[0] == p.item
}

// ============================================================================
// Many Scanner
// ============================================================================

type manyScanner struct {
	tag   uint
	items []rune
}

func (p *manyScanner) Scan(items []rune) (Token, bool) {
	i := 0
	//
	for i < len(items) && slices.Contains(p.items, items[i]) {
		i++
	}
	//
	return Token{p.tag, NewSpan(0, i)}, i != 0
}

// ============================================================================
// Sequence Scanner
// ============================================================================

type sequenceScanner struct {
	tag   uint
	first func(rune) bool
	rest  func(rune) bool
}

func (p *sequenceScanner) Scan(items []rune) (Token, bool) {
	if len(items) == 0 || !p.first(items[0]) {
		return Token{}, false
	}
	//
	i := 1
	//
	for i < len(items) && p.rest(items[i]) {
		i++
	}
	//
	return Token{p.tag, NewSpan(0, i)}, true
}

// ============================================================================
// Or Scanner
// ============================================================================

type orScanner struct {
	scanners []Scanner
}

func (p *orScanner) Scan(items []rune) (Token, bool) {
	for _, scanner := range p.scanners {
		if token, ok := scanner.Scan(items); ok {
			return token, true
		}
	}
	// Failed
	return Token{}, false
}

// ============================================================================
// Character classes
// ============================================================================

func is(item rune) func(rune) bool {
	return func(c rune) bool { return c == item }
}

func not(item rune) func(rune) bool {
	return func(c rune) bool { return c != item }
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isNumberStart(c rune) bool {
	return c == '-' || unicode.IsDigit(c)
}

func isIdentifierStart(c rune) bool {
	return c == '_' || c == '.' || unicode.IsLetter(c)
}

func isIdentifierRest(c rune) bool {
	return c == '_' || c == '.' || isAlphaNumeric(c)
}
