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
package termio

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ESC is the escape code.
const ESC uint16 = 0x1b

// CARRIAGE_RETURN indicates "enter"
const CARRIAGE_RETURN uint16 = 0x0D

// NEWLINE indicates a line feed
const NEWLINE uint16 = 0x0A

// CTRL_C is the interrupt key, which is not delivered as a signal in raw mode.
const CTRL_C uint16 = 0x03

// CURSOR_UP (up arrow)
const CURSOR_UP uint16 = 0x5b41

// CURSOR_DOWN (down arrow)
const CURSOR_DOWN uint16 = 0x5b42

// CURSOR_RIGHT (right arrow)
const CURSOR_RIGHT uint16 = 0x5b43

// CURSOR_LEFT (left arrow)
const CURSOR_LEFT uint16 = 0x5b44

// UNKNOWN is a fall-back for unknown escape sequences
const UNKNOWN uint16 = 0x5bff

// Keyboard provides single key presses from a terminal, without waiting for
// the enter key.
type Keyboard struct {
	// input file (e.g. stdin)
	in *os.File
}

// NewKeyboard constructs a keyboard reading from a given file, which must be a
// terminal.
func NewKeyboard(in *os.File) (*Keyboard, error) {
	if !IsTerminal(in) {
		return nil, errors.New("invalid terminal")
	}
	//
	return &Keyboard{in}, nil
}

// ReadKey returns a keyevent from the keyboard.  This is either an ASCII
// character, or an extended escape code.  The terminal is placed into raw mode
// only whilst waiting for the key, so that output is unaffected.
func (t *Keyboard) ReadKey() (uint16, error) {
	var (
		fd  = int(t.in.Fd())
		key [3]byte
	)
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	//
	n, err := t.in.Read(key[:])
	// Restore terminal
	if rerr := term.Restore(fd, state); err == nil {
		err = rerr
	}
	//
	if err != nil {
		return 0, err
	}
	//
	return decodeKey(key[:n]), nil
}

// Decode the bytes of a single key press.
func decodeKey(key []byte) uint16 {
	if len(key) == 1 {
		return uint16(key[0])
	} else if len(key) != 3 || key[1] != '[' {
		// Unknown or malformed escape sequence.
		return UNKNOWN
	}
	// Dispatch escape
	switch key[2] {
	case 'A':
		return CURSOR_UP
	case 'B':
		return CURSOR_DOWN
	case 'C':
		return CURSOR_RIGHT
	case 'D':
		return CURSOR_LEFT
	}
	// unknown key
	return UNKNOWN
}
