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
	"bytes"
	"testing"
)

func Test_Escape_01(t *testing.T) {
	checkEscape(t, NewAnsiEscape().FgColour(TERM_RED), "\033[31m")
}

func Test_Escape_02(t *testing.T) {
	checkEscape(t, BoldAnsiEscape().FgColour(TERM_YELLOW).BgColour(TERM_BLUE), "\033[1;33;44m")
}

func Test_Escape_03(t *testing.T) {
	checkEscape(t, ResetAnsiEscape(), "\033[0m")
}

func Test_Escape_04(t *testing.T) {
	if s := NewAnsiEscape().FgColour(TERM_GREEN).Wrap("ok"); s != "\033[32mok\033[0m" {
		t.Errorf("unexpected wrapping %q", s)
	}
}

func Test_Table_01(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "a", "bbb")
	tp.SetRow(1, "cc", "d")
	//
	checkTable(t, tp, "  a | bbb |\n cc |   d |\n")
}

func Test_Table_02(t *testing.T) {
	tp := NewTablePrinter(2, 1)
	tp.Set(0, 0, "x")
	tp.Set(1, 0, "yy")
	tp.SetSeparator("")
	tp.SetEscape(1, 0, NewAnsiEscape().FgColour(TERM_RED))
	tp.AnsiEscapes(false)
	//
	checkTable(t, tp, " x yy\n")
}

func Test_Table_03(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "x")
	tp.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	//
	checkTable(t, tp, "\033[31m x\033[0m |\n")
}

func Test_Key_01(t *testing.T) {
	checkKey(t, []byte{'q'}, 'q')
	checkKey(t, []byte{0x0d}, CARRIAGE_RETURN)
	checkKey(t, []byte{0x1b, '[', 'A'}, CURSOR_UP)
	checkKey(t, []byte{0x1b, '[', 'D'}, CURSOR_LEFT)
	checkKey(t, []byte{0x1b, '[', 'Q'}, UNKNOWN)
	checkKey(t, []byte{0x1b, 'x'}, UNKNOWN)
}

func checkEscape(t *testing.T, escape AnsiEscape, expected string) {
	t.Helper()
	//
	if actual := escape.Build(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func checkTable(t *testing.T, tp *TablePrinter, expected string) {
	var buf bytes.Buffer
	//
	t.Helper()
	//
	if err := tp.Print(&buf); err != nil {
		t.Error(err)
	} else if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func checkKey(t *testing.T, key []byte, expected uint16) {
	t.Helper()
	//
	if actual := decodeKey(key); actual != expected {
		t.Errorf("key %v decoded as 0x%x (expected 0x%x)", key, actual, expected)
	}
}
