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
package memory

import (
	"errors"
	"slices"
	"testing"
)

var smallLayout = Layout{BASE, 4, 4}

func Test_Layout_01(t *testing.T) {
	layout := DefaultLayout()
	//
	if layout.Limit() != BASE+(DEFAULT_INSTRUCTIONS+DEFAULT_DATA)*WORD_SIZE {
		t.Errorf("unexpected limit 0x%08x", layout.Limit())
	}
	//
	if layout.DataStart() != BASE+DEFAULT_INSTRUCTIONS*WORD_SIZE {
		t.Errorf("unexpected data start 0x%08x", layout.DataStart())
	}
	//
	if err := layout.Validate(); err != nil {
		t.Error(err)
	}
}

func Test_Layout_02(t *testing.T) {
	if err := (Layout{BASE + 1, 4, 4}).Validate(); err == nil {
		t.Errorf("misaligned base accepted")
	}
}

func Test_Layout_03(t *testing.T) {
	if err := (Layout{0xfffffff0, 4, 4}).Validate(); err == nil {
		t.Errorf("wrapping layout accepted")
	}
}

func Test_Memory_01(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	// Fresh memory reads as zero
	checkRead(t, mem, BASE, 0)
	checkRead(t, mem, BASE+28, 0)
}

func Test_Memory_02(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	//
	if err := mem.Write(BASE+8, 42); err != nil {
		t.Fatal(err)
	}
	//
	checkRead(t, mem, BASE+8, 42)
	checkRead(t, mem, BASE+4, 0)
	checkRead(t, mem, BASE+12, 0)
}

func Test_Memory_03(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	// Immediately before and after memory
	checkAccessError(t, mem, BASE-4, OUT_OF_RANGE)
	checkAccessError(t, mem, BASE+32, OUT_OF_RANGE)
	checkAccessError(t, mem, 0, OUT_OF_RANGE)
	checkAccessError(t, mem, 0xfffffffc, OUT_OF_RANGE)
}

func Test_Memory_04(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	//
	checkAccessError(t, mem, BASE+1, MISALIGNED)
	checkAccessError(t, mem, BASE+6, MISALIGNED)
	checkAccessError(t, mem, NONE, MISALIGNED)
}

func Test_Memory_05(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	// Failed writes must not change anything
	before := slices.Clone(mem.Contents())
	//
	if err := mem.Write(BASE+32, 1); err == nil {
		t.Errorf("out-of-range write succeeded")
	}
	//
	if !slices.Equal(before, mem.Contents()) {
		t.Errorf("memory changed by failed write")
	}
}

func Test_Memory_06(t *testing.T) {
	mem := NewFlat("mem", smallLayout)
	//
	if err := mem.Initialise([]uint32{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	//
	checkRead(t, mem, BASE, 1)
	checkRead(t, mem, BASE+8, 3)
	checkRead(t, mem, BASE+12, 0)
	//
	if err := mem.Initialise(make([]uint32, 9)); err == nil {
		t.Errorf("oversized image accepted")
	}
}

func checkRead(t *testing.T, mem Memory, address uint32, expected uint32) {
	t.Helper()
	//
	if actual, err := mem.Read(address); err != nil {
		t.Errorf("read of 0x%08x failed: %s", address, err)
	} else if actual != expected {
		t.Errorf("read of 0x%08x gave 0x%08x (expected 0x%08x)", address, actual, expected)
	}
}

func checkAccessError(t *testing.T, mem Memory, address uint32, kind AccessKind) {
	var aerr *AccessError
	//
	t.Helper()
	//
	_, rerr := mem.Read(address)
	werr := mem.Write(address, 0)
	//
	for _, err := range []error{rerr, werr} {
		if !errors.As(err, &aerr) {
			t.Errorf("access of 0x%08x should fail (got %v)", address, err)
		} else if aerr.Kind != kind || aerr.Address != address {
			t.Errorf("access of 0x%08x failed incorrectly: %s", address, aerr)
		}
	}
}
