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
package loader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func Test_Loader_01(t *testing.T) {
	data := []byte{0x24, 0x08, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00}
	checkLoad(t, data, binary.BigEndian, []uint32{0x24080005, 0})
}

func Test_Loader_02(t *testing.T) {
	data := []byte{0x05, 0x00, 0x08, 0x24}
	checkLoad(t, data, binary.LittleEndian, []uint32{0x24080005})
}

func Test_Loader_03(t *testing.T) {
	checkLoad(t, nil, binary.BigEndian, []uint32{})
}

func Test_Loader_04(t *testing.T) {
	// Exactly at capacity
	checkLoad(t, make([]byte, 16), binary.BigEndian, make([]uint32, 4))
}

func Test_Loader_05(t *testing.T) {
	if _, err := FromBytes(make([]byte, 20), binary.BigEndian, 4); !errors.Is(err, ErrProgramTooLarge) {
		t.Errorf("expected program too large, got %v", err)
	}
}

func Test_Loader_06(t *testing.T) {
	if _, err := FromBytes(make([]byte, 6), binary.BigEndian, 4); !errors.Is(err, ErrPartialWord) {
		t.Errorf("expected partial word, got %v", err)
	}
}

func Test_Loader_07(t *testing.T) {
	words := []uint32{0x012a4021, 0xafa8fff8, 0x0c100000}
	//
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		if actual, err := Read(bytes.NewReader(ToBytes(words, order)), order, 4); err != nil {
			t.Error(err)
		} else if !slices.Equal(actual, words) {
			t.Errorf("expected %x, got %x", words, actual)
		}
	}
}

func Test_Loader_08(t *testing.T) {
	var (
		words    = []uint32{0x3c081234, 0x35080001}
		filename = filepath.Join(t.TempDir(), "prog.bin")
	)
	//
	if err := WriteFile(filename, words, binary.BigEndian); err != nil {
		t.Fatal(err)
	}
	//
	if actual, err := ReadFile(filename, binary.BigEndian, 4); err != nil {
		t.Error(err)
	} else if !slices.Equal(actual, words) {
		t.Errorf("expected %x, got %x", words, actual)
	}
}

func Test_Loader_09(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.bin"), binary.BigEndian, 4); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected missing file, got %v", err)
	}
}

func checkLoad(t *testing.T, data []byte, order binary.ByteOrder, expected []uint32) {
	t.Helper()
	t.Parallel()
	//
	if actual, err := FromBytes(data, order, 4); err != nil {
		t.Error(err)
	} else if !slices.Equal(actual, expected) {
		t.Errorf("expected %x, got %x", expected, actual)
	}
}
