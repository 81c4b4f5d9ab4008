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

// AddressDecoder translates a byte address into an index within the flat data
// slice backing a memory.  Implementations are free to impose whatever layout
// they require, but must reject any address which does not correspond to a
// word of the memory (rather than mapping it somewhere arbitrary).
type AddressDecoder interface {
	// Decode maps a byte address to the index of the corresponding word.  If
	// the address is invalid, then false is returned along with the reason.
	Decode(address uint32) (uint, AccessKind, bool)
}

// WordDecoder is the decoder for a contiguous region of words starting at a
// given base address.  Thus, the word at address base+4*i has index i.
type WordDecoder struct {
	base uint32
	size uint
}

// NewWordDecoder constructs a decoder for size words starting at base.
func NewWordDecoder(base uint32, size uint) WordDecoder {
	return WordDecoder{base, size}
}

// Decode implementation for the AddressDecoder interface.
func (p WordDecoder) Decode(address uint32) (uint, AccessKind, bool) {
	if address%WORD_SIZE != 0 {
		return 0, MISALIGNED, false
	} else if address < p.base {
		return 0, OUT_OF_RANGE, false
	}
	//
	index := uint((address - p.base) / WORD_SIZE)
	//
	if index >= p.size {
		return 0, OUT_OF_RANGE, false
	}
	//
	return index, 0, true
}
