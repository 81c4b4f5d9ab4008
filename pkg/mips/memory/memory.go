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

import "math"

// BASE is the fixed load address of the text segment.  The first word of the
// program image is always placed here.
const BASE uint32 = 0x00400000

// WORD_SIZE determines the number of bytes in a machine word.
const WORD_SIZE = 4

// NONE is used to signal that no memory location was written by a given step.
// Since this address is not word aligned, it can never be written.
const NONE uint32 = math.MaxUint32

// ReadOnlyMemory represents a form of memory that can only be read, such as
// when fetching instructions.
type ReadOnlyMemory interface {
	// Name returns the name of this memory
	Name() string
	// Read the word at a given (byte) address.  This fails if the address is
	// misaligned or falls outside the bounds of the memory.
	Read(address uint32) (uint32, error)
}

// Memory represents (in many ways) the simplest form of memory which can be
// read or written without restrictions.  Initially, all locations hold zero.
// Thus, reading a location which has not yet been written will return zero;
// otherwise, it will return the last value written.
type Memory interface {
	ReadOnlyMemory
	// Write a given word to a given (byte) address, overwriting the previous
	// value stored at that address.  This fails if the address is misaligned or
	// falls outside the bounds of the memory.
	Write(address uint32, value uint32) error
	// Return the contents of this memory as a sequence of words, where the
	// first word corresponds to the lowest address.
	Contents() []uint32
}
