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

import "fmt"

// DEFAULT_INSTRUCTIONS is the default number of words reserved for the text
// segment.
const DEFAULT_INSTRUCTIONS = 1024

// DEFAULT_DATA is the default number of words reserved for the data segment.
const DEFAULT_DATA = 3072

// Layout describes the shape of the simulated address space.  This consists of
// a text segment (holding instructions) placed at a given base address and
// followed immediately by a data segment.  Both segments are measured in words.
type Layout struct {
	// Address of first word in the text segment
	Base uint32
	// Number of words in the text segment
	Instructions uint
	// Number of words in the data segment
	Data uint
}

// DefaultLayout returns the standard layout, with the text segment at BASE.
func DefaultLayout() Layout {
	return Layout{BASE, DEFAULT_INSTRUCTIONS, DEFAULT_DATA}
}

// Capacity returns the total number of words in the address space.
func (p Layout) Capacity() uint {
	return p.Instructions + p.Data
}

// DataStart returns the address of the first word in the data segment.
func (p Layout) DataStart() uint32 {
	return p.Base + uint32(p.Instructions*WORD_SIZE)
}

// Limit returns the first address past the end of the address space.  This is
// also the initial value of the stack pointer, since the stack grows downwards
// from the top of the data segment.
func (p Layout) Limit() uint32 {
	return p.Base + uint32(p.Capacity()*WORD_SIZE)
}

// Validate that this layout is well-formed.  Specifically, the base must be
// word aligned and the address space must not wrap around.
func (p Layout) Validate() error {
	var limit = uint64(p.Base) + uint64(p.Capacity())*WORD_SIZE
	//
	if p.Base%WORD_SIZE != 0 {
		return fmt.Errorf("base address 0x%08x not word aligned", p.Base)
	} else if p.Instructions == 0 {
		return fmt.Errorf("text segment cannot be empty")
	} else if limit > 1<<32 {
		return fmt.Errorf("address space exceeds 32bits (limit 0x%x)", limit)
	}
	//
	return nil
}

func (p Layout) String() string {
	return fmt.Sprintf("text@%08x[%d] data@%08x[%d]", p.Base, p.Instructions, p.DataStart(), p.Data)
}
