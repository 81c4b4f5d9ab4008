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
package register

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NUM_REGISTERS determines the number of general purpose registers.
const NUM_REGISTERS = 32

// ZERO is the index of the zero register ($zero).
const ZERO = 0

// SP is the index of the stack pointer ($sp).
const SP = 29

// RA is the index of the link register ($ra), as written by jal.
const RA = 31

// NONE is used to signal that no register was written by a given step.
var NONE = Id{math.MaxUint}

// Id captures the notion of a register index.  Every general purpose register
// is identified by an index between 0 and 31.  The purpose of the wrapper is to
// avoid confusion between uint values which identify registers, and those
// which are simply values.
type Id struct {
	index uint
}

// NewId constructs a new register ID from a given raw index.
func NewId(index uint) Id {
	if index >= NUM_REGISTERS {
		panic(fmt.Sprintf("invalid register index %d", index))
	}
	//
	return Id{index}
}

// Unwrap returns the underlying register index.
func (p Id) Unwrap() uint {
	if p.index == math.MaxUint {
		panic("attempt to unwrap unused register id")
	}
	//
	return p.index
}

// IsUsed checks whether this corresponds to a valid register index.
func (p Id) IsUsed() bool {
	return p.index != math.MaxUint
}

func (p Id) String() string {
	if !p.IsUsed() {
		return "none"
	}
	//
	return Name(p.index)
}

// Conventional names for the general purpose registers, as used by assemblers.
var names = [NUM_REGISTERS]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Name returns the conventional (i.e. ABI) name of a given register, including
// its leading "$".
func Name(index uint) string {
	return "$" + names[index]
}

// Lookup the index of a register from its textual form.  This accepts either
// the conventional name (e.g. "$t0") or the numbered form (e.g. "$8").  The
// leading "$" is mandatory.
func Lookup(text string) (uint, bool) {
	name, ok := strings.CutPrefix(text, "$")
	//
	if !ok || name == "" {
		return 0, false
	} else if index, err := strconv.ParseUint(name, 10, 8); err == nil {
		return uint(index), index < NUM_REGISTERS
	}
	// Alias used by some assemblers
	if name == "s8" {
		return 30, true
	}
	//
	for i, n := range names {
		if n == name {
			return uint(i), true
		}
	}
	//
	return 0, false
}
