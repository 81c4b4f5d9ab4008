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
	"fmt"
)

// ErrProgramTooLarge is returned when a program holds more words than there is
// space for in the text segment.
var ErrProgramTooLarge = errors.New("program too big")

// AccessKind identifies the reason a memory access failed.
type AccessKind uint8

// OUT_OF_RANGE signals an address outside the bounds of memory.
const OUT_OF_RANGE AccessKind = 0

// MISALIGNED signals an address which is not word aligned.
const MISALIGNED AccessKind = 1

// AccessError is returned from an attempt to access memory at an invalid
// address.  Such errors are recoverable, in the sense that the memory is left
// untouched.
type AccessError struct {
	// Name of the memory being accessed
	Memory string
	// Address which was accessed
	Address uint32
	// Reason for failure
	Kind AccessKind
}

func (p *AccessError) Error() string {
	switch p.Kind {
	case MISALIGNED:
		return fmt.Sprintf("misaligned access to %s at address 0x%08x", p.Memory, p.Address)
	default:
		return fmt.Sprintf("out-of-range access to %s at address 0x%08x", p.Memory, p.Address)
	}
}
