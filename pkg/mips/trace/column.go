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
package trace

import (
	"fmt"
	"strings"
)

// MODULE is the module to which all columns recorded from a machine belong.
const MODULE = "mips"

// Column represents a named column of data, where each element holds at most
// a given number of bits.
type Column struct {
	// Module containing this column
	Module string
	// Name of this column
	Name string
	// Maximum number of bits required for any element
	BitWidth uint
	// Data held in this column
	Data []uint32
}

// QualifiedName returns the name of this column qualified by its module, such
// as "mips.PC".
func (p *Column) QualifiedName() string {
	return QualifiedColumnName(p.Module, p.Name)
}

// ByteWidth returns the number of bytes required to hold any element of this
// column.
func (p *Column) ByteWidth() uint {
	return (p.BitWidth + 7) / 8
}

// QualifiedColumnName returns the fully qualified name of a given column.
func QualifiedColumnName(module string, column string) string {
	if module == "" {
		return column
	}
	//
	return fmt.Sprintf("%s.%s", module, column)
}

// Split a qualified column name into its module and column components.
func splitQualifiedColumnName(name string) (string, string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	//
	return "", name
}
