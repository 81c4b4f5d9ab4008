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
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// ToJsonString converts a set of columns into a JSON string.  For example,
// {"mips.X": [0], "mips.Y": [1]} is a trace containing one row of data each
// for two columns "X" and "Y" in module "mips".
func ToJsonString(columns []Column) string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, ith := range columns {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString("\"")
		builder.WriteString(ith.QualifiedName())
		builder.WriteString("\": [")
		//
		for j, jth := range ith.Data {
			if j != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(strconv.FormatUint(uint64(jth), 10))
		}
		//
		builder.WriteString("]")
	}
	//
	builder.WriteString("}")
	// Done
	return builder.String()
}

// FromJsonBytes parses a set of columns expressed in JSON notation.  Since
// JSON objects are unordered, columns are returned sorted by qualified name.
// Furthermore, bitwidths are not preserved and are assumed to be 32bits.
func FromJsonBytes(data []byte) ([]Column, error) {
	var (
		rawData map[string][]uint32
		columns []Column
	)
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, err
	}
	//
	for name, values := range rawData {
		mod, col := splitQualifiedColumnName(name)
		columns = append(columns, Column{mod, col, 32, values})
	}
	//
	slices.SortFunc(columns, func(l, r Column) int {
		return strings.Compare(l.QualifiedName(), r.QualifiedName())
	})
	//
	return columns, nil
}
