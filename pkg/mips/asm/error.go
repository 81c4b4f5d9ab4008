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
package asm

import "fmt"

// SyntaxError is a structured error which retains the line and span of the
// original text where an error occurred, along with an error message.
type SyntaxError struct {
	// Name of file being assembled
	Filename string
	// Line number (counting from 1)
	Line int
	// Characters within the line where the error arose
	Span Span
	// Error message being reported
	Message string
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", p.Filename, p.Line, p.Span.Start()+1, p.Message)
}
