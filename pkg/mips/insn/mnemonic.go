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
package insn

// LookupOpcode returns the opcode of an I-form or J-form instruction with the
// given mnemonic (e.g. "addiu").
func LookupOpcode(mnemonic string) (uint8, bool) {
	for op, m := range opcodeMnemonics {
		if m == mnemonic {
			return op, true
		}
	}
	//
	return 0, false
}

// LookupFunct returns the function code of an R-form instruction with the given
// mnemonic (e.g. "addu").
func LookupFunct(mnemonic string) (uint8, bool) {
	for fn, m := range functMnemonics {
		if m == mnemonic {
			return fn, true
		}
	}
	//
	return 0, false
}
