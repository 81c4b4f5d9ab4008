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
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/consensys/go-mipsim/pkg/mips/asm"
	"github.com/spf13/cobra"
)

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program_file",
	Short: "Disassemble a given program.",
	Long: `Disassemble a given program, printing the address, encoding and
	assembly text of each instruction word.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		var (
			base  = GetUint32(cmd, "base")
			words = readProgramFile(args[0], base, getByteOrder(cmd), math.MaxUint)
		)
		//
		for _, line := range asm.Disassemble(words, base) {
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
