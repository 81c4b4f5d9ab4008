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
	"os"

	"github.com/consensys/go-mipsim/pkg/mips/loader"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm [flags] source_file image_file",
	Short: "Assemble a given source file into a program image.",
	Long: `Assemble a given source file into a binary program image, which
	can then be executed with the run command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		var (
			base  = GetUint32(cmd, "base")
			order = getByteOrder(cmd)
			words = readAssemblyFile(args[0], base)
		)
		//
		if err := loader.WriteFile(args[1], words, order); err != nil {
			fmt.Println(err)
			os.Exit(EXIT_FAILURE)
		}
		//
		log.Debugf("wrote %d words to %s", len(words), args[1])
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
}
