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

	"github.com/consensys/go-mipsim/pkg/mips/trace"
	"github.com/consensys/go-mipsim/pkg/util/termio"
	"github.com/spf13/cobra"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace [flags] trace_file",
	Short: "Operate on a trace file.",
	Long: `Operate on a trace file, such as converting
	it from one format (e.g. lt) to another (e.g. json),
	listing columns or computing its fingerprint.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		// Parse trace
		columns := readTraceFile(args[0])
		//
		if GetFlag(cmd, "list") {
			listColumns(columns)
		}
		//
		if GetFlag(cmd, "fingerprint") {
			fingerprint := trace.Fingerprint(columns)
			fmt.Printf("0x%s\n", fingerprint.Text(16))
		}
		//
		if output := GetString(cmd, "out"); output != "" {
			writeTraceFile(output, columns)
		}
	},
}

func listColumns(columns []trace.Column) {
	tp := termio.NewTablePrinter(3, uint(len(columns)))
	//
	for i, c := range columns {
		tp.SetRow(uint(i), c.QualifiedName(), fmt.Sprintf("u%d", c.BitWidth), fmt.Sprintf("%d rows", len(c.Data)))
	}
	//
	if err := tp.Print(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FAILURE)
	}
}

func init() {
	traceCmd.Flags().BoolP("list", "l", false, "list columns in the trace file")
	traceCmd.Flags().Bool("fingerprint", false, "print fingerprint of the trace file")
	traceCmd.Flags().StringP("out", "o", "", "specify output file.")
	rootCmd.AddCommand(traceCmd)
}
