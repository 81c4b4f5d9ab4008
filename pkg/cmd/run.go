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
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-mipsim/pkg/mips/machine"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/register"
	"github.com/consensys/go-mipsim/pkg/mips/report"
	"github.com/consensys/go-mipsim/pkg/mips/trace"
	"github.com/consensys/go-mipsim/pkg/util"
	"github.com/consensys/go-mipsim/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "Execute a given program until it halts.",
	Long: `Execute a given program until it halts, reporting the effect of
	each instruction as it is executed.  Programs can be given either as
	raw binary images or as assembly (.s) files.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg runConfig

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		cfg.layout = memory.Layout{
			Base:         GetUint32(cmd, "base"),
			Instructions: GetUint(cmd, "instructions"),
			Data:         GetUint(cmd, "data"),
		}
		cfg.order = getByteOrder(cmd)
		cfg.limit = GetUint(cmd, "max-steps")
		cfg.report.Registers = GetFlag(cmd, "registers")
		cfg.report.Memory = GetFlag(cmd, "memory")
		cfg.report.Debug = GetFlag(cmd, "debug")
		cfg.report.Colour = !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
		cfg.quiet = GetFlag(cmd, "quiet")
		cfg.interactive = GetFlag(cmd, "interactive")
		cfg.trace = GetString(cmd, "trace")
		//
		if GetFlag(cmd, "hardwired-zero") {
			cfg.zero = register.HARDWIRED_ZERO
		}
		// Go!
		runProgram(args[0], cfg)
	},
}

// run config encapsulates the parameters used when executing a program.
type runConfig struct {
	// Layout of the address space
	layout memory.Layout
	// Byte order of the program image
	order binary.ByteOrder
	// Treatment of writes to register zero
	zero register.Policy
	// Maximum number of steps to execute (0 means no limit)
	limit uint
	// Determines what is printed after each step
	report report.Config
	// Suppress per-step output
	quiet bool
	// Wait for a key press before each step
	interactive bool
	// File to which the execution trace is written (if any)
	trace string
}

func runProgram(filename string, cfg runConfig) {
	var (
		reporters  machine.Reporters
		controller machine.Controller = machine.Unattended{}
		printer    *report.Printer
		recorder   *trace.Recorder
		config     = machine.DefaultConfig().WithLayout(cfg.layout).WithZero(cfg.zero).WithLimit(cfg.limit)
	)
	//
	m, err := machine.New(config)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}
	//
	program := readProgramFile(filename, cfg.layout.Base, cfg.order, cfg.layout.Instructions)
	//
	if err := m.Load(program); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_LOAD)
	}
	//
	log.Debugf("loaded %d instructions into %s", len(program), cfg.layout)
	//
	if !cfg.quiet {
		printer = report.NewPrinter(os.Stdout, cfg.report)
		reporters = append(reporters, printer)
	}
	//
	if cfg.trace != "" {
		recorder = trace.NewRecorder()
		reporters = append(reporters, recorder)
	}
	//
	if cfg.interactive {
		controller = newInteractiveController(os.Stdin, os.Stdout)
	}
	// Stop cleanly on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	stats := util.NewPerfStats()
	result, err := m.Run(ctx, controller, reporters)
	//
	stop()
	stats.Log("Simulation", result.Steps)
	log.Debugf("simulation %s after %d steps", result.Reason, result.Steps)
	//
	if recorder != nil {
		writeTraceFile(cfg.trace, recorder.Columns())
	}
	//
	if printer != nil && printer.Err() != nil {
		fmt.Fprintln(os.Stderr, printer.Err())
		os.Exit(EXIT_FAILURE)
	} else if err != nil {
		fmt.Println(err)
		os.Exit(exitCode(err))
	}
	//
	switch result.Reason {
	case machine.LIMIT:
		log.Warnf("execution stopped after %d steps without halting", result.Steps)
	case machine.STOPPED:
		log.Infof("execution stopped after %d steps", result.Steps)
	}
}

func init() {
	runCmd.Flags().BoolP("registers", "r", false, "print all registers after each step")
	runCmd.Flags().BoolP("memory", "m", false, "print all nonzero data memory after each step")
	runCmd.Flags().BoolP("debug", "d", false, "dump each decoded instruction")
	runCmd.Flags().BoolP("interactive", "i", false, "wait for a key press before each step")
	runCmd.Flags().BoolP("quiet", "q", false, "suppress per-step output")
	runCmd.Flags().Bool("no-colour", false, "disable highlighting of changes")
	runCmd.Flags().Bool("hardwired-zero", false, "discard writes to register zero")
	runCmd.Flags().Uint("max-steps", 0, "maximum number of steps to execute (0 for no limit)")
	runCmd.Flags().Uint("instructions", memory.DEFAULT_INSTRUCTIONS, "capacity (in words) of the text segment")
	runCmd.Flags().Uint("data", memory.DEFAULT_DATA, "capacity (in words) of the data segment")
	runCmd.Flags().String("trace", "", "write execution trace to file (.json or .lt)")
	rootCmd.AddCommand(runCmd)
}
