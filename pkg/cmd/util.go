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
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-mipsim/pkg/mips/asm"
	"github.com/consensys/go-mipsim/pkg/mips/insn"
	"github.com/consensys/go-mipsim/pkg/mips/loader"
	"github.com/consensys/go-mipsim/pkg/mips/memory"
	"github.com/consensys/go-mipsim/pkg/mips/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes used by the various commands.
const (
	EXIT_FAILURE = 1
	EXIT_USAGE   = 2
	EXIT_LOAD    = 3
	EXIT_DECODE  = 4
	EXIT_ACCESS  = 5
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint32 gets an expected 32bit unsigned integer, or panic if an error
// arises.
func GetUint32(cmd *cobra.Command, flag string) uint32 {
	r, err := cmd.Flags().GetUint32(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// Determine the byte order of program images.
func getByteOrder(cmd *cobra.Command) binary.ByteOrder {
	if GetFlag(cmd, "little-endian") {
		return binary.LittleEndian
	}
	//
	return binary.BigEndian
}

// Read a program from a file, using a parser based on the extension of the
// filename.  Assembly files (.s or .asm) are assembled for the given base
// address, whilst anything else is treated as a raw program image.
func readProgramFile(filename string, base uint32, order binary.ByteOrder, capacity uint) []uint32 {
	var (
		words []uint32
		err   error
	)
	//
	switch path.Ext(filename) {
	case ".s", ".asm":
		words = readAssemblyFile(filename, base)
		//
		if uint(len(words)) > capacity {
			err = fmt.Errorf("%s: %w (%d words, capacity %d)", filename, loader.ErrProgramTooLarge, len(words), capacity)
		}
	default:
		words, err = loader.ReadFile(filename, order, capacity)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_LOAD)
	}
	//
	return words
}

// Read and assemble a given source file, reporting syntax errors (if any).
func readAssemblyFile(filename string, base uint32) []uint32 {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_LOAD)
	}
	//
	words, errs := asm.Assemble(filename, string(bytes), base)
	//
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(e.Error())
		}
		//
		os.Exit(EXIT_LOAD)
	}
	//
	log.Debugf("assembled %d words from %s", len(words), filename)
	//
	return words
}

// Parse a trace file using a parser based on the extension of the filename.
func readTraceFile(filename string) []trace.Column {
	var columns []trace.Column
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		// Check file extension
		switch path.Ext(filename) {
		case ".json":
			columns, err = trace.FromJsonBytes(bytes)
		case ".lt":
			columns, err = trace.FromBytes(bytes)
		default:
			err = fmt.Errorf("unknown trace file format: %s", path.Ext(filename))
		}
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_LOAD)
	}
	//
	return columns
}

// Write a trace file using a format based on the extension of the filename.
func writeTraceFile(filename string, columns []trace.Column) {
	var err error
	//
	switch path.Ext(filename) {
	case ".json":
		err = os.WriteFile(filename, []byte(trace.ToJsonString(columns)), 0644)
	case ".lt":
		var bytes []byte
		//
		if bytes, err = trace.ToBytes(columns); err == nil {
			err = os.WriteFile(filename, bytes, 0644)
		}
	default:
		err = fmt.Errorf("unknown trace file format: %s", path.Ext(filename))
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FAILURE)
	}
	//
	log.Debugf("wrote %d columns to %s", len(columns), filename)
}

// Determine the exit code for a simulation error.
func exitCode(err error) int {
	var (
		decodeErr *insn.DecodeError
		accessErr *memory.AccessError
	)
	//
	switch {
	case errors.As(err, &decodeErr):
		return EXIT_DECODE
	case errors.As(err, &accessErr):
		return EXIT_ACCESS
	default:
		return EXIT_FAILURE
	}
}
