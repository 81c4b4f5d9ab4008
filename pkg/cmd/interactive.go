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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-mipsim/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// interactiveController pauses before each step until the user presses a key.
// Pressing 'q' (or escape) stops the simulation.  When the input is not a
// terminal, whole lines are read instead.
type interactiveController struct {
	out      io.Writer
	keyboard *termio.Keyboard
	lines    *bufio.Reader
}

func newInteractiveController(in *os.File, out io.Writer) *interactiveController {
	keyboard, err := termio.NewKeyboard(in)
	//
	if err != nil {
		log.Debugf("reading whole lines (%s)", err)
		return &interactiveController{out, nil, bufio.NewReader(in)}
	}
	//
	return &interactiveController{out, keyboard, nil}
}

// Continue implementation for the machine.Controller interface.
func (p *interactiveController) Continue(step uint) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "[%d] > ", step); err != nil {
		return false, err
	}
	//
	if p.keyboard != nil {
		key, err := p.keyboard.ReadKey()
		if err != nil {
			return false, err
		}
		//
		fmt.Fprintln(p.out)
		//
		switch key {
		case 'q', termio.ESC, termio.CTRL_C:
			return false, nil
		default:
			return true, nil
		}
	}
	//
	line, err := p.lines.ReadString('\n')
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	//
	return strings.TrimSpace(line) != "q", nil
}
