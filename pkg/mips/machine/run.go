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
package machine

import (
	"context"
	"fmt"
)

// Controller decides, at each step boundary, whether or not a simulation
// should continue.  For example, an interactive front-end might wait for the
// user to press a key.
type Controller interface {
	// Continue is called before the given step (counting from zero) is
	// executed.  Returning false stops the simulation.
	Continue(step uint) (bool, error)
}

// Reporter is notified after every step of a simulation, including the final
// step which fetches the halt word.
type Reporter interface {
	Report(machine *Machine, step Step)
}

// Unattended is a controller which never stops a simulation.
type Unattended struct{}

// Continue implementation for the Controller interface.
func (p Unattended) Continue(uint) (bool, error) {
	return true, nil
}

// Reporters combines zero or more reporters into one, such that each is
// notified in turn.
type Reporters []Reporter

// Report implementation for the Reporter interface.
func (p Reporters) Report(machine *Machine, step Step) {
	for _, r := range p {
		r.Report(machine, step)
	}
}

// Reason identifies why a simulation stopped.
type Reason uint8

// HALTED indicates the halt word was fetched.
const HALTED Reason = 0

// STOPPED indicates the controller (or a cancelled context) stopped the
// simulation.
const STOPPED Reason = 1

// LIMIT indicates the step limit was reached.
const LIMIT Reason = 2

// FAILED indicates the simulation stopped because of an error.
const FAILED Reason = 3

func (p Reason) String() string {
	switch p {
	case HALTED:
		return "halted"
	case STOPPED:
		return "stopped"
	case LIMIT:
		return "step limit reached"
	case FAILED:
		return "failed"
	default:
		return "unknown"
	}
}

// Result summarises a completed simulation.
type Result struct {
	// Number of instructions executed (excluding the halt word)
	Steps uint
	// Reason the simulation stopped
	Reason Reason
}

// Run a simulation of this machine from the start of the text segment, until
// it halts, fails, is stopped by the controller or reaches its step limit.
// The context is checked only at step boundaries, and cancelling it stops the
// simulation in the same way as the controller.  Every step (including that
// which halts) is forwarded to the reporter.  Either controller or reporter
// may be nil.
func (p *Machine) Run(ctx context.Context, controller Controller, reporter Reporter) (Result, error) {
	var (
		result = Result{0, FAILED}
		limit  = p.config.Limit
	)
	//
	if controller == nil {
		controller = Unattended{}
	}
	//
	p.Boot()
	//
	for {
		if limit != 0 && result.Steps >= limit {
			result.Reason = LIMIT
			return result, nil
		} else if ctx.Err() != nil {
			result.Reason = STOPPED
			return result, nil
		} else if ok, err := controller.Continue(result.Steps); err != nil {
			return result, err
		} else if !ok {
			result.Reason = STOPPED
			return result, nil
		}
		//
		step, err := p.Step()
		if err != nil {
			return result, fmt.Errorf("step %d (pc 0x%08x): %w", result.Steps, step.PC, err)
		}
		//
		if reporter != nil {
			reporter.Report(p, step)
		}
		//
		if step.Halted {
			result.Reason = HALTED
			return result, nil
		}
		//
		result.Steps++
	}
}
