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
package memory

import "fmt"

// Flat is the concrete memory type used by the machine: a fixed-size array of
// words addressed through a WordDecoder.
type Flat = *Array[WordDecoder]

// Array is a flat-slice implementation of Memory backed by a []uint32.  Reads
// and writes are performed by delegating address decoding to a D (an
// AddressDecoder) which translates the incoming byte address into an index
// within the backing data.  The array never grows: its size is fixed when it is
// constructed.
type Array[D AddressDecoder] struct {
	name    string
	decoder D
	data    []uint32
}

// NewArray constructs an Array with the given name, decoder and size (in
// words).  All words are initially zero.
func NewArray[D AddressDecoder](name string, decoder D, size uint) *Array[D] {
	return &Array[D]{
		name,
		decoder,
		make([]uint32, size),
	}
}

// NewFlat constructs a memory covering the whole of a given layout.
func NewFlat(name string, layout Layout) Flat {
	return NewArray(name, NewWordDecoder(layout.Base, layout.Capacity()), layout.Capacity())
}

// Name implementation for Memory interface.
func (p *Array[D]) Name() string {
	return p.name
}

// Read implementation for Memory interface.
func (p *Array[D]) Read(address uint32) (uint32, error) {
	index, kind, ok := p.decoder.Decode(address)
	//
	if !ok {
		return 0, &AccessError{p.name, address, kind}
	}
	//
	return p.data[index], nil
}

// Write implementation for Memory interface.
func (p *Array[D]) Write(address uint32, value uint32) error {
	index, kind, ok := p.decoder.Decode(address)
	//
	if !ok {
		return &AccessError{p.name, address, kind}
	}
	//
	p.data[index] = value
	//
	return nil
}

// Contents implementation for Memory interface.
func (p *Array[D]) Contents() []uint32 {
	return p.data
}

// Initialise the lowest words of this memory with the given values, such as
// when loading a program image.  Any remaining words are reset to zero.
func (p *Array[D]) Initialise(words []uint32) error {
	if len(words) > len(p.data) {
		return fmt.Errorf("%s too small for %d words", p.name, len(words))
	}
	//
	n := copy(p.data, words)
	clear(p.data[n:])
	//
	return nil
}
