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
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-mipsim/pkg/mips/memory"
	log "github.com/sirupsen/logrus"
)

// ErrProgramTooLarge is returned when an image holds more words than there is
// space for in the text segment.
var ErrProgramTooLarge = memory.ErrProgramTooLarge

// ErrPartialWord is returned when the size of an image is not a multiple of
// the word size.
var ErrPartialWord = errors.New("image ends with partial word")

// FromBytes parses a program image into a sequence of words, using the given
// byte order.  This fails if the image holds more than capacity words, or its
// length is not a multiple of the word size.
func FromBytes(data []byte, order binary.ByteOrder, capacity uint) ([]uint32, error) {
	var nwords = uint(len(data) / memory.WORD_SIZE)
	//
	if len(data)%memory.WORD_SIZE != 0 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrPartialWord, len(data))
	} else if nwords > capacity {
		return nil, fmt.Errorf("%w (%d words, capacity %d)", ErrProgramTooLarge, nwords, capacity)
	}
	//
	words := make([]uint32, nwords)
	//
	for i := range words {
		words[i] = order.Uint32(data[i*memory.WORD_SIZE:])
	}
	//
	return words, nil
}

// Read a program image from a given reader.
func Read(reader io.Reader, order binary.ByteOrder, capacity uint) ([]uint32, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	//
	return FromBytes(data, order, capacity)
}

// ReadFile reads a program image from a given file.
func ReadFile(filename string, order binary.ByteOrder, capacity uint) ([]uint32, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	words, err := FromBytes(data, order, capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("loaded %d words from %s (%s)", len(words), filename, order)
	//
	for i, w := range words {
		log.Debugf("%08x: %08x", memory.BASE+uint32(i*memory.WORD_SIZE), w)
	}
	//
	return words, nil
}

// ToBytes converts a sequence of words into a program image, using the given
// byte order.  This is the inverse of FromBytes.
func ToBytes(words []uint32, order binary.ByteOrder) []byte {
	var data = make([]byte, len(words)*memory.WORD_SIZE)
	//
	for i, w := range words {
		order.PutUint32(data[i*memory.WORD_SIZE:], w)
	}
	//
	return data
}

// WriteFile writes a sequence of words as a program image to a given file.
func WriteFile(filename string, words []uint32, order binary.ByteOrder) error {
	return os.WriteFile(filename, ToBytes(words, order), 0644)
}
