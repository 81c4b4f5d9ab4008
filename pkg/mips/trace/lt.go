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
package trace

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// WriteBytes writes a given set of columns to an io.Writer in the (legacy) LT
// format.  This consists of a column count, followed by a header for each
// column (name, bytes per element and length) and, finally, the column data
// itself.  All values are big endian.
func WriteBytes(columns []Column, buf io.Writer) error {
	// Write column count
	if err := binary.Write(buf, binary.BigEndian, uint32(len(columns))); err != nil {
		return err
	}
	// Write header information
	for _, ith := range columns {
		nameBytes := []byte(ith.QualifiedName())
		// Write name length
		if err := binary.Write(buf, binary.BigEndian, uint16(len(nameBytes))); err != nil {
			return err
		}
		// Write name bytes
		if _, err := buf.Write(nameBytes); err != nil {
			return err
		}
		// Write bytes per element
		if err := binary.Write(buf, binary.BigEndian, uint8(ith.ByteWidth())); err != nil {
			return err
		}
		// Write data length
		if err := binary.Write(buf, binary.BigEndian, uint32(len(ith.Data))); err != nil {
			return err
		}
	}
	// Write column data information
	for _, ith := range columns {
		if err := writeColumnData(buf, ith); err != nil {
			return err
		}
	}
	// Done
	return nil
}

// ToBytes writes a given set of columns as an array of bytes in the (legacy)
// LT format.
func ToBytes(columns []Column) ([]byte, error) {
	var buf bytes.Buffer
	//
	if err := WriteBytes(columns, &buf); err != nil {
		return nil, err
	}
	//
	return buf.Bytes(), nil
}

func writeColumnData(w io.Writer, column Column) error {
	var (
		bytewidth = column.ByteWidth()
		word      [4]byte
	)
	//
	for _, v := range column.Data {
		binary.BigEndian.PutUint32(word[:], v)
		// Write least significant bytes only
		if _, err := w.Write(word[4-bytewidth:]); err != nil {
			return err
		}
	}
	//
	return nil
}

// FromBytes parses a byte array in the (legacy) LT format into a set of
// columns, or produces an error if the data was malformed in some way.
func FromBytes(data []byte) ([]Column, error) {
	var (
		buf     = bytes.NewReader(data)
		ncols   uint32
		columns []Column
	)
	// Read number of columns
	if err := binary.Read(buf, binary.BigEndian, &ncols); err != nil {
		return nil, err
	}
	// Read column headers
	for k := uint32(0); k < ncols; k++ {
		var (
			nameLen uint16
			width   uint8
			length  uint32
		)
		//
		if err := binary.Read(buf, binary.BigEndian, &nameLen); err != nil {
			return nil, err
		}
		//
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(buf, name); err != nil {
			return nil, err
		}
		//
		if err := binary.Read(buf, binary.BigEndian, &width); err != nil {
			return nil, err
		} else if width == 0 || width > 4 {
			return nil, fmt.Errorf("column %s has unsupported width %d", name, width)
		}
		//
		if err := binary.Read(buf, binary.BigEndian, &length); err != nil {
			return nil, err
		}
		//
		mod, col := splitQualifiedColumnName(string(name))
		columns = append(columns, Column{mod, col, uint(width) * 8, make([]uint32, length)})
	}
	// Read column data
	for _, ith := range columns {
		var word [4]byte
		//
		for j := range ith.Data {
			bytewidth := ith.ByteWidth()
			//
			if _, err := io.ReadFull(buf, word[4-bytewidth:]); err != nil {
				return nil, errors.New("malformed trace file")
			}
			//
			ith.Data[j] = binary.BigEndian.Uint32(word[:])
		}
	}
	//
	return columns, nil
}
