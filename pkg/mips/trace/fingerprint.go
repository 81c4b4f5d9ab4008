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
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Fingerprint compresses a set of columns into a single field element, such
// that different traces are (with overwhelming probability) given different
// fingerprints.  Each column is folded into an element by evaluating it as a
// polynomial at a challenge point derived from its name.  The column
// fingerprints (and their lengths) are then folded together in the same way.
func Fingerprint(columns []Column) fr.Element {
	var (
		acc fr.Element
		r   = challenge(MODULE)
	)
	//
	for _, ith := range columns {
		var (
			col    = foldColumn(ith)
			length = fr.NewElement(uint64(len(ith.Data)))
		)
		//
		acc.Mul(&acc, &r)
		acc.Add(&acc, &length)
		acc.Mul(&acc, &r)
		acc.Add(&acc, &col)
	}
	//
	return acc
}

// Fold a column into a single element using Horner's method.
func foldColumn(column Column) fr.Element {
	var (
		acc fr.Element
		r   = challenge(column.QualifiedName())
	)
	//
	for _, v := range column.Data {
		var e fr.Element
		//
		e.SetUint64(uint64(v))
		acc.Mul(&acc, &r)
		acc.Add(&acc, &e)
	}
	//
	return acc
}

// Derive a challenge point from a given label.
func challenge(label string) fr.Element {
	var (
		r    fr.Element
		hash = sha256.Sum256([]byte(label))
	)
	//
	r.SetBytes(hash[:])
	//
	return r
}
