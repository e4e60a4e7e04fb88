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

// Package logic implements the surface syntax of a small first-order and
// propositional logic: a fixed lexical alphabet, a total classifier which
// assigns every string one of nine semantic categories, and a capture-aware
// substitution operation used by the tableau engine to instantiate
// quantifiers.
package logic

// MaxConstants is the size of the fixed constant universe (a..j), and
// doubles as the default witness budget enforced by the tableau engine.
const MaxConstants = 10

// Propositions is the fixed alphabet of propositional atoms.
var Propositions = [...]byte{'p', 'q', 'r', 's'}

// Predicates is the fixed alphabet of binary predicate symbols.
var Predicates = [...]byte{'P', 'Q', 'R', 'S'}

// Constants is the fixed, ordered universe of constant symbols. Its length
// is MaxConstants.
var Constants = [...]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j'}

// Variables is the fixed alphabet of quantifiable variables.
var Variables = [...]byte{'x', 'y', 'z', 'w'}

const (
	// Forall is the universal quantifier token.
	Forall = 'A'
	// Exists is the existential quantifier token.
	Exists = 'E'
	// Negation is the negation prefix token.
	Negation = '~'
	// Comma separates the two terms of an atom.
	Comma = ','
	// LeftParen opens a binary formula or an atom's term list.
	LeftParen = '('
	// RightParen closes a binary formula or an atom's term list.
	RightParen = ')'
)

// BinaryConnectives is the fixed, ordered set of two-character binary
// connectives. Order matters only in that each is tried by exact match; none
// is a prefix of another so scan order is immaterial.
var BinaryConnectives = [...]string{"/\\", "\\/", "=>"}

func isIn(b byte, alphabet []byte) bool {
	for _, a := range alphabet {
		if a == b {
			return true
		}
	}

	return false
}

// IsProposition reports whether b is one of the fixed propositional atoms.
func IsProposition(b byte) bool { return isIn(b, Propositions[:]) }

// IsPredicate reports whether b is one of the fixed predicate symbols.
func IsPredicate(b byte) bool { return isIn(b, Predicates[:]) }

// IsConstant reports whether b is one of the fixed constant symbols.
func IsConstant(b byte) bool { return isIn(b, Constants[:]) }

// IsVariable reports whether b is one of the fixed variable symbols.
func IsVariable(b byte) bool { return isIn(b, Variables[:]) }

// IsTerm reports whether b may appear as an atom's argument, i.e. it is
// either a variable or a constant.
func IsTerm(b byte) bool { return IsVariable(b) || IsConstant(b) }

// connectiveAt returns the binary connective matching s at offset i, and its
// length, or ("", 0) if none matches.
func connectiveAt(s string, i int) (string, int) {
	for _, conn := range BinaryConnectives {
		n := len(conn)
		if i+n <= len(s) && s[i:i+n] == conn {
			return conn, n
		}
	}

	return "", 0
}
