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
package logic

// Category classifies a formula string into one of nine semantic kinds.
// Categories 1..5 are first-order, categories 6..8 are propositional; the
// two ranges never mix across a binary connective.
type Category uint8

const (
	// NotAFormula marks a string which is not a well-formed formula.
	NotAFormula Category = 0
	// Atom is a predicate application P(t1,t2).
	Atom Category = 1
	// NegFirstOrder is the negation of a first-order formula.
	NegFirstOrder Category = 2
	// Universal is a universally quantified first-order formula.
	Universal Category = 3
	// Existential is an existentially quantified first-order formula.
	Existential Category = 4
	// BinaryFirstOrder is a binary connective joining two first-order
	// formulas.
	BinaryFirstOrder Category = 5
	// Proposition is a propositional atom.
	Proposition Category = 6
	// NegPropositional is the negation of a propositional formula.
	NegPropositional Category = 7
	// BinaryPropositional is a binary connective joining two propositional
	// formulas.
	BinaryPropositional Category = 8
)

// IsFirstOrder reports whether c falls in the first-order range {1..5}.
func (c Category) IsFirstOrder() bool { return c >= Atom && c <= BinaryFirstOrder }

// IsPropositional reports whether c falls in the propositional range
// {6..8}.
func (c Category) IsPropositional() bool { return c >= Proposition && c <= BinaryPropositional }

// IsFormula reports whether c is any well-formed category, i.e. not
// NotAFormula.
func (c Category) IsFormula() bool { return c != NotAFormula }

var categoryNames = [...]string{
	NotAFormula:         "not a formula",
	Atom:                "an atom",
	NegFirstOrder:       "a negation of a first order logic formula",
	Universal:           "a universally quantified formula",
	Existential:         "an existentially quantified formula",
	BinaryFirstOrder:    "a binary connective first order formula",
	Proposition:         "a proposition",
	NegPropositional:    "a negation of a propositional formula",
	BinaryPropositional: "a binary connective propositional formula",
}

// String renders the category the way the reference driver's output text
// does, e.g. "an atom" or "a binary connective propositional formula".
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return "an unknown category"
}
