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

import "strings"

// Classify recognises a formula string and returns its Category. Classify is
// total and deterministic: it never panics and returns NotAFormula for any
// string which is not well-formed. Leading/trailing whitespace on the input
// as a whole is stripped once before classification; interior whitespace
// (including immediately after a quantifier's bound variable) is never
// accepted and causes rejection.
func Classify(fmla string) Category {
	return classify(strings.TrimSpace(fmla))
}

// classify is the recursive worker. Unlike Classify, it never trims: every
// substring it descends into is already a precisely-delimited piece of a
// larger formula, and silently tolerating whitespace there would accept
// formulas the surface syntax forbids.
func classify(fmla string) Category {
	if fmla == "" {
		return NotAFormula
	}

	if c, ok := classifyAtom(fmla); ok {
		return c
	}

	if c, ok := classifyQuantified(fmla); ok {
		return c
	}

	if len(fmla) == 1 && IsProposition(fmla[0]) {
		return Proposition
	}

	if fmla[0] == Negation {
		return classifyNegation(fmla[1:])
	}

	if fmla[0] == LeftParen && fmla[len(fmla)-1] == RightParen {
		if c, ok := classifyBinary(fmla); ok {
			return c
		}
	}

	return NotAFormula
}

// classifyAtom recognises P(t1,t2) — exactly 6 characters.
func classifyAtom(fmla string) (Category, bool) {
	if len(fmla) != 6 {
		return NotAFormula, false
	}

	pred, left, t1, comma, t2, right := fmla[0], fmla[1], fmla[2], fmla[3], fmla[4], fmla[5]

	if IsPredicate(pred) && left == LeftParen && comma == Comma && right == RightParen &&
		IsTerm(t1) && IsTerm(t2) {
		return Atom, true
	}

	return NotAFormula, false
}

// classifyQuantified recognises "Av phi" / "Ev phi" where phi classifies as
// a first-order formula, with no whitespace between the quantifier, its
// variable, and the scope.
func classifyQuantified(fmla string) (Category, bool) {
	if len(fmla) < 3 {
		return NotAFormula, false
	}

	quantifier, v := fmla[0], fmla[1]
	if !IsVariable(v) {
		return NotAFormula, false
	}

	inner := classify(fmla[2:])
	if !inner.IsFirstOrder() {
		return NotAFormula, false
	}

	switch quantifier {
	case Forall:
		return Universal, true
	case Exists:
		return Existential, true
	default:
		return NotAFormula, false
	}
}

// classifyNegation recognises the tail following a leading '~'.
func classifyNegation(tail string) Category {
	inner := classify(tail)

	switch {
	case inner.IsFirstOrder():
		return NegFirstOrder
	case inner.IsPropositional():
		return NegPropositional
	default:
		return NotAFormula
	}
}

// classifyBinary recognises "(lhs CONN rhs)" where both sides agree on
// range membership (both first-order, or both propositional).
func classifyBinary(fmla string) (Category, bool) {
	lhs, conn, rhs, ok := Split(fmla)
	if !ok || lhs == "" || rhs == "" {
		return NotAFormula, false
	}

	lc, rc := classify(lhs), classify(rhs)

	switch {
	case lc.IsFirstOrder() && rc.IsFirstOrder():
		return BinaryFirstOrder, true
	case lc.IsPropositional() && rc.IsPropositional():
		return BinaryPropositional, true
	default:
		return NotAFormula, false
	}
}
