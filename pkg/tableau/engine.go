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
package tableau

import (
	"strings"

	"github.com/365614269/tableau/pkg/logic"
	log "github.com/sirupsen/logrus"
)

// Engine drains the general queue of a tableau, dispatching the matching
// expansion rule at each node until the queue empties or the witness budget
// is exhausted. An Engine is stateless between calls to Decide. Gamma-
// expansion always ranges over all of logic.Constants; fresh witnesses are
// drawn in order from the first maxConstants entries of logic.Constants.
type Engine struct {
	maxConstants uint
}

// NewEngine constructs an Engine bounded by the given witness budget; a
// budget above logic.MaxConstants is clamped to logic.MaxConstants. Passing logic.MaxConstants reproduces spec.md's fixed 10-constant
// universe exactly.
func NewEngine(maxConstants uint) *Engine {
	if maxConstants > logic.MaxConstants {
		maxConstants = logic.MaxConstants
	}

	return &Engine{maxConstants: maxConstants}
}

// Decide builds a tableau rooted at fmla and expands it to completion,
// returning the resulting Verdict. fmla must already classify as a non-zero
// category; Decide does not itself validate this. Leading and trailing
// whitespace is stripped before the tableau is built, as Classify does.
func (e *Engine) Decide(fmla string) Verdict {
	t := NewTableau(strings.TrimSpace(fmla), e.maxConstants)

	q := newQueue[*Node]()
	q.push(t.Root)

	for !q.isEmpty() {
		front := q.pop()
		front.Formula = logic.StripDoubleNegations(front.Formula)

		if e.dispatch(t, front) == Exhausted {
			return Exhausted
		}

		if front.Left != nil {
			q.push(front.Left)
		}

		if front.Right != nil {
			q.push(front.Right)
		}
	}

	if t.Closed() {
		return Closed
	}

	return Open
}

// dispatch classifies front's formula and applies the matching tableau
// rule. It returns Exhausted if (and only if) this step ran out of witness
// budget; any other return value is not a final verdict, merely a signal to
// keep draining the queue.
func (e *Engine) dispatch(t *Tableau, front *Node) Verdict {
	fmla := front.Formula
	category := logic.Classify(fmla)

	log.Debugf("dispatch: %q classified as %s", fmla, category)

	switch category {
	case logic.Universal:
		e.expandUniversal(front, fmla)
	case logic.Existential:
		if !e.expandExistential(t, front, fmla) {
			return Exhausted
		}
	case logic.NegFirstOrder, logic.NegPropositional:
		if !e.expandNegation(t, front, fmla) {
			return Exhausted
		}
	case logic.BinaryFirstOrder, logic.BinaryPropositional:
		expandBinary(front, fmla)
	case logic.Atom, logic.Proposition:
		// Literal: no expansion, left for the closure check.
	case logic.NotAFormula:
		// Unreachable for a formula that classified as non-zero when
		// queued; double-negation normalisation never turns a formula into
		// a non-formula.
	}

	return Open
}

// expandUniversal applies the gamma-rule: instantiate over every constant in
// the fixed universe, re-usably (the universal itself is not consumed).
func (e *Engine) expandUniversal(front *Node, fmla string) {
	variable := fmla[1]

	for _, c := range logic.Constants {
		extendLinear(front, logic.Expand(fmla, variable, c))
	}
}

// expandExistential applies the delta-rule: consume one fresh constant and
// instantiate once. Returns false if the witness budget is exhausted.
func (e *Engine) expandExistential(t *Tableau, front *Node, fmla string) bool {
	c, ok := t.allocConstant()
	if !ok {
		log.Debug("witness budget exhausted on existential instantiation")
		return false
	}

	variable := fmla[1]
	extendLinear(front, logic.Expand(fmla, variable, c))

	return true
}

// expandNegation handles a negated formula: dispatches on the category of
// the inner (un-negated) formula, per spec.md's rule table. Returns false if
// a negated-universal delta-instantiation exhausts the witness budget.
func (e *Engine) expandNegation(t *Tableau, front *Node, fmla string) bool {
	inner := fmla[1:]

	switch logic.Classify(inner) {
	case logic.BinaryFirstOrder, logic.BinaryPropositional:
		lhs, conn, rhs, _ := logic.Split(inner)

		switch conn {
		case "/\\":
			extendBeta(front, logic.Negate(lhs), logic.Negate(rhs))
		case "\\/":
			extendAlpha(front, logic.Negate(lhs), logic.Negate(rhs))
		case "=>":
			extendAlpha(front, lhs, logic.Negate(rhs))
		}
	case logic.Universal:
		c, ok := t.allocConstant()
		if !ok {
			log.Debug("witness budget exhausted on negated-universal instantiation")
			return false
		}
		// Instantiate on the outer (still-negated) formula, preserving the
		// leading '~': equivalent to introducing ~psi[v:=c].
		variable := inner[1]
		extendLinear(front, logic.Expand(fmla, variable, c))
	case logic.Existential:
		variable := inner[1]

		for _, c := range logic.Constants {
			extendLinear(front, logic.Negate(logic.Expand(inner, variable, c)))
		}
	}

	return true
}

// expandBinary handles an un-negated binary formula per spec.md's rule
// table: conjunction is alpha, disjunction is beta, implication is beta over
// its negated antecedent.
func expandBinary(front *Node, fmla string) {
	lhs, conn, rhs, _ := logic.Split(fmla)

	switch conn {
	case "/\\":
		extendAlpha(front, lhs, rhs)
	case "\\/":
		extendBeta(front, lhs, rhs)
	case "=>":
		extendBeta(front, logic.Negate(lhs), rhs)
	}
}

// allocConstant hands out the next unused constant from the fixed universe,
// or reports false once the budget is spent.
func (t *Tableau) allocConstant() (byte, bool) {
	if t.usedConstants >= t.maxConstants {
		t.exhausted = true
		return 0, false
	}

	c := logic.Constants[t.usedConstants]
	t.usedConstants++

	return c, true
}

// Decide is a package-level convenience which constructs an Engine bounded
// by spec.md's fixed witness budget (logic.MaxConstants) and decides fmla.
func Decide(fmla string) Verdict {
	return NewEngine(logic.MaxConstants).Decide(fmla)
}
