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
package logic_test

import (
	"testing"

	"github.com/365614269/tableau/pkg/logic"
	"github.com/stretchr/testify/assert"
)

func Test_Classify_Atom(t *testing.T) {
	assert.Equal(t, logic.Atom, logic.Classify("P(a,b)"))
	assert.Equal(t, logic.Atom, logic.Classify("Q(x,y)"))
}

func Test_Classify_Proposition(t *testing.T) {
	assert.Equal(t, logic.Proposition, logic.Classify("p"))
	assert.Equal(t, logic.Proposition, logic.Classify("s"))
}

func Test_Classify_Negations(t *testing.T) {
	assert.Equal(t, logic.NegFirstOrder, logic.Classify("~P(a,b)"))
	assert.Equal(t, logic.NegPropositional, logic.Classify("~p"))
}

func Test_Classify_BinaryPropositional(t *testing.T) {
	assert.Equal(t, logic.BinaryPropositional, logic.Classify("(p/\\q)"))
}

func Test_Classify_BinaryFirstOrder(t *testing.T) {
	assert.Equal(t, logic.BinaryFirstOrder, logic.Classify("(P(a,b)=>Q(c,d))"))
}

func Test_Classify_Quantifiers(t *testing.T) {
	assert.Equal(t, logic.Universal, logic.Classify("AxP(x,a)"))
	assert.Equal(t, logic.Existential, logic.Classify("ExP(x,a)"))
}

func Test_Classify_MixedCategoriesRejected(t *testing.T) {
	assert.Equal(t, logic.NotAFormula, logic.Classify("(p/\\P(a,b))"))
}

func Test_Classify_NotAFormula(t *testing.T) {
	assert.Equal(t, logic.NotAFormula, logic.Classify(""))
	assert.Equal(t, logic.NotAFormula, logic.Classify("T(a,b)"))
	assert.Equal(t, logic.NotAFormula, logic.Classify("(p/\\"))
	assert.Equal(t, logic.NotAFormula, logic.Classify("pq"))
}

func Test_Classify_TrimsSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, logic.Proposition, logic.Classify("  p\t"))
}

func Test_Classify_TotalOverCategoryRange(t *testing.T) {
	inputs := []string{"", "p", "P(a,b)", "~p", "~P(a,b)", "(p/\\q)", "(P(a,b)=>Q(c,d))",
		"AxP(x,a)", "ExP(x,a)", "garbage((", "AxAyP(x,y)"}

	for _, in := range inputs {
		c := logic.Classify(in)
		assert.True(t, c <= logic.BinaryPropositional)
	}
}

func Test_Split_Atom(t *testing.T) {
	lhs, conn, rhs, ok := logic.Split("(P(a,b)=>Q(c,d))")
	assert.True(t, ok)
	assert.Equal(t, "P(a,b)", lhs)
	assert.Equal(t, "=>", conn)
	assert.Equal(t, "Q(c,d)", rhs)
}

func Test_Split_NestedParens(t *testing.T) {
	lhs, conn, rhs, ok := logic.Split("((p/\\q)\\/r)")
	assert.True(t, ok)
	assert.Equal(t, "(p/\\q)", lhs)
	assert.Equal(t, "\\/", conn)
	assert.Equal(t, "r", rhs)
}

func Test_Split_RoundTrip(t *testing.T) {
	fmla := "(P(a,b)=>Q(c,d))"
	lhs, conn, rhs, ok := logic.Split(fmla)
	assert.True(t, ok)
	assert.Equal(t, fmla, "("+lhs+conn+rhs+")")
}

func Test_Negate_Involution(t *testing.T) {
	for _, f := range []string{"p", "P(a,b)", "(p/\\q)"} {
		assert.Equal(t, f, logic.Negate(logic.Negate(f)))
	}
}

func Test_Negate_PrependsOrStrips(t *testing.T) {
	assert.Equal(t, "~p", logic.Negate("p"))
	assert.Equal(t, "p", logic.Negate("~p"))
}

func Test_StripDoubleNegations(t *testing.T) {
	assert.Equal(t, "p", logic.StripDoubleNegations("~~p"))
	assert.Equal(t, "p", logic.StripDoubleNegations("~~~~p"))
	assert.Equal(t, "~p", logic.StripDoubleNegations("~p"))
}
