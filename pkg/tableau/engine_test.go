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
package tableau_test

import (
	"testing"

	"github.com/365614269/tableau/pkg/logic"
	"github.com/365614269/tableau/pkg/tableau"
	"github.com/stretchr/testify/assert"
)

func Test_Decide_Proposition(t *testing.T) {
	assert.Equal(t, tableau.Open, tableau.Decide("p"))
}

func Test_Decide_ConjunctionWithNegation(t *testing.T) {
	assert.Equal(t, tableau.Closed, tableau.Decide("(p/\\~p)"))
}

func Test_Decide_ExcludedMiddle(t *testing.T) {
	assert.Equal(t, tableau.Open, tableau.Decide("(p\\/~p)"))
}

func Test_Decide_NegatedSelfImplication(t *testing.T) {
	assert.Equal(t, tableau.Closed, tableau.Decide("~(p=>p)"))
}

func Test_Decide_ReflexiveUniversal(t *testing.T) {
	assert.Equal(t, tableau.Open, tableau.Decide("AxP(x,x)"))
}

func Test_Decide_UniversalContradictsInstance(t *testing.T) {
	assert.Equal(t, tableau.Closed, tableau.Decide("(AxP(x,x)/\\~P(a,a))"))
}

// A single existential over a universal consumes exactly one constant: the
// witness budget is never approached, let alone exhausted.
func Test_Decide_SingleWitnessStaysWithinBudget(t *testing.T) {
	assert.Equal(t, tableau.Open, tableau.Decide("ExAyP(x,y)"))
}

// Exhaustion needs more independent delta-opportunities than the budget
// allows: a universal of a universal of an existential produces ten times
// ten candidate witnesses against a budget of ten.
func Test_Decide_NestedQuantifiersExhaustBudget(t *testing.T) {
	assert.Equal(t, tableau.Exhausted, tableau.Decide("AxAyEzP(y,z)"))
}

func Test_NewEngine_ClampsToMaxConstants(t *testing.T) {
	e := tableau.NewEngine(1000)
	assert.Equal(t, tableau.Exhausted, e.Decide("AxAyEzP(y,z)"))
	_ = logic.MaxConstants
}

func Test_Verdict_String(t *testing.T) {
	assert.Equal(t, "is not satisfiable", tableau.Closed.String())
	assert.Equal(t, "is satisfiable", tableau.Open.String())
	assert.Equal(t, "may or may not be satisfiable", tableau.Exhausted.String())
}

func Test_UsedConstants_NeverExceedsBudget(t *testing.T) {
	e := tableau.NewEngine(3)
	v := e.Decide("ExEyP(x,y)")
	assert.Equal(t, tableau.Open, v)
}
