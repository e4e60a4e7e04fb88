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

// Expand eliminates the outermost quantifier binding variable, replacing
// every free occurrence of variable within that quantifier's scope by
// constant. The substitution operates on the surface string and is
// capture-aware: a nested quantifier which rebinds the same variable name
// shadows it, so occurrences inside that inner scope are left untouched.
//
// Expand never fails: called on anything other than a well-classified
// first-order formula it returns fmla unchanged.
func Expand(fmla string, variable byte, constant byte) string {
	return expand(fmla, variable, constant, nil, false)
}

// shadowed reports whether variable is currently hidden by an enclosing
// rebinding quantifier.
func shadowed(bound []byte, variable byte) bool {
	for _, b := range bound {
		if b == variable {
			return true
		}
	}

	return false
}

func expand(fmla string, variable byte, constant byte, bound []byte, removed bool) string {
	switch Classify(fmla) {
	case Atom:
		if shadowed(bound, variable) {
			return fmla
		}

		return strings.ReplaceAll(fmla, string(variable), string(constant))
	case NegFirstOrder, NegPropositional:
		return string(Negation) + expand(fmla[1:], variable, constant, bound, removed)
	case Universal, Existential:
		quantifier, boundVar, scope := fmla[0], fmla[1], fmla[2:]

		if boundVar == variable && !removed {
			return expand(scope, variable, constant, bound, true)
		}

		nbound := append(append([]byte{}, bound...), boundVar)

		return string(quantifier) + string(boundVar) + expand(scope, variable, constant, nbound, removed)
	case BinaryFirstOrder, BinaryPropositional:
		lhs, conn, rhs, _ := Split(fmla)
		nlhs := expand(lhs, variable, constant, bound, removed)
		nrhs := expand(rhs, variable, constant, bound, removed)

		return string(LeftParen) + nlhs + conn + nrhs + string(RightParen)
	default:
		return fmla
	}
}
