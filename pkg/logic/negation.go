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

// Negate returns the syntactic negation of fmla: it strips a leading '~' if
// present, otherwise it prepends one. Negate(Negate(x)) == x always holds as
// a pure string identity.
func Negate(fmla string) string {
	if len(fmla) > 0 && fmla[0] == Negation {
		return fmla[1:]
	}

	return string(Negation) + fmla
}

// StripDoubleNegations repeatedly removes leading "~~" pairs, as performed
// lazily by the tableau engine at dispatch time before a node's formula is
// classified.
func StripDoubleNegations(fmla string) string {
	for len(fmla) >= 2 && fmla[0] == Negation && fmla[1] == Negation {
		fmla = fmla[2:]
	}

	return fmla
}
