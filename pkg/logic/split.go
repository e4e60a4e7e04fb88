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

// Split locates the top-level binary connective of a fully parenthesised
// formula "(lhs CONN rhs)" and returns its three pieces. It scans left to
// right maintaining a parenthesis-depth counter starting at 1 (for the
// opening paren already consumed by the caller); the first connective found
// at depth 1 is the split point. ok is false if fmla is not of the form
// "(...)" or no top-level connective is found.
func Split(fmla string) (lhs string, conn string, rhs string, ok bool) {
	if len(fmla) < 2 || fmla[0] != LeftParen || fmla[len(fmla)-1] != RightParen {
		return "", "", "", false
	}

	depth := 1

	for i := 1; i < len(fmla); i++ {
		switch fmla[i] {
		case LeftParen:
			depth++
		case RightParen:
			depth--
		}

		if depth != 1 {
			continue
		}

		if c, n := connectiveAt(fmla, i); n > 0 {
			lhs = fmla[1:i]
			conn = c
			rhs = fmla[i+n : len(fmla)-1]

			return lhs, conn, rhs, true
		}
	}

	return "", "", "", false
}

// LHS returns the left-hand operand of a binary formula, or "" if none.
func LHS(fmla string) string {
	lhs, _, _, _ := Split(fmla)
	return lhs
}

// Connective returns the top-level binary connective of a binary formula, or
// "" if none.
func Connective(fmla string) string {
	_, conn, _, _ := Split(fmla)
	return conn
}

// RHS returns the right-hand operand of a binary formula, or "" if none.
func RHS(fmla string) string {
	_, _, rhs, _ := Split(fmla)
	return rhs
}
