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
package cmd

import (
	"fmt"

	"github.com/365614269/tableau/pkg/logic"
	"github.com/365614269/tableau/pkg/tableau"
	"github.com/365614269/tableau/pkg/util"
)

// nonBlankLines reads filename and returns its lines with the mode line (the
// first, if present) and any empty lines stripped. A missing file yields no
// lines; any other failure to read it panics inside util.ReadInputFile.
func nonBlankLines(filename string, skipFirst bool) []string {
	lines := util.ReadInputFile(filename)
	if skipFirst && len(lines) > 0 {
		lines = lines[1:]
	}

	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// printClassification prints the coursework driver's PARSE-mode line for a
// single formula.
func printClassification(fmla string) {
	category := logic.Classify(fmla)

	output := fmt.Sprintf("%s is %s.", fmla, category)
	if category == logic.BinaryFirstOrder || category == logic.BinaryPropositional {
		lhs, conn, rhs, _ := logic.Split(fmla)
		output += fmt.Sprintf(" Its left hand side is %s, its connective is %s, and its right hand side is %s.",
			lhs, conn, rhs)
	}

	fmt.Println(output)
}

// printSatisfiability prints the coursework driver's SAT-mode line for a
// single formula, deciding satisfiability with the given witness budget.
func printSatisfiability(fmla string, maxConstants uint) {
	if logic.Classify(fmla) == logic.NotAFormula {
		fmt.Printf("%s is not a formula.\n", fmla)
		return
	}

	verdict := tableau.NewEngine(maxConstants).Decide(fmla)
	fmt.Printf("%s %s.\n", fmla, verdict)
}
