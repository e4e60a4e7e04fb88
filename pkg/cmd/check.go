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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/365614269/tableau/pkg/util"
)

// checkCmd reproduces the coursework driver's combined-mode entrypoint: the
// first line of the file names which of PARSE/SAT to run, and every
// subsequent non-blank line is a candidate formula.
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the PARSE and/or SAT passes named on a file's first line.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCheck(cmd, args[0])
	},
}

func runCheck(cmd *cobra.Command, filename string) {
	raw := util.ReadInputFile(filename)
	if len(raw) == 0 {
		return
	}

	mode := raw[0]
	doParse := strings.Contains(mode, "PARSE")
	doSat := strings.Contains(mode, "SAT")
	maxConstants := GetUint(cmd, "max-constants")

	lines := nonBlankLines(filename, true)
	log.Debugf("checking %d line(s) from %s (parse=%v, sat=%v)", len(lines), filename, doParse, doSat)

	for _, line := range lines {
		if doParse {
			printClassification(line)
		}

		if doSat {
			printSatisfiability(line, maxConstants)
		}
	}
}
