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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/365614269/tableau/pkg/util"
)

// satCmd decides the satisfiability of every non-blank line of a formula
// file, independent of any mode line.
var satCmd = &cobra.Command{
	Use:   "sat <file>",
	Short: "Decide the satisfiability of every formula in a file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxConstants := GetUint(cmd, "max-constants")
		stats := util.NewPerfStats()

		lines := nonBlankLines(args[0], false)
		log.Debugf("deciding %d line(s) from %s", len(lines), args[0])

		for _, line := range lines {
			printSatisfiability(line, maxConstants)
		}

		stats.Log("sat")
	},
}
