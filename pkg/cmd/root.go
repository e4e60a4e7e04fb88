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
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands.
// Invoked with a bare filename it behaves like "tableau check <file>", the
// direct analogue of the coursework driver's single entrypoint.
var rootCmd = &cobra.Command{
	Use:   "tableau",
	Short: "An analytic tableau decision procedure for a small FOL/propositional logic.",
	Long: "Classifies formulas in a parenthesised, quantifier-prefix first-order and " +
		"propositional logic and decides their satisfiability by tableau expansion.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}

		if len(args) == 0 {
			_ = cmd.Help()
			return
		}

		runCheck(cmd, args[0])
	},
}

func printVersion() {
	fmt.Print("tableau ")

	switch {
	case Version != "":
		fmt.Printf("%s", Version)
	default:
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Printf("%s", info.Main.Version)
		} else {
			fmt.Printf("(unknown version)")
		}
	}

	fmt.Println()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().Uint("max-constants", 10, "witness budget for existential / negated-universal instantiation")

	cobra.OnInitialize(func() {
		if GetFlag(rootCmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	})

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(satCmd)
	rootCmd.AddCommand(checkCmd)
}
