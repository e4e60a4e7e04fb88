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
	"github.com/365614269/tableau/pkg/logic"
	"github.com/365614269/tableau/pkg/util/collection/set"
)

// Closed determines whether every root-to-leaf branch of t contains a
// literal clash, i.e. a formula and its syntactic negation.
func (t *Tableau) Closed() bool {
	for _, branch := range branches(t.Root, nil) {
		if !branchClosed(branch) {
			return false
		}
	}

	return true
}

// branches collects every root-to-leaf path as a slice of formula strings.
func branches(n *Node, path []string) [][]string {
	if n == nil {
		return nil
	}

	// Cap the slice first so sibling subtrees never share a backing array.
	path = append(path[:len(path):len(path)], n.Formula)

	if n.IsLeaf() {
		return [][]string{path}
	}

	var result [][]string
	if n.Left != nil {
		result = append(result, branches(n.Left, path)...)
	}

	if n.Right != nil {
		result = append(result, branches(n.Right, path)...)
	}

	return result
}

// branchClosed reports whether path contains two formulas where one is the
// syntactic negation of the other.
func branchClosed(path []string) bool {
	seen := set.NewSortedSet[string]()

	for _, f := range path {
		if seen.Contains(logic.Negate(f)) {
			return true
		}

		seen.Insert(f)
	}

	return false
}
