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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Closed_SingleLiteralOpen(t *testing.T) {
	tab := NewTableau("p", 10)
	assert.False(t, tab.Closed())
}

func Test_Closed_LinearClash(t *testing.T) {
	tab := NewTableau("p", 10)
	extendLinear(tab.Root, "~p")
	assert.True(t, tab.Closed())
}

func Test_Closed_BetaOneBranchOpenOneClosed(t *testing.T) {
	tab := NewTableau("p", 10)
	extendBeta(tab.Root, "q", "~p")
	// Left branch: p, q -- no clash. Right branch: p, ~p -- clash.
	// Tableau is closed only when EVERY branch is closed.
	assert.False(t, tab.Closed())
}

func Test_Closed_BetaBothBranchesClash(t *testing.T) {
	tab := NewTableau("p", 10)
	extendBeta(tab.Root, "~p", "~p")
	assert.True(t, tab.Closed())
}

func Test_Closed_AlphaChainClash(t *testing.T) {
	tab := NewTableau("(p/\\~p)", 10)
	extendAlpha(tab.Root, "p", "~p")
	assert.True(t, tab.Closed())
}

func Test_Branches_CountsLeaves(t *testing.T) {
	tab := NewTableau("p", 10)
	extendBeta(tab.Root, "q", "r")
	paths := branches(tab.Root, nil)
	assert.Len(t, paths, 2)
	assert.Equal(t, []string{"p", "q"}, paths[0])
	assert.Equal(t, []string{"p", "r"}, paths[1])
}
