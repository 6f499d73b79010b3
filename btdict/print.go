// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package btdict

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// label describes the pairs held by n.
func (n *node[K, V]) label() string {
	if n.three {
		return fmt.Sprintf("[%v:%v %v:%v]", n.p1.Key, n.p1.Value, n.p2.Key, n.p2.Value)
	}
	return fmt.Sprintf("[%v:%v]", n.p1.Key, n.p1.Value)
}

// print is used for testing/debugging purposes.
func (n *node[K, V]) print(t treeprint.Tree) {
	if n == nil {
		return
	}
	if n.left == nil {
		t.AddNode(n.label())
		return
	}
	branch := t.AddBranch(n.label())
	for i := 0; i <= n.size(); i++ {
		n.child(i).print(branch)
	}
}

// Print writes the node structure of d to w, one node per line, children
// indented below their parent.
func (d Dict[K, V]) Print(w io.Writer) error {
	t := treeprint.NewWithRoot(fmt.Sprintf("dict (len %d, height %d)", d.length, d.Height()))
	d.root.print(t)
	_, err := io.WriteString(w, t.String())
	return err
}
