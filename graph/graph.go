// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.


// Package graph renders binary search trees as Graphviz digraphs.
package graph

import (
	"cmp"
	"fmt"

	"github.com/ajwerner/bst"
	"github.com/emicklei/dot"
)

// Dot returns the DOT source of a directed graph with one vertex per node of
// the subtree rooted at root. Edges to children are labelled "l" and "r".
// Sentinels are labelled "_".
func Dot[K cmp.Ordered](root *bst.Node[K]) string {
	g := dot.NewGraph(dot.Directed)
	if root == nil {
		return g.String()
	}
	var id int
	var traverse func(n *bst.Node[K], parent *dot.Node, direction string)
	traverse = func(n *bst.Node[K], parent *dot.Node, direction string) {
		id++
		v := g.Node(fmt.Sprintf("n%d", id)).Label(label(n))
		if parent != nil {
			parent.Edge(v, direction)
		}
		if l := n.Left(); l != nil {
			traverse(l, &v, "l")
		}
		if r := n.Right(); r != nil {
			traverse(r, &v, "r")
		}
	}
	traverse(root, nil, "")
	return g.String()
}

func label[K cmp.Ordered](n *bst.Node[K]) string {
	k, ok := n.Key()
	if !ok {
		return "_"
	}
	return fmt.Sprint(k)
}
