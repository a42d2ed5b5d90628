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


package bst

import "cmp"

// Search looks for key in the subtree rooted at n. Ties descend right, so the
// first node holding key on the search path is returned. Reaching a missing
// child or a sentinel ends the search unsuccessfully.
func (n *Node[K]) Search(key K) (_ *Node[K], found bool) {
	for cur := n; cur != nil && cur.hasKey; {
		switch c := cmp.Compare(key, cur.key); {
		case c == 0:
			return cur, true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, false
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[K]) Min() *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[K]) Max() *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Root follows parent links up from n and returns the node which has none.
func (n *Node[K]) Root() *Node[K] {
	for p := n.Parent(); p != nil; p = n.Parent() {
		n = p
	}
	return n
}

// Successor returns the node which follows n in an in-order walk of its tree.
// If n is the last node of the tree, n itself is returned; callers detect the
// end of the tree by comparing the result with n.
func (n *Node[K]) Successor() *Node[K] {
	if n.right != nil {
		return n.right.Min()
	}
	cur, p := n, n.Parent()
	for p != nil && p.right == cur {
		cur, p = p, p.Parent()
	}
	if p == nil {
		return n
	}
	return p
}

// Predecessor returns the node which precedes n in an in-order walk of its
// tree. If n is the first node of the tree, n itself is returned.
func (n *Node[K]) Predecessor() *Node[K] {
	if n.left != nil {
		return n.left.Max()
	}
	cur, p := n, n.Parent()
	for p != nil && p.left == cur {
		cur, p = p, p.Parent()
	}
	if p == nil {
		return n
	}
	return p
}

// Height returns the number of nodes on the longest downward path from n.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}
