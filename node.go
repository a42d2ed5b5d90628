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


// Package bst implements a node-based binary search tree with parent links.
//
// Children are owned by their parent through ordinary pointers. The link from
// a child back to its parent is a weak pointer: it never keeps the parent
// alive, so a tree stays reachable only as long as the caller retains its
// root (or some other owning path to the nodes it navigates from). Resolving
// a parent link whose target has been collected is a violation of that
// contract and panics.
//
// The caller is responsible for keeping keys in tree order when attaching
// children; nothing in this package validates ordering on mutation.
package bst

import (
	"cmp"
	"fmt"
	"weak"

	"github.com/cockroachdb/errors"
)

// Node is a node of a binary search tree. A Node without a key is a sentinel.
//
// Nodes are not safe for concurrent use.
type Node[K cmp.Ordered] struct {
	key    K
	hasKey bool

	left, right *Node[K]

	// parent does not participate in ownership.
	parent weak.Pointer[Node[K]]
}

// New returns a root node holding key.
func New[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, hasKey: true}
}

// NewSentinel returns a keyless root node.
func NewSentinel[K cmp.Ordered]() *Node[K] {
	return &Node[K]{}
}

// NewChild returns a node holding key whose parent link refers to parent. The
// node is not installed into either of parent's child slots; see AddLeftChild
// and AddRightChild for that.
func NewChild[K cmp.Ordered](parent *Node[K], key K) *Node[K] {
	if parent == nil {
		panic(errors.AssertionFailedf("bst: NewChild(%v) called with a nil parent", key))
	}
	n := New(key)
	n.parent = weak.Make(parent)
	return n
}

// Copy returns a shallow copy of n. The copy shares n's children and parent
// link but is not itself installed in n's parent.
func (n *Node[K]) Copy() *Node[K] {
	c := *n
	return &c
}

// AddLeftChild creates a node holding key whose parent is n and installs it as
// n's left child, returning it. Any previous left subtree is dropped.
func (n *Node[K]) AddLeftChild(key K) *Node[K] {
	n.left = NewChild(n, key)
	return n.left
}

// AddRightChild creates a node holding key whose parent is n and installs it
// as n's right child, returning it. Any previous right subtree is dropped.
func (n *Node[K]) AddRightChild(key K) *Node[K] {
	n.right = NewChild(n, key)
	return n.right
}

// Key returns the node's key and whether it has one.
func (n *Node[K]) Key() (K, bool) {
	return n.key, n.hasKey
}

// IsSentinel returns whether n is a keyless node.
func (n *Node[K]) IsSentinel() bool {
	return !n.hasKey
}

// Left returns n's left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns n's right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// IsRoot returns whether n has no parent link.
func (n *Node[K]) IsRoot() bool {
	return !n.linked()
}

// Parent returns n's parent, or nil if n is a root. It panics if the parent
// has already been collected.
func (n *Node[K]) Parent() *Node[K] {
	if !n.linked() {
		return nil
	}
	p := n.parent.Value()
	if p == nil {
		panic(errors.AssertionFailedf(
			"bst: parent of node %s is no longer reachable", n.keyString()))
	}
	return p
}

func (n *Node[K]) linked() bool {
	return n.parent != weak.Pointer[Node[K]]{}
}

func (n *Node[K]) keyString() string {
	if !n.hasKey {
		return "_"
	}
	return fmt.Sprint(n.key)
}

// Match reports whether a and b hold the same key. Two nil nodes match, and
// two sentinels match.
func Match[K cmp.Ordered](a, b *Node[K]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.hasKey == b.hasKey && a.key == b.key
}
