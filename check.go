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

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

var (
	// ErrOrderViolation is returned by CheckOrder.
	ErrOrderViolation = errors.New("bst: tree order violated")
	// ErrParentMismatch is returned by CheckParents.
	ErrParentMismatch = errors.New("bst: parent link mismatch")
)

// bound is an exclusive upper or inclusive lower limit on the keys of a
// subtree. The zero value imposes no limit.
type bound[K cmp.Ordered] struct {
	key K
	set bool
}

type checkFrame[K cmp.Ordered] struct {
	n      *Node[K]
	lo, hi bound[K]
}

// CheckOrder verifies that every key in the left subtree of a node is less
// than the node's key and every key in its right subtree is greater than or
// equal to it. Sentinels impose no limit on their subtrees.
func (n *Node[K]) CheckOrder() error {
	stack := []checkFrame[K]{{n: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}
		leftHi, rightLo := f.hi, f.lo
		if f.n.hasKey {
			k := f.n.key
			if f.lo.set && k < f.lo.key {
				return errors.Wrapf(ErrOrderViolation, "key %v is less than %v", k, f.lo.key)
			}
			if f.hi.set && k >= f.hi.key {
				return errors.Wrapf(ErrOrderViolation, "key %v is not less than %v", k, f.hi.key)
			}
			leftHi, rightLo = bound[K]{key: k, set: true}, bound[K]{key: k, set: true}
		}
		stack = append(stack,
			checkFrame[K]{n: f.n.right, lo: rightLo, hi: f.hi},
			checkFrame[K]{n: f.n.left, lo: f.lo, hi: leftHi},
		)
	}
	return nil
}

// CheckParents verifies that the parent link of every child in the subtree
// rooted at n resolves to a node holding the same key as the node which owns
// the child. A link to a collected node is reported rather than panicking.
func (n *Node[K]) CheckParents() error {
	if n == nil {
		return nil
	}
	stack := []*Node[K]{n}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range [2]*Node[K]{p.left, p.right} {
			if c == nil {
				continue
			}
			if !c.linked() {
				return errors.Wrapf(ErrParentMismatch, "child %s of %s has no parent", c.keyString(), p.keyString())
			}
			got := c.parent.Value()
			if got == nil {
				return errors.Wrapf(ErrParentMismatch, "parent of %s is no longer reachable", c.keyString())
			}
			if !Match(got, p) {
				return errors.Wrapf(ErrParentMismatch,
					"child %s of %s links to %s", c.keyString(), p.keyString(), got.keyString())
			}
			stack = append(stack, c)
		}
	}
	return nil
}
