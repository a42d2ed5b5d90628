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


// Package treebuild grows binary search trees from the outside, using only the
// navigation and attachment primitives of package bst.
package treebuild

import (
	"cmp"

	"github.com/ajwerner/bst"
	"github.com/cockroachdb/errors"
)

// Insert adds key below root at the position a search for it would fail,
// sending ties right, and returns the new node. root must not be a sentinel.
func Insert[K cmp.Ordered](root *bst.Node[K], key K) *bst.Node[K] {
	cur := root
	for {
		k, ok := cur.Key()
		if !ok {
			panic(errors.AssertionFailedf("treebuild: cannot insert %v below a sentinel", key))
		}
		if key < k {
			if cur.Left() == nil {
				return cur.AddLeftChild(key)
			}
			cur = cur.Left()
		} else {
			if cur.Right() == nil {
				return cur.AddRightChild(key)
			}
			cur = cur.Right()
		}
	}
}

// Build returns the root of a tree holding keys, inserted in order. It
// returns nil if keys is empty.
func Build[K cmp.Ordered](keys ...K) *bst.Node[K] {
	if len(keys) == 0 {
		return nil
	}
	root := bst.New(keys[0])
	for _, k := range keys[1:] {
		Insert(root, k)
	}
	return root
}
