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
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckOrder(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func() *Node[int]
		ok    bool
	}{
		{
			name:  "single",
			build: func() *Node[int] { return New(1) },
			ok:    true,
		},
		{
			name: "ties go right",
			build: func() *Node[int] {
				n := New(10)
				n.AddRightChild(10)
				return n
			},
			ok: true,
		},
		{
			name: "tie on the left",
			build: func() *Node[int] {
				n := New(10)
				n.AddLeftChild(10)
				return n
			},
		},
		{
			name: "left greater",
			build: func() *Node[int] {
				n := New(10)
				n.AddLeftChild(20)
				return n
			},
		},
		{
			name: "deep violation",
			build: func() *Node[int] {
				n := New(10)
				n.AddLeftChild(5).AddRightChild(12)
				return n
			},
		},
		{
			name: "deep right violation",
			build: func() *Node[int] {
				n := New(10)
				n.AddRightChild(15).AddLeftChild(9)
				return n
			},
		},
		{
			name: "sentinel imposes no limit",
			build: func() *Node[int] {
				n := NewSentinel[int]()
				n.left = NewChild(n, 3)
				n.right = NewChild(n, 1)
				return n
			},
			ok: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := tc.build()
			err := root.CheckOrder()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrOrderViolation), "got %v", err)
			}
		})
	}
}

func TestCheckParents(t *testing.T) {
	root := New(10)
	root.AddLeftChild(5).AddLeftChild(1)
	root.AddRightChild(15)
	require.NoError(t, root.CheckParents())

	// A copy still links to a node holding the same key.
	require.NoError(t, root.Copy().CheckParents())

	root.right.left = New(12)
	err := root.CheckParents()
	require.True(t, errors.Is(err, ErrParentMismatch), "got %v", err)
	require.Contains(t, err.Error(), "has no parent")

	root.right.left = NewChild(root, 12)
	err = root.CheckParents()
	require.True(t, errors.Is(err, ErrParentMismatch), "got %v", err)
	require.Contains(t, err.Error(), "links to 10")

	var none *Node[int]
	require.NoError(t, none.CheckParents())
}

//go:noinline
func detachedCopy() *Node[int] {
	n := New(1)
	n.AddRightChild(2)
	return n.Copy()
}

func TestCheckParentsCollected(t *testing.T) {
	c := detachedCopy()
	runtime.GC()
	err := c.CheckParents()
	require.True(t, errors.Is(err, ErrParentMismatch), "got %v", err)
	require.Contains(t, err.Error(), "no longer reachable")
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "_", NewSentinel[int]().keyString())
	require.Equal(t, "-3", New(-3).keyString())
	require.False(t, New(1).linked())
}
