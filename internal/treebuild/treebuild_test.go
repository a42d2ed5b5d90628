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


package treebuild

import (
	"runtime"
	"testing"

	"github.com/ajwerner/bst"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	require.Nil(t, Build[int]())

	root := Build(15, 6, 18, 3, 7, 17, 20)
	require.Equal(t, "((3)6(7))15((17)18(20))", root.String())
	require.NoError(t, root.CheckOrder())
	require.NoError(t, root.CheckParents())
}

func TestInsert(t *testing.T) {
	root := bst.New(10)
	n := Insert(root, 5)
	require.Same(t, root.Left(), n)
	require.Same(t, root, n.Parent())

	tie := Insert(root, 10)
	require.Same(t, root.Right(), tie)

	deep := Insert(root, 7)
	require.Same(t, n.Right(), deep)
	require.Same(t, root, deep.Root())
	runtime.KeepAlive(root)
}

func TestInsertBelowSentinel(t *testing.T) {
	require.Panics(t, func() { Insert(bst.NewSentinel[int](), 1) })
}
