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

import "strings"

// String returns a description of the subtree rooted at n in a format similar
// to https://en.wikipedia.org/wiki/Newick_format. Each interior node is
// written as (left)key(right) with an absent child rendered empty; sentinels
// are written as "_".
func (n *Node[K]) String() string {
	if n == nil {
		return ";"
	}
	var b strings.Builder
	n.writeString(&b)
	return b.String()
}

func (n *Node[K]) writeString(b *strings.Builder) {
	if n.left == nil && n.right == nil {
		b.WriteString(n.keyString())
		return
	}
	for i, c := range [2]*Node[K]{n.left, n.right} {
		b.WriteString("(")
		if c != nil {
			c.writeString(b)
		}
		b.WriteString(")")
		if i == 0 {
			b.WriteString(n.keyString())
		}
	}
}
