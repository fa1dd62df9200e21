// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sanity-io/litter"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/qpf"
)

// binShape is the two-tag end-to-end shape: "leaf" with no slots, "node"
// with two.
func binShape() qpf.Shape {
	return qpf.Shape{
		Tags: []qpf.Tag{"leaf", "node"},
		Arity: func(t qpf.Tag) int {
			if t == "node" {
				return 2
			}
			return 0
		},
	}
}

// binWitness is the identity witness over binShape.
func binWitness() *qpf.Witness {
	return qpf.PolyWitness(binShape())
}

func leaf(w *qpf.Witness) qpf.Fix {
	return qpf.Mk(w, qpf.Node{Tag: "leaf"})
}

func node(w *qpf.Witness, l, r qpf.Fix) qpf.Fix {
	return qpf.Mk(w, qpf.Node{Tag: "node", Children: []qpf.Erased{l, r}})
}

// countLeaves is the leaf-counting algebra over binShape.
func countLeaves(layer qpf.Erased) int {
	n := layer.(qpf.Node)
	if n.Tag == "leaf" {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.(int)
	}
	return total
}

// fixCmp compares Fix values as equivalence classes inside go-cmp diffs.
var fixCmp = cmp.Comparer(func(a, b qpf.Fix) bool {
	return a.Equal(b)
})

// takeHeads observes the first n heads of a stream-shaped Cofix value by
// repeated Dest.
func takeHeads(v qpf.Cofix, n int) []qpf.Erased {
	heads := make([]qpf.Erased, 0, n)
	for range n {
		c := v.Dest().(qpf.Cons)
		heads = append(heads, c.Head)
		v = c.Tail.(qpf.Cofix)
	}
	return heads
}

// conatFrom unfolds the co-natural number n: n succ layers, then zero.
func conatFrom(s qpf.Erased) qpf.Erased {
	n := s.(int)
	if n == 0 {
		return kont.Left[struct{}, qpf.Erased](struct{}{})
	}
	return kont.Right[struct{}](qpf.Erased(n - 1))
}

// dump renders a value for failure messages.
func dump(v any) string {
	return litter.Sdump(v)
}

// mustDiff fails the test when go-cmp finds a difference.
func mustDiff(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got, fixCmp); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
