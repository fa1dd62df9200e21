// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf_test

import (
	"testing"

	"code.hybscloud.com/qpf"
)

func TestBuildDestructIso(t *testing.T) {
	l := qpf.Build("leaf", nil)
	r := qpf.Build("leaf", nil)
	n := qpf.Build("node", []*qpf.Tree{l, r})

	layer := n.Destruct()
	if layer.Tag != "node" {
		t.Fatalf("tag got %v, want node", layer.Tag)
	}
	if len(layer.Children) != 2 {
		t.Fatalf("children got %d, want 2", len(layer.Children))
	}
	if layer.Children[0].(*qpf.Tree) != l || layer.Children[1].(*qpf.Tree) != r {
		t.Fatal("destruct did not return the built subtrees")
	}

	// Rebuilding from a destructed layer destructs identically.
	rebuilt := qpf.Build(layer.Tag, []*qpf.Tree{
		layer.Children[0].(*qpf.Tree),
		layer.Children[1].(*qpf.Tree),
	})
	back := rebuilt.Destruct()
	if back.Tag != layer.Tag || len(back.Children) != len(layer.Children) {
		t.Fatalf("round-trip layer got %s, want %s", dump(back), dump(layer))
	}
	for i := range back.Children {
		if back.Children[i] != layer.Children[i] {
			t.Fatalf("child %d changed across build/destruct", i)
		}
	}
}

func TestBuildCopiesChildren(t *testing.T) {
	kids := []*qpf.Tree{qpf.Build("leaf", nil)}
	n := qpf.Build("node1", kids)
	kids[0] = qpf.Build("other", nil)

	got := n.Destruct().Children[0].(*qpf.Tree)
	if got.Tag() != "leaf" {
		t.Fatalf("tree aliased caller slice: got %v, want leaf", got.Tag())
	}
}

func TestRecurseDepth(t *testing.T) {
	w := binWitness()
	l := qpf.Build("leaf", nil)
	n := qpf.Build("node", []*qpf.Tree{qpf.Build("node", []*qpf.Tree{l, l}), l})

	depth := qpf.Recurse(w, n, func(fv qpf.Erased) qpf.Erased {
		layer := fv.(qpf.Node)
		max := 0
		for _, c := range layer.Children {
			if d := c.(int); d > max {
				max = d
			}
		}
		return max + 1
	})
	if depth != 3 {
		t.Fatalf("depth got %v, want 3", depth)
	}
}

func TestTreeString(t *testing.T) {
	l := qpf.Build("leaf", nil)
	n := qpf.Build("node", []*qpf.Tree{l, l})
	if got := n.String(); got != "node(leaf,leaf)" {
		t.Fatalf("got %q, want %q", got, "node(leaf,leaf)")
	}
}
