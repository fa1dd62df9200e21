// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Tree is a finite rooted tree labeled by shape tags: the raw substrate for
// least fixed points. Trees are persistent values — substructure is shared
// freely and never mutated in place.
type Tree struct {
	tag  Tag
	kids []*Tree
}

// Build constructs a tree from one shape layer whose payloads are subtrees.
// Build and [Tree.Destruct] are exact inverses; no quotienting happens at
// this layer.
func Build(tag Tag, kids []*Tree) *Tree {
	return &Tree{tag: tag, kids: append([]*Tree(nil), kids...)}
}

// buildNode rebuilds a tree from a destructed layer. Payloads must be *Tree.
func buildNode(n Node) *Tree {
	return &Tree{
		tag: n.Tag,
		kids: lo.Map(n.Children, func(c Erased, _ int) *Tree {
			return c.(*Tree)
		}),
	}
}

// Tag returns the root constructor tag.
func (t *Tree) Tag() Tag {
	return t.tag
}

// Destruct returns the root layer of t. Payload positions hold *Tree.
func (t *Tree) Destruct() Node {
	return Node{Tag: t.tag, Children: erasedChildren(t.kids)}
}

// Recurse folds t with step, the structural-recursion primitive all
// higher-level recursion is built from: each layer is destructed, children
// are recursed, the layer is rewrapped as an F-value via w.Abs, and step is
// applied.
//
// If two trees are structurally equivalent, Recurse produces identical
// results on both, for any step function — the property that makes [Fold]
// well defined on the quotient.
func Recurse(w *Witness, t *Tree, step func(Erased) Erased) Erased {
	rec := make([]Erased, len(t.kids))
	for i, c := range t.kids {
		rec[i] = Recurse(w, c, step)
	}
	return step(w.Abs(Node{Tag: t.tag, Children: rec}))
}

// String renders the tree as tag(child,...). Canonical trees of equal Fix
// values render identically, so the rendering is usable as a sort key.
func (t *Tree) String() string {
	if len(t.kids) == 0 {
		return fmt.Sprint(t.tag)
	}
	parts := lo.Map(t.kids, func(c *Tree, _ int) string {
		return c.String()
	})
	return fmt.Sprintf("%v(%s)", t.tag, strings.Join(parts, ","))
}
