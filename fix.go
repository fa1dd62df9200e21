// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"github.com/samber/lo"
)

// Fix is the least fixed point of the container functor certified by a
// [Witness]: the quotient of finite trees by structural equivalence. Values
// are immutable and fully determined at construction; the underlying tree is
// always canonical, so equality of Fix values is [Tree] identity of form.
//
// Structural induction holds: two functions that agree on Mk(x) whenever
// they agree on every recursive position of x agree on all Fix values.
type Fix struct {
	w    *Witness
	root *Tree
}

// Mk injects one F-layer whose recursive positions are Fix values, returning
// the equivalence class of the rebuilt tree.
//
// The supplied layer is concretized, every recursive position is replaced by
// its canonical underlying tree, and the root layer is normalized once
// through Abs∘Repr. Children are canonical by construction, so no deep pass
// is needed.
func Mk(w *Witness, x Erased) Fix {
	n := w.Repr(x)
	kids := lo.Map(n.Children, func(c Erased, _ int) Erased {
		return Erased(c.(Fix).root)
	})
	root := buildNode(w.Repr(w.Abs(Node{Tag: n.Tag, Children: kids})))
	return Fix{w: w, root: root}
}

// Dest peels one layer: the inverse of [Mk]. The returned F-value's
// recursive positions hold Fix values.
//
// Dest(Mk(x)) == x and Mk(v.Dest()) == v, establishing Fix ≅ F<Fix>. Dest
// agrees with the fold whose algebra rewraps one layer via Abs and re-injects
// children through Mk; peeling the canonical root computes the same value in
// one step.
func (v Fix) Dest() Erased {
	kids := lo.Map(v.root.kids, func(c *Tree, _ int) Erased {
		return Erased(Fix{w: v.w, root: c})
	})
	return v.w.Abs(Node{Tag: v.root.tag, Children: kids})
}

// Fold is structural recursion lifted to the quotient: the unique function h
// with h(Mk(x)) == alg(Map(h, x)). The algebra receives an F-layer whose
// recursive positions hold already-folded A results (boxed as [Erased]).
func Fold[A any](v Fix, alg func(Erased) A) A {
	return Recurse(v.w, v.root, func(fv Erased) Erased {
		return alg(fv)
	}).(A)
}

// Equal reports whether two values of the same Fix type are the same
// equivalence class. Both operands must come from the same witness.
func (v Fix) Equal(u Fix) bool {
	return sameTree(v.root, u.root)
}

// String renders the canonical underlying tree.
func (v Fix) String() string {
	return v.root.String()
}
