// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"github.com/samber/lo"
)

// Cofix is the greatest fixed point of the container functor certified by a
// [Witness]: the quotient of infinite-tree handles by the maximal
// destructor-respecting congruence. Values are created by [Corec] and
// observed one layer at a time by [Cofix.Dest]; equality is established by
// [Bisimilar], never by structural comparison.
type Cofix struct {
	w    *Witness
	root *MTree
}

// Corec builds a value by repeatedly unfolding gen from seed. gen maps a
// seed to one F-layer whose recursive positions hold the next seeds
// (S -> F<S>); each layer is concretized through the witness and handed to
// the infinite-tree oracle.
//
// Law: Corec(w, s, gen).Dest() == Map(gen(s), λ s'. Corec(w, s', gen)),
// where equality of the recursive positions is bisimilarity.
func Corec(w *Witness, seed Erased, gen func(Erased) Erased) Cofix {
	mgen := func(s Erased) Node {
		return w.Repr(gen(s))
	}
	return Cofix{w: w, root: Corecurse(seed, mgen)}
}

// Dest observes one layer: an F-value whose recursive positions hold Cofix
// values. Per-layer work is bounded; only a deliberately unbounded sequence
// of Dest calls fails to terminate, and no such traversal is provided.
func (v Cofix) Dest() Erased {
	n := v.root.Destruct()
	kids := lo.Map(n.Children, func(c Erased, _ int) Erased {
		return Erased(Cofix{w: v.w, root: c.(*MTree)})
	})
	return v.w.Abs(Node{Tag: n.Tag, Children: kids})
}
