// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

// Structural equivalence is the least relation over trees closed under:
//
//	(i)   same tag, pointwise-equivalent children
//	(ii)  equal Abs images of the root layers (children taken as opaque)
//	(iii) transitivity
//
// Canonical computes the constructive witness for it: every layer is passed
// once through Repr∘Abs and rebuilt, bottom up.

// Canonical rewrites t into its normal form under w: [Recurse] with the step
// "rebuild the layer from Repr of its Abs image". The result is equivalent
// to t, and equivalent trees canonicalize to identical trees. Canonical is
// idempotent up to equivalence (Repr need not be injective, so bit-for-bit
// idempotence is not promised — node identity of the rebuilt layers is).
func Canonical(w *Witness, t *Tree) *Tree {
	return Recurse(w, t, func(fv Erased) Erased {
		return buildNode(w.Repr(fv))
	}).(*Tree)
}

// Equivalent reports whether a and b denote the same abstract container
// value under w, by comparing canonical forms node for node. Both trees must
// be labeled by w's shape.
func Equivalent(w *Witness, a, b *Tree) bool {
	return sameTree(Canonical(w, a), Canonical(w, b))
}

// sameTree compares tags and children pointwise.
func sameTree(a, b *Tree) bool {
	if a == b {
		return true
	}
	if a.tag != b.tag || len(a.kids) != len(b.kids) {
		return false
	}
	for i := range a.kids {
		if !sameTree(a.kids[i], b.kids[i]) {
			return false
		}
	}
	return true
}
