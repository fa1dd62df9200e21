// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

// Transfer rebases a witness for F onto a container functor G expressible as
// a quotient or relabeling of F, given a conversion pair
//
//	toG : F<X> -> G<X>
//	toF : G<X> -> F<X>
//
// satisfying toG(toF(y)) == y for every G-value y and commuting with mapping.
// G reuses F's shape descriptor:
//
//	Abs_G  = toG ∘ Abs_F
//	Repr_G = Repr_F ∘ toF
//
// and G's map is derived from the pair by naturality, so G inherits Fix and
// Cofix support without rebuilding any tree machinery.
func Transfer(w *Witness, toG, toF func(Erased) Erased) *Witness {
	return &Witness{
		Shape: w.Shape,
		Abs: func(n Node) Erased {
			return toG(w.Abs(n))
		},
		Repr: func(v Erased) Node {
			return w.Repr(toF(v))
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			return toG(w.Map(toF(v), f))
		},
	}
}
