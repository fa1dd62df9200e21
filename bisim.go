// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

// Relation is a candidate bisimulation over Cofix values. Implementations
// may observe operands with [Cofix.Dest]; one layer per call keeps the check
// terminating.
type Relation func(a, b Cofix) bool

// pairKey identifies a pair of handles by corecursion state rather than
// handle identity: Destruct allocates fresh child handles, so identity never
// repeats on an infinite tree, while (generator serial, seed) does whenever
// the unfolding revisits a seed.
type pairKey struct {
	sa, sb Serial
	ka, kb Erased
}

// Bisimilar reports whether rel is a bisimulation containing (a, b): for
// every pair reachable from (a, b), one-step destructuring (normalized
// through Repr∘Abs) must produce the same tag with pointwise identical or
// rel-related children. If it does, a and b denote the same Cofix value —
// the maximal congruence contains every bisimulation.
//
// Both operands must come from the same witness. The check terminates when
// the reachable pairs cover finitely many (generator, seed) combinations —
// the finite invariant that makes a relation exhibitable — and requires the
// seeds involved to be comparable.
func Bisimilar(a, b Cofix, rel Relation) bool {
	if a.w != b.w {
		return false
	}
	if !rel(a, b) {
		return false
	}
	w := a.w
	seen := make(map[pairKey]struct{})
	work := [][2]*MTree{{a.root, b.root}}
	for len(work) > 0 {
		pair := work[len(work)-1]
		work = work[:len(work)-1]
		ma, mb := pair[0], pair[1]
		k := pairKey{sa: ma.serial, sb: mb.serial, ka: ma.seed, kb: mb.seed}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		la := canonLayer(w, ma)
		lb := canonLayer(w, mb)
		if la.Tag != lb.Tag || len(la.Children) != len(lb.Children) {
			return false
		}
		for i := range la.Children {
			ca := la.Children[i].(*MTree)
			cb := lb.Children[i].(*MTree)
			if ca == cb {
				continue
			}
			if !rel(Cofix{w: w, root: ca}, Cofix{w: w, root: cb}) {
				return false
			}
			work = append(work, [2]*MTree{ca, cb})
		}
	}
	return true
}

// canonLayer normalizes one handle layer through Repr∘Abs so the comparison
// sees abstract images, not raw shape: handles with different raw layers but
// equal Abs images destruct compatibly.
func canonLayer(w *Witness, m *MTree) Node {
	return w.Repr(w.Abs(m.Destruct()))
}
