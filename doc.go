// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package qpf derives recursive container types — least fixed points ([Fix])
// and greatest fixed points ([Cofix]) — from a compact shape descriptor that
// presents a container functor as a quotient of a polynomial shape.
//
// # Architecture
//
//   - Shapes: a [Shape] names constructor tags and per-tag child-slot counts.
//     One applied layer is a [Node]: a tag plus one payload per slot.
//   - Witnesses: a [Witness] certifies that a container functor is a quotient
//     of its shape via an abstraction/representation pair (Abs/Repr) obeying
//     the round-trip and naturality laws, plus the container's Map.
//   - Least fixed points: finite trees ([Tree], [Build], [Recurse]) quotiented
//     by structural equivalence via [Canonical]; [Fix] exposes [Mk],
//     [Fix.Dest], and [Fold].
//   - Greatest fixed points: lazily memoized infinite trees ([MTree],
//     [Corecurse]) quotiented by the maximal destructor-respecting congruence;
//     [Cofix] exposes [Corec], [Cofix.Dest], and equality via [Bisimilar].
//   - Combinators: [Compose] builds the witness for a pointwise composition of
//     two container functors; [Transfer] rebases a witness along a
//     round-trip-preserving conversion pair.
//
// # API Topologies
//
//   - Finite world: [Build], [Tree.Destruct], [Recurse], [Canonical],
//     [Equivalent], [Mk], [Fix.Dest], [Fold], [Fix.Equal].
//   - Infinite world: [Corecurse], [MTree.Destruct], [Corec], [Cofix.Dest],
//     [Bisimilar]. Values are observed one layer at a time; no operation
//     traverses an infinite value to completion.
//   - Standard witnesses: [PolyWitness], [ListWitness], [PairWitness],
//     [StreamWitness], [ConatWitness], [MultisetWitness].
//   - Integration: [Tape] bridges successive layers of a corecursive value to
//     an external loop over a bounded lock-free SPSC queue from
//     [code.hybscloud.com/lfq], returning [code.hybscloud.com/iox.ErrWouldBlock]
//     on backpressure.
//
// # Erasure
//
// Go has no higher-kinded type parameters, so payload positions are carried as
// [Erased] values and concrete types are recovered by assertion at API
// boundaries, following the type-erasure discipline of
// [code.hybscloud.com/kont]. Typed entry points ([Fold]) re-introduce the
// result type.
//
// # Laws
//
// Witness laws (round-trip, naturality, map identity) are preconditions, not
// runtime checks; [CheckWitness] gives test suites an executable form of them.
// Equality of [Cofix] values is not decidable in general: [Bisimilar] is the
// provided proof technique — exhibit a candidate relation, and one-step
// compatibility over all reachable pairs concludes equality.
//
// # Example
//
//	shape := qpf.Shape{
//		Tags: []qpf.Tag{"leaf", "node"},
//		Arity: func(t qpf.Tag) int {
//			if t == "node" {
//				return 2
//			}
//			return 0
//		},
//	}
//	w := qpf.PolyWitness(shape)
//	leaf := qpf.Mk(w, qpf.Node{Tag: "leaf"})
//	root := qpf.Mk(w, qpf.Node{Tag: "node", Children: []qpf.Erased{leaf, leaf}})
//	n := qpf.Fold(root, func(layer qpf.Erased) int {
//		nd := layer.(qpf.Node)
//		if nd.Tag == "leaf" {
//			return 1
//		}
//		total := 0
//		for _, c := range nd.Children {
//			total += c.(int)
//		}
//		return total
//	})
//	// n == 2
package qpf
