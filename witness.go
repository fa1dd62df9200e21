// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/samber/lo"
)

// Witness certifies that a container functor F is representable as a quotient
// of its polynomial shape. Abs and Repr work on erased payloads and must be
// payload-polymorphic: they may inspect tags and rearrange children, never
// look inside a payload.
//
// Laws (preconditions, checked by test suites via [CheckWitness]):
//
//   - round-trip: Abs(Repr(v)) == v for every F-value v. Repr need not be a
//     left inverse; Abs is a possibly-many-to-one collapse.
//   - naturality: Abs(MapNode(n, f)) == Map(Abs(n), f) for every node n.
//   - Map preserves identity and composition (the mappable-container
//     capability, supplied by the caller, not derived here).
type Witness struct {
	Shape Shape

	// Abs turns one shape layer into an F-value (ShapeInstance<X> -> F<X>).
	Abs func(Node) Erased

	// Repr turns an F-value into one shape layer (F<X> -> ShapeInstance<X>).
	Repr func(Erased) Node

	// Map is F's position-preserving map over payloads.
	Map func(v Erased, f func(Erased) Erased) Erased
}

// PolyWitness is the identity witness for a raw polynomial shape: the functor
// is the shape application itself, so F-values are [Node] and Abs/Repr are
// identities. Every polynomial container is its own quotient.
func PolyWitness(shape Shape) *Witness {
	return &Witness{
		Shape: shape,
		Abs: func(n Node) Erased {
			return n
		},
		Repr: func(v Erased) Node {
			return v.(Node)
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			return MapNode(v.(Node), f)
		},
	}
}

// CheckWitness verifies the witness laws on the supplied F-value samples:
// the Abs∘Repr round-trip, Map identity, and naturality against each fn.
// All violations are collected and returned as one error; nil means every
// sample passed.
//
// This is the executable form of the laws for test suites — the runtime
// operations assume them and perform no checking of their own.
func CheckWitness(w *Witness, samples []Erased, fns []func(Erased) Erased) error {
	var errs error
	identity := func(x Erased) Erased { return x }
	for i, v := range samples {
		if got := w.Abs(w.Repr(v)); !reflect.DeepEqual(got, v) {
			errs = multierr.Append(errs, errors.Errorf(
				"round-trip: sample %d: Abs(Repr(v)) = %v, want %v", i, got, v))
		}
		if got := w.Map(v, identity); !reflect.DeepEqual(got, v) {
			errs = multierr.Append(errs, errors.Errorf(
				"map identity: sample %d: Map(v, id) = %v, want %v", i, got, v))
		}
		for j, f := range fns {
			lhs := w.Abs(MapNode(w.Repr(v), f))
			rhs := w.Map(v, f)
			if !reflect.DeepEqual(lhs, rhs) {
				errs = multierr.Append(errs, errors.Errorf(
					"naturality: sample %d, fn %d: Abs(MapNode(Repr(v), f)) = %v, Map(v, f) = %v",
					i, j, lhs, rhs))
			}
		}
	}
	return errs
}

// erasedChildren boxes a slice of concrete children into payload positions.
func erasedChildren[T any](xs []T) []Erased {
	return lo.Map(xs, func(x T, _ int) Erased {
		return Erased(x)
	})
}
