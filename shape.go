// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"github.com/samber/lo"
)

// Erased marks a type-erased payload position. Concrete types are recovered
// via type assertions at API boundaries.
type Erased = any

// Tag identifies one constructor of a shape. Tag values must be comparable
// with ==; witnesses that manufacture tags (length tags of [ListWitness],
// composed tags of [Compose]) keep this invariant themselves.
type Tag = any

// Shape is a polynomial signature: a set of constructor tags and, per tag,
// a number of child slots. Slot indices are dense: 0..Arity(tag)-1.
//
// A Shape is created once per container functor and never mutated.
type Shape struct {
	// Tags enumerates the tag set when it is finite.
	// nil means the set is not finitely enumerable (e.g. one tag per
	// list length, or the product tags of a composed shape).
	Tags []Tag

	// Arity reports the number of child slots for tag.
	Arity func(tag Tag) int
}

// Node is one applied layer of a shape: a tag fixing the arity, and one
// payload per slot. Mapping over a Node acts on Children only, leaving Tag
// fixed.
type Node struct {
	Tag      Tag
	Children []Erased
}

// MapNode applies f to every payload of n, keeping the tag.
func MapNode(n Node, f func(Erased) Erased) Node {
	return Node{
		Tag: n.Tag,
		Children: lo.Map(n.Children, func(c Erased, _ int) Erased {
			return f(c)
		}),
	}
}
