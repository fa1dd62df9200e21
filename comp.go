// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"sync"
)

// compTag labels one layer of a composed container: the outer tag plus the
// inner tag chosen at each outer slot. The inner vector is interned per
// composed witness so compTag stays comparable with ==.
type compTag struct {
	Outer Tag
	Inner *innerTags
}

// innerTags records the inner tag chosen per outer slot, the corresponding
// inner arities, and their total (the composed arity).
type innerTags struct {
	tags    []Tag
	arities []int
	total   int
}

// composer carries the component witnesses and the intern table for a
// composed witness.
type composer struct {
	outer, inner *Witness

	mu  sync.Mutex
	tab []*innerTags
}

// Compose builds the witness for the pointwise composition "outer applied to
// inner": values are outer-layers whose payloads are inner-layers, and the
// composed shape's slot set is the disjoint union, over outer slots, of the
// chosen inner slot sets.
//
// Abs and Repr work one layer at a time (outer then inner), so the
// round-trip and naturality laws carry over from the component witnesses
// with no extra obligation. The composed tag set is a product and reported
// as not finitely enumerable.
func Compose(outer, inner *Witness) *Witness {
	c := &composer{outer: outer, inner: inner}
	return &Witness{
		Shape: Shape{
			Arity: func(t Tag) int {
				return t.(compTag).Inner.total
			},
		},
		Abs:  c.abs,
		Repr: c.repr,
		Map: func(v Erased, f func(Erased) Erased) Erased {
			return outer.Map(v, func(fv Erased) Erased {
				return inner.Map(fv, f)
			})
		},
	}
}

// repr concretizes the outer layer, concretizes each inner payload, and
// flattens the inner children into one composed layer.
func (c *composer) repr(v Erased) Node {
	on := c.outer.Repr(v)
	tags := make([]Tag, len(on.Children))
	arities := make([]int, len(on.Children))
	var kids []Erased
	for i, fv := range on.Children {
		in := c.inner.Repr(fv)
		tags[i] = in.Tag
		arities[i] = len(in.Children)
		kids = append(kids, in.Children...)
	}
	return Node{Tag: compTag{Outer: on.Tag, Inner: c.intern(tags, arities)}, Children: kids}
}

// abs splits the flattened children back into inner layers using the arities
// recorded in the tag, abstracts each, and abstracts the outer layer.
func (c *composer) abs(n Node) Erased {
	ct := n.Tag.(compTag)
	inners := make([]Erased, len(ct.Inner.tags))
	off := 0
	for i, it := range ct.Inner.tags {
		a := ct.Inner.arities[i]
		inners[i] = c.inner.Abs(Node{Tag: it, Children: n.Children[off : off+a]})
		off += a
	}
	return c.outer.Abs(Node{Tag: ct.Outer, Children: inners})
}

// intern returns the canonical *innerTags for the given vector so that equal
// vectors yield ==-equal composed tags. Cold path: one miss per distinct
// inner tag vector.
func (c *composer) intern(tags []Tag, arities []int) *innerTags {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.tab {
		if tagsEqual(it.tags, tags) {
			return it
		}
	}
	total := 0
	for _, a := range arities {
		total += a
	}
	it := &innerTags{
		tags:    append([]Tag(nil), tags...),
		arities: append([]int(nil), arities...),
		total:   total,
	}
	c.tab = append(c.tab, it)
	return it
}

func tagsEqual(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
