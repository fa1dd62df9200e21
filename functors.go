// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"sort"

	"code.hybscloud.com/kont"

	"github.com/samber/lo"
)

// Standard witnesses. Each is a ready-made [Witness] for a common container
// functor, usable directly or as raw material for [Compose] and [Transfer].

// ListWitness presents finite lists: F<X> = []Erased, one tag per length.
// Returned and accepted slices are never nil, so round-trips are stable
// under deep comparison.
func ListWitness() *Witness {
	return &Witness{
		Shape: Shape{
			Arity: func(t Tag) int {
				return t.(int)
			},
		},
		Abs: func(n Node) Erased {
			out := make([]Erased, len(n.Children))
			copy(out, n.Children)
			return out
		},
		Repr: func(v Erased) Node {
			xs := v.([]Erased)
			out := make([]Erased, len(xs))
			copy(out, xs)
			return Node{Tag: len(xs), Children: out}
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			return lo.Map(v.([]Erased), func(x Erased, _ int) Erased {
				return f(x)
			})
		},
	}
}

// Pair is the layer of the two-slot functor: F<X> = (X, X).
type Pair struct {
	Fst, Snd Erased
}

// PairWitness presents pairs: a single tag with exactly two slots.
func PairWitness() *Witness {
	return &Witness{
		Shape: Shape{
			Tags: []Tag{"pair"},
			Arity: func(Tag) int {
				return 2
			},
		},
		Abs: func(n Node) Erased {
			return Pair{Fst: n.Children[0], Snd: n.Children[1]}
		},
		Repr: func(v Erased) Node {
			p := v.(Pair)
			return Node{Tag: "pair", Children: []Erased{p.Fst, p.Snd}}
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			p := v.(Pair)
			return Pair{Fst: f(p.Fst), Snd: f(p.Snd)}
		},
	}
}

// Cons is one observed stream layer: a head label and a tail position.
type Cons struct {
	Head Erased
	Tail Erased
}

// StreamWitness presents head-labeled streams: F<X> = Cons, the tag set is
// the head labels (one slot each), so Cofix over it is the type of infinite
// streams. Head labels must be comparable.
func StreamWitness() *Witness {
	return &Witness{
		Shape: Shape{
			Arity: func(Tag) int {
				return 1
			},
		},
		Abs: func(n Node) Erased {
			return Cons{Head: n.Tag, Tail: n.Children[0]}
		},
		Repr: func(v Erased) Node {
			c := v.(Cons)
			return Node{Tag: c.Head, Children: []Erased{c.Tail}}
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			c := v.(Cons)
			return Cons{Head: c.Head, Tail: f(c.Tail)}
		},
	}
}

// ConatWitness presents the zero/succ functor F<X> = Either[unit, X]:
// Fix over it is the natural numbers, Cofix the co-naturals (ω included).
func ConatWitness() *Witness {
	return &Witness{
		Shape: Shape{
			Tags: []Tag{"zero", "succ"},
			Arity: func(t Tag) int {
				if t == "succ" {
					return 1
				}
				return 0
			},
		},
		Abs: func(n Node) Erased {
			if n.Tag == "succ" {
				return kont.Right[struct{}](n.Children[0])
			}
			return kont.Left[struct{}, Erased](struct{}{})
		},
		Repr: func(v Erased) Node {
			e := v.(kont.Either[struct{}, Erased])
			if pred, ok := e.GetRight(); ok {
				return Node{Tag: "succ", Children: []Erased{pred}}
			}
			return Node{Tag: "zero"}
		},
		Map: func(v Erased, f func(Erased) Erased) Erased {
			return kont.MapEither(v.(kont.Either[struct{}, Erased]), f)
		},
	}
}

// MultisetWitness presents multisets as the quotient of lists by reordering,
// built with [Transfer]: the G-representation is the key-sorted list, so Abs
// collapses all orderings of the same elements to one value. key must order
// equal elements equally; for recursive elements, [Fix.String] of a child is
// a ready-made canonical key.
func MultisetWitness(key func(Erased) string) *Witness {
	sorted := func(v Erased) Erased {
		xs := v.([]Erased)
		out := make([]Erased, len(xs))
		copy(out, xs)
		sort.SliceStable(out, func(i, j int) bool {
			return key(out[i]) < key(out[j])
		})
		return out
	}
	identity := func(v Erased) Erased { return v }
	return Transfer(ListWitness(), sorted, identity)
}
