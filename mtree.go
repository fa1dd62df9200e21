// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"github.com/samber/lo"
)

// Layer publication states for MTree's thunk-per-layer cache.
const (
	layerEmpty uint32 = iota
	layerBuilding
	layerReady
)

// MTree is an opaque handle to a conceptually infinite labeled tree: the raw
// substrate for greatest fixed points. The only operations are [Corecurse]
// and [MTree.Destruct]; there is no direct constructor and no structural
// recursion over handles.
//
// Each handle's layer is generated on demand and cached, so repeated
// Destruct calls are referentially stable: the same child handles come back
// every time. First access is safe under concurrency — racers recompute the
// layer redundantly, one publishes via compare-and-swap, the rest discard
// and wait with adaptive backoff.
type MTree struct {
	gen  func(Erased) Node
	seed Erased

	// serial identifies the generator this handle unfolds; children
	// inherit it. Together with seed it keys bisimulation visited sets.
	serial Serial

	state atomix.Uint32
	tag   Tag
	kids  []*MTree
}

// Corecurse builds a handle from a seed and a one-step unfolding function.
// gen must produce its layer's tag without unbounded work; payload positions
// of the returned node are the child seeds.
//
// One-step law: Corecurse(seed, gen).Destruct() carries gen(seed)'s tag, and
// its children are Corecurse(s, gen) for each child seed s.
func Corecurse(seed Erased, gen func(Erased) Node) *MTree {
	return &MTree{gen: gen, seed: seed, serial: nextSerial()}
}

// Destruct returns the root layer of m; payload positions hold *MTree.
// The layer is computed at most once per handle and cached.
func (m *MTree) Destruct() Node {
	if m.state.Load() == layerReady {
		return m.layer()
	}
	n := m.gen(m.seed)
	kids := lo.Map(n.Children, func(s Erased, _ int) *MTree {
		return &MTree{gen: m.gen, seed: s, serial: m.serial}
	})
	if m.state.CompareAndSwap(layerEmpty, layerBuilding) {
		m.tag = n.Tag
		m.kids = kids
		m.state.Store(layerReady)
	} else {
		// Lost the publish race: discard this computation and wait
		// for the winner's layer.
		var bo iox.Backoff
		for m.state.Load() != layerReady {
			bo.Wait()
		}
	}
	return m.layer()
}

// layer rewraps the cached tag and children. Callers own the returned slice.
func (m *MTree) layer() Node {
	return Node{Tag: m.tag, Children: erasedChildren(m.kids)}
}
