// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// tapeCapacity is the bounded capacity for the layer queue. 16 keeps a
// burst of layers in flight while bounding the work a producer can run
// ahead of its consumer.
const tapeCapacity = 16

// Tape bridges successive layers of a corecursive value to an external
// consumer loop: the producer walks the value's spine (slot 0 of each
// layer), the consumer drains observed F-layers from a bounded lock-free
// SPSC queue. Single producer, single consumer.
//
// Operations are non-blocking: [Tape.Pump] and [Tape.Next] return
// [code.hybscloud.com/iox.ErrWouldBlock] at the queue boundary, making the
// tape easy to drive from a proactor loop. Per-layer work stays bounded;
// the tape never traverses the value by itself.
type Tape struct {
	q    lfq.SPSC[Erased]
	cur  Cofix
	done atomix.Uint32
	slot Erased
}

// NewTape creates a tape positioned at v's root layer. Intended for
// stream-shaped values; a layer with no slots ends the tape.
func NewTape(v Cofix) *Tape {
	t := &Tape{cur: v}
	t.q.Init(tapeCapacity)
	return t
}

// Pump destructs the current layer, enqueues its F-value (recursive
// positions hold Cofix), and advances along slot 0. Producer side only.
//
// Returns iox.ErrWouldBlock when the queue is full (retry after the
// consumer drains) and io.EOF once the last layer has been enqueued.
func (t *Tape) Pump() error {
	if t.done.Load() != 0 {
		return io.EOF
	}
	n := t.cur.root.Destruct()
	t.slot = t.cur.Dest()
	if err := t.q.Enqueue(&t.slot); err != nil {
		return err
	}
	if len(n.Children) == 0 {
		t.done.Store(1)
		return nil
	}
	t.cur = Cofix{w: t.cur.w, root: n.Children[0].(*MTree)}
	return nil
}

// Next dequeues the oldest observed layer. Consumer side only.
// Returns iox.ErrWouldBlock when no layer is buffered; check [Tape.Done] to
// distinguish "not yet produced" from "tape exhausted".
func (t *Tape) Next() (Erased, error) {
	return t.q.Dequeue()
}

// Done reports whether the producer has enqueued the final layer. Buffered
// layers may still be pending in the queue.
func (t *Tape) Done() bool {
	return t.done.Load() != 0
}
