// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf_test

import (
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/qpf"
)

// drainTape interleaves Pump and Next on the calling goroutine, retrying
// past would-block boundaries, until n layers are observed.
func drainTape(tape *qpf.Tape, n int) []qpf.Erased {
	layers := make([]qpf.Erased, 0, n)
	for len(layers) < n {
		pumpErr := tape.Pump()
		for {
			layer, err := tape.Next()
			if err != nil {
				break
			}
			layers = append(layers, layer)
			if len(layers) == n {
				return layers
			}
		}
		if errors.Is(pumpErr, io.EOF) {
			break
		}
	}
	return layers
}

func TestTapeStreamsLayers(t *testing.T) {
	skipRace(t)
	w := qpf.StreamWitness()
	v := qpf.Corec(w, 0, countUp)

	layers := drainTape(qpf.NewTape(v), 10)
	if len(layers) != 10 {
		t.Fatalf("observed %d layers, want 10", len(layers))
	}
	for i, l := range layers {
		c := l.(qpf.Cons)
		if c.Head != i {
			t.Fatalf("layer %d head got %v, want %d", i, c.Head, i)
		}
	}
}

func TestTapeBackpressure(t *testing.T) {
	skipRace(t)
	w := qpf.StreamWitness()
	tape := qpf.NewTape(qpf.Corec(w, 0, countUp))

	// Pump without draining until the bounded queue pushes back.
	var blocked bool
	for i := 0; i < 1024; i++ {
		if err := tape.Pump(); err != nil {
			blocked = true
			break
		}
	}
	if !blocked {
		t.Fatal("bounded tape never reported backpressure")
	}

	// Draining unblocks the producer.
	if _, err := tape.Next(); err != nil {
		t.Fatalf("next after backpressure: %v", err)
	}
	if err := tape.Pump(); err != nil {
		t.Fatalf("pump after drain: %v", err)
	}
}

func TestTapeEndsOnSlotlessLayer(t *testing.T) {
	skipRace(t)
	w := qpf.ConatWitness()
	// The co-natural 2: succ, succ, zero — three layers, then EOF.
	v := qpf.Corec(w, 2, conatFrom)

	tape := qpf.NewTape(v)
	seen := 0
	for {
		err := tape.Pump()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		if _, err := tape.Next(); err == nil {
			seen++
		}
	}
	if !tape.Done() {
		t.Fatal("tape not done after EOF")
	}
	if seen != 3 {
		t.Fatalf("observed %d layers, want 3", seen)
	}
}
