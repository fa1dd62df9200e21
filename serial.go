// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qpf

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing corecursion identifier. Each call to
// [Corecurse] (and [Corec]) assigns the next serial value; child handles
// inherit their root's serial, so a serial names one generator identity.
type Serial = uint32

// counter is the global monotonic counter for corecursion serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
