// SPDX-License-Identifier: BSD-3-Clause

package htm

import "github.com/condy0919/dpdk-go/cycles"

// cpu is the real device: the instruction bindings below.
type cpu struct{}

func (cpu) txBegin() uint32  { return TxBegin() }
func (cpu) txAbortLockBusy() { TxAbortLockBusy() }
func (cpu) cycles() uint64   { return cycles.Counter() }
func (cpu) pause()           { Pause() }
