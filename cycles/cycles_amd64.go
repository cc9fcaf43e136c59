// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package cycles

// counter reads the timestamp counter with RDTSC.
// Implemented in cycles_amd64.s.
//
//go:noescape
func counter() uint64
