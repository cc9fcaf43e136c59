// SPDX-License-Identifier: BSD-3-Clause

//go:build arm64

package cycles

// counter reads the virtual counter-timer (CNTVCT_EL0).
// Implemented in cycles_arm64.s.
//
//go:noescape
func counter() uint64
