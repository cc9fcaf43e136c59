// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux

package lcore

// apply is a no-op off linux: the goroutine is still locked to its thread,
// but thread naming and CPU pinning are not available.
func (b Builder) apply() error {
	return nil
}

func threadID() int {
	return 0
}
