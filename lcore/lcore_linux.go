// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package lcore

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// apply configures the calling thread per the builder. Must run on the
// locked lcore thread.
func (b Builder) apply() error {
	if b.name != "" {
		p, err := unix.BytePtrFromString(b.name)
		if err != nil {
			return err
		}
		if err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0); err != nil {
			return err
		}
	}
	if len(b.cpus) > 0 {
		var set unix.CPUSet
		for _, cpu := range b.cpus {
			set.Set(cpu)
		}
		if err := unix.SchedSetaffinity(0, &set); err != nil {
			return err
		}
	}
	return nil
}

func threadID() int {
	return unix.Gettid()
}
