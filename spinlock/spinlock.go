// SPDX-License-Identifier: BSD-3-Clause

// Package spinlock implements busy-wait locks whose critical sections can be
// elided with hardware transactional memory.
//
// When built with the htmelide tag on an RTM-capable machine, Lock first
// tries to run the caller's critical section as a hardware transaction via
// htm.TryLock; only when elision fails does it fall back to the lock word.
// Unlock notices which of the two happened by looking at the word: an elided
// section leaves it untouched, so a clear word means "commit the
// transaction" rather than "store zero".
//
// These locks never yield to the scheduler. Keep critical sections short.
package spinlock

import (
	"sync/atomic"

	"github.com/condy0919/dpdk-go/htm"
)

// SpinLock is a test-and-set spinlock. The zero value is unlocked.
//
// The lock word is an int32 so it can double as the elision flag watched by
// htm.TryLock: zero means free, nonzero means held through the fallback
// path.
type SpinLock struct {
	locked int32
}

// Lock takes the spinlock, spinning until it is available. With elision
// enabled it may instead enter a hardware transaction and return without
// touching the lock word.
func (l *SpinLock) Lock() {
	if elideEnabled && htm.Supported() && htm.TryLock(&l.locked) {
		return
	}

	for !atomic.CompareAndSwapInt32(&l.locked, 0, 1) {
		for atomic.LoadInt32(&l.locked) != 0 {
			htm.Pause()
		}
	}
}

// Unlock releases the spinlock, committing the transaction instead if the
// critical section was elided.
func (l *SpinLock) Unlock() {
	if l.IsLocked() {
		atomic.StoreInt32(&l.locked, 0)
	} else {
		htm.TxEnd()
	}
}

// TryLock takes the spinlock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	if elideEnabled && htm.Supported() && htm.TryLock(&l.locked) {
		return true
	}
	return atomic.CompareAndSwapInt32(&l.locked, 0, 1)
}

// IsLocked reports whether the lock word is held. Inside an elided section
// it reports false: elision works precisely because the word stays free.
func (l *SpinLock) IsLocked() bool {
	return atomic.LoadInt32(&l.locked) != 0
}
