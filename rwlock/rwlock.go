// SPDX-License-Identifier: BSD-3-Clause

// Package rwlock implements a busy-wait reader/writer lock whose critical
// sections can be elided with hardware transactional memory, in the same way
// as package spinlock.
package rwlock

import (
	"sync/atomic"

	"github.com/condy0919/dpdk-go/htm"
)

// RWLock allows many concurrent readers or one writer. The zero value is
// unlocked.
//
// The counter word is negative while the writer holds the lock and counts
// the readers otherwise; it also serves as the elision flag watched by
// htm.TryLock, which treats any nonzero value as "held".
type RWLock struct {
	cnt int32
}

// ReadLock takes a read lock, spinning while a writer holds the lock. With
// elision enabled it may instead enter a hardware transaction and leave the
// counter untouched.
func (l *RWLock) ReadLock() {
	if elideEnabled && htm.Supported() && htm.TryLock(&l.cnt) {
		return
	}

	for {
		x := atomic.LoadInt32(&l.cnt)
		if x < 0 {
			htm.Pause()
			continue
		}
		if atomic.CompareAndSwapInt32(&l.cnt, x, x+1) {
			return
		}
	}
}

// ReadUnlock releases a read lock, committing the transaction instead if the
// section was elided.
func (l *RWLock) ReadUnlock() {
	if atomic.LoadInt32(&l.cnt) != 0 {
		atomic.AddInt32(&l.cnt, -1)
	} else {
		htm.TxEnd()
	}
}

// WriteLock takes the write lock, spinning while any reader or writer holds
// the lock.
func (l *RWLock) WriteLock() {
	if elideEnabled && htm.Supported() && htm.TryLock(&l.cnt) {
		return
	}

	for {
		x := atomic.LoadInt32(&l.cnt)
		if x != 0 {
			htm.Pause()
			continue
		}
		if atomic.CompareAndSwapInt32(&l.cnt, 0, -1) {
			return
		}
	}
}

// WriteUnlock releases the write lock, committing the transaction instead if
// the section was elided.
func (l *RWLock) WriteUnlock() {
	if atomic.LoadInt32(&l.cnt) != 0 {
		atomic.StoreInt32(&l.cnt, 0)
	} else {
		htm.TxEnd()
	}
}
