// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package spinlock

import (
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/condy0919/dpdk-go/htm"
)

// RecursiveSpinLock is a SpinLock that may be re-taken by the thread that
// already holds it. Ownership is tracked by OS thread id, so callers must be
// pinned to their thread (runtime.LockOSThread, or run on an lcore); an
// unpinned goroutine can migrate between Lock calls and deadlock against
// itself.
//
// The zero value is unlocked.
type RecursiveSpinLock struct {
	lk    SpinLock
	owner int32 // tid of the holder, noOwner when free
	count int   // nesting depth, guarded by lk
}

const noOwner int32 = -1

// Lock takes the recursive spinlock, or bumps the nesting count when the
// calling thread already holds it.
func (l *RecursiveSpinLock) Lock() {
	tid := gettid()

	if elideEnabled && htm.Supported() && htm.TryLock(&l.lk.locked) {
		return
	}

	if atomic.LoadInt32(&l.owner) != tid {
		l.lk.Lock()
		atomic.StoreInt32(&l.owner, tid)
	}
	l.count++
}

// Unlock drops one nesting level, releasing the lock (or committing the
// elided transaction) at the outermost level.
func (l *RecursiveSpinLock) Unlock() {
	if l.lk.IsLocked() {
		l.count--
		if l.count == 0 {
			atomic.StoreInt32(&l.owner, noOwner)
			l.lk.Unlock()
		}
	} else {
		htm.TxEnd()
	}
}

// TryLock takes the recursive spinlock if it is free or already owned by the
// calling thread, and reports whether it did.
func (l *RecursiveSpinLock) TryLock() bool {
	tid := gettid()

	if elideEnabled && htm.Supported() && htm.TryLock(&l.lk.locked) {
		return true
	}

	if atomic.LoadInt32(&l.owner) != tid {
		if !l.lk.TryLock() {
			return false
		}
		atomic.StoreInt32(&l.owner, tid)
	}
	l.count++
	return true
}

// gettid returns the caller's OS thread id.
func gettid() int32 {
	return int32(unix.Gettid())
}
