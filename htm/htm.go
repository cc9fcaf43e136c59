// SPDX-License-Identifier: BSD-3-Clause

// Package htm exposes hardware transactional memory (Intel RTM) bindings and
// a lock-elision entry point on top of them.
//
// TryLock is the interesting part: it speculatively enters a hardware
// transaction instead of taking a conventional lock, retrying with
// exponential backoff on transient aborts, and reports whether the caller may
// run its critical section transactionally or must fall back to the real
// lock. The spinlock and rwlock packages use it to elide their lock words.
package htm

import "sync/atomic"

// TxBeginStarted is returned by TxBegin when a transactional region was
// entered. Any other value is an abort status.
const TxBeginStarted uint32 = ^uint32(0)

// Abort status bits, per the Intel SDM.
const (
	TxAbortExplicit uint32 = 1 << 0 // XABORT was executed
	TxAbortRetry    uint32 = 1 << 1 // the transaction may succeed on retry
	TxAbortConflict uint32 = 1 << 2 // memory conflict with another core
	TxAbortCapacity uint32 = 1 << 3 // internal buffer overflowed
	TxAbortDebug    uint32 = 1 << 4 // debug breakpoint was hit
	TxAbortNested   uint32 = 1 << 5 // abort in an inner nested transaction
)

// AbortLockBusy is the explicit abort code TryLock raises when it enters a
// transaction and finds the lock word already held by a fallback-path owner.
const AbortLockBusy uint8 = 0xff

// AbortCode returns the code passed to XABORT, stored in bits 31:24 of an
// explicit abort status. Meaningless unless TxAbortExplicit is set.
func AbortCode(status uint32) uint8 {
	return uint8((status >> 24) & 0xff)
}

// maxRetries bounds the transaction attempts of a single TryLock call.
const maxRetries = 20

// device is the hardware capability TryLock consumes. The retry loop is
// written against it so tests can script begin statuses and cycle counts
// instead of depending on real, non-deterministic transactions.
type device interface {
	txBegin() uint32
	txAbortLockBusy()
	cycles() uint64
	pause()
}

// TryLock attempts to elide the lock guarded by lock, a word that is zero
// when free and nonzero while held through the fallback path.
//
// A true return means the caller is inside a transactional region: it must
// run its critical section and commit with TxEnd, and must not touch the
// fallback lock. A false return means elision did not work out and the
// caller has to acquire the fallback lock as usual. Under contention false
// is a frequent, ordinary outcome.
//
// TryLock never writes the lock word.
//
//go:nosplit
func TryLock(lock *int32) bool {
	return tryLock(cpu{}, lock)
}

func tryLock(dev device, lock *int32) bool {
	retries := maxRetries
	for retries > 0 {
		retries--

		status := dev.txBegin()
		if status == TxBeginStarted {
			if atomic.LoadInt32(lock) != 0 {
				// A fallback owner is inside its critical section; running
				// transactionally now would break mutual exclusion with it.
				// The abort rolls back to txBegin and surfaces
				// TxAbortExplicit|AbortLockBusy on the next pass.
				dev.txAbortLockBusy()
				continue
			}
			return true
		}

		// Don't hammer the transaction while the lock is visibly held.
		for atomic.LoadInt32(lock) != 0 {
			dev.pause()
		}

		if status&TxAbortConflict != 0 ||
			(status&TxAbortExplicit != 0 && AbortCode(status) == AbortLockBusy) {
			// Transient failure. Back off exponentially with the attempt
			// number, jittered by the low TSC bits so sibling threads don't
			// retry in lockstep. The OR keeps the jitter an odd nonzero.
			tryCount := maxRetries - retries
			pauseCount := (dev.cycles()&0x7 | 1) << tryCount
			for i := uint64(0); i < pauseCount; i++ {
				dev.pause()
			}
			continue
		}

		if status&TxAbortRetry == 0 {
			// The hardware says this abort is not worth retrying (capacity,
			// debug, ...). Give up the remaining budget.
			break
		}
	}

	return false
}
