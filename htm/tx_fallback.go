// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64

package htm

// Stubs for targets without RTM. TxBegin reports an abort with no status
// bits set, which the retry loop treats as non-retryable, so TryLock falls
// back after a single attempt. Supported is false on these targets; callers
// gating on it never reach the stubs at all.

// TxBegin reports a non-retryable abort.
func TxBegin() (status uint32) { return 0 }

// TxEnd is a no-op.
func TxEnd() {}

// TxAbort is a no-op.
func TxAbort() {}

// TxAbortLockBusy is a no-op.
func TxAbortLockBusy() {}

// TxTest reports false.
func TxTest() bool { return false }

// Pause is a no-op spin hint.
func Pause() {}
