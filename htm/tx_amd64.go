// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package htm

// TxBegin enters a transactional region. It returns TxBeginStarted on entry;
// when the region aborts, execution resumes here as if TxBegin had returned
// again, this time with the abort status.
//
//go:noescape
func TxBegin() (status uint32)

// TxEnd commits the current transactional region. Call it exactly once after
// a TxBegin that returned TxBeginStarted; executing it outside a transaction
// raises #UD.
//
//go:noescape
func TxEnd()

// TxAbort rolls back the current transactional region with code 0. The code
// of XABORT is an instruction immediate, so each code is a separate entry
// point rather than a parameter.
//
//go:noescape
func TxAbort()

// TxAbortLockBusy rolls back the current transactional region with
// AbortLockBusy, signalling that the elided lock was observed held.
//
//go:noescape
func TxAbortLockBusy()

// TxTest reports whether the caller is executing inside a transactional
// region. Meant for code running under an elided lock; the retry loop itself
// does not use it.
//
//go:noescape
func TxTest() bool

// Pause executes the PAUSE spin-wait hint.
//
//go:noescape
//go:nosplit
func Pause()
